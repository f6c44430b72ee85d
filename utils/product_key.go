package utils

import (
	"strings"

	"catalogo-iluminacao/models"
)

// ProductKey returns the string used to correlate a product with its photo set:
// the product code, or the identifier when the code is empty
func ProductKey(p models.Product) string {
	if code := strings.TrimSpace(p.Code); code != "" {
		return code
	}
	return strings.TrimSpace(p.ID)
}
