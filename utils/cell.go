package utils

import (
	"strconv"
	"strings"
)

// ParseCell converts a raw spreadsheet cell into its JSON value:
// empty → nil, integers → int64, decimals → float64, anything else → trimmed string
func ParseCell(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXnN") {
		return f
	}
	return s
}
