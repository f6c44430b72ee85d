package utils

import (
	"regexp"
	"strings"

	"catalogo-iluminacao/models"
)

var imageExtRegex = regexp.MustCompile(`(?i)\.(png|jpe?g|webp)$`)

// Filename markers per photo variant, matched case-insensitively
var (
	whiteBackgroundMarkers = []string{"branco", "white"}
	ambientMarkers         = []string{"ambient", "ambiente"}
	measuresMarkers        = []string{"medida", "measure"}
)

// IsImageFileName reports whether the file name carries an image extension
func IsImageFileName(name string) bool {
	return imageExtRegex.MatchString(name)
}

// MatchesCode reports whether a file belongs to the product code.
// An empty code matches every file.
func MatchesCode(fileName, code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return true
	}
	return strings.Contains(strings.ToLower(fileName), code)
}

// CategorizePhotos picks the first white-background, ambient and measures image
// among files whose names contain code.
// Example: PROD1_branco.jpg, PROD1_ambiente.jpg, PROD1_medidas.png
func CategorizePhotos(images []models.DriveImage, code string) models.PhotoSet {
	var set models.PhotoSet
	for _, img := range images {
		if !MatchesCode(img.Name, code) {
			continue
		}
		name := strings.ToLower(img.Name)
		if set.WhiteBackground == "" && containsAny(name, whiteBackgroundMarkers) {
			set.WhiteBackground = img.URL
		}
		if set.Ambient == "" && containsAny(name, ambientMarkers) {
			set.Ambient = img.URL
		}
		if set.Measures == "" && containsAny(name, measuresMarkers) {
			set.Measures = img.URL
		}
	}
	return set
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
