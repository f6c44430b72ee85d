package utils

import (
	"net/url"

	"catalogo-iluminacao/models"
)

const (
	placeholderBaseURL = "https://placehold.co/150x150"

	// NoImageURL is shown when a product has no primary image
	NoImageURL = "https://via.placeholder.com/400x300?text=Sem+imagem"
)

// Placeholder labels per photo variant
const (
	LabelWhiteBackground = "Branco"
	LabelAmbient         = "Ambient"
	LabelMeasures        = "Medidas"
)

// PlaceholderURL builds the image-service URL for label and key.
// The key is query-escaped, so distinct keys never produce the same URL.
// An empty key yields the bare label.
func PlaceholderURL(label, key string) string {
	text := label
	if key != "" {
		text += "+" + url.QueryEscape(key)
	}
	return placeholderBaseURL + "?text=" + text
}

// PlaceholderPhotoSet returns the deterministic placeholder set for a product key
func PlaceholderPhotoSet(key string) models.PhotoSet {
	return models.PhotoSet{
		WhiteBackground: PlaceholderURL(LabelWhiteBackground, key),
		Ambient:         PlaceholderURL(LabelAmbient, key),
		Measures:        PlaceholderURL(LabelMeasures, key),
	}
}
