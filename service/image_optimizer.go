package service

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"catalogo-iluminacao/logging"
)

// Thumbnail sizes
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// OptimizeImage converts an image to JPEG, shrinking it to fit the size's max dimension.
// size: "thumb" or "medium"; anything else falls back to medium.
// Images already smaller than the limit are re-encoded but never enlarged.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var maxDim, quality int
	switch size {
	case SizeThumb:
		maxDim = maxSizeThumb
		quality = qualityThumb
	case SizeMedium:
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		logging.L().Warnf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		logging.L().Debugf("🔄 Resized image: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
