package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/service"
	"catalogo-iluminacao/utils"
)

// PhotoController serves product photos found in a shared Drive folder
type PhotoController struct {
	photoService *service.PhotoService
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService *service.PhotoService) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// GetPhotos handles GET /catalog/photos?shareUrl=<folder link>&code=<product key>
// Returns {"white_background", "ambient", "measures"}. Without Drive credentials, or with a
// share link that is not a Drive folder, placeholders are returned so the page keeps its layout.
func (c *PhotoController) GetPhotos(w http.ResponseWriter, r *http.Request) {
	shareURL := strings.TrimSpace(r.URL.Query().Get("shareUrl"))
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if shareURL == "" {
		writeError(w, http.StatusBadRequest, "missing shareUrl query parameter")
		return
	}

	set, err := c.photoService.PhotosForCode(r.Context(), shareURL, code)
	if err != nil {
		if errors.Is(err, service.ErrDriveNotConfigured) || errors.Is(err, utils.ErrInvalidShareURL) {
			logging.L().Infof("⚠️  Photos disabled (%v), returning placeholders for %q", err, code)
			writeJSON(w, http.StatusOK, utils.PlaceholderPhotoSet(code))
			return
		}
		logging.L().Errorf("❌ GetPhotos: Error fetching photos for %q: %v", code, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// GetProductImages handles GET /catalog/produtos/{codigo}/imagens?shareUrl=<folder link>
// Returns every image of the folder whose name contains the code
func (c *PhotoController) GetProductImages(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "codigo"))
	shareURL := strings.TrimSpace(r.URL.Query().Get("shareUrl"))
	if shareURL == "" {
		writeError(w, http.StatusBadRequest, "missing shareUrl query parameter")
		return
	}

	images, err := c.photoService.ImagesForCode(r.Context(), shareURL, code)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, utils.ErrInvalidShareURL):
			status = http.StatusBadRequest
		case errors.Is(err, service.ErrDriveNotConfigured):
			status = http.StatusServiceUnavailable
		}
		logging.L().Errorf("❌ GetProductImages: Error searching images for %q: %v", code, err)
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.ProductImages{Code: code, Images: images})
}

// GetThumbnail handles GET /catalog/photos/thumb?fileId=<id>&size=thumb|medium
// Returns an optimised JPEG of a Drive file
func (c *PhotoController) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	size := strings.TrimSpace(r.URL.Query().Get("size"))
	if fileID == "" {
		writeError(w, http.StatusBadRequest, "missing fileId query parameter")
		return
	}
	if size == "" {
		size = service.SizeThumb
	}
	if size != service.SizeThumb && size != service.SizeMedium {
		writeError(w, http.StatusBadRequest, "Invalid size. Valid sizes: thumb, medium")
		return
	}

	data, err := c.photoService.Thumbnail(r.Context(), fileID, size)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrDriveNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		logging.L().Errorf("❌ GetThumbnail: Error serving %s: %v", fileID, err)
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.L().Errorf("❌ GetThumbnail: Error writing response: %v", err)
	}
}
