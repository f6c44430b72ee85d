package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/service"
)

// CatalogController serves the catalog page and its state
type CatalogController struct {
	store          *service.CatalogStore
	catalogService *service.CatalogService
	activate       func(ctx context.Context)
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(store *service.CatalogStore, catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{
		store:          store,
		catalogService: catalogService,
		activate:       store.Activate,
	}
}

// Index handles GET /?open=0&open=2
// Renders the catalog with the listed cards expanded
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	expanded := models.ParseExpandState(r.URL.Query()[models.ExpandParam])
	view := service.BuildPageView(c.store.Snapshot(), expanded, "/")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.catalogService.RenderCatalogHTML(w, view); err != nil {
		logging.L().Errorf("❌ Index: Error rendering catalog: %v", err)
		http.Error(w, "Failed to render catalog", http.StatusInternalServerError)
	}
}

// State handles GET /catalog/state
func (c *CatalogController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.store.Snapshot())
}

// Reload handles POST /catalog/reload
// Starts a new load in the background; the page shows the loading note meanwhile
func (c *CatalogController) Reload(w http.ResponseWriter, r *http.Request) {
	logging.L().Infof("🔄 Reload requested")
	go c.activate(context.WithoutCancel(r.Context()))
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "reloading"})
}

// Export handles GET /catalog/export?format=pdf|png
func (c *CatalogController) Export(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if !service.IsValidFormat(format) {
		logging.L().Warnf("❌ Export: Invalid format: %q", format)
		writeError(w, http.StatusBadRequest, "Invalid format. Valid formats: pdf, png")
		return
	}

	expanded := models.ParseExpandState(r.URL.Query()[models.ExpandParam])
	data, err := c.catalogService.Export(r.Context(), format, expanded.Href("/"))
	if err != nil {
		logging.L().Errorf("❌ Export: Error generating %s: %v", format, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate %s: %v", format, err))
		return
	}

	contentType := "application/pdf"
	if format == service.FormatPNG {
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"catalogo.%s\"", format))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.L().Errorf("❌ Export: Error writing response: %v", err)
	}
}
