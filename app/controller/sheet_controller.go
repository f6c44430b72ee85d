package controller

import (
	"net/http"
	"strings"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/service"
)

// SheetController serves spreadsheet rows as JSON
type SheetController struct {
	sheetService service.SheetServiceInterface
}

// NewSheetController creates a new SheetController
func NewSheetController(sheetService service.SheetServiceInterface) *SheetController {
	return &SheetController{sheetService: sheetService}
}

// GetSheet handles GET /catalog/sheet?url=<google sheet link>
// Returns the rows of the sheet as a JSON array of objects keyed by column header
func (c *SheetController) GetSheet(w http.ResponseWriter, r *http.Request) {
	sheetURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if sheetURL == "" {
		writeError(w, http.StatusBadRequest, "missing url query parameter")
		return
	}

	rows, err := c.sheetService.FetchRows(r.Context(), sheetURL)
	if err != nil {
		logging.L().Errorf("❌ GetSheet: Error fetching sheet: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
