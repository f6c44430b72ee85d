package controller

import (
	"encoding/json"
	"net/http"

	"catalogo-iluminacao/logging"
)

// writeJSON encodes payload with the given status
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.L().Errorf("❌ Failed to encode response: %v", err)
	}
}

// writeError sends {"error": message}, the error shape used by every catalog endpoint
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
