// ABOUTME: Health check endpoint reporting component availability
// ABOUTME: Always returns 200; component states are informational

package handlers

import "net/http"

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":  "ok",
		"catalog": "builtin",
		"vsphere": "not_configured",
	}

	if h.cfg != nil && h.cfg.CatalogPath != "" {
		resp["catalog"] = "file"
	}
	if h.vsphereClient != nil {
		resp["vsphere"] = "configured"
	}

	writeJSON(w, http.StatusOK, resp)
}
