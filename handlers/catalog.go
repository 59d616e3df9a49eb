// ABOUTME: HTTP handler for the processor catalog endpoint
// ABOUTME: Serves catalog rows with TTL caching

package handlers

import (
	"log/slog"
	"net/http"

	"serversizer/models"
)

// catalogCacheKey is the cache key for processor catalog responses.
const catalogCacheKey = "catalog:processors"

// Processors handles GET /api/v1/processors.
func (h *Handler) Processors(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(catalogCacheKey); found {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	procs, err := h.catalog.Processors()
	if err != nil {
		slog.Error("Processor catalog load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load processor catalog",
			Details: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	h.cache.Set(catalogCacheKey, procs)
	writeJSON(w, http.StatusOK, procs)
}
