// ABOUTME: HTTP handler listing supported redundancy combinations
// ABOUTME: Exposes the (FTT, scheme) table with usable fractions

package handlers

import "net/http"

// RedundancySchemes handles GET /api/v1/redundancy/schemes.
func (h *Handler) RedundancySchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.calc.Redundancy().SupportedSchemes())
}
