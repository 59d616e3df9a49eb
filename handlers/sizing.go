// ABOUTME: HTTP handlers for sizing and recommendation endpoints
// ABOUTME: Decodes requests, applies defaults, and runs the engine

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"serversizer/models"
)

// defaultOptions returns the configured sizing defaults. Decoding a
// request body over these means omitted option fields take the
// defaults while explicitly supplied values, including zero, are kept
// (an explicit alert_threshold of 0 disables threshold flagging).
func (h *Handler) defaultOptions() models.SizingOptions {
	if h.cfg == nil {
		return models.SizingOptions{}
	}
	return models.SizingOptions{
		UtilizationCeiling: h.cfg.DefaultUtilizationCeiling,
		CoreRatio:          h.cfg.DefaultCoreRatio,
		AlertThreshold:     h.cfg.DefaultAlertThreshold,
	}
}

// SizeCluster handles POST /api/v1/sizing.
func (h *Handler) SizeCluster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	req := models.SizingRequest{Options: h.defaultOptions()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSizingRequest(&req); err != nil {
		writeEngineError(w, err)
		return
	}

	result, err := h.calc.SizeCluster(req.Workloads, req.Profile, req.Redundancy, req.Options)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("Sizing computed",
		"workloads", len(req.Workloads),
		"total_nodes", result.TotalNodes,
		"binding", result.BindingDimension,
	)

	writeJSON(w, http.StatusOK, result)
}

// recommendationsRequest is the body for the recommendations endpoint:
// a sizing request without a fixed profile.
type recommendationsRequest struct {
	Workloads  []models.Workload       `json:"workloads"`
	Redundancy models.RedundancyConfig `json:"redundancy"`
	Options    models.SizingOptions    `json:"options"`
}

// Recommendations handles POST /api/v1/sizing/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	req := recommendationsRequest{Options: h.defaultOptions()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.calc.Recommend(req.Workloads, req.Redundancy, req.Options)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
