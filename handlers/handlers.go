// ABOUTME: HTTP handler wiring for the capacity sizing API
// ABOUTME: Holds shared services, cache, and JSON response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"serversizer/cache"
	"serversizer/config"
	"serversizer/models"
	"serversizer/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB
const maxRequestBodySize = 1 << 20

type Handler struct {
	cfg           *config.Config
	cache         *cache.Cache
	calc          *services.SizingCalculator
	validator     *services.RequestValidator
	catalog       *services.ProcessorCatalog
	vsphereClient *services.VSphereClient
}

func NewHandler(cfg *config.Config, c *cache.Cache) *Handler {
	h := &Handler{
		cfg:       cfg,
		cache:     c,
		calc:      services.NewSizingCalculator(),
		validator: services.NewRequestValidator(),
	}

	if cfg != nil {
		h.catalog = services.NewProcessorCatalog(cfg.CatalogPath)

		if cfg.VSphereConfigured() {
			h.vsphereClient = services.NewVSphereClient(services.VSphereCredentials{
				Host:       cfg.VSphereHost,
				Username:   cfg.VSphereUsername,
				Password:   cfg.VSpherePassword,
				Datacenter: cfg.VSphereDatacenter,
				Insecure:   cfg.VSphereInsecure,
			})
		}
	}

	return h
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeEngineError maps the engine's error taxonomy onto HTTP status
// codes: validation and configuration failures are the caller's input
// (400), a degenerate zero-capacity profile is unprocessable (422).
func writeEngineError(w http.ResponseWriter, err error) {
	var (
		validationErr    *models.ValidationError
		configurationErr *models.ConfigurationError
		divisionErr      *models.DivisionError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid sizing input",
			Details: validationErr.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &configurationErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Unsupported configuration",
			Details: configurationErr.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &divisionErr):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "Profile cannot host any workload",
			Details: divisionErr.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
	default:
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
