// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Sizing engine
		{Method: http.MethodPost, Path: "/api/v1/sizing", Handler: h.SizeCluster},
		{Method: http.MethodPost, Path: "/api/v1/sizing/recommendations", Handler: h.Recommendations},

		// Reference data
		{Method: http.MethodGet, Path: "/api/v1/processors", Handler: h.Processors},
		{Method: http.MethodGet, Path: "/api/v1/redundancy/schemes", Handler: h.RedundancySchemes},

		// Infrastructure discovery
		{Method: http.MethodGet, Path: "/api/v1/infrastructure/discover", Handler: h.DiscoverInfrastructure},
	}
}
