// ABOUTME: End-to-end tests for the sizing API server wiring
// ABOUTME: Exercises the full middleware chain, routes, and engine flow

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serversizer/cache"
	"serversizer/config"
	"serversizer/handlers"
	"serversizer/middleware"
	"serversizer/models"
)

// newTestServer builds the server exactly the way main does: route
// table plus CORS, rate limiting, and logging middleware.
func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	h := handlers.NewHandler(cfg, cache.New(time.Minute))
	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		handler := middleware.Chain(route.Handler, cors, middleware.RateLimit(limiter), middleware.LogRequest)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultUtilizationCeiling: 0.95,
		DefaultCoreRatio:          4,
		DefaultAlertThreshold:     90,
		VSphereCacheTTL:           300,
	}
}

// TestSizingE2E runs a full sizing request through the real server:
// 10x{2 vCPU, 4 GiB, 100 GiB} on 2x32-core 768 GiB nodes with 12x960 GB
// disks under RAID-5 FTT=1 sizes to a single node in every dimension.
func TestSizingE2E(t *testing.T) {
	server := newTestServer(t, testConfig())

	req := models.SizingRequest{
		Workloads: []models.Workload{
			{Name: "web", VCPUs: 2, MemoryGiB: 4, StorageGiB: 100, Replicas: 10},
		},
		Profile: models.NodeProfile{
			CoresPerProcessor: 32,
			Processors:        2,
			MemoryGiB:         768,
			Disks:             12,
			DiskCapacityGB:    960,
			FormFactor:        models.FormFactor2U,
		},
		Redundancy: models.RedundancyConfig{
			FTT:                1,
			Scheme:             models.SchemeErasureCoding,
			DataReductionRatio: 1.0,
		},
		Options: models.SizingOptions{
			UtilizationCeiling: 0.95,
			CoreRatio:          4,
		},
	}

	body, _ := json.Marshal(req)
	resp, err := http.Post(server.URL+"/api/v1/sizing", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to post sizing request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header from logging middleware")
	}

	var result models.SizingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	if result.TotalNodes != 1 {
		t.Errorf("Expected 1 total node, got %d", result.TotalNodes)
	}
	if result.UsableCapacityPerNodeGB != 8640 {
		t.Errorf("Expected 8640 GB usable per node, got %g", result.UsableCapacityPerNodeGB)
	}
	if result.UsableCapacityDisplay != "8.44 TiB" {
		t.Errorf("Expected usable display 8.44 TiB, got %s", result.UsableCapacityDisplay)
	}
}

// TestSizingE2E_DefaultsApplied verifies that a request omitting options
// still sizes using the configured defaults.
func TestSizingE2E_DefaultsApplied(t *testing.T) {
	server := newTestServer(t, testConfig())

	body := []byte(`{
		"workloads": [{"name": "db", "vcpus": 4, "memory_gib": 16, "storage_gib": 200, "replicas": 3}],
		"profile": {"cores_per_processor": 32, "processors": 2, "memory_gib": 768,
			"disks": 12, "disk_capacity_gb": 960, "form_factor": "2U"},
		"redundancy": {"ftt": 1, "scheme": "mirror", "data_reduction_ratio": 1.0}
	}`)

	resp, err := http.Post(server.URL+"/api/v1/sizing", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to post sizing request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 with defaulted options, got %d", resp.StatusCode)
	}
}

// TestSizingE2E_ErrorMapping verifies the engine taxonomy maps onto
// HTTP statuses through the full stack.
func TestSizingE2E_ErrorMapping(t *testing.T) {
	server := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name: "unsupported redundancy combination",
			body: `{
				"workloads": [{"name": "a", "vcpus": 1, "memory_gib": 1, "storage_gib": 1, "replicas": 1}],
				"profile": {"cores_per_processor": 32, "processors": 2, "memory_gib": 768,
					"disks": 12, "disk_capacity_gb": 960, "form_factor": "2U"},
				"redundancy": {"ftt": 3, "scheme": "erasure_coding", "data_reduction_ratio": 1.0}
			}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "zero-core profile",
			body: `{
				"workloads": [{"name": "a", "vcpus": 1, "memory_gib": 1, "storage_gib": 1, "replicas": 1}],
				"profile": {"cores_per_processor": 0, "processors": 2, "memory_gib": 768,
					"disks": 12, "disk_capacity_gb": 960, "form_factor": "2U"},
				"redundancy": {"ftt": 1, "scheme": "mirror", "data_reduction_ratio": 1.0}
			}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed JSON",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/api/v1/sizing", "application/json", bytes.NewReader([]byte(tt.body)))
			if err != nil {
				t.Fatalf("Failed to post: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}

			var apiErr models.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
				t.Fatalf("Error body is not the JSON envelope: %v", err)
			}
			if apiErr.Error == "" {
				t.Error("Expected error message in envelope")
			}
		})
	}
}

// TestRateLimitE2E verifies the per-IP limiter kicks in through the
// full middleware chain.
func TestRateLimitE2E(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerMinute = 2
	server := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		resp, err := http.Get(server.URL + "/api/v1/health")
		if err != nil {
			t.Fatalf("Request %d failed: %v", i+1, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, resp.StatusCode)
		}
	}

	resp, err := http.Get(server.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("Over-limit request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429 over the limit, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

// TestReferenceDataE2E verifies the reference endpoints serve data.
func TestReferenceDataE2E(t *testing.T) {
	server := newTestServer(t, testConfig())

	resp, err := http.Get(server.URL + "/api/v1/redundancy/schemes")
	if err != nil {
		t.Fatalf("Failed to get schemes: %v", err)
	}
	defer resp.Body.Close()

	var schemes []models.SchemeInfo
	if err := json.NewDecoder(resp.Body).Decode(&schemes); err != nil {
		t.Fatalf("Failed to decode schemes: %v", err)
	}
	if len(schemes) != 5 {
		t.Errorf("Expected 5 supported combinations, got %d", len(schemes))
	}

	resp, err = http.Get(server.URL + "/api/v1/processors")
	if err != nil {
		t.Fatalf("Failed to get processors: %v", err)
	}
	defer resp.Body.Close()

	var procs []models.Processor
	if err := json.NewDecoder(resp.Body).Decode(&procs); err != nil {
		t.Fatalf("Failed to decode processors: %v", err)
	}
	if len(procs) == 0 {
		t.Error("Expected built-in processor catalog to be non-empty")
	}
}
