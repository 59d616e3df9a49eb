// ABOUTME: Entry point for the capacity sizer API service
// ABOUTME: Provides HTTP access to the sizing engine and reference data

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"serversizer/cache"
	"serversizer/config"
	"serversizer/handlers"
	"serversizer/logger"
	"serversizer/middleware"
)

func main() {
	// .env is optional; real deployments set environment variables
	godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting capacity sizer service")
	if cfg.CatalogPath != "" {
		slog.Info("Processor catalog configured", "path", cfg.CatalogPath)
	} else {
		slog.Info("Using built-in processor catalog")
	}
	if cfg.VSphereConfigured() {
		slog.Info("vSphere discovery configured", "host", cfg.VSphereHost, "datacenter", cfg.VSphereDatacenter)
	} else {
		slog.Info("vSphere not configured, profile discovery disabled")
	}

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	h := handlers.NewHandler(cfg, c)

	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		slog.Info("Rate limiting enabled", "limit_per_minute", cfg.RateLimitPerMinute)
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		handler := middleware.Chain(route.Handler, cors, middleware.RateLimit(limiter), middleware.LogRequest)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
	}

	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
