// ABOUTME: Configuration loader for the sizing service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, for processor catalog responses
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow all)
	RateLimitPerMinute int      // per-IP request budget (0 = disabled)

	// Sizing defaults applied when a request omits options
	DefaultUtilizationCeiling float64
	DefaultCoreRatio          float64
	DefaultAlertThreshold     float64

	// Processor catalog (optional external data source)
	CatalogPath string

	// vSphere discovery (optional)
	VSphereHost       string
	VSphereUsername   string
	VSpherePassword   string
	VSphereDatacenter string
	VSphereInsecure   bool
	VSphereCacheTTL   int // seconds, default 300 (5 min)
}

// VSphereConfigured returns true if vSphere credentials are set
func (c *Config) VSphereConfigured() bool {
	return c.VSphereHost != "" && c.VSphereUsername != "" && c.VSpherePassword != "" && c.VSphereDatacenter != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),

		DefaultUtilizationCeiling: getEnvFloat("DEFAULT_UTILIZATION_CEILING", 0.95),
		DefaultCoreRatio:          getEnvFloat("DEFAULT_CORE_RATIO", 4),
		DefaultAlertThreshold:     getEnvFloat("DEFAULT_ALERT_THRESHOLD", 90),

		CatalogPath: os.Getenv("PROCESSOR_CATALOG_PATH"),

		VSphereHost:       os.Getenv("VSPHERE_HOST"),
		VSphereUsername:   os.Getenv("VSPHERE_USERNAME"),
		VSpherePassword:   os.Getenv("VSPHERE_PASSWORD"),
		VSphereDatacenter: os.Getenv("VSPHERE_DATACENTER"),
		VSphereInsecure:   getEnvBool("VSPHERE_INSECURE", false),
		VSphereCacheTTL:   getEnvInt("VSPHERE_CACHE_TTL", 300),
	}

	if cfg.DefaultUtilizationCeiling <= 0 || cfg.DefaultUtilizationCeiling > 1 {
		return nil, fmt.Errorf("DEFAULT_UTILIZATION_CEILING must be in (0, 1], got %g", cfg.DefaultUtilizationCeiling)
	}
	if cfg.DefaultCoreRatio <= 0 {
		return nil, fmt.Errorf("DEFAULT_CORE_RATIO must be positive, got %g", cfg.DefaultCoreRatio)
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.DefaultAlertThreshold < 0 || cfg.DefaultAlertThreshold > 100 {
		return nil, fmt.Errorf("DEFAULT_ALERT_THRESHOLD must be between 0 and 100, got %g", cfg.DefaultAlertThreshold)
	}
	if cfg.CatalogPath != "" {
		if _, err := os.Stat(cfg.CatalogPath); err != nil {
			return nil, fmt.Errorf("PROCESSOR_CATALOG_PATH %s is not readable: %w", cfg.CatalogPath, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
