// Package config provides configuration for the run gateway.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the run gateway configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Service identity exposed by /v1/version
	ServiceName    string
	ServiceVersion string

	// Run Coordinator settings. An empty URL means no coordinator is
	// configured and the gateway serves runs from its in-memory fallback.
	RunCoordinatorURL         string
	RunCoordinatorBearerToken string
	RunCoordinatorTimeout     time.Duration

	// Logging
	LogLevel string
}

const serviceVersion = "0.1.0"

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:                  getEnvInt("HTTP_PORT", 8080),
		ServiceName:               getEnv("SERVICE_NAME", "jarvis-run-gateway"),
		ServiceVersion:            serviceVersion,
		RunCoordinatorURL:         normalizeOptionalURL(os.Getenv("ARP_RUN_COORDINATOR_URL")),
		RunCoordinatorBearerToken: os.Getenv("ARP_RUN_COORDINATOR_BEARER_TOKEN"),
		RunCoordinatorTimeout:     time.Duration(getEnvInt("ARP_RUN_COORDINATOR_TIMEOUT_MS", 30000)) * time.Millisecond,
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}
}

// NormalizeBaseURL strips trailing slashes and a trailing /v1 path segment
// so that versioned routes can be appended uniformly.
func NormalizeBaseURL(url string) string {
	normalized := strings.TrimRight(url, "/")
	normalized = strings.TrimSuffix(normalized, "/v1")
	return normalized
}

func normalizeOptionalURL(url string) string {
	if url == "" {
		return ""
	}
	return NormalizeBaseURL(url)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
