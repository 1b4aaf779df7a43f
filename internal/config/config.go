package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// CloudflareAPIKey authenticates Radar requests; optional, some
	// endpoints accept unauthenticated calls.
	CloudflareAPIKey string

	// RadarBaseURL overrides the Radar API root (useful for tests).
	RadarBaseURL string

	// HTTPTimeout bounds every upstream call.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the connection set is re-resolved.
	RefreshInterval time.Duration

	// PreferExternal tries the Radar gateway before the estimator.
	PreferExternal bool

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.CloudflareAPIKey = os.Getenv("CLOUDFLARE_API_KEY")
	cfg.RadarBaseURL = os.Getenv("RADAR_BASE_URL")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 10 seconds, matching the UI's polling
	// cadence and keeping Radar call volume inside its rate limits
	// together with the gateway's 60s response cache.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "10s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.PreferExternal = getenvBool("PREFER_EXTERNAL", true)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
