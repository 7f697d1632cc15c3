package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/02loveslollipop/aquahealth/services/api/geo"
)

const (
	defaultAIBaseURL          = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultAIModel            = "gemini-2.5-flash"
	defaultAITimeout          = 30 * time.Second
	defaultCatalogRefreshSpec = "*/5 * * * *"
	defaultSessionEvictSpec   = "*/10 * * * *"
	defaultSessionIdleTTL     = 30 * time.Minute
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	// DatabaseURL is optional; without it the API serves the built-in fixtures.
	DatabaseURL string
	Port        int
	BearerToken string

	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration

	ClusterRadius float64

	CatalogRefreshSpec string
	SessionEvictSpec   string
	SessionIdleTTL     time.Duration
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:               8080,
		AIBaseURL:          defaultAIBaseURL,
		AIModel:            defaultAIModel,
		AITimeout:          defaultAITimeout,
		ClusterRadius:      geo.DefaultRadius,
		CatalogRefreshSpec: defaultCatalogRefreshSpec,
		SessionEvictSpec:   defaultSessionEvictSpec,
		SessionIdleTTL:     defaultSessionIdleTTL,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	for _, key := range []string{"AI_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.AIAPIKey = v
			break
		}
	}
	if v := strings.TrimSpace(os.Getenv("AI_BASE_URL")); v != "" {
		cfg.AIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("AI_MODEL")); v != "" {
		cfg.AIModel = v
	}
	if v := strings.TrimSpace(os.Getenv("AI_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid AI_TIMEOUT: %s", v)
		}
		cfg.AITimeout = d
	}

	if v := strings.TrimSpace(os.Getenv("MAP_CLUSTER_RADIUS")); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return cfg, fmt.Errorf("invalid MAP_CLUSTER_RADIUS: %s", v)
		}
		cfg.ClusterRadius = r
	}

	if v := strings.TrimSpace(os.Getenv("CATALOG_REFRESH_SPEC")); v != "" {
		cfg.CatalogRefreshSpec = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_EVICT_SPEC")); v != "" {
		cfg.SessionEvictSpec = v
	}
	if v := strings.TrimSpace(os.Getenv("SESSION_IDLE_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SESSION_IDLE_TTL: %s", v)
		}
		cfg.SessionIdleTTL = d
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UseMockAI reports whether symptom checks fall back to the canned assessment.
func (c Config) UseMockAI() bool {
	return c.AIAPIKey == ""
}
