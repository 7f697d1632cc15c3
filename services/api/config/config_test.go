package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DATABASE_URL", "PORT", "API_PORT", "API_BEARER_TOKEN",
		"AI_API_KEY", "GEMINI_API_KEY", "API_KEY", "AI_BASE_URL", "AI_MODEL", "AI_TIMEOUT",
		"MAP_CLUSTER_RADIUS", "CATALOG_REFRESH_SPEC", "SESSION_EVICT_SPEC", "SESSION_IDLE_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.ListenAddr() != ":8080" {
		t.Errorf("port = %d, addr = %s", cfg.Port, cfg.ListenAddr())
	}
	if cfg.ClusterRadius != 0.008 {
		t.Errorf("radius = %v", cfg.ClusterRadius)
	}
	if !cfg.UseMockAI() {
		t.Errorf("expected mock AI without a key")
	}
	if cfg.AITimeout != 30*time.Second || cfg.SessionIdleTTL != 30*time.Minute {
		t.Errorf("timeouts = %v, %v", cfg.AITimeout, cfg.SessionIdleTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("MAP_CLUSTER_RADIUS", "0.01")
	t.Setenv("AI_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.AIAPIKey != "legacy-key" || cfg.UseMockAI() {
		t.Errorf("key = %q", cfg.AIAPIKey)
	}
	if cfg.ClusterRadius != 0.01 || cfg.AITimeout != 5*time.Second {
		t.Errorf("radius = %v, timeout = %v", cfg.ClusterRadius, cfg.AITimeout)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"PORT":               "abc",
		"MAP_CLUSTER_RADIUS": "-1",
		"AI_TIMEOUT":         "soon",
		"SESSION_IDLE_TTL":   "0s",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, val)
			}
		})
	}
}
