package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL",
		"VITE_API_BASE_URL",
		"HTTP_TIMEOUT_SECONDS",
		"SNAPSHOT_STORAGE_TYPE",
		"PUBLISHERS_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFallsBackToDefaultBaseURL(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Fatalf("expected fallback base url, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %s", cfg.HTTPTimeout)
	}
	if cfg.SnapshotStorageType != "none" {
		t.Fatalf("unexpected storage type %q", cfg.SnapshotStorageType)
	}
}

func TestLoadReadsBaseURLFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", " http://localhost:8000 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url %q", cfg.APIBaseURL)
	}
}

func TestLoadAcceptsFrontendVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_API_BASE_URL", "http://frontend.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://frontend.local" {
		t.Fatalf("unexpected base url %q", cfg.APIBaseURL)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
