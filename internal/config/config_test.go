package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFileVar, "SNAIL_API_URL", "SNAIL_LOG_FILE", "SNAIL_WINDOW_TITLE", "SNAIL_WINDOW_WIDTH", "SNAIL_WINDOW_HEIGHT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.APIBaseURL != DefaultAPIURL {
		t.Errorf("Expected APIBaseURL %q, got %q", DefaultAPIURL, cfg.APIBaseURL)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Expected Title %q, got %q", DefaultTitle, cfg.Title)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("Expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cfg.Width, cfg.Height)
	}
	if cfg.LogFile != "" {
		t.Errorf("Expected no log file, got %q", cfg.LogFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAIL_API_URL", "http://api.example.test:9000/")
	t.Setenv("SNAIL_LOG_FILE", "/tmp/snail.log")
	t.Setenv("SNAIL_WINDOW_TITLE", "Snail Dev")
	t.Setenv("SNAIL_WINDOW_WIDTH", "1280")
	t.Setenv("SNAIL_WINDOW_HEIGHT", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.APIBaseURL != "http://api.example.test:9000" {
		t.Errorf("Expected trailing slash to be trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.LogFile != "/tmp/snail.log" {
		t.Errorf("Unexpected LogFile %q", cfg.LogFile)
	}
	if cfg.Title != "Snail Dev" {
		t.Errorf("Unexpected Title %q", cfg.Title)
	}
	if cfg.Width != 1280 {
		t.Errorf("Expected Width 1280, got %d", cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("Expected too small Height to fall back to %d, got %d", DefaultHeight, cfg.Height)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv.Load never overrides, so the variable must be absent rather than empty
	os.Unsetenv("SNAIL_WINDOW_TITLE")
	defer os.Unsetenv("SNAIL_WINDOW_TITLE")

	envFile := filepath.Join(t.TempDir(), "snail.env")
	if err := os.WriteFile(envFile, []byte("SNAIL_WINDOW_TITLE=From File\n"), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvFileVar, envFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Title != "From File" {
		t.Errorf("Expected Title from .env file, got %q", cfg.Title)
	}
}
