package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvFileVar points at an alternative .env file when none sits next to the executable
	EnvFileVar = "SNAIL_DESKTOP_ENV"

	DefaultAPIURL      = "http://localhost:23333"
	DefaultTitle       = "Snail"
	DefaultWidth       = 1024
	DefaultHeight      = 768
	minWindowDimension = 200
)

// Config holds the settings of the desktop shell
type Config struct {
	APIBaseURL string
	LogFile    string
	Title      string
	Width      int
	Height     int
}

// Load resolves the configuration from an optional .env file and the process environment.
// Variables already present in the environment win over the .env file.
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, err
		}
	}

	return &Config{
		APIBaseURL: strings.TrimRight(getEnvWithDefault("SNAIL_API_URL", DefaultAPIURL), "/"),
		LogFile:    strings.TrimSpace(os.Getenv("SNAIL_LOG_FILE")),
		Title:      getEnvWithDefault("SNAIL_WINDOW_TITLE", DefaultTitle),
		Width:      getDimension("SNAIL_WINDOW_WIDTH", DefaultWidth),
		Height:     getDimension("SNAIL_WINDOW_HEIGHT", DefaultHeight),
	}, nil
}

func resolveEnvPath() string {
	if execPath, err := os.Executable(); err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvFileVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}
	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getDimension ignores values that are not numbers or too small to show anything
func getDimension(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < minWindowDimension {
		return defaultValue
	}
	return n
}
