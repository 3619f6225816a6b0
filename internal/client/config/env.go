package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
//
// Recognized variables:
//
//	TASKBOARD_SERVER_URL       — backend base URL
//	TASKBOARD_REQUEST_TIMEOUT  — duration string, e.g. "10s"
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("TASKBOARD_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("TASKBOARD_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
