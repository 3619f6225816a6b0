// Package config holds runtime settings for the taskboard CLI.
package config

import "time"

// Config holds runtime settings for the taskboard CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the task manager backend, without a
//     trailing slash requirement.
//   - RequestTimeout: per-request timeout on the shared HTTP client.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present), a JSON file
// (if one was named), and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
