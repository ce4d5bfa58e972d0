// Package config loads runtime settings for the fittrack CLI.
package config

import "time"

// Config holds runtime settings for the fittrack CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the fittrack API, without a trailing slash.
//   - DatabasePath: sqlite file holding locally persisted session data.
//   - RequestTimeout: upper bound for a single API request.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:1337"
	c.DatabasePath = "fittrack.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
