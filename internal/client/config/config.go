package config

import "time"

// Config holds runtime settings for the Pulse client.
//
// Fields:
//   - BaseURL: root URL of the backend HTTP API; the single externally
//     supplied base-URL value every endpoint path is joined onto.
//   - RequestTimeout: per-request deadline for the HTTP client.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:3001"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
