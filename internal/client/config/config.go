package config

import "time"

// Config holds runtime settings for the campustrade CLI.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace REST API, including the
//     common path prefix (e.g. "http://localhost:5000/api").
//   - RequestTimeout: per-request deadline applied by the HTTP client.
//   - DatabasePath: sqlite DSN for the durable session store.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "campustrade.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
