// Package config assembles runtime settings for the eventdesk CLI from
// defaults, environment variables, an optional JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the eventdesk CLI.
//
// Fields:
//   - APIBaseURL: root URL of the events resource store.
//   - DatabasePath: path of the local SQLite session database.
//   - RequestTimeout: per-request HTTP timeout.
//   - Environment: "development" or "production"; selects the log handler.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	Environment    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabasePath = "eventdesk.db"
	c.RequestTimeout = 10 * time.Second
	c.Environment = "development"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file), a JSON file (if given) and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
