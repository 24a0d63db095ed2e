package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for environment parsing only.
type envConfig struct {
	APIBaseURL     string        `env:"EVENTDESK_API_URL"`
	DatabasePath   string        `env:"EVENTDESK_DB_PATH"`
	RequestTimeout time.Duration `env:"EVENTDESK_REQUEST_TIMEOUT"`
	Environment    string        `env:"GO_ENV"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment. Outside
// production a .env file is loaded first when present; a missing file is not
// an error since production relies on real environment variables.
func parseEnv(cfg *Config) {
	if os.Getenv("GO_ENV") != "production" {
		_ = godotenv.Load()
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.Environment != "" {
		cfg.Environment = ec.Environment
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
