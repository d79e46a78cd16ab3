// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
)

// Config holds server configuration. LLM provider configuration lives
// in the llm package and is resolved separately.
type Config struct {
	Port   string
	DBPath string // "" = XDG default path
	Env    string // "development" or "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:   getEnv("ZAEON_PORT", "8080"),
		DBPath: getEnv("ZAEON_DB", ""),
		Env:    getEnv("ZAEON_ENV", "production"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("ZAEON_PORT cannot be empty")
	}
	switch c.Env {
	case "development", "production":
	default:
		return fmt.Errorf("ZAEON_ENV must be development or production, got %q", c.Env)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
