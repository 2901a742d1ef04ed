// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default server port when MATCH_PORT is unset.
const defaultPort = 8080

// Config holds the runtime configuration for the match service.
// All values come from the environment; a local .env file is honored when
// present.
type Config struct {
	Port     int  // MATCH_PORT
	JSONLogs bool // MATCH_JSON_LOGS
	Debug    bool // MATCH_DEBUG
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when it exists; a missing file is not an error.
func Load() (*Config, error) {
	// .env is optional; env vars may come from the shell.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     defaultPort,
		JSONLogs: boolEnv("MATCH_JSON_LOGS"),
		Debug:    boolEnv("MATCH_DEBUG"),
	}

	if raw := os.Getenv("MATCH_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MATCH_PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

// boolEnv interprets common truthy values for a boolean environment variable.
func boolEnv(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes":
		return true
	}
	return false
}
