package optimizer

import (
	"os"
	"strconv"
)

// Config holds configuration for the external allocation service client.
type Config struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:5000",
		TimeoutMs:  8000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads optimizer configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NESTEGG_OPTIMIZER_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("NESTEGG_OPTIMIZER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NESTEGG_OPTIMIZER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("NESTEGG_OPTIMIZER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
