package config

import (
	"fmt"
	"os"
)

// Config holds all runtime settings, populated from environment variables.
// Command-line flags in cmd/etl override the profile and encoding.
type Config struct {
	// Profile names the normalization profile: los_angeles, salt_lake, or
	// universal.
	Profile string

	// Encoding is the character encoding of the input file: utf-8,
	// windows-1252, or iso-8859-1.
	Encoding string

	LogLevel  string
	LogFormat string
}

var validLogFormats = map[string]bool{"json": true, "text": true}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cfg := &Config{
		Profile:   envOrDefault("PROFILE", "universal"),
		Encoding:  envOrDefault("INPUT_ENCODING", "utf-8"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}

	if !validLogFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}
	if cfg.Profile == "" {
		return nil, fmt.Errorf("PROFILE must not be empty")
	}

	return cfg, nil
}

// envOrDefault returns the environment variable's value, or def when unset or
// empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
