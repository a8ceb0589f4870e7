package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvPort        = "SCOREKEEP_PORT"
	EnvTokenSecret = "SCOREKEEP_TOKEN_SECRET"
	EnvTokenTTL    = "SCOREKEEP_TOKEN_TTL"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort = 3000
	// FallbackTokenSecret is used when SCOREKEEP_TOKEN_SECRET is unset.
	// Any deployment running on the fallback accepts forged tokens;
	// main logs a warning when this happens
	FallbackTokenSecret = "supersecretkey"
	DefaultTokenTTL     = time.Hour
)

// Config holds process-wide configuration loaded once at startup
type Config struct {
	Port        int
	TokenSecret string
	TokenTTL    time.Duration

	// UsingFallbackSecret reports that no explicit signing secret was
	// configured
	UsingFallbackSecret bool
}

// Load reads configuration from the environment, consulting a .env
// file in the working directory first if one exists
func Load() (*Config, error) {
	// A missing .env file is not an error; explicit environment
	// variables always win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        DefaultPort,
		TokenSecret: FallbackTokenSecret,
		TokenTTL:    DefaultTokenTTL,
	}

	if raw := os.Getenv(EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPort, raw, err)
		}
		cfg.Port = port
	}

	if secret := os.Getenv(EnvTokenSecret); secret != "" {
		cfg.TokenSecret = secret
	} else {
		cfg.UsingFallbackSecret = true
	}

	if raw := os.Getenv(EnvTokenTTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTokenTTL, raw, err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}
