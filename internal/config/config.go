// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// minSecretLength is the shortest HMAC signing key the server accepts.
const minSecretLength = 32

// Config holds everything the server reads at startup. Values are read once;
// nothing re-reads the environment afterwards.
type Config struct {
	Addr         string
	DatabaseURL  string
	TokenSecret  string
	CORSOrigin   string
	TokenTTL     time.Duration
	ReplyTimeout time.Duration
}

// Load reads a .env file if present, then the environment. DATABASE_URL and
// TOKEN_SECRET are required; the secret is never defaulted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:         env("ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TokenSecret:  os.Getenv("TOKEN_SECRET"),
		CORSOrigin:   env("CORS_ORIGIN", "*"),
		TokenTTL:     7 * 24 * time.Hour,
		ReplyTimeout: 5 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}
	if len(cfg.TokenSecret) < minSecretLength {
		return nil, fmt.Errorf("TOKEN_SECRET must be at least %d characters", minSecretLength)
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("REPLY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid REPLY_TIMEOUT %q", v)
		}
		cfg.ReplyTimeout = d
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
