package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort     = "7070"
	defaultTokenTTL = 24 * time.Hour
)

// Config holds everything read from the environment at startup. There are
// no other configuration sources.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Load reads the process environment. Missing required variables are fatal
// for the caller; nothing here is re-read after startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     os.Getenv("PORT"),
		TokenTTL: defaultTokenTTL,
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("missing required environment variable DATABASE_PATH")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variable JWT_SECRET")
	}

	if raw := os.Getenv("TOKEN_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.TokenTTL = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}
