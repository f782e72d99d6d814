// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, and 'go-playground/validator' to reject out-of-range values early.
An optional `.env` file in the working directory is loaded first.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, logging) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for wedplan.
type Config struct {
	Database Database
	Log      Log
	Cache    Cache
}

// Database holds the PostgreSQL connection parameters.
type Database struct {
	Host           string        `env:"DB_HOST"            envDefault:"localhost" validate:"required"`
	Port           int           `env:"DB_PORT"            envDefault:"5432"      validate:"min=1,max=65535"`
	User           string        `env:"DB_USER,required"                          validate:"required"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME,required"                          validate:"required"`
	SSLMode        string        `env:"DB_SSLMODE"         envDefault:"disable"   validate:"oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"        validate:"gt=0"`
}

// Log holds console and error-log settings.
type Log struct {
	// Level is the console log level: debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Debug bool   `env:"DEBUG"     envDefault:"false"`

	// ErrorLogPath is the append-only file receiving full failure diagnostics.
	ErrorLogPath string `env:"ERROR_LOG_PATH" envDefault:"db_errors.log" validate:"required"`
}

// Cache holds the optional Redis search-result cache settings.
type Cache struct {
	// RedisURL enables the cache when non-empty.
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
}

// # Configuration Loading

// Load reads an optional .env file, parses environment variables into a
// [Config] struct and validates it.
func Load() (*Config, error) {

	// A missing .env file is normal; any other read error is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current environment into a [Config] without touching .env.
func Parse() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// CacheEnabled reports whether the Redis search cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.RedisURL != ""
}
