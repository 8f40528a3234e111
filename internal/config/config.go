// Package config loads and validates environment variables at startup.
// Fail-fast: an invalid value stops the process before anything connects.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Catalog drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all runtime configuration for the matcher service.
type Config struct {
	CatalogDriver      string
	DatabaseURL        string // postgres driver only
	SQLitePath         string // sqlite driver only
	RedisURL           string // empty disables the profile store and events
	GRPCPort           string
	SweepIntervalHours int
	LogLevel           slog.Level
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	driver := strings.ToLower(os.Getenv("CATALOG_DRIVER"))
	if driver == "" {
		driver = DriverSQLite
	}

	cfg := &Config{
		CatalogDriver: driver,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RedisURL:      os.Getenv("REDIS_URL"),
		GRPCPort:      os.Getenv("GRPC_PORT"),
	}

	switch driver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for CATALOG_DRIVER=postgres")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = "matcher.sqlite"
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("CATALOG_DRIVER must be postgres, sqlite or memory, got %q", driver)
	}

	if cfg.GRPCPort == "" {
		cfg.GRPCPort = "9090"
	}
	if _, err := strconv.Atoi(cfg.GRPCPort); err != nil {
		return nil, fmt.Errorf("GRPC_PORT must be numeric, got %q", cfg.GRPCPort)
	}

	cfg.SweepIntervalHours = 6
	if s := os.Getenv("EXPIRY_SWEEP_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("EXPIRY_SWEEP_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.SweepIntervalHours = v
	}

	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}
