package config_test

import (
	"log/slog"
	"testing"

	"naukri/matcher-service/internal/config"
)

var keys = []string{
	"CATALOG_DRIVER", "DATABASE_URL", "SQLITE_PATH", "REDIS_URL",
	"GRPC_PORT", "EXPIRY_SWEEP_INTERVAL_HOURS", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogDriver != config.DriverSQLite || cfg.SQLitePath != "matcher.sqlite" {
		t.Errorf("driver = %q, path = %q", cfg.CatalogDriver, cfg.SQLitePath)
	}
	if cfg.GRPCPort != "9090" || cfg.SweepIntervalHours != 6 || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_DRIVER", "Postgres")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/naukri")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogDriver != config.DriverPostgres {
		t.Errorf("driver = %q", cfg.CatalogDriver)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CATALOG_DRIVER", "mongo"},
		{"GRPC_PORT", "grpc"},
		{"EXPIRY_SWEEP_INTERVAL_HOURS", "0"},
		{"EXPIRY_SWEEP_INTERVAL_HOURS", "six"},
		{"LOG_LEVEL", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(); err == nil {
				t.Errorf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_DRIVER", "memory")
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("EXPIRY_SWEEP_INTERVAL_HOURS", "12")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogDriver != config.DriverMemory || cfg.GRPCPort != "7000" ||
		cfg.SweepIntervalHours != 12 || cfg.LogLevel != slog.LevelDebug ||
		cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("cfg = %+v", cfg)
	}
}
