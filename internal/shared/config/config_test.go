package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("SIM_STARTING_GALACTIC_YEAR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Simulation.StartingGalacticYear != 2024 {
		t.Errorf("StartingGalacticYear = %d, want 2024", cfg.Simulation.StartingGalacticYear)
	}
	if cfg.Simulation.GalaxySize != 50000 {
		t.Errorf("GalaxySize = %v, want 50000", cfg.Simulation.GalaxySize)
	}
	if cfg.Redis.LockTTL != 30*time.Second {
		t.Errorf("Redis.LockTTL = %v, want 30s", cfg.Redis.LockTTL)
	}
	if cfg.Auth.CookieSecure {
		t.Error("CookieSecure should be false outside production")
	}
}

func TestLoadProductionOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SIM_MAX_ADVANCE_YEARS", "500")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Logging.JSONFormat {
		t.Error("JSONFormat should be enabled in production")
	}
	if !cfg.Auth.CookieSecure {
		t.Error("CookieSecure should be enabled in production")
	}
	if cfg.Simulation.MaxAdvanceYears != 500 {
		t.Errorf("MaxAdvanceYears = %d, want 500", cfg.Simulation.MaxAdvanceYears)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 {
		t.Errorf("RequestsPerSecond = %v, want 2.5", cfg.RateLimit.RequestsPerSecond)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := Load()
		cfg.Auth.JWTSecret = strings.Repeat("s", 32)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET is required"},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "at least 32"},
		{"missing db name", func(c *Config) { c.Database.Name = "" }, "DB_NAME"},
		{"bad advance limit", func(c *Config) { c.Simulation.MaxAdvanceYears = 0 }, "SIM_MAX_ADVANCE_YEARS"},
		{"margin too wide", func(c *Config) { c.Simulation.CoordinateMargin = c.Simulation.GalaxySize }, "SIM_GALAXY_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
