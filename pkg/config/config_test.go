package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad_Defaults tests the built-in defaults
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %v, want 8080", cfg.Server.Port)
	}
	if cfg.Server.HealthPort != "9090" {
		t.Errorf("Server.HealthPort = %v, want 9090", cfg.Server.HealthPort)
	}
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("Observability.LogLevel = %v, want info", cfg.Observability.LogLevel)
	}
	if !cfg.Observability.MetricsEnabled {
		t.Error("Observability.MetricsEnabled = false, want true")
	}
	if cfg.Validation.Locale != "en" {
		t.Errorf("Validation.Locale = %v, want en", cfg.Validation.Locale)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %v, want empty (embedded catalog)", cfg.Catalog.Path)
	}
}

// TestLoad_EnvOverrides tests environment variable overrides
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRAFTREG_PORT", "8180")
	t.Setenv("CRAFTREG_LOG_LEVEL", "debug")
	t.Setenv("CRAFTREG_CATALOG_PATH", "/etc/craftreg/plugins.json")
	t.Setenv("CRAFTREG_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("CRAFTREG_METRICS_ENABLED", "false")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8180" {
		t.Errorf("Server.Port = %v, want 8180", cfg.Server.Port)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("Observability.LogLevel = %v, want debug", cfg.Observability.LogLevel)
	}
	if cfg.Catalog.Path != "/etc/craftreg/plugins.json" {
		t.Errorf("Catalog.Path = %v", cfg.Catalog.Path)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Observability.MetricsEnabled {
		t.Error("Observability.MetricsEnabled = true, want false")
	}
}

// TestLoad_YAMLFile tests loading from a YAML config file
func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "craftreg.yaml")
	content := `
server:
  port: "8280"
  health_port: "9290"
catalog:
  path: /data/plugins.json
validation:
  locale: en
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8280" {
		t.Errorf("Server.Port = %v, want 8280", cfg.Server.Port)
	}
	if cfg.Server.HealthPort != "9290" {
		t.Errorf("Server.HealthPort = %v, want 9290", cfg.Server.HealthPort)
	}
	if cfg.Catalog.Path != "/data/plugins.json" {
		t.Errorf("Catalog.Path = %v", cfg.Catalog.Path)
	}
}

// TestLoad_EnvBeatsFile tests that env overrides apply on top of the file
func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "craftreg.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"8280\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRAFTREG_PORT", "8380")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8380" {
		t.Errorf("Server.Port = %v, want 8380", cfg.Server.Port)
	}
}

// TestLoad_MissingFile tests the error path for an absent config file
func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

// TestValidate tests configuration validation rules
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			modify:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "empty health port",
			modify:  func(c *Config) { c.Server.HealthPort = "" },
			wantErr: true,
		},
		{
			name: "same port for api and health",
			modify: func(c *Config) {
				c.Server.Port = "8080"
				c.Server.HealthPort = "8080"
			},
			wantErr: true,
		},
		{
			name:    "zero shutdown timeout",
			modify:  func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "empty locale",
			modify:  func(c *Config) { c.Validation.Locale = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
