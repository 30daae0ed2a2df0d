package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error on first load with no config file")
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("template not created: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if cfg.Interpreter.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.Interpreter.Model)
	}
	if len(cfg.Chart.DefaultVargas) != 3 {
		t.Errorf("default vargas = %v, want 3 entries", cfg.Chart.DefaultVargas)
	}
	if cfg.Storage.DatabasePath != filepath.Join(dir, "charts.db") {
		t.Errorf("database path = %q, want %q", cfg.Storage.DatabasePath, filepath.Join(dir, "charts.db"))
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	Load(dir) // create template

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ASTRO_DB_PATH", "/tmp/other.db")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.HasOpenAIKey() {
		t.Error("expected OpenAI key from environment")
	}
	if cfg.Storage.DatabasePath != "/tmp/other.db" {
		t.Errorf("database path = %q, want /tmp/other.db", cfg.Storage.DatabasePath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"latitude too large", func(c *Config) { c.Chart.DefaultLatitude = 91 }, true},
		{"longitude too small", func(c *Config) { c.Chart.DefaultLongitude = -181 }, true},
		{"temperature out of range", func(c *Config) { c.Interpreter.Temperature = 2.5 }, true},
		{"negative max tokens", func(c *Config) { c.Interpreter.MaxTokens = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTemplateCredentials(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateTemplateCredentials(dir)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if path != filepath.Join(dir, "credentials.toml") {
		t.Errorf("path = %q", path)
	}

	// Idempotent: a second call must not overwrite.
	if _, err := CreateTemplateCredentials(dir); err != nil {
		t.Errorf("second create failed: %v", err)
	}
}
