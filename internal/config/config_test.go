package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.DBPath == "" {
		t.Error("expected a default db_path")
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.Gesture.DoublePressMs != 400 {
		t.Errorf("expected double_press_ms 400, got %d", cfg.Gesture.DoublePressMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"

[gesture]
double_press_ms = 300
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Gesture.DoublePressMs != 300 {
		t.Errorf("expected double_press_ms 300, got %d", cfg.Gesture.DoublePressMs)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set env vars
	t.Setenv("DAYGRID_UI_THEME", "mocha")
	t.Setenv("DAYGRID_DOUBLE_PRESS_MS", "250")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha from env, got %s", cfg.UI.Theme)
	}
	if cfg.Gesture.DoublePressMs != 250 {
		t.Errorf("expected double_press_ms 250 from env, got %d", cfg.Gesture.DoublePressMs)
	}
	// File value should be kept when no env override
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path from file, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.Storage.DBPath = "" },
			wantErr: true,
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.UI.Theme = "solarized" },
			wantErr: true,
		},
		{
			name:    "zero double press window",
			mutate:  func(c *Config) { c.Gesture.DoublePressMs = 0 },
			wantErr: true,
		},
		{
			name:    "negative double press window",
			mutate:  func(c *Config) { c.Gesture.DoublePressMs = -50 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "macchiato"
	cfg.Gesture.DoublePressMs = 350

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() unexpected error: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error: %v", err)
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato, got %s", loaded.UI.Theme)
	}
	if loaded.Gesture.DoublePressMs != 350 {
		t.Errorf("expected double_press_ms 350, got %d", loaded.Gesture.DoublePressMs)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := expandPath("~/data/daygrid.db")
	want := filepath.Join(home, "data", "daygrid.db")
	if got != want {
		t.Errorf("expandPath() = %s, want %s", got, want)
	}

	if got := expandPath("/absolute/path.db"); got != "/absolute/path.db" {
		t.Errorf("expandPath() modified absolute path: %s", got)
	}
}
