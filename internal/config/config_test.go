package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "sqlite" {
		t.Errorf("storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.DBFile != "diary.db" {
		t.Errorf("db_file = %q, want diary.db", cfg.DBFile)
	}
	if cfg.Theme.Preset != "default-dark" {
		t.Errorf("expected preset 'default-dark', got %q", cfg.Theme.Preset)
	}
	if !cfg.MondayFirst() {
		t.Error("expected weeks to start on Monday by default")
	}
	if cfg.LogPath() != filepath.Join(cfg.DataDir, "diarycal.log") {
		t.Errorf("log path = %q", cfg.LogPath())
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
storage = "markdown"
data_dir = "/tmp/diary-test"
week_start = "sunday"
log_file = "/tmp/diary-test/custom.log"

[theme]
preset = "default-light"
highlight = "#00FF00"
markdown_style = "light"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "markdown" {
		t.Errorf("storage = %q", cfg.Storage)
	}
	if cfg.DataDir != "/tmp/diary-test" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.MondayFirst() {
		t.Error("expected Sunday-first weeks")
	}
	if cfg.LogPath() != "/tmp/diary-test/custom.log" {
		t.Errorf("log path = %q", cfg.LogPath())
	}
	if cfg.Theme.Preset != "default-light" {
		t.Errorf("expected preset 'default-light', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.Highlight != "#00FF00" {
		t.Errorf("expected highlight '#00FF00', got %q", cfg.Theme.Highlight)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("DIARYCAL_STORAGE", "markdown")
	t.Setenv("DIARYCAL_THEME_PRESET", "dracula")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != "markdown" {
		t.Errorf("storage = %q, want markdown from env", cfg.Storage)
	}
	if cfg.Theme.Preset != "dracula" {
		t.Errorf("preset = %q, want dracula from env", cfg.Theme.Preset)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
