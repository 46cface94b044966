package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolist/internal/store"
)

func writeSettings(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(body), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("/some/dir")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/some/dir" {
		t.Errorf("expected dir /some/dir, got %q", cfg.Dir)
	}
	if cfg.Format != FormatText || cfg.DefaultFilter != store.All {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SettingsPath() != filepath.Join("/some/dir", "config.toml") {
		t.Errorf("unexpected settings path %q", cfg.SettingsPath())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Quiet || cfg.Debug {
		t.Errorf("expected flags off, got %+v", cfg)
	}
}

func TestLoad_Settings(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `
quiet = true
debug = true
default_filter = "Show pending"
format = "YAML"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Quiet || !cfg.Debug {
		t.Errorf("expected quiet and debug, got %+v", cfg)
	}
	if cfg.DefaultFilter != store.PendingOnly {
		t.Errorf("expected pending filter, got %v", cfg.DefaultFilter)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("expected yaml format, got %q", cfg.Format)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "quiet = = true\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed settings")
	}
	if !strings.HasPrefix(err.Error(), "invalid config.toml") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, `format = "xml"`+"\n")

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown format: xml") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
