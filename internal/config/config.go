// Package config handles the XDG configuration directory and settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todolist/internal/store"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// SettingsFile is the optional settings filename inside the config dir.
	SettingsFile = "config.toml"
)

// Output formats for the task view.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// DefaultFilter is used when the view prompt is left empty.
	DefaultFilter store.Filter

	// Format selects how the task view is rendered: "text" or "yaml".
	Format string
}

// settings mirrors config.toml.
type settings struct {
	Quiet         bool   `toml:"quiet"`
	Debug         bool   `toml:"debug"`
	DefaultFilter string `toml:"default_filter"`
	Format        string `toml:"format"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, DefaultFilter: store.All, Format: FormatText}, nil
}

// Load creates a Config like New and applies config.toml if it exists.
// A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	var s settings
	_, err = toml.DecodeFile(cfg.SettingsPath(), &s)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	cfg.Quiet = s.Quiet
	cfg.Debug = s.Debug
	if s.DefaultFilter != "" {
		cfg.DefaultFilter = store.ParseFilter(s.DefaultFilter)
	}
	if s.Format != "" {
		if err := cfg.SetFormat(s.Format); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
		}
	}
	return cfg, nil
}

// SetFormat validates and sets the output format.
func (c *Config) SetFormat(format string) error {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case FormatText, FormatYAML:
		c.Format = f
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}
