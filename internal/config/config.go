// Package config provides reading and writing of nomen configuration.
// Supports both global (~/.nomen/config.yaml) and local (.nomen/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use ScopeLocal for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.nomen/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .nomen/config.yaml
	ScopeLocal
)

// Report holds report formatting options.
type Report struct {
	Verbose *bool `yaml:"verbose,omitempty"`
}

// Scan holds file discovery options.
type Scan struct {
	Extensions []string `yaml:"extensions,omitempty"`
}

// Log holds report-log options.
type Log struct {
	Dir      *string `yaml:"dir,omitempty"`
	Disabled *bool   `yaml:"disabled,omitempty"`
}

// Config contains configuration for nomen.
type Config struct {
	Report Report `yaml:"report,omitempty"`
	Scan   Scan   `yaml:"scan,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults apply).
func (c *Config) Validate() error {
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidValue, ext)
		}
	}
	return nil
}

// Verbose returns whether verbose reports are enabled (defaults to false).
func (c *Config) Verbose() bool {
	if c.Report.Verbose == nil {
		return false
	}
	return *c.Report.Verbose
}

// Extensions returns the file extensions scanned for. Nil means the
// caller should use the built-in defaults.
func (c *Config) Extensions() []string {
	return c.Scan.Extensions
}

// LogDisabled returns whether the plain-text report log is disabled.
func (c *Config) LogDisabled() bool {
	if c.Log.Disabled == nil {
		return false
	}
	return *c.Log.Disabled
}

// LogDir returns the directory report logs are written to
// (defaults to ~/.nomen/log).
func (c *Config) LogDir() string {
	if c.Log.Dir != nil && *c.Log.Dir != "" {
		return *c.Log.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".nomen", "log")
	}
	return filepath.Join(home, ".nomen", "log")
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".nomen", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.nomen/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nomen", "config.yaml")
}

// Load reads the configuration, preferring local over global. A
// missing file is not an error: the zero Config (all defaults) is
// returned, bound to the global path for Save.
func Load() (*Config, error) {
	if cfg, err := loadFrom(LocalPath(), ScopeLocal); err == nil {
		return cfg, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	global := GlobalPath()
	if global == "" {
		return nil, ErrNoConfigPath
	}
	cfg, err := loadFrom(global, ScopeGlobal)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: global, scope: ScopeGlobal}, nil
	}
	return cfg, err
}

// LoadFile reads configuration from an explicit path (--config flag).
func LoadFile(path string) (*Config, error) {
	return loadFrom(path, ScopeLocal)
}

func loadFrom(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{path: path, scope: scope}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to the file it was loaded from,
// creating the containing directory if needed.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoConfigPath
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(c.path, data, 0644)
}
