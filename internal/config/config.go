// Package config holds the constants and the YAML configuration of the
// cs2types tooling.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cs2types.yaml configuration.
type Config struct {
	// Params describes where parameter definitions are read from.
	Params ParamsConfig `yaml:"params"`

	// Color is one of auto, always, never. Defaults to auto.
	Color string `yaml:"color,omitempty"`
}

// ParamsConfig selects the parameter store.
type ParamsConfig struct {
	// Source is "yaml" for a decoded dump or "sqlite" for raw cache payloads.
	Source string `yaml:"source"`

	// Path is relative to the configuration file.
	Path string `yaml:"path"`

	// Table is the SQLite table name. Defaults to "params".
	Table string `yaml:"table,omitempty"`
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	if cfg.Params.Path != "" && !filepath.IsAbs(cfg.Params.Path) {
		cfg.Params.Path = filepath.Join(filepath.Dir(path), cfg.Params.Path)
	}
	return cfg, nil
}

// ParseConfig parses configuration content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Params.Source == SourceSQLite && c.Params.Table == "" {
		c.Params.Table = DefaultParamTable
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown mode %q (want auto, always or never)", c.Color)
	}
	switch c.Params.Source {
	case SourceYAML, SourceSQLite:
	case "":
		return fmt.Errorf("params.source is required")
	default:
		return fmt.Errorf("params.source: unknown source %q (want yaml or sqlite)", c.Params.Source)
	}
	if c.Params.Path == "" {
		return fmt.Errorf("params.path is required")
	}
	if c.Params.Table != "" && c.Params.Source != SourceSQLite {
		return fmt.Errorf("params.table is only valid with source sqlite")
	}
	return nil
}
