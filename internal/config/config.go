// Package config loads the tool configuration from .shopforge.yml with
// SHOPFORGE_* environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultFile is the conventional config filename in a project directory.
const DefaultFile = ".shopforge.yml"

// Config is the top-level shopforge configuration, corresponding to
// .shopforge.yml. It configures the tool, not the store; the store
// lives in its own JSON document.
type Config struct {
	StoreFile   string `yaml:"store_file" koanf:"store_file"`
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
	Currency    string `yaml:"currency" koanf:"currency"`
	PreviewPort int    `yaml:"preview_port" koanf:"preview_port"`
	HistoryDB   string `yaml:"history_db" koanf:"history_db"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StoreFile:   "store.json",
		OutputDir:   "dist",
		Currency:    "$",
		PreviewPort: 4321,
		HistoryDB:   ".shopforge/history.db",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SHOPFORGE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// SHOPFORGE_OUTPUT_DIR -> output_dir, etc.
	if err := k.Load(env.Provider("SHOPFORGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SHOPFORGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.StoreFile == "" {
		return fmt.Errorf("store_file is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if c.PreviewPort < 1 || c.PreviewPort > 65535 {
		return fmt.Errorf("preview_port must be between 1 and 65535")
	}
	return nil
}
