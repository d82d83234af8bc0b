// Package config loads optional user settings for the scap CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the effective configuration. Command-line flags override it.
type Config struct {
	LogDir  string      `yaml:"log_dir"`
	Verbose bool        `yaml:"verbose"`
	Format  string      `yaml:"format"`
	Serve   ServeConfig `yaml:"serve"`
}

// ServeConfig configures `scap serve`.
type ServeConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: "yaml",
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/scap/config.yaml, falling back
// to ~/.config.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scap", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "scap", "config.yaml"), nil
}

// LoadFromPath reads and validates the config at path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid format %q (use yaml or json)", c.Format)
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("invalid serve.transport %q (use stdio or streamable-http)", c.Serve.Transport)
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve.port %d", c.Serve.Port)
	}
	return nil
}
