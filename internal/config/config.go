// Package config loads the saldo.yaml configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level saldo.yaml configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Chart  ChartConfig  `yaml:"chart"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // "debug" or "release"
}

// ChartConfig controls chart-of-accounts seeding.
type ChartConfig struct {
	SeedDefaults bool `yaml:"seed_defaults"`
}

// Load reads a saldo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new deployment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Mode: "debug",
		},
		Chart: ChartConfig{
			SeedDefaults: true,
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
}
