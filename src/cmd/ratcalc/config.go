package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the ratcalc configuration file. Flags given on the command line
// take precedence over it.
type Config struct {
	Scalar  string        `yaml:"scalar"`
	Format  string        `yaml:"format"`
	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Scalar: "int64",
		Format: "plain",
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Scalar {
	case "int64", "int128", "big":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScalar, c.Scalar)
	}
	switch c.Format {
	case "plain", "latex":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return nil
}
