// Package config loads the command-line configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/borderscan-go/pkg/borderscan"
	"gopkg.in/yaml.v2"
)

// Config represents the complete command-line configuration.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DetectionConfig contains table detection and reconstruction settings.
type DetectionConfig struct {
	StartRow  int    `yaml:"start_row" validate:"min=1"`
	MaxRow    int    `yaml:"max_row" validate:"gtefield=StartRow"`
	MaxCol    int    `yaml:"max_col" validate:"min=0,max=16384"`
	Strict    bool   `yaml:"strict"`
	SelfLabel string `yaml:"self_label" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	opts := borderscan.DefaultOptions()
	return &Config{
		Detection: DetectionConfig{
			StartRow:  opts.StartRow,
			MaxRow:    opts.MaxRow,
			SelfLabel: opts.SelfLabel,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options converts the detection settings into extraction options.
func (c *Config) Options() borderscan.Options {
	return borderscan.Options{
		StartRow:  c.Detection.StartRow,
		MaxRow:    c.Detection.MaxRow,
		MaxCol:    c.Detection.MaxCol,
		Strict:    c.Detection.Strict,
		SelfLabel: c.Detection.SelfLabel,
	}
}
