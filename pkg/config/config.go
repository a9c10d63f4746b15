// Package config provides configuration file support for erplog.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/erptools/erplog/pkg/fsutil"
)

// FileName is the per-directory configuration file.
const FileName = ".erplog.yaml"

// Config represents the erplog configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	ASCII   ASCIIConfig   `yaml:"ascii"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ASCIIConfig configures the ASCII reader and writer.
type ASCIIConfig struct {
	// ColumnWidth is the left-justified field width used when writing
	// data lines.
	ColumnWidth int `yaml:"column_width"`
	// InputEncoding is "utf8" or "latin1"; legacy hand-edited logs often
	// carry Latin-1 header text.
	InputEncoding string `yaml:"input_encoding"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		ASCII:   ASCIIConfig{ColumnWidth: 10, InputEncoding: "utf8"},
	}
}

// Validate checks field values a typo in the YAML could corrupt.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.ASCII.ColumnWidth < 1 {
		return fmt.Errorf("ascii.column_width must be positive, got %d", c.ASCII.ColumnWidth)
	}
	switch c.ASCII.InputEncoding {
	case "", "utf8", "latin1":
	default:
		return fmt.Errorf("ascii.input_encoding must be utf8 or latin1, got %q", c.ASCII.InputEncoding)
	}
	return nil
}

// Load loads configuration from dir/.erplog.yaml. Returns the default
// config if the file doesn't exist.
func Load(dir string) (*Config, error) {
	cfg := Default()
	cfgPath := filepath.Join(dir, FileName)

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to dir/.erplog.yaml.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := fsutil.AtomicWrite(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
