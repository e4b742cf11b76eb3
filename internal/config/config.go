// Package config loads the optional camidx.yaml tool configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "camidx.yaml"

// DefaultHeader is the document operated on when neither the configuration
// nor the command line names one.
const DefaultHeader = "camera_index.h"

// Config represents the tool configuration parsed from camidx.yaml.
// All fields are optional; missing values take documented defaults.
type Config struct {
	// Header is the default path of the header document.
	Header string `yaml:"header"`
	// OutDir is where extracted assets are written. Empty means the
	// directory containing the header document.
	OutDir string `yaml:"out_dir"`
	// BytesPerLine is the array grouping used when rendering blocks.
	BytesPerLine int `yaml:"bytes_per_line"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads path and returns the parsed configuration with defaults
// applied. A missing file is not an error: the defaults are returned so the
// tool works without any configuration.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyDefaults(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
//
// Parameters:
//   - cfg: The Config object to modify.
func ApplyDefaults(cfg *Config) {
	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}
	if cfg.BytesPerLine == 0 {
		cfg.BytesPerLine = 12
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors.
//
// Parameters:
//   - cfg: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(cfg *Config) error {
	if cfg.BytesPerLine < 1 {
		return fmt.Errorf("invalid bytes_per_line: %d (must be at least 1)", cfg.BytesPerLine)
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
	}
	return nil
}
