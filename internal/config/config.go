// Package config loads the settings of the filelister command from a YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/xyproto/env/v2"
	"github.com/xyproto/filelister"
	"github.com/xyproto/filelister/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked for in the working directory.
const DefaultPath = ".filelister.yaml"

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// Config holds the filelister settings.
type Config struct {
	// Backend is one of filelister.BackendNames
	Backend string `yaml:"backend"`

	// CaseSensitive overrides filelister.DefaultCasePolicy when set
	CaseSensitive *bool `yaml:"case_sensitive"`

	// Recursive descends into directories and filters by extension
	Recursive bool `yaml:"recursive"`

	// Unique removes duplicate paths from the output
	Unique bool `yaml:"unique"`

	// Simplify prints simplified paths
	Simplify bool `yaml:"simplify"`

	// Format is one of Formats
	Format string `yaml:"format"`

	// LogLevel is one of logger.Levels
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Backend:   "default",
		Recursive: true,
		Format:    "text",
		LogLevel:  "info",
	}
}

// LoadConfig reads the configuration file at path on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings with FILELISTER_* environment variables.
func (c *Config) ApplyEnv() {
	c.Backend = env.Str("FILELISTER_BACKEND", c.Backend)
	c.Format = env.Str("FILELISTER_FORMAT", c.Format)
	c.LogLevel = env.Str("FILELISTER_LOG_LEVEL", c.LogLevel)
	if env.Has("FILELISTER_CASE_SENSITIVE") {
		sensitive := env.Bool("FILELISTER_CASE_SENSITIVE")
		c.CaseSensitive = &sensitive
	}
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	if _, err := filelister.BackendByName(c.Backend); err != nil {
		return err
	}
	if !slices.Contains(Formats, strings.ToLower(c.Format)) {
		return fmt.Errorf("unknown format %q (valid: %s)", c.Format, strings.Join(Formats, ", "))
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q (valid: %s)", c.LogLevel, strings.Join(logger.Levels, ", "))
	}
	return nil
}

// CasePolicy returns the file name comparison rule to use.
func (c *Config) CasePolicy() filelister.CasePolicy {
	if c.CaseSensitive == nil {
		return filelister.DefaultCasePolicy
	}
	if *c.CaseSensitive {
		return filelister.CaseSensitive
	}
	return filelister.CaseInsensitive
}

// SetCasePolicy stores policy as an explicit setting.
func (c *Config) SetCasePolicy(policy filelister.CasePolicy) {
	sensitive := policy == filelister.CaseSensitive
	c.CaseSensitive = &sensitive
}
