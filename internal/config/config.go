package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/stlkit/pkg/stl"
	"gopkg.in/yaml.v3"
)

// Config represents the stlkit configuration
type Config struct {
	Logging Logging `yaml:"logging"`
	Output  Output  `yaml:"output"`
	Convert Convert `yaml:"convert"`
	Watch   Watch   `yaml:"watch"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Output controls how documents are written
type Output struct {
	Format       string `yaml:"format"`
	BinaryHeader string `yaml:"binary_header"`
}

// Convert contains settings for batch conversion
type Convert struct {
	Concurrency int `yaml:"concurrency"`
}

// Watch contains settings for the file watcher
type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Output: Output{
			Format:       stl.FormatBinary.String(),
			BinaryHeader: stl.DefaultBinaryHeader,
		},
		Convert: Convert{
			Concurrency: 4,
		},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads the configuration at path. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		path = absPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Save writes the configuration to path.
func Save(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if len(c.Output.BinaryHeader) >= 5 && strings.EqualFold(c.Output.BinaryHeader[:5], "solid") {
		return stl.ErrAmbiguousHeader
	}

	if c.Convert.Concurrency < 1 {
		return fmt.Errorf("convert concurrency must be at least 1, got %d", c.Convert.Concurrency)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}

// OutputFormat returns the configured output format.
func (c *Config) OutputFormat() (stl.Format, error) {
	return stl.ParseFormat(c.Output.Format)
}
