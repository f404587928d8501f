// Package system provides infrastructure for system-level configuration.
// This covers the config file (~/.rampcurve/config.yaml) that sets chart
// metadata, recipe parsing and build defaults.
package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.rampcurve/config.yaml).
type Config struct {
	Chart   ChartConfig   `yaml:"chart"`
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Recipes RecipesConfig `yaml:"recipes"`
}

// ChartConfig carries the labels handed to renderers alongside each report.
type ChartConfig struct {
	Title            string `yaml:"title" validate:"required"`
	TimeLabel        string `yaml:"time_label" validate:"required"`
	TemperatureLabel string `yaml:"temperature_label" validate:"required"`
}

// OutputConfig sets the default report format.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=table json yaml csv"`
}

// BuildConfig controls parallel compilation of recipe rows.
type BuildConfig struct {
	// MaxConcurrentRows caps compile workers; 0 means one per CPU.
	MaxConcurrentRows int  `yaml:"max_concurrent_rows" validate:"gte=0,lte=1024"`
	Parallel          bool `yaml:"parallel"`
}

// RecipesConfig controls how recipe files are read.
type RecipesConfig struct {
	// SkipHeader ignores the first record of a recipe CSV (column titles).
	SkipHeader bool `yaml:"skip_header"`
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct {
	validate *validator.Validate
}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{validate: validator.New()}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			Title:            "Temperature Profiles",
			TimeLabel:        "Time (hours)",
			TemperatureLabel: "Temperature (C)",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Build: BuildConfig{
			Parallel:          true,
			MaxConcurrentRows: 0,
		},
		Recipes: RecipesConfig{
			SkipHeader: true,
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Fields missing from the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if err := l.Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the config against its struct tags.
func (l *ConfigLoader) Validate(config *Config) error {
	err := l.validate.Struct(config)
	if err == nil {
		return nil
	}

	var valErr validator.ValidationErrors
	if errors.As(err, &valErr) {
		lists := make([]string, 0, len(valErr))
		for _, fieldErr := range valErr {
			lists = append(lists, fieldErr.Namespace()+" ("+fieldErr.Tag()+")")
		}
		return fmt.Errorf("invalid system config: validation failed on %s", strings.Join(lists, ", "))
	}
	return fmt.Errorf("invalid system config: %w", err)
}

// Marshal renders the config as YAML, as written by `rampcurve init`.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
