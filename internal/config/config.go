// Package config loads CLI defaults from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/spectra/pkg/colour"
)

// Environment variables read by WithEnv.
const (
	EnvConfigPath = "SPECTRA_CONFIG"
	EnvFormat     = "SPECTRA_FORMAT"
	EnvPreview    = "SPECTRA_PREVIEW"
	EnvLogLevel   = "SPECTRA_LOG_LEVEL"

	fileName = "config.yaml"
)

// Formats lists the supported output formats.
var Formats = []string{"hex", "rgb", "hsl", "json", "yaml"}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

// Config holds CLI defaults.
type Config struct {
	Format        string        `yaml:"format,omitempty"`
	Preview       bool          `yaml:"preview,omitempty"`
	PreviewWidth  int           `yaml:"preview_width,omitempty"`
	GradientSteps int           `yaml:"gradient_steps,omitempty"`
	HarmonyScheme colour.Scheme `yaml:"harmony_scheme,omitempty"`
	LogLevel      string        `yaml:"log_level,omitempty"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Format:        "hex",
		Preview:       true,
		PreviewWidth:  8,
		GradientSteps: 5,
		HarmonyScheme: colour.Complementary,
		LogLevel:      "warn",
	}
}

// DefaultPath returns the config file location: $SPECTRA_CONFIG, else
// $XDG_CONFIG_HOME/spectra/config.yaml, else ~/.config/spectra/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spectra", fileName)
}

// LoadOptional reads the YAML file at path over the defaults. A missing file
// is not an error.
func LoadOptional(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// WithEnv applies SPECTRA_FORMAT, SPECTRA_PREVIEW and SPECTRA_LOG_LEVEL.
func (c Config) WithEnv() (Config, error) {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvPreview); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvPreview, err)
		}
		c.Preview = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.PreviewWidth < 1 || c.PreviewWidth > 80 {
		return fmt.Errorf("preview width must be between 1 and 80, got %d", c.PreviewWidth)
	}
	if c.GradientSteps < 2 {
		return fmt.Errorf("gradient steps must be at least 2, got %d", c.GradientSteps)
	}
	if !c.HarmonyScheme.Valid() {
		return fmt.Errorf("invalid harmony scheme %q", c.HarmonyScheme)
	}
	return nil
}

// Load resolves defaults, the file at path and the environment, then
// validates the result.
func Load(path string) (Config, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return cfg, err
	}
	if cfg, err = cfg.WithEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
