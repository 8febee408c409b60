// Package config handles configuration loading and validation for regform.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Catalog is a catalog file to load instead of the embedded default.
	Catalog   string      `yaml:"catalog"`
	LogLevel  string      `yaml:"log_level"`
	LogFile   string      `yaml:"log_file"`
	LogFormat string      `yaml:"log_format"`
	Output    string      `yaml:"output"` // renderer used by check and render
	Retries   int         `yaml:"retries"`
	Color     bool        `yaml:"color"`
	Theme     ThemeConfig `yaml:"theme"`
}

// ThemeConfig selects a go-theme configuration for markup output.
type ThemeConfig struct {
	Name        string            `yaml:"name"`
	Variant     string            `yaml:"variant"`
	Tokens      map[string]string `yaml:"tokens"`
	AssetPrefix string            `yaml:"asset_prefix"`
	Assets      map[string]string `yaml:"assets"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "json",
		Output:    "text",
		Retries:   3,
		Color:     true,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}
	if c.Output == "" {
		c.Output = defaults.Output
	}
}

// RendererConfig resolves the theme section into the configuration handed to
// renderers. It returns nil when no theme is named. Tokens become CSS
// variables prefixed with "--".
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if strings.TrimSpace(t.Name) == "" {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
	}
	if len(t.Tokens) > 0 {
		cfg.Tokens = make(map[string]string, len(t.Tokens))
		cfg.CSSVars = make(map[string]string, len(t.Tokens))
		for key, value := range t.Tokens {
			cfg.Tokens[key] = value
			cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
		}
	}

	prefix := strings.TrimRight(t.AssetPrefix, "/")
	assets := make(map[string]string, len(t.Assets))
	for key, value := range t.Assets {
		assets[key] = value
	}
	cfg.AssetURL = func(key string) string {
		file, ok := assets[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return prefix + "/" + file
	}
	return cfg
}

// AssetKeys lists the configured asset keys in sorted order.
func (t ThemeConfig) AssetKeys() []string {
	keys := make([]string, 0, len(t.Assets))
	for key := range t.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
