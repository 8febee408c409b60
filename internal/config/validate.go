package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
)

// Outputs lists the renderer names the commands understand.
var Outputs = []string{"text", "json", "html"}

var logFormats = []string{"json", "console"}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("log_level", c.LogLevel, validLevel),
		criterio.Run("log_format", c.LogFormat, oneOf(logFormats)),
		criterio.Run("output", c.Output, oneOf(Outputs)),
		validRetries(c.Retries),
		c.Theme.validate(),
	)
}

func (t ThemeConfig) validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(t.Name) == "" {
		if t.Variant != "" || len(t.Tokens) > 0 || len(t.Assets) > 0 {
			errs = errs.Append("theme.name", errors.New("required when other theme settings are present"))
		}
	}
	for key := range t.Tokens {
		if strings.TrimSpace(strings.TrimPrefix(key, "--")) == "" {
			errs = errs.Append("theme.tokens", fmt.Errorf("invalid token name %q", key))
		}
	}
	for _, key := range t.AssetKeys() {
		if strings.TrimSpace(t.Assets[key]) == "" {
			errs = errs.Append(fmt.Sprintf("theme.assets[%q]", key), errors.New("cannot be empty"))
		}
	}

	return errs.ToError()
}

func validLevel(level string) error {
	if _, err := zerolog.ParseLevel(strings.ToLower(level)); err != nil {
		return fmt.Errorf("unknown level %q", level)
	}
	return nil
}

func oneOf(allowed []string) func(string) error {
	return func(value string) error {
		if !slices.Contains(allowed, value) {
			return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
		}
		return nil
	}
}

func validRetries(n int) error {
	if n < 0 {
		return criterio.NewFieldErrors("retries", errors.New("must be zero or more"))
	}
	return nil
}
