// SPDX-License-Identifier: MIT

// Package config loads the nelab command configuration from defaults, an
// optional YAML file and NELAB_* environment variables, in increasing order
// of precedence, and validates the result.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/nelab/matrix"
)

// EnvPrefix is prepended to every environment key: log.level → NELAB_LOG_LEVEL.
const EnvPrefix = "NELAB"

// Config holds all command configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
	Numeric NumericConfig `mapstructure:"numeric" validate:"required"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// OutputConfig controls how results are written to stdout.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json yaml"`
	// Precision is the number of decimals for printed values; -1 keeps the shortest exact form.
	Precision int `mapstructure:"precision" validate:"gte=-1,lte=17"`
}

// NumericConfig is forwarded to the matrix kernels.
type NumericConfig struct {
	Epsilon      float64 `mapstructure:"epsilon" validate:"gte=0"`
	StrictFinite bool    `mapstructure:"strict_finite"`
}

// defaults is the single source of default values.
var defaults = map[string]any{
	"log.level":             "info",
	"output.format":         "text",
	"output.precision":      -1,
	"numeric.epsilon":       matrix.DefaultEpsilon,
	"numeric.strict_finite": matrix.DefaultValidateNaNInf,
}

// Load builds the configuration. An empty path skips the file layer; a
// non-empty path must point to a readable YAML file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key := range defaults {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags; it is called by Load and again by callers that
// override fields from command-line flags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// MatrixOptions converts the numeric section into kernel options.
func (c *Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithEpsilon(c.Numeric.Epsilon)}
	if c.Numeric.StrictFinite {
		opts = append(opts, matrix.WithValidateNaNInf())
	}

	return opts
}
