// SPDX-License-Identifier: MIT
// Package: cld/sim
//
// config.go — YAML simulation settings.
//
// Example file:
//
//	edge_alpha: 0.1
//	default_value: 1
//	steps: 20
//	bins: 5
//	initial_values:
//	  Population: 10
//	targets:
//	  Population: 8
//
// Omitted scalars fall back to the option defaults and steps to DefaultSteps;
// an explicit "steps: 0" keeps only the initial values. Every number must be
// finite (YAML ".nan" and ".inf" are rejected). Unknown keys are errors.

package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a config file that fails to decode or validate.
var ErrInvalidConfig = errors.New("sim: invalid config")

// DefaultSteps is the run length used when a config omits steps.
const DefaultSteps = 20

// validate is the shared validator instance; it caches struct metadata.
var validate = newValidator()

// newValidator registers the "finite" tag, which rejects NaN and ±Inf.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}

	return v
}

// Config is the file form of a simulation setup plus run parameters.
// Nil pointers mean "not set".
type Config struct {
	EdgeAlpha     *float64           `yaml:"edge_alpha" validate:"omitempty,finite,gte=0,lte=1"`
	DefaultValue  *float64           `yaml:"default_value" validate:"omitempty,finite"`
	InitialValues map[string]float64 `yaml:"initial_values" validate:"omitempty,dive,finite"`
	Targets       map[string]float64 `yaml:"targets" validate:"omitempty,dive,finite"`
	Steps         *int               `yaml:"steps" validate:"omitempty,gte=0,lte=100000"`
	Bins          int                `yaml:"bins" validate:"gte=0"`
}

// LoadConfig decodes and validates a YAML config from r. An empty document
// yields the zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sim: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks struct constraints: finite numbers, edge_alpha within
// [0,1], non-negative steps and bins, and a bin count no larger than the
// resulting history.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if n := c.StepCount(); c.Bins > n+1 {
		return fmt.Errorf("%w: bins %d exceed history length %d", ErrInvalidConfig, c.Bins, n+1)
	}

	return nil
}

// StepCount returns the configured number of steps, or DefaultSteps when
// the config leaves it unset.
func (c *Config) StepCount() int {
	if c.Steps == nil {
		return DefaultSteps
	}

	return *c.Steps
}

// Options converts the file settings into simulator options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.EdgeAlpha != nil {
		opts = append(opts, WithEdgeAlpha(*c.EdgeAlpha))
	}
	if c.DefaultValue != nil {
		opts = append(opts, WithDefaultValue(*c.DefaultValue))
	}
	if len(c.InitialValues) > 0 {
		opts = append(opts, WithInitialValues(c.InitialValues))
	}
	if len(c.Targets) > 0 {
		opts = append(opts, WithTargets(c.Targets))
	}

	return opts
}
