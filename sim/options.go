// SPDX-License-Identifier: MIT
// Package: cld/sim
//
// options.go — functional options and their resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*simConfig)).
//   • Option constructors PANIC on meaningless inputs (nil logger, NaN/Inf
//     coefficient). New itself never panics; it returns errors.
//   • Maps passed to options are copied; later caller mutation has no effect.
//
// Deterministic defaults:
//   • edgeAlpha    = 0.1
//   • defaultValue = 1.0
//   • initial      = {} (every node starts at defaultValue)
//   • targets      = {} (every source is measured against 0)
//   • logger       = zap.NewNop()

package sim

import (
	"maps"
	"math"

	"go.uber.org/zap"
)

// Named defaults.
const (
	DefaultEdgeAlpha    = 0.1 // influence coefficient applied to every edge
	DefaultInitialValue = 1.0 // starting value of nodes without an explicit one
)

// simConfig aggregates every knob of a Simulation.
type simConfig struct {
	edgeAlpha    float64
	defaultValue float64
	initial      map[string]float64
	targets      map[string]float64
	logger       *zap.Logger
}

// Option customizes a Simulation before construction.
type Option func(*simConfig)

// newSimConfig applies opts in order over the defaults (later wins).
func newSimConfig(opts ...Option) simConfig {
	cfg := simConfig{
		edgeAlpha:    DefaultEdgeAlpha,
		defaultValue: DefaultInitialValue,
		initial:      map[string]float64{},
		targets:      map[string]float64{},
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEdgeAlpha sets the influence coefficient used on every edge.
// Panics on NaN or ±Inf.
func WithEdgeAlpha(alpha float64) Option {
	mustFinite("WithEdgeAlpha", alpha)
	return func(c *simConfig) { c.edgeAlpha = alpha }
}

// WithDefaultValue sets the starting value of nodes that have no explicit
// initial value. Panics on NaN or ±Inf.
func WithDefaultValue(v float64) Option {
	mustFinite("WithDefaultValue", v)
	return func(c *simConfig) { c.defaultValue = v }
}

// WithInitialValues sets starting values per node name. Repeated use merges,
// later entries win. Every name must exist in the graph.
func WithInitialValues(values map[string]float64) Option {
	for _, v := range values {
		mustFinite("WithInitialValues", v)
	}
	values = maps.Clone(values)
	return func(c *simConfig) { maps.Copy(c.initial, values) }
}

// WithTargets sets the mean each node is measured against when it acts as
// an influence source. Repeated use merges. Every name must exist in the graph.
func WithTargets(targets map[string]float64) Option {
	for _, v := range targets {
		mustFinite("WithTargets", v)
	}
	targets = maps.Clone(targets)
	return func(c *simConfig) { maps.Copy(c.targets, targets) }
}

// WithLogger routes construction and step records to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}
	return func(c *simConfig) { c.logger = l }
}

func mustFinite(option string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("sim: " + option + ": value must be finite")
	}
}
