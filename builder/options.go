// SPDX-License-Identifier: MIT
// Package: cld/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs. Constructors
//     themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor run by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPolarity sets the edge polarity policy. Panics on nil.
func WithPolarity(fn PolarityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPolarity(nil)")
	}
	return func(c *builderConfig) {
		c.polarity = fn
		c.needRand = false
	}
}

// WithOppositeProb marks each edge opposite independently with probability
// p. Panics if p is outside [0,1]. Requires WithSeed or WithRand when
// 0 < p < 1.
func WithOppositeProb(p float64) BuilderOption {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithOppositeProb(%g) outside [0,1]", p))
	}
	return func(c *builderConfig) {
		c.polarity = OppositeProb(p)
		c.needRand = p > probMin && p < probMax
	}
}
