// SPDX-License-Identifier: MIT
// Package: cld/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn  ("0","1","2",...)
//   • rng      = nil          (pure unless seeded)
//   • polarity = Positive     (every edge same-direction)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Node naming strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Edge polarity policy.
	polarity PolarityFn
	// needRand is set by policies that draw from rng.
	needRand bool
}

// newBuilderConfig applies options over the defaults, later overriding earlier.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		polarity: Positive,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
