// SPDX-License-Identifier: MIT
// Package: cld/builder
//
// polarity.go — edge polarity policies.
//
// A PolarityFn receives the source and target node indices and the resolved
// RNG (possibly nil) and reports whether the edge is opposite. Policies must
// draw from rng in call order only, so a fixed seed fixes the outcome.

package builder

import (
	"fmt"
	"math/rand"
	"slices"
)

// PolarityFn decides whether the edge from → to is opposite.
type PolarityFn func(from, to int, rng *rand.Rand) bool

// Positive makes every edge same-direction.
func Positive(int, int, *rand.Rand) bool { return false }

// Opposite makes every edge opposite.
func Opposite(int, int, *rand.Rand) bool { return true }

// OppositeInto makes edges opposite exactly when their target index is one
// of targets.
func OppositeInto(targets ...int) PolarityFn {
	set := slices.Clone(targets)
	return func(_, to int, _ *rand.Rand) bool {
		return slices.Contains(set, to)
	}
}

// OppositeProb makes each edge opposite with probability p. The endpoints
// p = 0 and p = 1 never draw from rng. Panics if p is outside [0,1].
func OppositeProb(p float64) PolarityFn {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: OppositeProb(%g) outside [0,1]", p))
	}
	return func(_, _ int, rng *rand.Rand) bool {
		switch {
		case p == probMin:
			return false
		case p == probMax:
			return true
		case rng == nil:
			return false
		}
		return rng.Float64() < p
	}
}
