// SPDX-License-Identifier: MIT
// Package: cld/builder
//
// topology.go — Ring, Chain, Complete and RandomSparse constructors.
//
// Contract (all constructors):
//   • Nodes are added via cfg.idFn in ascending index order (0..n-1).
//   • Edges are emitted in a documented, stable order; polarity comes from
//     cfg.polarity evaluated in that same order.
//   • Parameters are validated before g is touched.
//
// Determinism:
//   • Fixed options and seed ⇒ identical node order, edge order and polarity.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cld/core"
)

// Method tags and parameter domains.
const (
	methodRing         = "Ring"
	methodChain        = "Chain"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minRingNodes     = 1
	minChainNodes    = 2
	minCompleteNodes = 1
	minRandomNodes   = 1

	probMin = 0.0
	probMax = 1.0
)

// Ring returns a Constructor for the directed ring 0 → 1 → … → n-1 → 0.
// Ring(1) is a single self-loop. Edge order: i → (i+1)%n for i ascending.
//
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}
		names, err := addNodes(g, cfg, methodRing, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodRing, names, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Chain returns a Constructor for the acyclic path 0 → 1 → … → n-1.
//
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		names, err := addNodes(g, cfg, methodChain, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodChain, names, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for the complete digraph on n nodes: every
// ordered pair (i, j) with i ≠ j, emitted with i ascending then j ascending.
// It has Σ_{k=2..n} C(n,k)·(k-1)! elementary cycles, which makes it the
// worst case for loop enumeration.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		names, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = link(g, cfg, methodComplete, names, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that includes each ordered pair (i, j),
// i ≠ j, independently with probability p. Trials run with i ascending then
// j ascending; the polarity draw for an accepted edge follows its trial.
//
// Requires WithSeed or WithRand unless p ∈ {0, 1}.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		names, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = link(g, cfg, methodRandomSparse, names, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
