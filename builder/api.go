// SPDX-License-Identifier: MIT
// Package: cld/builder
//
// api.go - public entry-point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     graphs (nodes, edges, polarities and insertion order).
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cld/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	if cfg.needRand && cfg.rng == nil {
		return nil, fmt.Errorf("BuildGraph: polarity policy: %w", ErrNeedRandSource)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n nodes named by cfg.idFn in index order and returns
// their names.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	names := make([]string, n)
	for i := range names {
		names[i] = cfg.idFn(i)
		if _, err := g.AddNode(names[i], ""); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, names[i], err)
		}
	}

	return names, nil
}

// link adds the edge names[i] → names[j] with the polarity chosen by
// cfg.polarity.
func link(g *core.Graph, cfg builderConfig, method string, names []string, i, j int) error {
	opposite := cfg.polarity(i, j, cfg.rng)
	if err := g.AddEdge(names[i], names[j], opposite, ""); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, names[i], names[j], err)
	}

	return nil
}
