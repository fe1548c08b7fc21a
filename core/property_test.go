// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/cld/core"
)

// randomGraph builds a graph over n0..n(k-1) from a flat list of (from,to,sign) triples.
func randomGraph(id string, size int, raw []int) *core.Graph {
	g := core.New(core.WithID(id))
	for i := 0; i < size; i++ {
		_, _ = g.AddNode(fmt.Sprintf("n%d", i), "")
	}
	for i := 0; i+2 < len(raw); i += 3 {
		from := fmt.Sprintf("n%d", raw[i]%size)
		to := fmt.Sprintf("n%d", raw[i+1]%size)
		_ = g.AddEdge(from, to, raw[i+2]%2 == 1, "")
	}

	return g
}

// TestConcat_Properties checks merge invariants over random graphs.
func TestConcat_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: merging a graph with itself or a copy changes nothing.
	properties.Property("self concat preserves counts", prop.ForAll(
		func(size int, raw []int) bool {
			g := randomGraph("g", size, raw)
			nodes, edges := g.Len(), g.EdgeCount()
			g.Concat(g)
			g.Concat(g.Clone())

			return g.Len() == nodes && g.EdgeCount() == edges
		},
		gen.IntRange(1, 8),
		gen.SliceOf(gen.IntRange(0, 64)),
	))

	// Property 2: union never duplicates and every node keeps provenance.
	properties.Property("concat yields unique edges and tagged nodes", prop.ForAll(
		func(size int, left, right []int) bool {
			g := core.New(core.WithID("doc"))
			g.Concat(randomGraph("left", size, left))
			g.Concat(randomGraph("right", size, right))
			g.Concat(randomGraph("right", size, right))

			for _, n := range g.Nodes() {
				if len(n.Subgraphs) == 0 {
					return false
				}
				seen := make(map[string]bool, len(n.Edges))
				for _, e := range n.Edges {
					if seen[e.Target] {
						return false
					}
					seen[e.Target] = true
					if _, ok := g.FindByName(e.Target); !ok {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(1, 8),
		gen.SliceOf(gen.IntRange(0, 64)),
		gen.SliceOf(gen.IntRange(0, 64)),
	))

	properties.TestingRun(t)
}
