// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion & enumeration.
//
// Determinism:
//   - Edges() walks nodes in insertion order, then each node's edges in insertion order.
//
// AI-Hints (file):
//   - At most one edge per (source, target) pair; the first writer wins.
package core

import "fmt"

// EdgeRef is an edge with both endpoints resolved, for renderers and
// algorithms that need node records rather than names.
type EdgeRef struct {
	From *Node
	To   *Node
	Edge *Edge
}

// AddEdge appends an edge from → to unless one to the same target exists.
//
// Implementation:
//   - Stage 1: Resolve both endpoints; a missing endpoint is ErrNodeNotFound.
//   - Stage 2: Skip silently if from already points at to (first writer wins).
//   - Stage 3: Append the new edge.
//
// Complexity: O(deg(from)).
func (g *Graph) AddEdge(from, to string, opposite bool, label string) error {
	src, ok := g.nodes.Get(from)
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): source %q: %w", from, to, from, ErrNodeNotFound)
	}
	if _, ok = g.nodes.Get(to); !ok {
		return fmt.Errorf("AddEdge(%q→%q): target %q: %w", from, to, to, ErrNodeNotFound)
	}
	if src.EdgeTo(to) != nil {
		return nil
	}
	src.Edges = append(src.Edges, &Edge{Target: to, Opposite: opposite, Label: label})

	return nil
}

// EdgeTo returns the outgoing edge of n that targets name, or nil.
func (n *Node) EdgeTo(name string) *Edge {
	for _, e := range n.Edges {
		if e.Target == name {
			return e
		}
	}

	return nil
}

// Edges returns every edge with resolved endpoints.
// Edges whose target cannot be resolved are omitted; in an assembled graph
// there are none.
// Complexity: O(V + E).
func (g *Graph) Edges() []EdgeRef {
	var out []EdgeRef
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		for _, e := range pair.Value.Edges {
			to, ok := g.nodes.Get(e.Target)
			if !ok {
				continue
			}
			out = append(out, EdgeRef{From: pair.Value, To: to, Edge: e})
		}
	}

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		total += len(pair.Value.Edges)
	}

	return total
}
