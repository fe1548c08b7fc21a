// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Inbound adjacency queries.
//
// Determinism:
//   - Results follow source-node insertion order, then edge insertion order.
package core

import "fmt"

// Inbound pairs a source node with its edge into the queried node.
type Inbound struct {
	Source *Node
	Edge   *Edge
}

// InboundNeighbors returns every (source, edge) pair whose edge targets name.
//
// A node with no inbound edges yields an empty slice and a nil error; a name
// that is not in the graph yields ErrNodeNotFound, so callers can tell the
// two apart.
//
// Complexity: O(V + E).
func (g *Graph) InboundNeighbors(name string) ([]Inbound, error) {
	if _, ok := g.nodes.Get(name); !ok {
		return nil, fmt.Errorf("InboundNeighbors(%q): %w", name, ErrNodeNotFound)
	}

	out := []Inbound{}
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		for _, e := range pair.Value.Edges {
			if e.Target == name {
				out = append(out, Inbound{Source: pair.Value, Edge: e})
			}
		}
	}

	return out, nil
}
