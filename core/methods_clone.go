// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies of nodes and graphs.
// Determinism:
//   - Clone preserves node insertion order, edge order and provenance order.
// AI-HINT (file):
//   - Clones never alias Edge pointers or Subgraphs slices with the source,
//     so a merged graph can be mutated without touching its inputs.

package core

// Clone returns a deep copy of the node: its edges and provenance set are
// fresh allocations.
//
// Complexity: O(deg(n) + |Subgraphs|)
func (n *Node) Clone() *Node {
	cp := &Node{
		Name:  n.Name,
		Label: n.Label,
	}
	if len(n.Edges) > 0 {
		cp.Edges = make([]*Edge, len(n.Edges))
		for i, e := range n.Edges {
			cp.Edges[i] = e.Clone()
		}
	}
	if len(n.Subgraphs) > 0 {
		cp.Subgraphs = append([]string(nil), n.Subgraphs...)
	}

	return cp
}

// Clone returns a deep copy of the Graph with the same id.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	// AI-HINT: Same id on purpose: the clone is the same provenance source.
	clone := New(WithID(g.id))
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		clone.nodes.Set(pair.Key, pair.Value.Clone())
	}

	return clone
}
