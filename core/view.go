// SPDX-License-Identifier: MIT
// File: view.go
// Role: Presentation views over a Graph.
//
// Determinism:
//   - Partitions appear in order of first-seen provenance id; nodes inside a
//     partition keep graph insertion order.

package core

// Partition is a group of nodes sharing the same primary provenance id.
// Subgraph is empty for the ungrouped bucket.
type Partition struct {
	Subgraph string
	Nodes    []*Node
}

// PartitionBySubgraph groups nodes by their first recorded provenance id.
//
// Nodes without any provenance land in a single trailing partition whose
// Subgraph is "". The view is meant for visual grouping only; algorithms
// should not depend on it.
//
// Complexity: O(V)
func (g *Graph) PartitionBySubgraph() []Partition {
	var (
		out       []Partition
		index     = make(map[string]int)
		ungrouped []*Node
	)
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := pair.Value
		if len(n.Subgraphs) == 0 {
			ungrouped = append(ungrouped, n)
			continue
		}
		key := n.Subgraphs[0]
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Partition{Subgraph: key})
		}
		out[i].Nodes = append(out[i].Nodes, n)
	}
	if len(ungrouped) > 0 {
		out = append(out, Partition{Nodes: ungrouped})
	}

	return out
}
