// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Graph union (Concat).
//
// Determinism:
//   - Source nodes are processed in the other graph's insertion order; new
//     nodes are appended to self in that order.
//
// AI-Hints (file):
//   - Concat deduplicates by name: nodes by node name, edges by target name.
//   - Provenance only grows; nothing is ever removed from self.

package core

// Concat merges other into g.
//
// Implementation:
//   - Stage 1: Snapshot other's nodes so that g.Concat(g) is well defined.
//   - Stage 2: For each source node s:
//     absent in g → store a deep clone of s;
//     present as t → append clones of the edges of s whose target t lacks.
//     Either way the stored node gains s.Subgraphs and other.ID() as provenance.
//   - Stage 3: Resolve every appended edge's target in g; a missing target is
//     created with no edges and tagged with other.ID(). Its own edges, if
//     any, arrive when its own entry in other is processed.
//
// Behavior highlights:
//   - Idempotent: merging a graph (or an identical copy) twice never
//     duplicates nodes or edges.
//   - First writer wins: attributes of an edge already present in g
//     (polarity, label) are left untouched.
//   - A node keeps the provenance of every graph that ever mentioned it.
//
// Complexity:
//   - Time O(V' + E'·deg) where V', E' are other's sizes and deg bounds the
//     out-degree of merged nodes.
func (g *Graph) Concat(other *Graph) {
	if other == nil {
		return
	}
	src := other.Nodes()
	oid := other.ID()

	for _, s := range src {
		t, exists := g.nodes.Get(s.Name)
		if !exists {
			// Stage 2a: brand-new node, deep copy so no state is shared.
			t = s.Clone()
			t.addSubgraphs(oid)
			g.nodes.Set(t.Name, t)
			for _, e := range t.Edges {
				g.ensureTarget(e.Target, oid)
			}
			continue
		}

		// Stage 2b: existing node, extend provenance and add missing edges.
		t.addSubgraphs(s.Subgraphs...)
		t.addSubgraphs(oid)
		for _, e := range s.Edges {
			if t.EdgeTo(e.Target) != nil {
				continue
			}
			g.ensureTarget(e.Target, oid)
			t.Edges = append(t.Edges, e.Clone())
		}
	}
}

// ensureTarget creates an edge-less node for name when g lacks one.
func (g *Graph) ensureTarget(name, provenance string) {
	if _, ok := g.nodes.Get(name); ok {
		return
	}
	n := &Node{Name: name, Label: name}
	n.addSubgraphs(provenance)
	g.nodes.Set(name, n)
}
