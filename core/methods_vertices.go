// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and FindIndexByName() follow insertion order.
//
// AI-Hints (file):
//   - AddNode is idempotent by name; it never replaces an existing node.
//   - Absence in FindByName/FindIndexByName is a normal result, not an error.
package core

import "strings"

// AddNode inserts a node if missing and returns the stored node.
//
// Implementation:
//   - Stage 1: Trim and validate the name (ErrEmptyNodeName).
//   - Stage 2: Return the existing node if the name is taken (merge, not replace).
//   - Stage 3: Otherwise register a new node; an empty label defaults to the name.
//
// Returns:
//   - *Node: the node registered under name.
//   - error: ErrEmptyNodeName if name is blank.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddNode(name, label string) (*Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyNodeName
	}

	// Stage 2: existing node wins; its label is left untouched.
	if n, ok := g.nodes.Get(name); ok {
		return n, nil
	}

	// Stage 3: allocate.
	label = strings.TrimSpace(label)
	if label == "" {
		label = name
	}
	n := &Node{Name: name, Label: label}
	g.nodes.Set(name, n)

	return n, nil
}

// FindByName returns the node with the exact given name.
// The boolean is false when no such node exists.
func (g *Graph) FindByName(name string) (*Node, bool) {
	return g.nodes.Get(name)
}

// FindIndexByName returns the insertion index of the named node, suitable as
// a dense integer vertex id. The boolean is false when no such node exists.
//
// Complexity: O(V).
func (g *Graph) FindIndexByName(name string) (int, bool) {
	i := 0
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == name {
			return i, true
		}
		i++
	}

	return -1, false
}

// Nodes returns the nodes in insertion order. The slice is fresh; the
// nodes are the live records.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.nodes.Len() }

// addSubgraphs appends ids not yet recorded, keeping first-seen order.
func (n *Node) addSubgraphs(ids ...string) {
	for _, id := range ids {
		if id == "" || n.InSubgraph(id) {
			continue
		}
		n.Subgraphs = append(n.Subgraphs, id)
	}
}

// InSubgraph reports whether id is among the node's provenance ids.
func (n *Node) InSubgraph(id string) bool {
	for _, s := range n.Subgraphs {
		if s == id {
			return true
		}
	}

	return false
}
