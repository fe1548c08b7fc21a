// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Node, and Edge types of a
// causal-loop diagram and the merge rules that combine partial graphs.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the New constructor.
//
// Errors:
//
//	ErrEmptyNodeName - node name is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
package core

import (
	"errors"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is empty after trimming.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is an outgoing, signed influence from its owning Node to Target.
//
// Opposite marks an inverting (negative) influence; false means the target
// moves in the same direction as the source.
type Edge struct {
	// Target is the name of the destination node.
	Target string

	// Opposite is true for a negative influence.
	Opposite bool

	// Label is free annotation text; it carries no semantics.
	Label string
}

// Clone returns an independent copy of e.
func (e *Edge) Clone() *Edge {
	cp := *e
	return &cp
}

// Node is a named factor of the diagram.
//
// Name is the identity within a Graph. Edges keeps outgoing edges in
// insertion order (parse/merge order). Subgraphs is an insertion-ordered
// set of provenance ids; its first entry is the node's primary group.
type Node struct {
	// Name is the unique, case-sensitive identifier of the node.
	Name string

	// Label is display text; it defaults to Name.
	Label string

	// Edges are the outgoing edges, at most one per target name.
	Edges []*Edge

	// Subgraphs lists the provenance ids of every graph that mentioned this node.
	Subgraphs []string
}

// Graph is an adjacency list of Nodes keyed by name.
//
// Nodes are kept in insertion order; that order drives dense indices,
// cycle discovery and partition order. A Graph is not safe for
// concurrent mutation; each value is owned by its constructing caller.
type Graph struct {
	// id tags nodes introduced by this graph during Concat.
	id string

	// nodes maps node name → *Node, preserving insertion order.
	nodes *orderedmap.OrderedMap[string, *Node]
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithID pins the provenance id of the Graph instead of generating one.
// An empty id is ignored.
func WithID(id string) GraphOption {
	return func(g *Graph) {
		if id != "" {
			g.id = id
		}
	}
}

// New creates an empty Graph. Unless WithID is given, the id is a fresh
// random UUID generated once here.
// Complexity: O(1)
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		id:    uuid.NewString(),
		nodes: orderedmap.New[string, *Node](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ID returns the provenance id of the Graph.
func (g *Graph) ID() string { return g.id }
