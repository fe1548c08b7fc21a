// Package core provides the in-memory graph of a causal-loop diagram:
// named factors (Node) connected by signed influences (Edge).
//
// The Graph G = (V,E) is an adjacency list with these rules:
//
//   - Node names are unique, case-sensitive and trimmed.
//   - Nodes keep insertion order (parse/merge order); that order defines the
//     dense index returned by FindIndexByName and drives cycle discovery.
//   - Each node owns its outgoing edges, at most one per target name.
//   - Every Graph carries an id, generated once at construction, which is
//     used as a provenance tag on the nodes it introduces into other graphs.
//
// Why use core.Graph?
//
//   - Name-keyed merge: Concat folds partial descriptions of the same
//     factors together without ever duplicating a node or an edge.
//   - Provenance: every node remembers which graphs mentioned it, so a
//     renderer can group nodes by their source description.
//   - No aliasing: merges and clones deep-copy edges and provenance sets.
//
// Configuration Options (GraphOption):
//
//	– WithID(id string)
//	    Pins the provenance id instead of generating a UUID.
//
// Core Methods:
//
//	// Construction
//	New(opts ...GraphOption) *Graph                   // O(1)
//	AddNode(name, label string) (*Node, error)        // O(1), idempotent
//	AddEdge(from, to string, opposite bool, label string) error // O(deg)
//
//	// Query
//	FindByName(name string) (*Node, bool)             // O(1)
//	FindIndexByName(name string) (int, bool)          // O(V)
//	Nodes() []*Node                                   // O(V), insertion order
//	Edges() []EdgeRef                                 // O(V+E)
//	InboundNeighbors(name string) ([]Inbound, error)  // O(V+E)
//	Len() int, EdgeCount() int
//
//	// Merge & views
//	Concat(other *Graph)                              // name-keyed union
//	Clone() *Graph                                    // deep copy, same id
//	PartitionBySubgraph() []Partition                 // group by first provenance id
//
// Errors:
//
//	ErrEmptyNodeName – blank node name
//	ErrNodeNotFound  – missing node (AddEdge endpoints, InboundNeighbors)
//
// A Graph is single-owner: none of its methods lock.
package core
