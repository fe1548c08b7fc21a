// Package loops defines the types produced by feedback-loop analysis:
// polarity labels, classified loops, and the sentinel errors of the package.
package loops

import (
	"errors"

	"github.com/katalvlaran/cld/core"
)

// ErrInconsistentCycle indicates that an enumerated cycle could not be
// walked back through the graph's edges. It signals an internal bug, not a
// property of the input.
var ErrInconsistentCycle = errors.New("loops: cycle edge missing from graph")

// Polarity is the feedback sign of a loop.
type Polarity int

const (
	Reinforcing Polarity = iota // Reinforcing: even number of inversions; amplifies a deviation.
	Balancing                   // Balancing: odd number of inversions; counteracts a deviation.
)

// String returns "reinforcing" or "balancing".
func (p Polarity) String() string {
	if p == Balancing {
		return "balancing"
	}

	return "reinforcing"
}

// Symbol returns the conventional one-letter tag, "R" or "B".
func (p Polarity) Symbol() string {
	if p == Balancing {
		return "B"
	}

	return "R"
}

// Loop is an elementary cycle together with the edges that close it.
//
// Edges[i] is the edge Nodes[i] → Nodes[(i+1) % len(Nodes)].
type Loop struct {
	// Name is the display tag assigned by Find, e.g. "R1" or "B2".
	Name string

	// Nodes is the ordered cycle, starting at its smallest node name.
	Nodes []*core.Node

	// Edges are the walked edges, parallel to Nodes.
	Edges []*core.Edge

	// Polarity is derived from Edges by Classify.
	Polarity Polarity
}

// Len returns the number of nodes (and edges) in the loop.
func (l Loop) Len() int { return len(l.Nodes) }

// EdgeKey identifies an edge by its endpoints' names.
type EdgeKey struct {
	From, To string
}
