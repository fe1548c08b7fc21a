package loops

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cld/core"
)

// Classify derives a loop's polarity from its edges: an odd number of
// opposite edges is Balancing, an even number (including zero) is
// Reinforcing.
func Classify(edges []*core.Edge) Polarity {
	inversions := 0
	for _, e := range edges {
		if e.Opposite {
			inversions++
		}
	}
	if inversions%2 == 1 {
		return Balancing
	}

	return Reinforcing
}

// Find enumerates every elementary cycle of g, re-derives the edge that
// closes each step, and classifies the result.
//
// Loops come back in the canonical order of Cycles and are named per
// polarity in that order: R1, R2, … and B1, B2, ….
// A cycle step with no matching edge is reported as ErrInconsistentCycle.
func Find(g *core.Graph) ([]Loop, error) {
	cycles := Cycles(g)
	out := make([]Loop, 0, len(cycles))
	counters := map[Polarity]int{}

	for _, cycle := range cycles {
		edges, err := walk(cycle)
		if err != nil {
			return nil, fmt.Errorf("loops: Find: %w", err)
		}
		p := Classify(edges)
		counters[p]++
		out = append(out, Loop{
			Name:     p.Symbol() + strconv.Itoa(counters[p]),
			Nodes:    cycle,
			Edges:    edges,
			Polarity: p,
		})
	}

	return out, nil
}

// walk resolves the edge ni → n(i+1 mod k) for every step of cycle.
func walk(cycle []*core.Node) ([]*core.Edge, error) {
	edges := make([]*core.Edge, len(cycle))
	for i, n := range cycle {
		next := cycle[(i+1)%len(cycle)]
		e := n.EdgeTo(next.Name)
		if e == nil {
			return nil, fmt.Errorf("%q→%q: %w", n.Name, next.Name, ErrInconsistentCycle)
		}
		edges[i] = e
	}

	return edges, nil
}

// SharedEdges counts, for every edge that lies on at least one loop, how
// many loops pass through it. Renderers use counts above one to annotate
// edges shared by several loops.
func SharedEdges(loops []Loop) map[EdgeKey]int {
	out := make(map[EdgeKey]int)
	for _, l := range loops {
		for i, n := range l.Nodes {
			out[EdgeKey{From: n.Name, To: l.Edges[i].Target}]++
		}
	}

	return out
}

// Signature returns the loop's node names joined with commas.
func (l Loop) Signature() string {
	return JoinSig(nodeNames(l.Nodes))
}
