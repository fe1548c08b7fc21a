// Package loops implements elementary-cycle enumeration on a core.Graph.
//
// Cycles finds every elementary cycle, not just strongly connected
// components: one component can hold many cycles and loop classification
// needs each of them. The search follows Johnson's circuit-finding scheme
// with blocked vertices and block lists over a dense integer adjacency.
//
// Complexity:
//
//   - Time:   O((V + E)·(C + 1)) (C = number of elementary cycles)
//   - Memory: O(V + E) plus the recorded cycles
package loops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/cld/core"
)

// search holds the state of one enumeration. Keeping it in a struct rather
// than package variables makes Cycles re-entrant.
type search struct {
	adj      [][]int            // dense adjacency: vertex → successor indices
	root     int                // current root s; vertices < root are ignored
	blocked  []bool             // blocked[v]: v cannot start a new path to root yet
	blockMap []map[int]struct{} // blockMap[w]: vertices to unblock when w unblocks
	stack    []int              // current path
	seen     map[string]struct{}
	found    [][]int
}

// Cycles returns every elementary cycle of g as node sequences.
//
// Each cycle [n0..nk-1] has an edge ni → n(i+1 mod k); a self-loop yields a
// cycle of length 1. The result is rotated and sorted canonically (see
// sortCycles) so output does not depend on traversal details. An acyclic or
// nil graph yields an empty result.
func Cycles(g *core.Graph) [][]*core.Node {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return nil
	}

	// 2) Translate names to dense indices (insertion order)
	nodes := g.Nodes()
	s := newSearch(g, nodes)

	// 3) Root a search at each vertex in increasing order
	for root := range nodes {
		s.reset(root)
		s.circuit(root)
	}

	// 4) Map index cycles back to nodes
	out := make([][]*core.Node, 0, len(s.found))
	for _, idx := range s.found {
		cycle := make([]*core.Node, len(idx))
		for i, v := range idx {
			cycle[i] = nodes[v]
		}
		out = append(out, rotateToMin(cycle))
	}
	sortCycles(out)

	return out
}

// newSearch builds the dense adjacency for nodes, skipping edges whose
// target is unknown to g.
func newSearch(g *core.Graph, nodes []*core.Node) *search {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.Name] = i
	}
	adj := make([][]int, len(nodes))
	for i, n := range nodes {
		for _, e := range n.Edges {
			if j, ok := index[e.Target]; ok {
				adj[i] = append(adj[i], j)
			}
		}
	}

	s := &search{
		adj:      adj,
		blocked:  make([]bool, len(nodes)),
		blockMap: make([]map[int]struct{}, len(nodes)),
		seen:     make(map[string]struct{}),
	}
	for i := range s.blockMap {
		s.blockMap[i] = make(map[int]struct{})
	}

	return s
}

// reset clears blocking state for every vertex still under consideration
// and makes root the new origin.
func (s *search) reset(root int) {
	s.root = root
	s.stack = s.stack[:0]
	for v := root; v < len(s.adj); v++ {
		s.blocked[v] = false
		clear(s.blockMap[v])
	}
}

// circuit extends the current path with v and reports whether any cycle
// back to the root was found below it.
func (s *search) circuit(v int) bool {
	found := false
	s.stack = append(s.stack, v)
	s.blocked[v] = true

	for _, w := range s.adj[v] {
		// Vertices below the root were handled by earlier roots.
		if w < s.root {
			continue
		}
		if w == s.root {
			s.record()
			found = true
		} else if !s.blocked[w] && s.circuit(w) {
			found = true
		}
	}

	if found {
		s.unblock(v)
	} else {
		for _, w := range s.adj[v] {
			if w < s.root {
				continue
			}
			s.blockMap[w][v] = struct{}{}
		}
	}
	s.stack = s.stack[:len(s.stack)-1]

	return found
}

// unblock releases u and, transitively, every vertex waiting on it.
func (s *search) unblock(u int) {
	s.blocked[u] = false
	for w := range s.blockMap[u] {
		delete(s.blockMap[u], w)
		if s.blocked[w] {
			s.unblock(w)
		}
	}
}

// record stores a copy of the current path unless the same vertex
// sequence was recorded already.
func (s *search) record() {
	parts := make([]string, len(s.stack))
	for i, v := range s.stack {
		parts[i] = strconv.Itoa(v)
	}
	key := strings.Join(parts, ",")
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.found = append(s.found, append([]int(nil), s.stack...))
}

// sortCycles orders cycles by smallest contained name, then length, then
// full signature. Cycles must already be rotated to start at their minimum.
func sortCycles(cycles [][]*core.Node) {
	sort.SliceStable(cycles, func(i, j int) bool {
		a, b := cycles[i], cycles[j]
		if a[0].Name != b[0].Name {
			return a[0].Name < b[0].Name
		}
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return Compare(nodeNames(a), nodeNames(b)) < 0
	})
}
