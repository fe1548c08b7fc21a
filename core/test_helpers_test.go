// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cld/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep node names and provenance ids as named constants (no magic strings in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cld/core"
)

// Common node names used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"

	NodePF = "PF"
	NodeAR = "AR"
	NodeSG = "SG"
	NodeSE = "SE"
	NodeSI = "SI"
)

// Common provenance ids used across core tests.
const (
	DocOne = "doc-1"
	DocTwo = "doc-2"
)

// link is one signed edge in a fixture.
type link struct {
	From, To string
	Opposite bool
}

// buildGraph RETURNS a graph with id and the given links, adding nodes on demand.
// Every node introduced is tagged with id as its provenance, mirroring what the
// parser does for a single description.
func buildGraph(t *testing.T, id string, links ...link) *core.Graph {
	t.Helper()

	g := core.New(core.WithID(id))
	for _, l := range links {
		mini := core.New(core.WithID(id))
		_, err := mini.AddNode(l.From, "")
		require.NoError(t, err)
		_, err = mini.AddNode(l.To, "")
		require.NoError(t, err)
		require.NoError(t, mini.AddEdge(l.From, l.To, l.Opposite, ""))
		g.Concat(mini)
	}

	return g
}

// names extracts node names in order.
func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// targets extracts edge target names of n in order.
func targets(n *core.Node) []string {
	out := make([]string, len(n.Edges))
	for i, e := range n.Edges {
		out[i] = e.Target
	}

	return out
}

// producerLoop is the four-node balancing loop PF → AR → SG → SE ⊸ PF.
func producerLoop(t *testing.T) *core.Graph {
	t.Helper()

	return buildGraph(t, DocOne,
		link{NodePF, NodeAR, false},
		link{NodeAR, NodeSG, false},
		link{NodeSG, NodeSE, false},
		link{NodeSE, NodePF, true},
	)
}

// shortcutLoop overlaps producerLoop through AR and PF.
func shortcutLoop(t *testing.T) *core.Graph {
	t.Helper()

	return buildGraph(t, DocTwo,
		link{NodeAR, NodeSI, false},
		link{NodeSI, NodePF, true},
	)
}
