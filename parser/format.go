// SPDX-License-Identifier: MIT
// Package: cld/parser
//
// format.go — core.Graph → description text (the inverse of Parse).

package parser

import (
	"strings"

	"github.com/katalvlaran/cld/core"
)

// Format writes one line per edge in graph order: source reference, arrow
// ("o->" for opposite edges), target reference and an optional "// label".
// A node whose label differs from its name is written as "Label (Name)".
//
// Parse(Format(g)) reproduces every node that has at least one edge, every
// edge and every label, provided names and labels contain neither the
// arrow nor the comment marker. Isolated nodes cannot be expressed.
func Format(g *core.Graph) string {
	var b strings.Builder
	for _, ref := range g.Edges() {
		b.WriteString(reference(ref.From))
		if ref.Edge.Opposite {
			b.WriteString(" o" + Arrow + " ")
		} else {
			b.WriteString(" " + Arrow + " ")
		}
		b.WriteString(reference(ref.To))
		if ref.Edge.Label != "" {
			b.WriteString(" " + CommentMarker + " " + ref.Edge.Label)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func reference(n *core.Node) string {
	if n.Label == "" || n.Label == n.Name {
		return n.Name
	}

	return n.Label + " (" + n.Name + ")"
}
