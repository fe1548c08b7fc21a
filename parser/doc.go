// Package parser reads the causal-loop description language into a
// core.Graph and writes graphs back out in the same language.
//
// Grammar (one relationship per line, UTF-8):
//
//	<left> -> <right>              positive influence
//	<left> o-> <right>             opposite (negative) influence
//	<left> --> <right>             longer arrow glyph, same as "->"
//	<left> -> <right> // text      "text" becomes the edge label
//	// comment                     ignored, as are blank lines
//
// The "o" of "o->" must be separated from the left reference by a space or
// tab. Without the gap it belongs to the name: "Zoo-> X" and "Ao-> X" are
// positive edges from "Zoo" and "Ao".
//
// A reference is either a bare name ("Profit") or "Label (Name)", e.g.
// "Sales effort (SE)"; the name is the node identity.
//
// Every significant line must contain exactly one "->". A violation fails
// the whole parse with a *LineError wrapping ErrMalformedLine; no partial
// graph is returned.
//
// All nodes of one parsed description share a single provenance id (the
// returned graph's ID), so merging several parsed descriptions with
// core.Graph.Concat keeps track of which description mentioned which node.
package parser
