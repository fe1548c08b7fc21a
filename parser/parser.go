// SPDX-License-Identifier: MIT
// Package: cld/parser
//
// parser.go — description text → core.Graph.
//
// Pipeline:
//   • Each significant line becomes a two-node mini graph (source with one
//     edge, target with none), all sharing one document id.
//   • Mini graphs are folded into the result with core.Graph.Concat in line
//     order, so names deduplicate and the first writer wins.
//   • The first malformed line aborts the parse; no partial graph escapes.

package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/cld/core"
)

// Grammar tokens.
const (
	Arrow          = "->" // influence separator
	CommentMarker  = "//" // whole-line comment or trailing edge label
	OppositeMarker = 'o'  // prefix of Arrow marking a negative influence
	arrowExtension = '-'  // extra dashes of a longer arrow glyph ("-->")
)

// aliasPattern matches "<Label> (<ShortName>)".
var aliasPattern = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)$`)

// Option configures Parse.
type Option func(*config)

type config struct {
	subgraphID string
}

// WithSubgraphID pins the document id used as provenance for every node of
// the parsed description. An empty id is ignored.
func WithSubgraphID(id string) Option {
	return func(c *config) {
		if id != "" {
			c.subgraphID = id
		}
	}
}

// Parse converts a multi-line description into a Graph.
//
// Blank lines and lines starting with "//" are skipped. Every node is tagged
// with one document id, which is also the returned graph's ID. The first
// malformed line fails the whole parse with a *LineError wrapping
// ErrMalformedLine or ErrEmptyOperand.
func Parse(text string, opts ...Option) (*core.Graph, error) {
	cfg := config{subgraphID: uuid.NewString()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.New(core.WithID(cfg.subgraphID))
	for i, line := range strings.Split(text, "\n") {
		if skip(line) {
			continue
		}
		mini, err := parseLine(line, cfg.subgraphID)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: strings.TrimSpace(line), Err: err}
		}
		g.Concat(mini)
	}

	return g, nil
}

// ParseReader reads r to the end and parses its content.
func ParseReader(r io.Reader, opts ...Option) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: read description: %w", err)
	}

	return Parse(string(data), opts...)
}

// ParseLine parses one relationship into a two-node graph with a fresh id.
func ParseLine(line string) (*core.Graph, error) {
	return parseLine(line, "")
}

// skip reports whether line is blank or a comment.
func skip(line string) bool {
	trimmed := strings.TrimSpace(line)

	return trimmed == "" || strings.HasPrefix(trimmed, CommentMarker)
}

// parseLine splits line around its single arrow and builds the mini graph.
func parseLine(line, id string) (*core.Graph, error) {
	// 1) Exactly one arrow.
	if strings.Count(line, Arrow) != 1 {
		return nil, ErrMalformedLine
	}
	at := strings.Index(line, Arrow)
	left, right := line[:at], line[at+len(Arrow):]

	// 2) Trailing comment on the right becomes the edge label.
	var label string
	if c := strings.Index(right, CommentMarker); c >= 0 {
		label = strings.TrimSpace(right[c+len(CommentMarker):])
		right = right[:c]
	}

	// 3) Polarity from the glyph left of the arrow.
	left, opposite := splitPolarity(left)

	// 4) Node references.
	srcName, srcLabel, err := parseOperand(left)
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	dstName, dstLabel, err := parseOperand(right)
	if err != nil {
		return nil, fmt.Errorf("right side: %w", err)
	}

	// 5) Mini graph: source with one edge, target with none.
	g := core.New(core.WithID(id))
	if _, err = g.AddNode(srcName, srcLabel); err != nil {
		return nil, err
	}
	if _, err = g.AddNode(dstName, dstLabel); err != nil {
		return nil, err
	}
	if err = g.AddEdge(srcName, dstName, opposite, label); err != nil {
		return nil, err
	}

	return g, nil
}

// splitPolarity strips the arrow prefix from the left operand.
//
// Extension dashes ("-->") are dropped first. A remaining OppositeMarker
// makes the edge negative only when whitespace precedes it, so "Zoo-> X"
// is a positive edge from "Zoo".
func splitPolarity(left string) (string, bool) {
	left = strings.TrimRight(left, string(arrowExtension))
	n := len(left)
	if n >= 2 && left[n-1] == OppositeMarker && isSpace(left[n-2]) {
		return left[:n-1], true
	}

	return left, false
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// parseOperand resolves "<Label> (<Short>)" or a bare name.
func parseOperand(s string) (name, label string, err error) {
	s = strings.TrimSpace(s)
	if m := aliasPattern.FindStringSubmatch(s); m != nil {
		name = strings.TrimSpace(m[2])
		label = strings.TrimSpace(m[1])
		if label == "" {
			label = name
		}
	} else {
		name, label = s, s
	}
	if name == "" {
		return "", "", ErrEmptyOperand
	}

	return name, label, nil
}
