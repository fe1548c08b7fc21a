package parser_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cld/core"
	"github.com/katalvlaran/cld/parser"
)

func TestFormat(t *testing.T) {
	g, err := parser.Parse("Profit (PF) o-> SE // lagged\nSE -> PF")
	require.NoError(t, err)

	assert.Equal(t, "Profit (PF) o-> SE // lagged\nSE -> Profit (PF)\n", parser.Format(g))
}

// TestFormat_RoundTrip parses formatted random graphs back to the same edges.
func TestFormat_RoundTrip(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("Parse(Format(g)) keeps every edge", prop.ForAll(
		func(raw []int) bool {
			g := core.New()
			for i := 0; i+2 < len(raw); i += 3 {
				from, to := fmt.Sprintf("F%d", raw[i]%6), fmt.Sprintf("F%d", raw[i+1]%6)
				_, _ = g.AddNode(from, "")
				_, _ = g.AddNode(to, "")
				_ = g.AddEdge(from, to, raw[i+2]%2 == 0, "")
			}

			back, err := parser.Parse(parser.Format(g))
			if err != nil || back.Len() != g.Len() || back.EdgeCount() != g.EdgeCount() {
				return false
			}
			for _, ref := range g.Edges() {
				n, ok := back.FindByName(ref.From.Name)
				if !ok {
					return false
				}
				e := n.EdgeTo(ref.To.Name)
				if e == nil || e.Opposite != ref.Edge.Opposite {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}
