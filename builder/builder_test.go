package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cld/builder"
	"github.com/katalvlaran/cld/core"
	"github.com/katalvlaran/cld/loops"
	"github.com/katalvlaran/cld/parser"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(nil, opts, cons...)
	require.NoError(t, err)

	return g
}

func TestTopologies(t *testing.T) {
	tests := []struct {
		name   string
		ctor   builder.Constructor
		nodes  int
		edges  int
		cycles int
	}{
		{"Ring(1)", builder.Ring(1), 1, 1, 1},
		{"Ring(5)", builder.Ring(5), 5, 5, 1},
		{"Chain(4)", builder.Chain(4), 4, 3, 0},
		{"Complete(1)", builder.Complete(1), 1, 0, 0},
		{"Complete(4)", builder.Complete(4), 4, 12, 20},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), 4, 0, 0},
		{"RandomSparse(4,1)", builder.RandomSparse(4, 1), 4, 12, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.nodes, g.Len())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Len(t, loops.Cycles(g), tc.cycles)
		})
	}
}

func TestRing_Order(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Ring(3))
	assert.Equal(t, "N0 -> N1\nN1 -> N2\nN2 -> N0\n", parser.Format(g))
}

func TestPolarity_Policies(t *testing.T) {
	ring := func(p builder.PolarityFn) []loops.Loop {
		g := build(t, []builder.BuilderOption{builder.WithPolarity(p)}, builder.Ring(4))
		found, err := loops.Find(g)
		require.NoError(t, err)
		require.Len(t, found, 1)
		return found
	}

	assert.Equal(t, loops.Reinforcing, ring(builder.Positive)[0].Polarity)
	// Four opposite edges: even count, reinforcing.
	assert.Equal(t, loops.Reinforcing, ring(builder.Opposite)[0].Polarity)
	assert.Equal(t, loops.Balancing, ring(builder.OppositeInto(0))[0].Polarity)
	assert.Equal(t, loops.Reinforcing, ring(builder.OppositeInto(0, 2))[0].Polarity)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithExcelColumnIDs(),
			builder.WithOppositeProb(0.5),
		}
	}
	a := parser.Format(build(t, opts(), builder.RandomSparse(8, 0.3)))
	b := parser.Format(build(t, opts(), builder.RandomSparse(8, 0.3)))
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := map[string]struct {
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		"ring too small":     {nil, builder.Ring(0), builder.ErrTooFewVertices},
		"chain too small":    {nil, builder.Chain(1), builder.ErrTooFewVertices},
		"complete too small": {nil, builder.Complete(0), builder.ErrTooFewVertices},
		"random too small":   {nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		"bad probability":    {nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		"random without rng": {nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		"polarity without rng": {
			[]builder.BuilderOption{builder.WithOppositeProb(0.5)}, builder.Ring(3), builder.ErrNeedRandSource,
		},
		"nil constructor": {nil, nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_Idempotent(t *testing.T) {
	g := build(t, nil, builder.Ring(3), builder.Ring(3))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuildGraph_GraphOptions(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithID("fixture")}, nil, builder.Chain(2))
	require.NoError(t, err)
	assert.Equal(t, "fixture", g.ID())
}

func TestIDFns(t *testing.T) {
	cases := []struct {
		fn   builder.IDFn
		idx  int
		want string
	}{
		{builder.DefaultIDFn, 0, "0"},
		{builder.DefaultIDFn, 123, "123"},
		{builder.ExcelColumnIDFn, 0, "A"},
		{builder.ExcelColumnIDFn, 25, "Z"},
		{builder.ExcelColumnIDFn, 26, "AA"},
		{builder.ExcelColumnIDFn, 701, "ZZ"},
		{builder.ExcelColumnIDFn, 702, "AAA"},
		{builder.SymbolNumberIDFn("v"), 7, "v7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.fn(tc.idx))
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithPolarity(nil) })
	assert.Panics(t, func() { builder.WithOppositeProb(2) })
	assert.Panics(t, func() { builder.OppositeProb(-0.1) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("v")(-1) })
}
