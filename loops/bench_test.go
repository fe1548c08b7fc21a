package loops_test

import (
	"testing"

	"github.com/katalvlaran/cld/builder"
	"github.com/katalvlaran/cld/loops"
)

// BenchmarkFind_CompleteDigraph6 enumerates and classifies all elementary
// cycles of the complete digraph on six vertices (409 cycles).
func BenchmarkFind_CompleteDigraph6(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(6), builder.WithOppositeProb(0.5)},
		builder.Complete(6),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loops.Find(g)
	}
}

// BenchmarkCycles_RandomSparse20 enumerates a seeded sparse digraph.
func BenchmarkCycles_RandomSparse20(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(20)},
		builder.RandomSparse(20, 0.1),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = loops.Cycles(g)
	}
}
