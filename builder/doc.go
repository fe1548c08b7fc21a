// Package builder generates synthetic causal-loop graphs for tests,
// benchmarks and demos.
//
// A Constructor adds nodes and signed edges to a *core.Graph; BuildGraph
// creates the graph, resolves the options and applies constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSymbNumb("N"), builder.WithPolarity(builder.OppositeInto(0))},
//		builder.Ring(4),
//	)
//	// N0 → N1 → N2 → N3 ⊸ N0: one balancing loop.
//
// The package offers:
//
//   - Topologies: Ring, Chain, Complete (all ordered pairs) and RandomSparse.
//   - Node naming schemes (IDFn): DefaultIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn.
//   - Polarity policies (PolarityFn): Positive, Opposite, OppositeInto and
//     OppositeProb.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order produce the
//     same graph, with the same insertion order.
//   - Idempotence: re-running a constructor on its own output adds nothing,
//     because core.Graph merges duplicate nodes and edges.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
