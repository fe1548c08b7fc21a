// Package loops finds the feedback loops of a causal-loop diagram and
// labels each one reinforcing or balancing.
//
// What:
//
//   - Cycles: enumerates every elementary cycle (no repeated vertex) of a
//     core.Graph, including self-loops. Many cycles may share vertices and
//     edges; all of them are returned individually.
//   - Classify: odd number of opposite (negative) edges → Balancing,
//     otherwise Reinforcing, following the system-dynamics convention.
//   - Find: Cycles + edge re-derivation + Classify, with display names
//     R1, R2, … / B1, B2, ….
//   - SharedEdges: per-edge loop membership counts for renderers.
//
// Determinism:
//
//   - Each cycle is rotated to start at its smallest node name (Booth's
//     minimal rotation), and cycles are sorted by that name, then length,
//     then full name sequence.
//
// Complexity:
//
//   - Cycles: Time O((V+E)·(C+1)), Memory O(V+E) (C = #cycles).
//     The number of cycles can grow exponentially with density; callers
//     bound input size.
//
// Errors:
//
//   - ErrInconsistentCycle  an enumerated step has no edge (internal bug)
package loops
