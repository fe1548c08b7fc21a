// Package cld is a causal-loop diagram engine: it turns plain-text
// descriptions of cause and effect into a directed signed graph, finds every
// feedback loop, tells reinforcing loops from balancing ones, and runs a
// small discrete-time simulation over the result.
//
// What's inside:
//
//	core/    — Graph, Node and Edge, merge (Concat) with provenance tracking
//	parser/  — "Label (Short) o-> Target // note" lines → core.Graph, and back
//	loops/   — elementary cycle enumeration and R/B classification
//	sim/     — synchronous value propagation, histories, downsampling, YAML config
//	builder/ — synthetic rings, chains, complete and random graphs for tests
//	cmd/cld  — command-line front-end (loops, simulate, groups, fmt, generate)
//
// Quick example:
//
//	Births -> Population
//	Population -> Births         R1: Births → Population (reinforcing)
//	Population -> Deaths
//	Deaths o-> Population        B1: Deaths → Population (balancing)
//
// A loop is reinforcing when it crosses an even number of opposite ("o->")
// edges and balancing otherwise.
//
//	go install github.com/katalvlaran/cld/cmd/cld@latest
package cld
