// Package loops provides helper functions shared by enumeration and classification.
// These utilities offer string-slice operations and canonical cycle rotation.
package loops

import (
	"strings"

	"github.com/katalvlaran/cld/core"
)

// Compare lexicographically compares two equal-length string slices a and b.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func Compare(a, b []string) int {
	for i := range a { // both slices assumed same length
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n + total length of elements).
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// nodeNames extracts node names in order.
func nodeNames(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// minIndex returns the index of the smallest name in names, or -1 when
// names is empty.
func minIndex(names []string) int {
	best := -1
	for i, name := range names {
		if best < 0 || name < names[best] {
			best = i
		}
	}

	return best
}

// rotateToMin rotates a cycle so it starts at its smallest node name. Names
// in an elementary cycle are distinct, so that start is unique and the
// result is the cycle's canonical form.
func rotateToMin(cycle []*core.Node) []*core.Node {
	if len(cycle) < 2 {
		return cycle
	}
	start := minIndex(nodeNames(cycle))
	out := make([]*core.Node, 0, len(cycle))
	out = append(out, cycle[start:]...)
	out = append(out, cycle[:start]...)

	return out
}
