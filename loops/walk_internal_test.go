package loops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cld/core"
)

// TestWalk_MissingEdge feeds walk a cycle the graph cannot close.
func TestWalk_MissingEdge(t *testing.T) {
	a := &core.Node{Name: "A", Edges: []*core.Edge{{Target: "B"}}}
	b := &core.Node{Name: "B"}

	_, err := walk([]*core.Node{a, b})
	assert.ErrorIs(t, err, ErrInconsistentCycle)

	b.Edges = []*core.Edge{{Target: "A", Opposite: true}}
	edges, err := walk([]*core.Node{a, b})
	require.NoError(t, err)
	assert.Equal(t, Balancing, Classify(edges))
}

func TestRotateToMin(t *testing.T) {
	nodes := func(names ...string) []*core.Node {
		out := make([]*core.Node, len(names))
		for i, n := range names {
			out[i] = &core.Node{Name: n}
		}
		return out
	}

	assert.Equal(t, []string{"A", "B", "C"}, nodeNames(rotateToMin(nodes("B", "C", "A"))))
	assert.Equal(t, []string{"AR", "SG", "SE", "PF"}, nodeNames(rotateToMin(nodes("PF", "AR", "SG", "SE"))))
	assert.Equal(t, []string{"X"}, nodeNames(rotateToMin(nodes("X"))))
	assert.Equal(t, -1, minIndex(nil))
}

func TestSliceHelpers(t *testing.T) {
	s := []string{"AR", "SG", "PF"}
	assert.Equal(t, 0, Compare(s, []string{"AR", "SG", "PF"}))
	assert.Equal(t, -1, Compare([]string{"A", "B"}, []string{"A", "C"}))
	assert.Equal(t, 1, Compare([]string{"B", "A"}, []string{"A", "Z"}))

	assert.Equal(t, "AR,SG,PF", JoinSig(s))
}
