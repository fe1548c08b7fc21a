package sim_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cld/sim"
)

func TestDownsample(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		bins   int
		want   []float64
	}{
		{"even", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, []float64{2, 5, 8}},
		{"identity", []float64{1, 2, 3}, 3, []float64{1, 2, 3}},
		{"single bin", []float64{1, 2, 3, 4}, 1, []float64{2.5}},
		// n=5, bins=2: [0,2) and [2,5)
		{"uneven", []float64{1, 3, 5, 7, 9}, 2, []float64{2, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sim.Downsample(tc.series, tc.bins)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, got, epsilon)
		})
	}
}

func TestDownsample_BadBins(t *testing.T) {
	for _, bins := range []int{0, -1, 4} {
		_, err := sim.Downsample([]float64{1, 2, 3}, bins)
		assert.ErrorIs(t, err, sim.ErrBadBinCount, bins)
	}
	_, err := sim.Downsample(nil, 1)
	assert.ErrorIs(t, err, sim.ErrBadBinCount)
}

func TestSimulation_Downsample(t *testing.T) {
	g := mustParse(t, "A -> B\nB -> C\nC -> A")
	s, err := sim.New(g)
	require.NoError(t, err)
	require.NoError(t, s.Run(3))

	got, err := s.Downsample("A", 2)
	require.NoError(t, err)
	// history [1, 1.1, 1.21, 1.33] → [1.05, 1.27]
	assert.InDeltaSlice(t, []float64{1.05, 1.27}, got, epsilon)

	_, err = s.Downsample("A", 5)
	assert.ErrorIs(t, err, sim.ErrBadBinCount)
}

// TestDownsample_Bounds checks that every bin mean lies within the series range.
func TestDownsample_Bounds(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("bin means stay within min/max", prop.ForAll(
		func(series []float64, bins int) bool {
			if len(series) == 0 {
				return true
			}
			bins = bins%len(series) + 1
			out, err := sim.Downsample(series, bins)
			if err != nil || len(out) != bins {
				return false
			}
			lo, hi := series[0], series[0]
			for _, v := range series {
				lo, hi = min(lo, v), max(hi, v)
			}
			for _, v := range out {
				if v < lo-epsilon || v > hi+epsilon {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Float64Range(-1000, 1000)),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
