// SPDX-License-Identifier: MIT
package sim

import (
	"errors"
	"fmt"
)

// ErrBadBinCount indicates a bin count that is not positive or exceeds the
// series length.
var ErrBadBinCount = errors.New("sim: bin count out of range")

// Downsample reduces series to bins values. Bin i averages the raw values
// with indices in the half-open range [⌊i·n/bins⌋, ⌊(i+1)·n/bins⌋), so bins
// never overlap and every value is used exactly once.
//
// Complexity: O(n).
func Downsample(series []float64, bins int) ([]float64, error) {
	n := len(series)
	if bins <= 0 || bins > n {
		return nil, fmt.Errorf("Downsample(len=%d, bins=%d): %w", n, bins, ErrBadBinCount)
	}

	out := make([]float64, bins)
	for i := range out {
		lo, hi := i*n/bins, (i+1)*n/bins
		sum := 0.0
		for _, v := range series[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}

	return out, nil
}
