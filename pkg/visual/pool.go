package visual

import (
	"fmt"
	"math"
)

// poolAndNormalize turns a hidden-state sequence into one unit vector:
// mean-pool over the token axis, then L2-normalize.
func poolAndNormalize(hidden [][]float64) ([]float64, error) {
	pooled, err := meanPool(hidden)
	if err != nil {
		return nil, err
	}
	return l2Normalize(pooled), nil
}

// meanPool averages the hidden-state rows component-wise. All rows must
// share one width.
func meanPool(hidden [][]float64) ([]float64, error) {
	if len(hidden) == 0 {
		return nil, fmt.Errorf("empty hidden-state sequence")
	}
	width := len(hidden[0])
	if width == 0 {
		return nil, fmt.Errorf("zero-width hidden state")
	}

	pooled := make([]float64, width)
	for i, row := range hidden {
		if len(row) != width {
			return nil, fmt.Errorf("hidden state row %d has width %d, expected %d", i, len(row), width)
		}
		for j, v := range row {
			pooled[j] += v
		}
	}
	n := float64(len(hidden))
	for j := range pooled {
		pooled[j] /= n
	}
	return pooled, nil
}

// l2Normalize scales the vector to unit length. A zero vector is returned
// unchanged rather than divided into NaNs.
func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}
