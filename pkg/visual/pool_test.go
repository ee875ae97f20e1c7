package visual

import (
	"math"
	"testing"
)

func TestMeanPoolAverages(t *testing.T) {
	hidden := [][]float64{
		{1, 2, 3},
		{3, 4, 5},
	}
	pooled, err := meanPool(hidden)
	if err != nil {
		t.Fatalf("meanPool: %v", err)
	}
	want := []float64{2, 3, 4}
	for i, v := range want {
		if pooled[i] != v {
			t.Errorf("pooled[%d] = %v, want %v", i, pooled[i], v)
		}
	}
}

func TestMeanPoolEmptySequence(t *testing.T) {
	if _, err := meanPool(nil); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestMeanPoolRaggedRows(t *testing.T) {
	hidden := [][]float64{
		{1, 2, 3},
		{1, 2},
	}
	if _, err := meanPool(hidden); err == nil {
		t.Fatal("expected error for mismatched row widths")
	}
}

func TestPoolAndNormalizeUnitLength(t *testing.T) {
	hidden := [][]float64{
		{0.3, -1.7, 2.2, 0.05},
		{-0.9, 4.1, 0.0, 1.3},
		{2.5, -0.2, -3.3, 0.7},
	}
	vec, err := poolAndNormalize(hidden)
	if err != nil {
		t.Fatalf("poolAndNormalize: %v", err)
	}
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if norm := math.Sqrt(sum); math.Abs(norm-1) > 1e-9 {
		t.Errorf("norm = %v, want 1", norm)
	}
}

func TestL2NormalizeZeroVector(t *testing.T) {
	vec := []float64{0, 0, 0}
	out := l2Normalize(vec)
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}
