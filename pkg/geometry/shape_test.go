package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNearestRoot(t *testing.T) {
	tests := []struct {
		name       string
		candidates []float64
		expected   float64
	}{
		{"nearest forward", []float64{3, 1, 2}, 1},
		{"forward beats behind", []float64{-1, 4}, 4},
		{"zero counts as forward", []float64{-2, 0}, 0},
		{"all behind takes smallest", []float64{-1, -3}, -3},
		{"sentinels ignored", []float64{core.NoHit, 2, math.NaN()}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestRoot(tt.candidates...); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}

	if got := nearestRoot(core.NoHit, core.NoHit); !math.IsInf(got, -1) {
		t.Errorf("Expected no-hit sentinel, got %f", got)
	}
	if got := nearestRoot(); !math.IsInf(got, -1) {
		t.Errorf("Expected no-hit sentinel for no candidates, got %f", got)
	}
}
