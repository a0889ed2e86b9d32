package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the z=0 plane facing +Z
	triangle := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		material.Default(),
	)

	tests := []struct {
		name      string
		ray       core.Ray
		expectedT float64
		expectHit bool
	}{
		{"center from front", core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), 3, true},
		{"center from back", core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1)), 2, true},
		{"behind origin", core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)), -3, true},
		{"outside edge", core.NewRay(core.NewVec3(2, 0, 3), core.NewVec3(0, 0, -1)), 0, false},
		{"parallel", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangle.Intersect(tt.ray)
			if !tt.expectHit {
				if !math.IsInf(got, -1) {
					t.Errorf("Expected no-hit sentinel, got t=%f", got)
				}
				return
			}
			if math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		material.Default(),
	)

	if n := triangle.NormalAt(core.NewVec3(0.2, 0.2, 0)); !n.ApproxEqual(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0, 0, 1), got %v", n)
	}

	degenerate := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), material.Default())
	if err := degenerate.Validate(); err == nil {
		t.Error("Expected error for collinear vertices")
	}
}
