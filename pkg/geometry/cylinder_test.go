package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestCylinder_Intersect(t *testing.T) {
	// Unit radius, y from 0 to 2, closed at both ends
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, true, material.Default())

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		expectedT    float64
	}{
		{
			name:         "side hit from outside",
			rayOrigin:    core.NewVec3(0, 1, 5),
			rayDirection: core.NewVec3(0, 0, -1),
			expectedT:    4.0,
		},
		{
			name:         "top cap from above",
			rayOrigin:    core.NewVec3(0, 5, 0),
			rayDirection: core.NewVec3(0, -1, 0),
			expectedT:    3.0,
		},
		{
			name:         "inside reports side exit",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			expectedT:    1.0,
		},
		{
			name:         "inside along axis reports cap exit",
			rayOrigin:    core.NewVec3(0, 1, 0),
			rayDirection: core.NewVec3(0, 1, 0),
			expectedT:    1.0,
		},
		{
			name:         "behind origin is negative",
			rayOrigin:    core.NewVec3(0, 1, 5),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    -6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cylinder.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestCylinder_Intersect_Miss(t *testing.T) {
	capped := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, true, material.Default())
	open := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, false, material.Default())

	tests := []struct {
		name     string
		cylinder *Cylinder
		ray      core.Ray
	}{
		{"beside", capped, core.NewRay(core.NewVec3(3, 1, 5), core.NewVec3(0, 0, -1))},
		{"tangent", capped, core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1))},
		{"above the top", capped, core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1))},
		{"open ends along axis", open, core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cylinder.Intersect(tt.ray); !math.IsInf(got, -1) {
				t.Errorf("Expected no-hit sentinel, got t=%f", got)
			}
		})
	}
}

func TestCylinder_Intersect_Tilted(t *testing.T) {
	// Lying along x, crossing the view axis at z=-3
	cylinder := NewCylinder(core.NewVec3(-1, 0, -3), core.NewVec3(1, 0, -3), 0.5, true, material.Default())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := cylinder.Intersect(ray); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5, got t=%f", got)
	}
	if n := cylinder.NormalAt(ray.At(2.5)); !n.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0, 0, 1), got %v", n)
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, true, material.Default())

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"side", core.NewVec3(1, 1, 0), core.NewVec3(1, 0, 0)},
		{"side facing -z", core.NewVec3(0, 0.5, -1), core.NewVec3(0, 0, -1)},
		{"top cap", core.NewVec3(0.2, 2, 0.3), core.NewVec3(0, 1, 0)},
		{"base cap", core.NewVec3(0.5, 0, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cylinder.NormalAt(tt.point); !got.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCylinder_Validate(t *testing.T) {
	base := core.NewVec3(0, 0, 0)
	if err := NewCylinder(base, core.NewVec3(0, 1, 0), 1, true, material.Default()).Validate(); err != nil {
		t.Errorf("Unexpected error for unit cylinder: %v", err)
	}
	if err := NewCylinder(base, core.NewVec3(0, 1, 0), 0, true, material.Default()).Validate(); err == nil {
		t.Error("Expected error for zero radius")
	}
	if err := NewCylinder(base, base, 1, true, material.Default()).Validate(); err == nil {
		t.Error("Expected error for zero height")
	}
}

func TestCylinder_Translate(t *testing.T) {
	cylinder := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1.0, true, material.Default())
	cylinder.Translate(core.NewVec3(0, 0, -5))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1))
	if got := cylinder.Intersect(ray); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("Expected t=4 after translation, got t=%f", got)
	}
	if cylinder.Height() != 2 {
		t.Errorf("Expected height to survive translation, got %f", cylinder.Height())
	}
}
