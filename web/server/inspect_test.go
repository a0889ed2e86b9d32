package server

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestExtractGeometryInfo(t *testing.T) {
	mat := material.Default()
	base, top := core.NewVec3(0, 0, -2), core.NewVec3(0, 1, -2)

	tests := []struct {
		name     string
		shape    geometry.Shape
		wantType string
		key      string
		want     any
	}{
		{"sphere", geometry.NewSphere(base, 0.5, mat), "sphere", "radius", 0.5},
		{"cylinder", geometry.NewCylinder(base, top, 0.25, true, mat), "cylinder", "height", 1.0},
		{"cone", geometry.NewCone(base, 0.5, top, 0.1, false, mat), "cone", "topRadius", 0.1},
		{"mesh", geometry.NewCubeMesh(mat), "mesh", "triangles", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, props := extractGeometryInfo(tt.shape)
			if gotType != tt.wantType {
				t.Errorf("Expected type %q, got %q", tt.wantType, gotType)
			}
			if props[tt.key] != tt.want {
				t.Errorf("Expected %s=%v, got %v", tt.key, tt.want, props[tt.key])
			}
		})
	}
}
