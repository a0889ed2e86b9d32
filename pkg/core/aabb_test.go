package core

import "testing"

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 4, 0), NewVec3(0, 0, 5))

	if box.Min != NewVec3(-1, -2, 0) {
		t.Errorf("Expected min (-1, -2, 0), got %v", box.Min)
	}
	if box.Max != NewVec3(1, 4, 5) {
		t.Errorf("Expected max (1, 4, 5), got %v", box.Max)
	}
	if box.Center() != NewVec3(0, 1, 2.5) {
		t.Errorf("Expected center (0, 1, 2.5), got %v", box.Center())
	}
	if box.Size() != NewVec3(2, 6, 5) {
		t.Errorf("Expected size (2, 6, 5), got %v", box.Size())
	}

	if empty := NewAABBFromPoints(); empty != (AABB{}) {
		t.Errorf("Expected zero box for no points, got %v", empty)
	}
}

func TestAABB_Slabs(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		hit       bool
		near, far float64
	}{
		{"straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true, 4, 6},
		{"from inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true, -1, 1},
		{"behind origin", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), true, -6, -4},
		{"parallel outside", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), false, 0, 0},
		{"diagonal miss", NewRay(NewVec3(3, 0, 5), NewVec3(0, 1, -1)), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near, far, ok := box.Slabs(tt.ray)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, ok)
			}
			if ok && (near != tt.near || far != tt.far) {
				t.Errorf("Expected [%g, %g], got [%g, %g]", tt.near, tt.far, near, far)
			}
		})
	}
}
