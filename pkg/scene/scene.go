package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// ShadowEpsilon is the smallest shadow-ray parameter that counts as an
// occluder. It keeps a surface from shadowing itself through rounding error
// and must be retuned if coordinates move away from float64.
const ShadowEpsilon = 1e-4

var (
	// ErrInvalidScene wraps every validation failure
	ErrInvalidScene = errors.New("invalid scene")
	// ErrIndexOutOfRange is returned when removing a shape or light that does not exist
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Scene contains all the elements needed for rendering.
// It must not be mutated while a frame is being rendered.
type Scene struct {
	Name         string
	Shapes       []geometry.Shape // Objects in the scene, in insertion order
	Lights       []lights.Light   // Lights in the scene
	Ambient      core.Vec3        // Ambient light color
	CameraConfig geometry.CameraConfig
}

// New creates an empty scene with the given ambient light
func New(ambient core.Vec3) *Scene {
	return &Scene{Ambient: ambient}
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// RemoveShape removes the shape at index i, preserving the order of the rest
func (s *Scene) RemoveShape(i int) error {
	if i < 0 || i >= len(s.Shapes) {
		return fmt.Errorf("remove shape %d of %d: %w", i, len(s.Shapes), ErrIndexOutOfRange)
	}
	s.Shapes = append(s.Shapes[:i], s.Shapes[i+1:]...)
	return nil
}

// RemoveLight removes the light at index i, preserving the order of the rest
func (s *Scene) RemoveLight(i int) error {
	if i < 0 || i >= len(s.Lights) {
		return fmt.Errorf("remove light %d of %d: %w", i, len(s.Lights), ErrIndexOutOfRange)
	}
	s.Lights = append(s.Lights[:i], s.Lights[i+1:]...)
	return nil
}

// ClosestHit returns the shape with the smallest forward intersection
// parameter (t > 0) along ray. With no forward hit it returns (nil, core.NoHit).
// Equal parameters keep the shape added first.
func (s *Scene) ClosestHit(ray core.Ray) (geometry.Shape, float64) {
	index, t := s.ClosestHitIndex(ray)
	if index < 0 {
		return nil, t
	}
	return s.Shapes[index], t
}

// ClosestHitIndex is ClosestHit reporting the index of the shape in Shapes,
// or -1 when nothing is hit.
func (s *Scene) ClosestHitIndex(ray core.Ray) (int, float64) {
	closest := -1
	closestT := core.NoHit

	for i, shape := range s.Shapes {
		t := shape.Intersect(ray)
		if !core.IsForwardHit(t) {
			continue
		}
		if closest < 0 || t < closestT {
			closest = i
			closestT = t
		}
	}

	return closest, closestT
}

// InShadow reports whether any shape lies between point and the light.
// Directional lights are blocked by anything in front of point.
func (s *Scene) InShadow(point core.Vec3, light lights.Light) bool {
	return s.OccludedWithin(light.ShadowRay(point), ShadowEpsilon, light.ShadowRange())
}

// Occluded reports whether any shape intersects ray with t in [epsilon, 1].
// Shadow rays span exactly t = 0 (surface point) to t = 1 (light).
func (s *Scene) Occluded(ray core.Ray, epsilon float64) bool {
	return s.OccludedWithin(ray, epsilon, 1.0)
}

// OccludedWithin reports whether any shape intersects ray with t in
// [tMin, tMax]. tMax may be +Inf.
func (s *Scene) OccludedWithin(ray core.Ray, tMin, tMax float64) bool {
	for _, shape := range s.Shapes {
		t := shape.Intersect(ray)
		if t >= tMin && t <= tMax {
			return true
		}
	}
	return false
}

// Validate checks the camera configuration, every light, and every shape
// that can detect degenerate geometry
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("%w: light %d (%s): %w", ErrInvalidScene, i, light.Type, err)
		}
	}
	for i, shape := range s.Shapes {
		v, ok := shape.(geometry.Validator)
		if !ok {
			continue
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: shape %d (%T): %w", ErrInvalidScene, i, shape, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
