package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect solves |o + t*d - c|² = r² for t.
// The nearer root is returned unless it lies behind the origin while the
// farther one does not, so a ray starting inside reports its exit point.
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Vector from ray origin to sphere center
	v := s.Center.Subtract(ray.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := -2.0 * ray.Direction.Dot(v)
	c := v.Dot(v) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c

	// Tangent rays count as misses
	if discriminant <= 0 {
		return core.NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	near, far := min(t1, t2), max(t1, t2)
	if near < 0 && far >= 0 {
		return far
	}
	return near
}

// NormalAt returns the outward unit normal at a point on the surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

// Translate moves the sphere by offset
func (s *Sphere) Translate(offset core.Vec3) {
	s.Center = s.Center.Add(offset)
}

// Validate rejects non-positive radii
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
	}
	return s.Material.Validate()
}
