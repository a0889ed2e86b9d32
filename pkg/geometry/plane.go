package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal vector
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane. The normal must be non-zero.
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Intersect returns t = -n·(o - p0) / n·d, or core.NoHit for rays parallel
// to the plane. The result is negative when the plane is behind the origin.
func (p *Plane) Intersect(ray core.Ray) float64 {
	top := p.Normal.Dot(ray.Origin.Subtract(p.Point))
	bottom := p.Normal.Dot(ray.Direction)

	if bottom == 0 {
		return core.NoHit
	}

	return -top / bottom
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

// Translate moves the plane by offset
func (p *Plane) Translate(offset core.Vec3) {
	p.Point = p.Point.Add(offset)
}

// Validate rejects planes whose normal is not unit length
func (p *Plane) Validate() error {
	length := p.Normal.Length()
	if math.IsNaN(length) || math.Abs(length-1) > 1e-9 {
		return errors.New("plane normal must be a non-zero vector")
	}
	return p.Material.Validate()
}
