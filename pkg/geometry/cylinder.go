package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// capTolerance is how far from a cap plane a point may lie and still take
// the cap normal
const capTolerance = 1e-7

// Cylinder represents a finite cylinder, optionally closed with flat caps
type Cylinder struct {
	BaseCenter core.Vec3         // Center of the base circle
	TopCenter  core.Vec3         // Center of the top circle
	Radius     float64           // Radius of the cylinder
	Capped     bool              // Whether both ends are closed with disks
	Material   material.Material // Material of the cylinder

	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance from base to top
}

// NewCylinder creates a cylinder between baseCenter and topCenter
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool, material material.Material) *Cylinder {
	axisVec := topCenter.Subtract(baseCenter)
	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Capped:     capped,
		Material:   material,
		axis:       axisVec.Normalize(),
		height:     axisVec.Length(),
	}
}

// Height returns the distance between the base and top centers
func (c *Cylinder) Height() float64 {
	return c.height
}

// Intersect gathers hits on the curved body within the height range and, when
// capped, on both end disks. A ray starting inside reports its exit point.
func (c *Cylinder) Intersect(ray core.Ray) float64 {
	candidates := make([]float64, 0, 4)

	// Remove the axial component from both the direction and the offset:
	// |Δ⊥ + t·D⊥|² = r²
	delta := ray.Origin.Subtract(c.BaseCenter)
	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.Dot(ray.Direction) - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.Dot(delta) - deltaV*deltaV - c.Radius*c.Radius

	// Rays parallel to the axis never cross the curved surface
	if math.Abs(a) > 1e-12 {
		discriminant := b*b - 4*a*cc
		if discriminant > 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
				h := deltaV + t*dv
				if h >= 0 && h <= c.height {
					candidates = append(candidates, t)
				}
			}
		}
	}

	if c.Capped {
		candidates = append(candidates,
			hitDisk(ray, c.BaseCenter, c.axis.Negate(), c.Radius),
			hitDisk(ray, c.TopCenter, c.axis, c.Radius))
	}

	return nearestRoot(candidates...)
}

// NormalAt returns the cap normal for points on a cap and the radial
// direction elsewhere
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	radial := point.Subtract(c.BaseCenter.Add(c.axis.Multiply(h)))

	if c.Capped && radial.Length() < c.Radius-capTolerance {
		if math.Abs(h) <= capTolerance {
			return c.axis.Negate()
		}
		if math.Abs(h-c.height) <= capTolerance {
			return c.axis
		}
	}
	return radial.Normalize()
}

// GetMaterial returns the cylinder's material
func (c *Cylinder) GetMaterial() material.Material {
	return c.Material
}

// Translate moves both end centers by offset
func (c *Cylinder) Translate(offset core.Vec3) {
	c.BaseCenter = c.BaseCenter.Add(offset)
	c.TopCenter = c.TopCenter.Add(offset)
}

// Validate rejects cylinders without a positive radius or height
func (c *Cylinder) Validate() error {
	if !(c.Radius > 0) {
		return errors.New("cylinder radius must be positive")
	}
	if !(c.height > 0) {
		return errors.New("cylinder base and top centers must differ")
	}
	return c.Material.Validate()
}

// hitDisk intersects ray with the disk of the given radius centered at
// center and facing normal. Rays parallel to the disk report core.NoHit.
func hitDisk(ray core.Ray, center, normal core.Vec3, radius float64) float64 {
	denom := ray.Direction.Dot(normal)
	if denom == 0 {
		return core.NoHit
	}
	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if ray.At(t).Subtract(center).LengthSquared() > radius*radius {
		return core.NoHit
	}
	return t
}
