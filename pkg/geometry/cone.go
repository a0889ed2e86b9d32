package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Cone represents a finite cone or frustum, optionally closed with flat caps
type Cone struct {
	BaseCenter core.Vec3         // Center of the base circle
	BaseRadius float64           // Radius at the base
	TopCenter  core.Vec3         // Center of the top circle
	TopRadius  float64           // Radius at the top (0 for a pointed cone)
	Capped     bool              // Whether the base (and a frustum's top) is closed
	Material   material.Material // Material of the cone

	axis     core.Vec3 // Unit vector from base to top
	height   float64   // Distance from base to top
	tanAngle float64   // Tangent of the half-angle
	apex     core.Vec3 // Where the sides would meet
}

// NewCone creates a cone between baseCenter and topCenter. A topRadius of 0
// gives a pointed cone, anything smaller than baseRadius a frustum.
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, material material.Material) *Cone {
	axisVec := topCenter.Subtract(baseCenter)
	height := axisVec.Length()
	axis := axisVec.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		Capped:     capped,
		Material:   material,
		axis:       axis,
		height:     height,
		tanAngle:   tanAngle,
		apex:       baseCenter.Add(axis.Multiply(baseRadius / tanAngle)),
	}
}

// Height returns the distance between the base and top centers
func (c *Cone) Height() float64 {
	return c.height
}

// Intersect gathers hits on the sloped side within the height range and, when
// capped, on the end disks. The mirrored nappe beyond the apex is never part
// of the cone. A ray starting inside reports its exit point.
func (c *Cone) Intersect(ray core.Ray) float64 {
	candidates := make([]float64, 0, 4)

	// Points on the infinite cone satisfy |P-A|² = (1+tan²)((P-A)·V)²
	k := 1 + c.tanAngle*c.tanAngle
	co := ray.Origin.Subtract(c.apex)
	dv := ray.Direction.Dot(c.axis)
	cov := co.Dot(c.axis)

	a := ray.Direction.Dot(ray.Direction) - k*dv*dv
	b := 2.0 * (ray.Direction.Dot(co) - k*dv*cov)
	cc := co.Dot(co) - k*cov*cov

	var roots []float64
	switch {
	case math.Abs(a) > 1e-12:
		discriminant := b*b - 4*a*cc
		if discriminant > 0 {
			sqrtD := math.Sqrt(discriminant)
			roots = []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
		}
	case b != 0:
		// Ray parallel to a generating line crosses the side once
		roots = []float64{-cc / b}
	}

	for _, t := range roots {
		h := ray.At(t).Subtract(c.BaseCenter).Dot(c.axis)
		if h >= 0 && h <= c.height {
			candidates = append(candidates, t)
		}
	}

	if c.Capped {
		candidates = append(candidates, hitDisk(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius))
		if c.TopRadius > 0 {
			candidates = append(candidates, hitDisk(ray, c.TopCenter, c.axis, c.TopRadius))
		}
	}

	return nearestRoot(candidates...)
}

// NormalAt returns the cap normal for points on a cap and the sloped side
// normal elsewhere. The apex takes the axis direction.
func (c *Cone) NormalAt(point core.Vec3) core.Vec3 {
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	radial := point.Subtract(c.BaseCenter.Add(c.axis.Multiply(h)))
	dist := radial.Length()

	if c.Capped {
		if math.Abs(h) <= capTolerance && dist < c.BaseRadius-capTolerance {
			return c.axis.Negate()
		}
		if c.TopRadius > 0 && math.Abs(h-c.height) <= capTolerance && dist < c.TopRadius-capTolerance {
			return c.axis
		}
	}
	if dist < 1e-12 {
		return c.axis
	}
	return radial.Divide(dist).Add(c.axis.Multiply(c.tanAngle)).Normalize()
}

// GetMaterial returns the cone's material
func (c *Cone) GetMaterial() material.Material {
	return c.Material
}

// Translate moves the cone by offset
func (c *Cone) Translate(offset core.Vec3) {
	c.BaseCenter = c.BaseCenter.Add(offset)
	c.TopCenter = c.TopCenter.Add(offset)
	c.apex = c.apex.Add(offset)
}

// Validate rejects cones whose radii do not narrow from base to top
func (c *Cone) Validate() error {
	if !(c.BaseRadius > 0) {
		return errors.New("cone base radius must be positive")
	}
	if c.TopRadius < 0 {
		return errors.New("cone top radius cannot be negative")
	}
	if !(c.TopRadius < c.BaseRadius) {
		return errors.New("cone top radius must be smaller than base radius")
	}
	if !(c.height > 0) {
		return errors.New("cone base and top centers must differ")
	}
	return c.Material.Validate()
}
