package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Box represents an axis-aligned box
type Box struct {
	Bounds   core.AABB
	Material material.Material
}

// NewBox creates a box centered at center with the given half extents
func NewBox(center, halfSize core.Vec3, material material.Material) *Box {
	return &Box{
		Bounds:   core.NewAABB(center.Subtract(halfSize), center.Add(halfSize)),
		Material: material,
	}
}

// Intersect follows the same contract as Sphere.Intersect: rays starting
// inside the box report the exit face.
func (b *Box) Intersect(ray core.Ray) float64 {
	tNear, tFar, ok := b.Bounds.Slabs(ray)
	if !ok {
		return core.NoHit
	}
	// A ray that touches only an edge or a corner is a miss, like a tangent sphere ray
	if tNear == tFar {
		return core.NoHit
	}
	if tNear < 0 && tFar >= 0 {
		return tFar
	}
	return tNear
}

// NormalAt returns the outward normal of the face nearest to point
func (b *Box) NormalAt(point core.Vec3) core.Vec3 {
	center := b.Bounds.Center()
	half := b.Bounds.Size().Multiply(0.5)
	local := point.Subtract(center)

	// Relative distance to the face along each axis; the largest wins
	rx := math.Abs(local.X) / half.X
	ry := math.Abs(local.Y) / half.Y
	rz := math.Abs(local.Z) / half.Z

	switch {
	case rx >= ry && rx >= rz:
		return core.NewVec3(math.Copysign(1, local.X), 0, 0)
	case ry >= rz:
		return core.NewVec3(0, math.Copysign(1, local.Y), 0)
	default:
		return core.NewVec3(0, 0, math.Copysign(1, local.Z))
	}
}

// GetMaterial returns the box's material
func (b *Box) GetMaterial() material.Material {
	return b.Material
}

// Translate moves the box by offset
func (b *Box) Translate(offset core.Vec3) {
	b.Bounds = core.NewAABB(b.Bounds.Min.Add(offset), b.Bounds.Max.Add(offset))
}

// Validate rejects boxes with an empty extent on any axis
func (b *Box) Validate() error {
	size := b.Bounds.Size()
	if !(size.X > 0 && size.Y > 0 && size.Z > 0) {
		return errors.New("box must have a positive size on every axis")
	}
	return b.Material.Validate()
}
