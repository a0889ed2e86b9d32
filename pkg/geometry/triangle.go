package geometry

import (
	"errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices.
// The normal follows the right-hand rule over V0, V1, V2.
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect uses the Möller-Trumbore algorithm. Rays parallel to the
// triangle's plane or passing outside its edges report core.NoHit.
func (t *Triangle) Intersect(ray core.Ray) float64 {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a == 0 {
		return core.NoHit
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.NoHit
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.NoHit
	}

	return f * edge2.Dot(q)
}

// NormalAt returns the triangle's normal, which is the same everywhere
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return t.normal
}

// covers reports whether the projection of point onto the triangle's plane
// falls inside the triangle, edges included
func (t *Triangle) covers(point core.Vec3) bool {
	e0 := t.V1.Subtract(t.V0)
	e1 := t.V2.Subtract(t.V0)
	p := point.Subtract(t.V0)

	d00, d01, d11 := e0.Dot(e0), e0.Dot(e1), e1.Dot(e1)
	d20, d21 := p.Dot(e0), p.Dot(e1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return false
	}

	// Barycentric weights of V1 and V2
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	const tol = 1e-9
	return v >= -tol && w >= -tol && v+w <= 1+tol
}

// GetMaterial returns the triangle's material
func (t *Triangle) GetMaterial() material.Material {
	return t.Material
}

// Translate moves all three vertices by offset
func (t *Triangle) Translate(offset core.Vec3) {
	t.V0 = t.V0.Add(offset)
	t.V1 = t.V1.Add(offset)
	t.V2 = t.V2.Add(offset)
}

// Validate rejects triangles with collinear vertices
func (t *Triangle) Validate() error {
	if t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).IsZero() {
		return errors.New("triangle vertices are collinear")
	}
	return t.Material.Validate()
}
