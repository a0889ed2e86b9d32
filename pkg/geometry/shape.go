package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape is a primitive that can be intersected by rays and shaded.
//
// Intersect reports the ray parameter of the nearest forward intersection
// using a three-way contract:
//   - core.NoHit (-Inf): the ray does not intersect the shape at all
//   - finite t < 0: the intersection lies behind the ray origin
//   - t >= 0: a forward hit at ray.At(t)
type Shape interface {
	Intersect(ray core.Ray) float64
	NormalAt(point core.Vec3) core.Vec3
	GetMaterial() material.Material
}

// Validator is implemented by shapes that can detect degenerate geometry
type Validator interface {
	Validate() error
}

// Translator is implemented by shapes that can be moved between frames
type Translator interface {
	Translate(offset core.Vec3)
}

// rootPicker accumulates the candidate hits of a composite shape. The result
// is the smallest t >= 0, else the smallest t behind the origin, else
// core.NoHit. Infinite and NaN candidates are ignored.
type rootPicker struct {
	best    float64
	found   bool
	forward bool
}

func (p *rootPicker) add(t float64) {
	if math.IsInf(t, 0) || math.IsNaN(t) {
		return
	}
	switch {
	case t >= 0:
		if !p.forward || t < p.best {
			p.best = t
		}
		p.forward = true
	case !p.forward:
		if !p.found || t < p.best {
			p.best = t
		}
	}
	p.found = true
}

func (p *rootPicker) result() float64 {
	if !p.found {
		return core.NoHit
	}
	return p.best
}

// nearestRoot applies rootPicker to a fixed set of candidates
func nearestRoot(candidates ...float64) float64 {
	var p rootPicker
	for _, t := range candidates {
		p.add(t)
	}
	return p.result()
}
