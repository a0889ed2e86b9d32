package core

import "math"

// NoHit is the intersection parameter reported when a ray has no geometric
// intersection with a shape at all. A finite negative parameter instead means
// the intersection lies behind the ray origin.
var NoHit = math.Inf(-1)

// Ray represents a ray with an origin and direction.
// The direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsForwardHit reports whether t is an intersection in front of the ray origin
func IsForwardHit(t float64) bool {
	return t > 0
}
