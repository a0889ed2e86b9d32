package lights

import (
	"errors"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Type distinguishes how a light reaches a surface point
type Type int

const (
	Point       Type = iota // Radiates from Position in every direction
	Spot                    // Radiates from Position within Angle of Direction
	Directional             // Parallel rays along Direction, no position
)

func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Spot:
		return "spot"
	case Directional:
		return "directional"
	}
	return "unknown"
}

// Light is a point, spot or directional light
type Light struct {
	Type      Type
	Position  core.Vec3 // Point and spot lights
	Direction core.Vec3 // Unit vector the light travels along; spot and directional
	Angle     float64   // Spot cone half-angle in degrees
	Color     core.Vec3
	Intensity float64 // Only applied when the integrator enables it
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      Point,
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// NewWhiteLight creates a white point light of full intensity
func NewWhiteLight(position core.Vec3) Light {
	return NewPointLight(position, core.Splat(1), 1)
}

// NewSpotLight creates a spot light at position shining along direction.
// Points more than angleDegrees off the direction are not lit.
func NewSpotLight(position, direction core.Vec3, angleDegrees float64, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      Spot,
		Position:  position,
		Direction: direction.Normalize(),
		Angle:     angleDegrees,
		Color:     color,
		Intensity: intensity,
	}
}

// NewDirectionalLight creates a light whose rays all travel along direction
func NewDirectionalLight(direction, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      Directional,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

// ShadowRay returns the ray from p toward the light. For point and spot
// lights the direction is left unnormalized so that t = 1 lands exactly on
// the light position.
func (l Light) ShadowRay(p core.Vec3) core.Ray {
	if l.Type == Directional {
		return core.NewRay(p, l.Direction.Negate())
	}
	return core.NewRay(p, l.Position.Subtract(p))
}

// ShadowRange is the largest shadow ray parameter at which a shape still
// blocks the light: 1 for positioned lights, unbounded for directional ones
func (l Light) ShadowRange() float64 {
	if l.Type == Directional {
		return math.Inf(1)
	}
	return 1
}

// DirectionFrom returns the unit vector from p toward the light
func (l Light) DirectionFrom(p core.Vec3) core.Vec3 {
	if l.Type == Directional {
		return l.Direction.Negate()
	}
	return l.Position.Subtract(p).Normalize()
}

// Illuminates reports whether p lies inside a spot light's cone. Point and
// directional lights reach every point.
func (l Light) Illuminates(p core.Vec3) bool {
	if l.Type != Spot {
		return true
	}
	toPoint := p.Subtract(l.Position).Normalize()
	return l.Direction.Dot(toPoint) > math.Cos(l.Angle*math.Pi/180.0)
}

// Radiance returns the light color, scaled by Intensity when scaled is true
func (l Light) Radiance(scaled bool) core.Vec3 {
	if scaled {
		return l.Color.Multiply(l.Intensity)
	}
	return l.Color
}

// Validate rejects spot and directional lights without a usable direction
// and spot cones outside (0°, 180°)
func (l Light) Validate() error {
	switch l.Type {
	case Point:
		return nil
	case Spot:
		if !(l.Angle > 0 && l.Angle < 180) {
			return errors.New("spot light angle must be between 0 and 180 degrees")
		}
	case Directional:
	default:
		return errors.New("unknown light type")
	}
	if l.Direction.IsZero() || math.IsNaN(l.Direction.Length()) {
		return errors.New("light direction must be non-zero")
	}
	return nil
}
