package material

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Default reflectance weights used by Default and FromColor
const (
	DefaultAmbient   = 0.2
	DefaultDiffuse   = 0.7
	DefaultSpecular  = 0.3
	DefaultShininess = 5.0
)

// Material holds the Phong reflectance coefficients of a surface.
// Each coefficient is weighted per color channel.
type Material struct {
	Ambient   core.Vec3 // Response to the scene's ambient light
	Diffuse   core.Vec3 // Matte response to light arriving at an angle
	Specular  core.Vec3 // Glossy highlight response
	Shininess float64   // Phong exponent, must be positive
}

// New creates a material from per-channel coefficients
func New(ambient, diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewUniform creates a material whose three coefficients are the same color
func NewUniform(k core.Vec3, shininess float64) Material {
	return New(k, k, k, shininess)
}

// Default returns a white material with the default weights
func Default() Material {
	return FromColor(core.Splat(1))
}

// FromColor tints the default ambient and diffuse weights by color.
// The specular weight stays white so highlights take the light's color.
func FromColor(color core.Vec3) Material {
	return Material{
		Ambient:   color.Multiply(DefaultAmbient),
		Diffuse:   color.Multiply(DefaultDiffuse),
		Specular:  core.Splat(DefaultSpecular),
		Shininess: DefaultShininess,
	}
}

// Validate reports coefficients that cannot produce a meaningful shade
func (m Material) Validate() error {
	if m.Shininess <= 0 {
		return fmt.Errorf("shininess must be positive, got %g", m.Shininess)
	}
	return nil
}
