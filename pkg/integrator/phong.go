package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// PhongConfig controls the local illumination model
type PhongConfig struct {
	ShadowEpsilon float64 // Minimum occluder distance along a shadow ray; 0 means scene.ShadowEpsilon
	UseIntensity  bool    // Scale each light's color by its Intensity
}

// PhongIntegrator shades the closest hit with ambient, diffuse and specular
// terms from every light, testing one shadow ray per light. Rays never bounce.
type PhongIntegrator struct {
	config PhongConfig
}

// NewPhongIntegrator creates a new Phong integrator
func NewPhongIntegrator(config PhongConfig) *PhongIntegrator {
	if config.ShadowEpsilon <= 0 {
		config.ShadowEpsilon = scene.ShadowEpsilon
	}
	return &PhongIntegrator{config: config}
}

// Config returns the effective configuration
func (p *PhongIntegrator) Config() PhongConfig {
	return p.config
}

// RayColor computes the color for a single primary ray
func (p *PhongIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	shape, t := s.ClosestHit(ray)
	if shape == nil {
		return s.CameraConfig.Background, false
	}
	return p.Shade(s, shape, ray, ray.At(t)), true
}

// Shade returns the unclamped illumination of point on shape as seen along ray
func (p *PhongIntegrator) Shade(s *scene.Scene, shape geometry.Shape, ray core.Ray, point core.Vec3) core.Vec3 {
	mat := shape.GetMaterial()
	n := shape.NormalAt(point)
	v := ray.Direction.Negate().Normalize()
	ambient := mat.Ambient.MultiplyVec(s.Ambient)

	color := core.Vec3{}
	for _, light := range s.Lights {
		l := light.DirectionFrom(point)
		r := n.Multiply(2 * l.Dot(n)).Subtract(l)

		nl := max(n.Dot(l), 0)
		rv := max(r.Dot(v), 0)
		if !light.Illuminates(point) || s.OccludedWithin(light.ShadowRay(point), p.config.ShadowEpsilon, light.ShadowRange()) {
			nl, rv = 0, 0
		}

		radiance := light.Radiance(p.config.UseIntensity)
		diffuse := mat.Diffuse.Multiply(nl).MultiplyVec(radiance)
		specular := mat.Specular.Multiply(math.Pow(rv, mat.Shininess)).MultiplyVec(radiance)

		// Ambient is accumulated once per light
		color = color.Add(ambient).Add(diffuse).Add(specular)
	}

	return color
}
