package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Integrator defines the interface for turning a primary ray into a color
type Integrator interface {
	// RayColor returns the linear color seen along ray and whether any shape
	// was hit. A miss returns the camera background.
	RayColor(ray core.Ray, scene *scene.Scene) (core.Vec3, bool)
}
