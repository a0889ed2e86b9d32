package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Floor and back wall shared by the round-shape scenes
var (
	roundFloor = material.New(core.Splat(0.4), core.Splat(0.4), core.Splat(0), 3)
	roundWall  = material.New(core.NewVec3(0.4, 0.4, 0.7), core.NewVec3(0.4, 0.4, 0.7), core.Splat(0), 3)
)

// NewCylinderScene creates a tilted capped cylinder between two spheres
func NewCylinderScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0, 0.9, 2),
		ViewportWidth:    1.6,
		ViewportHeight:   0.9,
		ViewportDistance: 0.7,
		Cols:             960,
		Rows:             540,
		Background:       core.NewVec3(0, 0, 0),
	}, cameraOverrides)

	s := &Scene{
		Name:         "cylinder",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0),
		material.New(core.NewVec3(0.4, 0.4, 0), core.NewVec3(0.4, 0.4, 0), core.Splat(0), 3)))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), roundWall))

	s.AddShape(geometry.NewSphere(core.NewVec3(-1.55, -0.05, -1.55), 0.45,
		material.NewUniform(core.NewVec3(0.7, 0.2, 0.2), 10)))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.55, -0.05, -1.55), 0.45,
		material.NewUniform(core.NewVec3(0.2, 0.7, 0.2), 10)))

	// Unit-height cylinder leaning along (1, 1, 1)
	base := core.NewVec3(-0.3, 0.25, -1.5)
	top := base.Add(core.NewVec3(1, 1, 1).Normalize())
	s.AddShape(geometry.NewCylinder(base, top, 0.33, true,
		material.NewUniform(core.NewVec3(0.2, 0.2, 0.9), 150)))

	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 2, -1.5)))

	return s
}

// NewConeScene creates a capped cone under a sphere, flanked by two pillars
func NewConeScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0, 0.3, 0),
		ViewportWidth:    1.6,
		ViewportHeight:   0.9,
		ViewportDistance: 0.6,
		Cols:             960,
		Rows:             540,
		Background:       core.NewVec3(0, 0, 0),
	}, cameraOverrides)

	s := &Scene{
		Name:         "cone",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), roundFloor))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -3.5), core.NewVec3(0, 0, 1), roundWall))

	pillar := material.NewUniform(core.NewVec3(0.2, 0.2, 0.9), 150)
	for _, x := range []float64{-1.85, 1.85} {
		base := core.NewVec3(x, -0.5, -3)
		s.AddShape(geometry.NewCylinder(base, base.Add(core.NewVec3(0, 1.4, 0)), 0.5, true, pillar))
	}

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1.41, -2.75), 0.65,
		material.NewUniform(core.NewVec3(0.7, 0.2, 0.2), 10)))

	coneBase := core.NewVec3(0, -0.5, -2.75)
	s.AddShape(geometry.NewCone(coneBase, 0.65, coneBase.Add(core.NewVec3(0, 1.26, 0)), 0, true,
		material.New(core.NewVec3(0.2, 0.9, 0.2), core.NewVec3(0.2, 0.9, 0.2), core.Splat(1), 500)))

	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 0.8, 0)))

	return s
}

// NewCubeMeshScene creates a triangle-mesh cube with thin colored cylinders
// running along its front edges like coordinate axes
func NewCubeMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0.5, 1.5, 1.5),
		ViewportWidth:    3.2,
		ViewportHeight:   1.8,
		ViewportDistance: 1.0,
		Cols:             960,
		Rows:             540,
		Background:       core.NewVec3(0, 0, 0),
	}, cameraOverrides)

	s := &Scene{
		Name:         "cube",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), roundFloor))

	cube := geometry.NewCubeMesh(material.NewUniform(core.NewVec3(0.9, 0.7, 0.3), 10))
	cube.Translate(core.NewVec3(0, 1, -2))
	s.AddShape(cube)

	// Axis lines start at the cube's front-bottom-left corner
	corner := core.NewVec3(0, 1, -1)
	const axisRadius, axisLength = 0.03, 2000.0
	red := material.NewUniform(core.NewVec3(0.9, 0.1, 0.1), 10)
	green := material.NewUniform(core.NewVec3(0.1, 0.9, 0.1), 10)
	blue := material.NewUniform(core.NewVec3(0.1, 0.1, 0.9), 10)
	axes := []struct {
		origin, direction core.Vec3
		mat               material.Material
	}{
		{corner, core.NewVec3(1, 0, 0), red},
		{corner, core.NewVec3(0, 1, 0), green},
		{corner, core.NewVec3(0, 0, -1), blue},
		{corner.Add(core.NewVec3(0, 1, 0)), core.NewVec3(1, 0, 0), red},
		{corner.Add(core.NewVec3(0, 0, -1)), core.NewVec3(0, 1, 0), green},
		{corner.Add(core.NewVec3(1, 0, 0)), core.NewVec3(0, 1, 0), green},
		{corner.Add(core.NewVec3(0, 1, 0)), core.NewVec3(0, 0, -1), blue},
	}
	for _, axis := range axes {
		top := axis.origin.Add(axis.direction.Multiply(axisLength))
		s.AddShape(geometry.NewCylinder(axis.origin, top, axisRadius, true, axis.mat))
	}

	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 0.8, 0)))

	return s
}
