package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func mergeOverrides(base geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(base, overrides[0])
	}
	return base
}

// NewSimpleScene creates a flattened block and a pyramid built from
// triangles, standing on a gray floor in front of a blue wall
func NewSimpleScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0, 0.4, 0.2),
		ViewportWidth:    0.032,
		ViewportHeight:   0.018,
		ViewportDistance: 0.01,
		Cols:             960,
		Rows:             540,
		Background:       core.NewVec3(0, 0, 0),
	}, cameraOverrides)

	s := &Scene{
		Name:         "simple",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0),
		material.New(core.Splat(0.4), core.Splat(0.4), core.Splat(0), 3)))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1),
		material.New(core.NewVec3(0.4, 0.4, 0.7), core.NewVec3(0.4, 0.4, 0.7), core.Splat(0), 3)))

	green := material.NewUniform(core.NewVec3(0.3, 0.7, 0.3), 10)
	s.AddShape(geometry.NewBox(core.NewVec3(-0.5, -0.45, -2), core.NewVec3(0.5, 0.05, 0.5), green))

	// Square pyramid with its base on the floor
	gold := material.NewUniform(core.NewVec3(0.9, 0.7, 0.3), 10)
	base := core.NewVec3(0.3, -0.5, -2.2)
	apex := base.Add(core.NewVec3(0.5, math.Sqrt(3)/2, 0.5))
	corners := []core.Vec3{
		base,
		base.Add(core.NewVec3(1, 0, 0)),
		base.Add(core.NewVec3(1, 0, 1)),
		base.Add(core.NewVec3(0, 0, 1)),
	}
	for i := range corners {
		next := corners[(i+1)%len(corners)]
		s.AddShape(geometry.NewTriangle(corners[i], next, apex, gold))
	}

	s.AddLight(lights.NewWhiteLight(core.NewVec3(-1, 1.5, 0)))
	s.AddLight(lights.NewPointLight(core.NewVec3(1.5, 1, -1), core.NewVec3(0.5, 0.5, 0.5), 1))

	return s
}

// NewShadowScene creates a sphere floating above a floor with a light
// directly overhead, so the sphere casts a shadow straight down
func NewShadowScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0, 0, 0),
		ViewportWidth:    2,
		ViewportHeight:   2,
		ViewportDistance: 1,
		Cols:             200,
		Rows:             200,
		Background:       core.NewVec3(0, 0, 0),
	}, cameraOverrides)

	s := &Scene{
		Name:         "shadow",
		Ambient:      core.NewVec3(0.2, 0.2, 0.2),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0),
		material.New(core.Splat(0.3), core.Splat(0.7), core.Splat(0), 1)))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, material.Default()))
	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 3, -3)))

	return s
}

// NewEmptyScene creates a scene with a single light and no shapes.
// Every pixel renders as the background.
func NewEmptyScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0, 0, 0),
		ViewportWidth:    1.6,
		ViewportHeight:   0.9,
		ViewportDistance: 1,
		Cols:             320,
		Rows:             180,
		Background:       core.NewVec3(0.1, 0.1, 0.2),
	}, cameraOverrides)

	s := &Scene{
		Name:         "empty",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}
	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 5, 0)))

	return s
}

// NewBoxScene creates a single cube resting on a floor
func NewBoxScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeOverrides(geometry.CameraConfig{
		Position:         core.NewVec3(0.6, 0.8, 1),
		ViewportWidth:    1.6,
		ViewportHeight:   0.9,
		ViewportDistance: 1,
		Cols:             640,
		Rows:             360,
		Background:       core.NewVec3(0.05, 0.05, 0.05),
	}, cameraOverrides)

	s := &Scene{
		Name:         "box",
		Ambient:      core.NewVec3(0.25, 0.25, 0.25),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0),
		material.New(core.Splat(0.4), core.Splat(0.6), core.Splat(0), 1)))
	s.AddShape(geometry.NewBox(core.NewVec3(0, 0, -2), core.Splat(0.5),
		material.NewUniform(core.NewVec3(0.8, 0.4, 0.1), 15)))
	s.AddLight(lights.NewWhiteLight(core.NewVec3(-2, 3, 0)))

	return s
}
