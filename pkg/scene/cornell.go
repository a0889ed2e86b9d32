package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewCornellScene creates a box-shaped room built from five planes with a
// sphere and a block on the floor, lit by a single point light under the ceiling
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Position:         core.NewVec3(0, 1, 3.5),
		ViewportWidth:    1,
		ViewportHeight:   1,
		ViewportDistance: 1.2,
		Cols:             400,
		Rows:             400,
		Background:       core.NewVec3(0, 0, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:         "cornell",
		Ambient:      core.NewVec3(0.15, 0.15, 0.15),
		CameraConfig: cameraConfig,
	}

	matte := func(c core.Vec3) material.Material {
		return material.New(c, c, core.Splat(0), 1)
	}
	white := matte(core.NewVec3(0.73, 0.73, 0.73))
	red := matte(core.NewVec3(0.65, 0.05, 0.05))
	green := matte(core.NewVec3(0.12, 0.45, 0.15))

	// Room spans x in [-1,1], y in [0,2], z in [-2,0]; walls face inward
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), white))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), white))
	s.AddShape(geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red))
	s.AddShape(geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green))

	glossy := material.NewUniform(core.NewVec3(0.6, 0.6, 0.6), 40)
	s.AddShape(geometry.NewSphere(core.NewVec3(-0.4, 0.35, -1.2), 0.35, glossy))
	s.AddShape(geometry.NewBox(core.NewVec3(0.4, 0.3, -1.4), core.NewVec3(0.25, 0.3, 0.25), white))

	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 1.9, -1)))

	return s
}
