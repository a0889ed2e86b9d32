package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates a red sphere in front of a green floor and a blue
// back wall, lit by a red and a blue point light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	// 16:9 image plane, 3.2 x 1.8 world units, one unit in front of the observer
	defaultCameraConfig := geometry.CameraConfig{
		Position:         core.NewVec3(0, 0, 0),
		ViewportWidth:    3.2,
		ViewportHeight:   1.8,
		ViewportDistance: 1.0,
		Cols:             960,
		Rows:             540,
		Background:       core.NewVec3(0, 0, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:         "default",
		Ambient:      core.NewVec3(0.3, 0.3, 0.3),
		CameraConfig: cameraConfig,
	}

	// Create materials
	sphereMaterial := material.NewUniform(core.NewVec3(0.7, 0.2, 0.2), 10)
	floorMaterial := material.New(
		core.NewVec3(0.2, 0.7, 0.2),
		core.NewVec3(0.2, 0.7, 0.2),
		core.NewVec3(0, 0, 0),
		1,
	)
	wallMaterial := material.New(
		core.NewVec3(0.3, 0.3, 0.7),
		core.NewVec3(0.3, 0.3, 0.7),
		core.NewVec3(0, 0, 0),
		1,
	)

	// The sphere touches the image plane from behind
	sphereRadius := 1.0
	sphereCenter := core.NewVec3(0, 0, -(cameraConfig.ViewportDistance + sphereRadius))

	s.AddShape(geometry.NewSphere(sphereCenter, sphereRadius, sphereMaterial))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1.8, 0), core.NewVec3(0, 1, 0), floorMaterial))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), wallMaterial))

	s.AddLight(lights.NewPointLight(core.NewVec3(-0.8, 0.8, 0), core.NewVec3(1, 0, 0), 0.7))
	s.AddLight(lights.NewPointLight(core.NewVec3(0.8, 0.8, 0), core.NewVec3(0, 0, 1), 0.7))

	return s
}
