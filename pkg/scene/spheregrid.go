package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of gridSize x gridSize spheres on a floor.
// It exists mostly to exercise the linear closest-hit scan with many shapes.
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	const gridSize = 8
	const spacing = 1.0
	const radius = 0.35

	defaultCameraConfig := geometry.CameraConfig{
		Position:         core.NewVec3(0, 2.5, 4),
		ViewportWidth:    1.6,
		ViewportHeight:   0.9,
		ViewportDistance: 1.0,
		Cols:             640,
		Rows:             360,
		Background:       core.NewVec3(0.05, 0.05, 0.08),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Name:         "spheregrid",
		Ambient:      core.NewVec3(0.2, 0.2, 0.2),
		CameraConfig: cameraConfig,
	}

	s.AddShape(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.New(core.Splat(0.3), core.Splat(0.5), core.Splat(0), 1),
	))

	offset := float64(gridSize-1) * spacing / 2
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			// Hue walks around the color wheel along the grid
			hue := float64(i*gridSize+j) * 360.0 / float64(gridSize*gridSize)
			color := oklchToRGB(0.7, 0.15, hue)

			center := core.NewVec3(float64(i)*spacing-offset, radius, -float64(j)*spacing-1.5)
			mat := material.FromColor(color)
			mat.Shininess = 20
			s.AddShape(geometry.NewSphere(center, radius, mat))
		}
	}

	s.AddLight(lights.NewWhiteLight(core.NewVec3(-3, 6, 2)))
	s.AddLight(lights.NewPointLight(core.NewVec3(4, 3, -2), core.NewVec3(0.4, 0.4, 0.5), 0.5))

	return s
}
