package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ErrSurfaceSize is returned when a surface does not match the camera's pixel grid
var ErrSurfaceSize = errors.New("surface size does not match camera")

// Surface is a pixel-addressable output. *image.RGBA satisfies it.
type Surface interface {
	Bounds() image.Rectangle
	SetRGBA(x, y int, c color.RGBA)
}

// Presenter is signaled once a frame has been fully written
type Presenter interface {
	Display() error
}

// Raytracer renders a scene one frame at a time
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	presenter  Presenter
}

// NewRaytracer creates a raytracer for s using the scene's camera configuration
func NewRaytracer(s *scene.Scene, config integrator.PhongConfig) *Raytracer {
	return &Raytracer{
		scene:      s,
		camera:     geometry.NewCamera(s.CameraConfig),
		integrator: integrator.NewPhongIntegrator(config),
	}
}

// SetIntegrator replaces the shading model
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// SetPresenter sets the presenter signaled after each frame; nil disables it
func (rt *Raytracer) SetPresenter(p Presenter) {
	rt.presenter = p
}

// Scene returns the scene being rendered. Mutate it only between frames.
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// Camera returns the camera. Move it only between frames.
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Size returns the pixel grid dimensions
func (rt *Raytracer) Size() (cols, rows int) {
	return rt.camera.Size()
}

// RenderFrame writes every pixel of surface exactly once, then signals the
// presenter. The surface bounds must match the camera grid.
func (rt *Raytracer) RenderFrame(surface Surface) (FrameStats, error) {
	cols, rows := rt.camera.Size()
	bounds := surface.Bounds()
	if bounds.Dx() != cols || bounds.Dy() != rows {
		return FrameStats{}, fmt.Errorf("%w: surface is %dx%d, camera is %dx%d",
			ErrSurfaceSize, bounds.Dx(), bounds.Dy(), cols, rows)
	}

	stats := rt.render(surface)

	if rt.presenter != nil {
		if err := rt.presenter.Display(); err != nil {
			return stats, fmt.Errorf("failed to present frame: %w", err)
		}
	}

	return stats, nil
}

// RenderImage renders one frame into a new image sized to the camera grid.
// The presenter is not signaled.
func (rt *Raytracer) RenderImage() (*image.RGBA, FrameStats) {
	cols, rows := rt.camera.Size()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	return img, rt.render(img)
}

// render shades every pixel of surface, whose bounds were already checked
func (rt *Raytracer) render(surface Surface) FrameStats {
	cols, rows := rt.camera.Size()
	bounds := surface.Bounds()

	start := time.Now()
	stats := FrameStats{Pixels: cols * rows}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c, hit := rt.integrator.RayColor(rt.camera.PrimaryRay(col, row), rt.scene)
			if hit {
				stats.Hits++
			}
			surface.SetRGBA(bounds.Min.X+col, bounds.Min.Y+row, ToRGBA(c))
		}
	}

	stats.ShadowRays = stats.Hits * len(rt.scene.Lights)
	stats.Duration = time.Since(start)

	core.Logger().Debug("frame rendered",
		"scene", rt.scene.Name,
		"pixels", stats.Pixels,
		"hits", stats.Hits,
		"duration", stats.Duration)

	return stats
}

// PickResult describes what the primary ray through a pixel hits
type PickResult struct {
	Col        int            `json:"col"`
	Row        int            `json:"row"`
	Hit        bool           `json:"hit"`
	ShapeIndex int            `json:"shapeIndex"` // -1 on a miss
	ShapeType  string         `json:"shapeType,omitempty"`
	T          float64        `json:"t,omitempty"`
	Point      core.Vec3      `json:"point"`
	Normal     core.Vec3      `json:"normal"`
	Color      color.RGBA     `json:"color"`
	Shape      geometry.Shape `json:"-"`
}

// Pick traces the primary ray through pixel (col, row) and reports the
// closest shape along it. Pixels outside the grid report a miss.
func (rt *Raytracer) Pick(col, row int) PickResult {
	result := PickResult{Col: col, Row: row, ShapeIndex: -1}

	cols, rows := rt.camera.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return result
	}

	ray := rt.camera.PrimaryRay(col, row)
	c, _ := rt.integrator.RayColor(ray, rt.scene)
	result.Color = ToRGBA(c)

	index, t := rt.scene.ClosestHitIndex(ray)
	if index < 0 {
		return result
	}

	shape := rt.scene.Shapes[index]
	result.Hit = true
	result.ShapeIndex = index
	result.ShapeType = fmt.Sprintf("%T", shape)
	result.Shape = shape
	result.T = t
	result.Point = ray.At(t)
	result.Normal = shape.NormalAt(result.Point)
	return result
}

// ToRGBA clamps a linear color to [0,1] and truncates each channel to a byte
func ToRGBA(c core.Vec3) color.RGBA {
	b := c.Clamp(0, 1).ToByteRange()
	return color.RGBA{
		R: uint8(b.X),
		G: uint8(b.Y),
		B: uint8(b.Z),
		A: 255,
	}
}
