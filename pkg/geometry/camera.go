package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidCamera is returned by CameraConfig.Validate
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position         core.Vec3 // Observer position
	ViewportWidth    float64   // Image plane width in world units
	ViewportHeight   float64   // Image plane height in world units
	ViewportDistance float64   // Distance from the observer to the image plane along -Z
	Cols             int       // Horizontal resolution in pixels
	Rows             int       // Vertical resolution in pixels
	Background       core.Vec3 // Color of pixels whose primary ray hits nothing, in [0,1]
}

// Validate reports configurations that would produce degenerate rays
func (c CameraConfig) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidCamera, c.Cols, c.Rows)
	}
	if !(c.ViewportWidth > 0) || !(c.ViewportHeight > 0) {
		return fmt.Errorf("%w: viewport size must be positive, got %gx%g", ErrInvalidCamera, c.ViewportWidth, c.ViewportHeight)
	}
	if !(c.ViewportDistance > 0) {
		return fmt.Errorf("%w: viewport distance must be positive, got %g", ErrInvalidCamera, c.ViewportDistance)
	}
	return nil
}

// WithCols returns a copy with the given horizontal resolution and the
// vertical resolution that keeps the viewport aspect ratio.
func (c CameraConfig) WithCols(cols int) CameraConfig {
	c.Cols = cols
	c.Rows = max(1, int(math.Round(float64(cols)*c.ViewportHeight/c.ViewportWidth)))
	return c
}

// Viewport is the image plane the observer looks through. DX and DY are the
// world-space steps between neighbouring pixel centers; DY points up, so
// raster rows move along -DY.
type Viewport struct {
	Center        core.Vec3
	Width, Height float64
	Cols, Rows    int
	DX, DY        core.Vec3
	TopLeft       core.Vec3 // Top-left corner of the image plane
	P00           core.Vec3 // Center of the top-left pixel
}

// NewViewport creates a viewport centered at center
func NewViewport(center core.Vec3, width, height float64, cols, rows int) Viewport {
	dx := core.NewVec3(width/float64(cols), 0, 0)
	dy := core.NewVec3(0, height/float64(rows), 0)
	topLeft := core.NewVec3(center.X-width/2, center.Y+height/2, center.Z)
	p00 := topLeft.Add(dx.Divide(2)).Subtract(dy.Divide(2))

	return Viewport{
		Center:  center,
		Width:   width,
		Height:  height,
		Cols:    cols,
		Rows:    rows,
		DX:      dx,
		DY:      dy,
		TopLeft: topLeft,
		P00:     p00,
	}
}

// translate returns the viewport moved by offset
func (v Viewport) translate(offset core.Vec3) Viewport {
	v.Center = v.Center.Add(offset)
	v.TopLeft = v.TopLeft.Add(offset)
	v.P00 = v.P00.Add(offset)
	return v
}

// Camera is an axis-aligned pinhole observer looking down -Z
type Camera struct {
	Position   core.Vec3
	Background core.Vec3
	viewport   Viewport
}

// NewCamera creates a camera whose image plane sits ViewportDistance in front
// of Position
func NewCamera(config CameraConfig) *Camera {
	center := config.Position.Subtract(core.NewVec3(0, 0, config.ViewportDistance))
	return &Camera{
		Position:   config.Position,
		Background: config.Background,
		viewport:   NewViewport(center, config.ViewportWidth, config.ViewportHeight, config.Cols, config.Rows),
	}
}

// Viewport returns the camera's image plane
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// Size returns the pixel grid dimensions
func (c *Camera) Size() (cols, rows int) {
	return c.viewport.Cols, c.viewport.Rows
}

// SamplePoint returns the world-space center of pixel (col, row)
func (c *Camera) SamplePoint(col, row int) core.Vec3 {
	return c.viewport.P00.
		Add(c.viewport.DX.Multiply(float64(col))).
		Subtract(c.viewport.DY.Multiply(float64(row)))
}

// PrimaryRay returns the unit-direction ray from the observer through pixel (col, row)
func (c *Camera) PrimaryRay(col, row int) core.Ray {
	direction := c.SamplePoint(col, row).Subtract(c.Position).Normalize()
	return core.NewRay(c.Position, direction)
}

// Translate moves the observer and its image plane together
func (c *Camera) Translate(offset core.Vec3) {
	c.Position = c.Position.Add(offset)
	c.viewport = c.viewport.translate(offset)
}

// SetPosition moves the observer to position, keeping the image plane in front of it
func (c *Camera) SetPosition(position core.Vec3) {
	c.Translate(position.Subtract(c.Position))
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// A zero field means "unset", so an override cannot move the camera to the
// origin or make the background black; assign those fields on the result.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Position.IsZero() {
		result.Position = override.Position
	}
	if override.ViewportWidth != 0 {
		result.ViewportWidth = override.ViewportWidth
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.ViewportDistance != 0 {
		result.ViewportDistance = override.ViewportDistance
	}
	if override.Cols != 0 {
		result.Cols = override.Cols
	}
	if override.Rows != 0 {
		result.Rows = override.Rows
	}
	if !override.Background.IsZero() {
		result.Background = override.Background
	}
	return result
}
