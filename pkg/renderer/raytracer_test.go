package renderer

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// MockPresenter counts Display calls
type MockPresenter struct {
	calls int
	err   error
}

func (m *MockPresenter) Display() error {
	m.calls++
	return m.err
}

// newFloorScene creates a 3x3 view of a floor at y = -1 lit from straight
// above pixel (1, 2), whose primary ray hits the floor at (0, -1, -1.5)
func newFloorScene() *scene.Scene {
	s := scene.New(core.Splat(0.2))
	s.CameraConfig = geometry.CameraConfig{
		Position:         core.NewVec3(0, 0, 0),
		ViewportWidth:    2,
		ViewportHeight:   2,
		ViewportDistance: 1,
		Cols:             3,
		Rows:             3,
		Background:       core.NewVec3(0.1, 0.2, 0.3),
	}
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0),
		material.New(core.Splat(0.3), core.Splat(0.7), core.Splat(0), 1)))
	s.AddLight(lights.NewWhiteLight(core.NewVec3(0, 3, -1.5)))
	return s
}

func TestRaytracer_EmptySceneIsBackground(t *testing.T) {
	s := scene.NewEmptyScene(geometry.CameraConfig{Cols: 16, Rows: 9})
	rt := NewRaytracer(s, integrator.PhongConfig{})

	img, stats := rt.RenderImage()
	expected := ToRGBA(s.CameraConfig.Background)

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 9 {
		t.Fatalf("Expected 16x9 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if got := img.RGBAAt(x, y); got != expected {
				t.Fatalf("Pixel (%d, %d): expected background %v, got %v", x, y, expected, got)
			}
		}
	}
	if stats.Pixels != 16*9 || stats.Hits != 0 || stats.ShadowRays != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRaytracer_ShadowAtFixedPixel(t *testing.T) {
	s := newFloorScene()
	rt := NewRaytracer(s, integrator.PhongConfig{})

	before, _ := rt.RenderImage()
	lit := before.RGBAAt(1, 2)

	// Occluder between the floor point and the light, clear of the primary ray
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, -1.5), 0.5, material.Default()))
	after, _ := rt.RenderImage()
	shadowed := after.RGBAAt(1, 2)

	// Ambient only: 0.3 * 0.2 = 0.06
	ambientOnly := ToRGBA(core.Splat(0.06))
	if shadowed != ambientOnly {
		t.Errorf("Expected shadowed pixel %v, got %v", ambientOnly, shadowed)
	}
	if lit.R <= shadowed.R || lit.G <= shadowed.G || lit.B <= shadowed.B {
		t.Errorf("Expected lit pixel %v to be brighter than shadowed %v", lit, shadowed)
	}

	// Removing the occluder restores the lit pixel
	if err := s.RemoveShape(1); err != nil {
		t.Fatal(err)
	}
	restored, _ := rt.RenderImage()
	if got := restored.RGBAAt(1, 2); got != lit {
		t.Errorf("Expected %v after removing occluder, got %v", lit, got)
	}
}

func TestRaytracer_RenderFrameStats(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})

	// Only the bottom row looks down at the floor; the middle and top rows
	// point level or upward and see it behind the observer
	_, stats := rt.RenderImage()
	if stats.Pixels != 9 || stats.Hits != 3 || stats.ShadowRays != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRaytracer_SurfaceSizeMismatch(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})
	presenter := &MockPresenter{}
	rt.SetPresenter(presenter)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	_, err := rt.RenderFrame(img)
	if !errors.Is(err, ErrSurfaceSize) {
		t.Fatalf("Expected ErrSurfaceSize, got %v", err)
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("No pixel should be written to a mismatched surface")
		}
	}
	if presenter.calls != 0 {
		t.Errorf("Presenter should not be signaled, got %d calls", presenter.calls)
	}
}

func TestRaytracer_OffsetSurface(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})
	reference, _ := rt.RenderImage()

	img := image.NewRGBA(image.Rect(10, 20, 13, 23))
	if _, err := rt.RenderFrame(img); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if got, want := img.RGBAAt(11, 22), reference.RGBAAt(1, 2); got != want {
		t.Errorf("Expected %v at offset pixel, got %v", want, got)
	}
}

func TestRaytracer_Presenter(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})
	presenter := &MockPresenter{}
	rt.SetPresenter(presenter)

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if _, err := rt.RenderFrame(img); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if presenter.calls != 1 {
		t.Errorf("Expected 1 Display call, got %d", presenter.calls)
	}

	presenter.err = errors.New("bus error")
	if _, err := rt.RenderFrame(img); !errors.Is(err, presenter.err) {
		t.Errorf("Expected presenter error, got %v", err)
	}
}

func TestRaytracer_Pick(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})

	result := rt.Pick(1, 2)
	if !result.Hit || result.ShapeIndex != 0 {
		t.Fatalf("Expected floor hit, got %+v", result)
	}
	if !result.Point.ApproxEqual(core.NewVec3(0, -1, -1.5), 1e-9) {
		t.Errorf("Expected point (0, -1, -1.5), got %v", result.Point)
	}
	if result.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0, 1, 0), got %v", result.Normal)
	}
	if math.Abs(result.T-math.Sqrt(3.25)) > 1e-9 {
		t.Errorf("Expected t %v, got %v", math.Sqrt(3.25), result.T)
	}
	if result.ShapeType != "*geometry.Plane" {
		t.Errorf("Expected *geometry.Plane, got %q", result.ShapeType)
	}

	miss := rt.Pick(1, 0)
	if miss.Hit || miss.ShapeIndex != -1 {
		t.Errorf("Expected miss, got %+v", miss)
	}
	if miss.Color != ToRGBA(core.NewVec3(0.1, 0.2, 0.3)) {
		t.Errorf("Expected background color on miss, got %v", miss.Color)
	}

	if outside := rt.Pick(5, 5); outside.Hit {
		t.Errorf("Expected pixels outside the grid to miss")
	}
}

func TestRaytracer_CameraTranslate(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})

	// Same pixel, longer way down to the floor
	rt.Camera().Translate(core.NewVec3(0, 5, 0))
	result := rt.Pick(1, 2)
	if !result.Hit {
		t.Fatal("Expected floor hit after moving up")
	}
	if math.Abs(result.Point.Y+1) > 1e-9 {
		t.Errorf("Expected hit on the floor, got %v", result.Point)
	}
	if result.T <= math.Sqrt(3.25) {
		t.Errorf("Expected a longer ray after moving up, got t=%v", result.T)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"over range clamps", core.NewVec3(2, 1.5, 100), color.RGBA{255, 255, 255, 255}},
		{"negative clamps", core.NewVec3(-1, -0.5, 0), color.RGBA{0, 0, 0, 255}},
		{"truncates", core.NewVec3(0.999, 0.5, 0.1), color.RGBA{254, 127, 25, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.input); got != tt.expected {
				t.Errorf("ToRGBA(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRaytracer_RenderImageSkipsPresenter(t *testing.T) {
	rt := NewRaytracer(newFloorScene(), integrator.PhongConfig{})
	presenter := &MockPresenter{}
	rt.SetPresenter(presenter)

	rt.RenderImage()
	if presenter.calls != 0 {
		t.Errorf("RenderImage should not signal the presenter, got %d calls", presenter.calls)
	}
}
