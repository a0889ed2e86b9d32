package loaders

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func testImage() *image.RGBA {
	// 2x2: white, red / green, blue
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

// TestSaveAndLoadImage writes each binary format and verifies it decodes back
func TestSaveAndLoadImage(t *testing.T) {
	for _, ext := range []string{"png", "bmp", "tiff"} {
		t.Run(ext, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), "test."+ext)
			if err := SaveImage(testFile, testImage()); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if imageData.Width != 2 || imageData.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}

			expected := []core.Vec3{
				core.NewVec3(1, 1, 1),
				core.NewVec3(1, 0, 0),
				core.NewVec3(0, 1, 0),
				core.NewVec3(0, 0, 1),
			}
			for i, want := range expected {
				if got := imageData.Pixels[i]; !got.ApproxEqual(want, 0.01) {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, got)
				}
			}
			if got := imageData.At(1, 1); !got.ApproxEqual(expected[3], 0.01) {
				t.Errorf("At(1, 1): expected %v, got %v", expected[3], got)
			}
		})
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestEncodeImage_PPM(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, testImage(), "ppm"); err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 255 255\n255 0 0\n0 255 0\n0 0 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		wantErr  bool
	}{
		{"out.png", "png", false},
		{"out.PNG", "png", false},
		{"dir/out.bmp", "bmp", false},
		{"out.tif", "tiff", false},
		{"out.tiff", "tiff", false},
		{"out.ppm", "ppm", false},
		{"out.gif", "", true},
		{"out", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.gif")
	err := SaveImage(testFile, testImage())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(testFile); !os.IsNotExist(statErr) {
		t.Error("No file should be created for an unsupported format")
	}
}

func TestEncodeImage_UnknownFormat(t *testing.T) {
	err := EncodeImage(&strings.Builder{}, testImage(), "webp")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
