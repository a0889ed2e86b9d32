package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"simple scene", "simple", false},
		{"shadow scene", "shadow", false},
		{"box scene", "box", false},
		{"cornell scene", "cornell", false},
		{"spheregrid scene", "spheregrid", false},
		{"cylinder scene", "cylinder", false},
		{"cone scene", "cone", false},
		{"cube mesh scene", "cube", false},
		{"empty scene", "empty", false},

		// JSON scenes (by name)
		{"two-lights JSON", "json:two-lights", false},
		{"block-row JSON", "json:block-row", false},
		{"round-shapes JSON", "json:round-shapes", false},

		// JSON scenes (by path)
		{"direct JSON path", "scenes/two-lights.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, "scenes", 0)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.CameraConfig.Cols <= 0 || s.CameraConfig.Rows <= 0 {
				t.Errorf("Scene grid should be positive, got %dx%d", s.CameraConfig.Cols, s.CameraConfig.Rows)
			}
		})
	}
}

func TestCreateScene_Width(t *testing.T) {
	s, err := createScene("default", "scenes", 320)
	if err != nil {
		t.Fatal(err)
	}
	if s.CameraConfig.Cols != 320 || s.CameraConfig.Rows != 180 {
		t.Errorf("Expected 320x180, got %dx%d", s.CameraConfig.Cols, s.CameraConfig.Rows)
	}
}

func TestCreateScene_UnknownIsTyped(t *testing.T) {
	_, err := createScene("nonexistent", "scenes", 0)
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	path, err := defaultOutputPath("shadow", "bmp")
	if err != nil {
		t.Fatalf("defaultOutputPath failed: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join("output", "shadow", "render_")) || !strings.HasSuffix(path, ".bmp") {
		t.Errorf("Unexpected output path %q", path)
	}
	if info, err := os.Stat(filepath.Join(dir, "output", "shadow")); err != nil || !info.IsDir() {
		t.Errorf("Expected output directory to be created")
	}

	if _, err := defaultOutputPath("shadow", "gif"); !errors.Is(err, loaders.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
