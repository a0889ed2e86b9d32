package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrInvalidSceneFile is returned for scene files that parse but describe
// something the renderer cannot build
var ErrInvalidSceneFile = errors.New("invalid scene file")

// Triple is a JSON-friendly [x, y, z] vector
type Triple [3]float64

// Vec3 converts the triple to a core.Vec3
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// MaterialData describes a Phong material. Color, when set, fills in any
// coefficient that is missing, the way material.FromColor does.
type MaterialData struct {
	Color     *Triple `json:"color,omitempty"`
	Ambient   *Triple `json:"ambient,omitempty"`
	Diffuse   *Triple `json:"diffuse,omitempty"`
	Specular  *Triple `json:"specular,omitempty"`
	Shininess float64 `json:"shininess,omitempty"`
}

// ShapeData describes a single shape. Only the fields used by Type are read.
type ShapeData struct {
	Type string `json:"type"` // sphere, plane, triangle, box, cylinder, cone or mesh

	Center    Triple   `json:"center,omitempty"`    // sphere, box
	Radius    float64  `json:"radius,omitempty"`    // sphere, cylinder, cone base
	Point     Triple   `json:"point,omitempty"`     // plane
	Normal    Triple   `json:"normal,omitempty"`    // plane
	Vertices  []Triple `json:"vertices,omitempty"`  // triangle, mesh
	HalfSize  Triple   `json:"halfSize,omitempty"`  // box
	Base      Triple   `json:"base,omitempty"`      // cylinder, cone
	Top       Triple   `json:"top,omitempty"`       // cylinder, cone
	TopRadius float64  `json:"topRadius,omitempty"` // cone; 0 is pointed
	Capped    *bool    `json:"capped,omitempty"`    // cylinder, cone; default true
	Faces     []int    `json:"faces,omitempty"`     // mesh, three vertex indices per triangle

	Material MaterialData `json:"material"`
}

// LightData describes a point, spot or directional light
type LightData struct {
	Type      string   `json:"type,omitempty"`      // point (default), spot or directional
	Position  Triple   `json:"position"`            // point, spot
	Direction Triple   `json:"direction,omitempty"` // spot, directional
	Angle     float64  `json:"angle,omitempty"`     // spot half-angle in degrees
	Color     Triple   `json:"color"`
	Intensity *float64 `json:"intensity,omitempty"`
}

// CameraData mirrors the camera configuration; zero fields keep the defaults
type CameraData struct {
	Position         Triple  `json:"position"`
	ViewportWidth    float64 `json:"viewportWidth"`
	ViewportHeight   float64 `json:"viewportHeight"`
	ViewportDistance float64 `json:"viewportDistance"`
	Cols             int     `json:"cols"`
	Rows             int     `json:"rows"`
	Background       Triple  `json:"background"`
}

// SceneFile contains all parsed JSON scene data
type SceneFile struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"`
	Ambient     Triple      `json:"ambient"`
	Camera      CameraData  `json:"camera"`
	Shapes      []ShapeData `json:"shapes"`
	Lights      []LightData `json:"lights"`
}

var shapeTypes = map[string]bool{
	"sphere":   true,
	"plane":    true,
	"triangle": true,
	"box":      true,
	"cylinder": true,
	"cone":     true,
	"mesh":     true,
}

var lightTypes = map[string]bool{
	"":            true,
	"point":       true,
	"spot":        true,
	"directional": true,
}

// IsCapped reports whether a cylinder or cone is closed; unset means closed
func (d ShapeData) IsCapped() bool {
	return d.Capped == nil || *d.Capped
}

// ParseScene parses JSON scene content from an io.Reader
func ParseScene(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	for i, shape := range file.Shapes {
		if !shapeTypes[shape.Type] {
			return nil, fmt.Errorf("%w: shape %d has unknown type %q", ErrInvalidSceneFile, i, shape.Type)
		}
		if shape.Type == "triangle" && len(shape.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle %d needs 3 vertices, got %d", ErrInvalidSceneFile, i, len(shape.Vertices))
		}
		if shape.Type == "mesh" && (len(shape.Faces) == 0 || len(shape.Faces)%3 != 0) {
			return nil, fmt.Errorf("%w: mesh %d needs a non-empty multiple of 3 face indices, got %d", ErrInvalidSceneFile, i, len(shape.Faces))
		}
	}

	for i, light := range file.Lights {
		if !lightTypes[light.Type] {
			return nil, fmt.Errorf("%w: light %d has unknown type %q", ErrInvalidSceneFile, i, light.Type)
		}
	}

	return &file, nil
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scene, nil
}

// validateFilePath validates a file path for security issues
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	// Only allow files in a scenes/ directory or the temp directory (for tests)
	if !strings.HasPrefix(cleanPath, "scenes"+string(filepath.Separator)) &&
		!strings.HasPrefix(cleanPath, os.TempDir()) &&
		!strings.Contains(cleanPath, string(filepath.Separator)+"scenes"+string(filepath.Separator)) {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}

	if !strings.EqualFold(filepath.Ext(cleanPath), ".json") {
		return fmt.Errorf("invalid file type: only .json files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
