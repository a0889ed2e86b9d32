package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// defaultFileCamera is used for every camera field a scene file leaves zero
var defaultFileCamera = geometry.CameraConfig{
	Position:         core.NewVec3(0, 0, 0),
	ViewportWidth:    3.2,
	ViewportHeight:   1.8,
	ViewportDistance: 1.0,
	Cols:             960,
	Rows:             540,
	Background:       core.NewVec3(0, 0, 0),
}

// NewJSONScene loads a JSON scene file and converts it into a validated Scene
func NewJSONScene(filename string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	return FromSceneFile(file, cameraOverrides...)
}

// FromSceneFile converts parsed scene data into a Scene
func FromSceneFile(file *loaders.SceneFile, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.MergeCameraConfig(defaultFileCamera, geometry.CameraConfig{
		Position:         file.Camera.Position.Vec3(),
		ViewportWidth:    file.Camera.ViewportWidth,
		ViewportHeight:   file.Camera.ViewportHeight,
		ViewportDistance: file.Camera.ViewportDistance,
		Cols:             file.Camera.Cols,
		Rows:             file.Camera.Rows,
		Background:       file.Camera.Background.Vec3(),
	})
	cameraConfig = mergeOverrides(cameraConfig, cameraOverrides)

	s := &Scene{
		Name:         file.Name,
		Ambient:      file.Ambient.Vec3(),
		CameraConfig: cameraConfig,
	}

	for i, data := range file.Shapes {
		shape, err := convertShape(data)
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d: %w", ErrInvalidScene, i, err)
		}
		s.AddShape(shape)
	}

	for _, data := range file.Lights {
		intensity := 1.0
		if data.Intensity != nil {
			intensity = *data.Intensity
		}
		s.AddLight(convertLight(data, intensity))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func convertLight(data loaders.LightData, intensity float64) lights.Light {
	switch data.Type {
	case "spot":
		return lights.NewSpotLight(data.Position.Vec3(), data.Direction.Vec3(), data.Angle, data.Color.Vec3(), intensity)
	case "directional":
		return lights.NewDirectionalLight(data.Direction.Vec3(), data.Color.Vec3(), intensity)
	}
	return lights.NewPointLight(data.Position.Vec3(), data.Color.Vec3(), intensity)
}

func convertShape(data loaders.ShapeData) (geometry.Shape, error) {
	mat := convertMaterial(data.Material)

	switch data.Type {
	case "sphere":
		return geometry.NewSphere(data.Center.Vec3(), data.Radius, mat), nil
	case "plane":
		if data.Normal.Vec3().IsZero() {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(data.Point.Vec3(), data.Normal.Vec3(), mat), nil
	case "triangle":
		if len(data.Vertices) != 3 {
			return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(data.Vertices))
		}
		return geometry.NewTriangle(data.Vertices[0].Vec3(), data.Vertices[1].Vec3(), data.Vertices[2].Vec3(), mat), nil
	case "box":
		return geometry.NewBox(data.Center.Vec3(), data.HalfSize.Vec3(), mat), nil
	case "cylinder":
		return geometry.NewCylinder(data.Base.Vec3(), data.Top.Vec3(), data.Radius, data.IsCapped(), mat), nil
	case "cone":
		return geometry.NewCone(data.Base.Vec3(), data.Radius, data.Top.Vec3(), data.TopRadius, data.IsCapped(), mat), nil
	case "mesh":
		vertices := make([]core.Vec3, len(data.Vertices))
		for i, v := range data.Vertices {
			vertices[i] = v.Vec3()
		}
		return geometry.NewMesh(vertices, data.Faces, mat)
	}
	return nil, fmt.Errorf("unknown shape type %q", data.Type)
}

// convertMaterial starts from material.Default or material.FromColor and
// replaces each coefficient given explicitly
func convertMaterial(data loaders.MaterialData) material.Material {
	mat := material.Default()
	if data.Color != nil {
		mat = material.FromColor(data.Color.Vec3())
	}
	if data.Ambient != nil {
		mat.Ambient = data.Ambient.Vec3()
	}
	if data.Diffuse != nil {
		mat.Diffuse = data.Diffuse.Vec3()
	}
	if data.Specular != nil {
		mat.Specular = data.Specular.Vec3()
	}
	if data.Shininess != 0 {
		mat.Shininess = data.Shininess
	}
	return mat
}
