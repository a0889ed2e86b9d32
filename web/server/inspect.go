package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	ShapeIndex   int            `json:"shapeIndex"`
	GeometryType string         `json:"geometryType,omitempty"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	Distance     float64        `json:"distance"`
	Color        string         `json:"color"` // Shaded pixel color as #rrggbb
	Properties   map[string]any `json:"properties,omitempty"`
}

func triple(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := renderer.ToRGBA(v)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]any {
	return map[string]any{
		"ambient":   triple(mat.Ambient),
		"diffuse":   triple(mat.Diffuse),
		"specular":  triple(mat.Specular),
		"shininess": mat.Shininess,
		"color":     hexColor(mat.Diffuse),
	}
}

// extractGeometryInfo extracts geometry details with type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]any) {
	properties := make(map[string]any)

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = triple(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = triple(geom.Point)
		properties["normal"] = triple(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{triple(geom.V0), triple(geom.V1), triple(geom.V2)}
		return "triangle", properties

	case *geometry.Box:
		properties["center"] = triple(geom.Bounds.Center())
		properties["halfSize"] = triple(geom.Bounds.Size().Multiply(0.5))
		return "box", properties

	case *geometry.Cylinder:
		properties["base"] = triple(geom.BaseCenter)
		properties["top"] = triple(geom.TopCenter)
		properties["radius"] = geom.Radius
		properties["height"] = geom.Height()
		properties["capped"] = geom.Capped
		return "cylinder", properties

	case *geometry.Cone:
		properties["base"] = triple(geom.BaseCenter)
		properties["top"] = triple(geom.TopCenter)
		properties["baseRadius"] = geom.BaseRadius
		properties["topRadius"] = geom.TopRadius
		properties["height"] = geom.Height()
		properties["capped"] = geom.Capped
		return "cone", properties

	case *geometry.Mesh:
		bounds := geom.Bounds()
		properties["triangles"] = len(geom.Triangles)
		properties["boundsMin"] = triple(bounds.Min)
		properties["boundsMax"] = triple(bounds.Max)
		return "mesh", properties

	default:
		return "unknown", properties
	}
}

// handleInspect casts the primary ray through one pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.loadScene(req.Scene, req.Width)
	if err != nil {
		writeError(w, sceneStatus(err), err.Error())
		return
	}

	rt := renderer.NewRaytracer(sceneObj, integrator.PhongConfig{UseIntensity: req.UseIntensity})
	cols, rows := rt.Size()
	if pixelX < 0 || pixelX >= cols || pixelY < 0 || pixelY >= rows {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	pick := rt.Pick(pixelX, pixelY)
	c := pick.Color
	response := InspectResponse{
		Hit:        pick.Hit,
		ShapeIndex: pick.ShapeIndex,
		Color:      fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
	}
	if !pick.Hit {
		writeJSON(w, http.StatusOK, response)
		return
	}

	geometryType, geometryProps := extractGeometryInfo(pick.Shape)
	response.GeometryType = geometryType
	response.Point = triple(pick.Point)
	response.Normal = triple(pick.Normal)
	response.Distance = pick.T
	response.Properties = map[string]any{
		"material": extractMaterialInfo(pick.Shape.GetMaterial()),
		"geometry": geometryProps,
	}

	writeJSON(w, http.StatusOK, response)
}
