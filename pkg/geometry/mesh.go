package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// boundsPadding keeps flat meshes from having a zero-thickness bounding box
const boundsPadding = 1e-9

// Mesh is a set of triangles sharing one material, tested as a single shape
type Mesh struct {
	Triangles []*Triangle
	Material  material.Material
	bounds    core.AABB
}

// cubeVertices and cubeFaces describe the unit cube [0,1]³ with
// counter-clockwise winding seen from outside
var (
	cubeVertices = []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(0, 1, 1),
		core.NewVec3(1, 1, 1),
	}
	cubeFaces = []int{
		2, 1, 0, 1, 2, 3, // back
		6, 2, 0, 6, 0, 4, // left
		3, 5, 1, 3, 7, 5, // right
		4, 5, 6, 7, 6, 5, // front
		6, 3, 2, 6, 7, 3, // top
		0, 1, 5, 0, 5, 4, // bottom
	}
)

// NewMesh builds a mesh from a vertex list and a flat list of vertex
// indices, three per triangle
func NewMesh(vertices []core.Vec3, faces []int, material material.Material) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("mesh faces must be a multiple of 3 indices, got %d", len(faces))
	}
	for i, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("mesh face index %d out of range: %d (have %d vertices)", i, idx, len(vertices))
		}
	}
	return newMesh(vertices, faces, material), nil
}

// NewCubeMesh builds the unit cube spanning [0,1]³ as twelve triangles
func NewCubeMesh(material material.Material) *Mesh {
	return newMesh(cubeVertices, cubeFaces, material)
}

func newMesh(vertices []core.Vec3, faces []int, material material.Material) *Mesh {
	m := &Mesh{
		Triangles: make([]*Triangle, 0, len(faces)/3),
		Material:  material,
	}
	points := make([]core.Vec3, 0, len(faces))
	for i := 0; i+2 < len(faces); i += 3 {
		v0, v1, v2 := vertices[faces[i]], vertices[faces[i+1]], vertices[faces[i+2]]
		m.Triangles = append(m.Triangles, NewTriangle(v0, v1, v2, material))
		points = append(points, v0, v1, v2)
	}
	m.setBounds(core.NewAABBFromPoints(points...))
	return m
}

func (m *Mesh) setBounds(tight core.AABB) {
	pad := core.Splat(boundsPadding)
	m.bounds = core.NewAABB(tight.Min.Subtract(pad), tight.Max.Add(pad))
}

// Bounds returns the mesh's padded bounding box
func (m *Mesh) Bounds() core.AABB {
	return m.bounds
}

// Intersect rejects rays that miss the bounding box, then tests every
// triangle. The nearest forward triangle hit wins.
func (m *Mesh) Intersect(ray core.Ray) float64 {
	if _, _, ok := m.bounds.Slabs(ray); !ok {
		return core.NoHit
	}

	var picker rootPicker
	for _, tri := range m.Triangles {
		picker.add(tri.Intersect(ray))
	}
	return picker.result()
}

// NormalAt returns the normal of the triangle containing point. Points that
// fall between triangles take the triangle whose plane is nearest.
func (m *Mesh) NormalAt(point core.Vec3) core.Vec3 {
	if tri := m.triangleAt(point, true); tri != nil {
		return tri.NormalAt(point)
	}
	if tri := m.triangleAt(point, false); tri != nil {
		return tri.NormalAt(point)
	}
	return core.Vec3{}
}

// triangleAt returns the triangle whose plane lies nearest to point,
// optionally only among triangles whose interior covers point
func (m *Mesh) triangleAt(point core.Vec3, inside bool) *Triangle {
	var best *Triangle
	bestDist := math.Inf(1)
	for _, tri := range m.Triangles {
		if inside && !tri.covers(point) {
			continue
		}
		dist := math.Abs(point.Subtract(tri.V0).Dot(tri.normal))
		if dist < bestDist {
			best, bestDist = tri, dist
		}
	}
	return best
}

// GetMaterial returns the mesh's material
func (m *Mesh) GetMaterial() material.Material {
	return m.Material
}

// Translate moves every triangle by offset
func (m *Mesh) Translate(offset core.Vec3) {
	for _, tri := range m.Triangles {
		tri.Translate(offset)
	}
	m.bounds = core.NewAABB(m.bounds.Min.Add(offset), m.bounds.Max.Add(offset))
}

// Validate rejects empty meshes and meshes with degenerate triangles
func (m *Mesh) Validate() error {
	if len(m.Triangles) == 0 {
		return errors.New("mesh has no triangles")
	}
	for i, tri := range m.Triangles {
		if err := tri.Validate(); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	return m.Material.Validate()
}
