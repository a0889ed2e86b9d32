package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

// ErrUnknownScene is returned by Load for names that are neither built in
// nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// BuiltinGroup is the group name of scenes compiled into the program
const BuiltinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Load
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtin struct {
	info SceneInfo
	make func(...geometry.CameraConfig) *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Red sphere over a green floor lit by a red and a blue light"}, NewDefaultScene},
	{SceneInfo{ID: "simple", Name: "Simple", Description: "Flattened block and a triangle pyramid"}, NewSimpleScene},
	{SceneInfo{ID: "shadow", Name: "Shadow", Description: "Sphere casting a shadow onto a floor"}, NewShadowScene},
	{SceneInfo{ID: "box", Name: "Box", Description: "Single cube resting on a floor"}, NewBoxScene},
	{SceneInfo{ID: "cylinder", Name: "Cylinder", Description: "Tilted capped cylinder between two spheres"}, NewCylinderScene},
	{SceneInfo{ID: "cone", Name: "Cone", Description: "Cone under a sphere between two cylinder pillars"}, NewConeScene},
	{SceneInfo{ID: "cube", Name: "Cube Mesh", Description: "Triangle-mesh cube with cylinder axis lines"}, NewCubeMeshScene},
	{SceneInfo{ID: "cornell", Name: "Cornell Box", Description: "Room of colored walls with a sphere and a block"}, NewCornellScene},
	{SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "8x8 grid of colored spheres"}, NewSphereGridScene},
	{SceneInfo{ID: "empty", Name: "Empty", Description: "No shapes, background only"}, NewEmptyScene},
}

// ListBuiltinScenes returns the built-in scenes in presentation order
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtins))
	for i, b := range builtins {
		info := b.info
		info.Group = BuiltinGroup
		info.Type = "builtin"
		scenes[i] = info
	}
	return scenes
}

// ListJSONScenes scans dir for JSON scene files. A missing directory yields
// an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		info, err := parseSceneMetadata(filePath)
		if err != nil {
			core.Logger().Warn("skipping scene file", "path", filePath, "error", err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

func parseSceneMetadata(filePath string) (SceneInfo, error) {
	file, err := loaders.LoadSceneFile(filePath)
	if err != nil {
		return SceneInfo{}, err
	}

	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:          "json:" + nameWithoutExt,
		Name:        file.Name,
		Description: file.Description,
		Group:       file.Group,
		Type:        "json",
		FilePath:    filePath,
	}
	if info.Name == nameWithoutExt {
		info.Name = titleCase(nameWithoutExt)
	}
	if info.Group == "" {
		info.Group = "Scene Files"
	}
	return info, nil
}

// ListAllScenes returns both built-in and JSON scenes from dir, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListBuiltinScenes(), jsonScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, info := range allScenes {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != BuiltinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   BuiltinGroup,
		Scenes: groupMap[BuiltinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// Load returns the scene named by id. Built-in ids are matched first, then
// "json:<name>" ids resolved against dir, then paths to .json files.
func Load(id, dir string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.make(cameraOverrides...), nil
		}
	}

	if name, ok := strings.CutPrefix(id, "json:"); ok {
		return NewJSONScene(filepath.Join(dir, name+".json"), cameraOverrides...)
	}

	if strings.EqualFold(filepath.Ext(id), ".json") {
		return NewJSONScene(id, cameraOverrides...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// IsCatalogID reports whether id names a built-in scene or a scene file in
// the scenes directory ("json:<name>"), as opposed to a file path
func IsCatalogID(id string) bool {
	for _, b := range builtins {
		if b.info.ID == id {
			return true
		}
	}
	name, ok := strings.CutPrefix(id, "json:")
	return ok && name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
