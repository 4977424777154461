package scene

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Scene types
const (
	TypeBuiltin = "builtin"
	TypeYAML    = "yaml"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	Name        string // Scene name
	Description string // Optional description
	Group       string // Grouping category
	Type        string // TypeBuiltin or TypeYAML
	FilePath    string // Path to the scene file (yaml type only)
}

type builtinScene struct {
	info  SceneInfo
	build func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", Name: "Default World", Description: "Two nested spheres under one white light"}, NewDefaultScene},
	{SceneInfo{ID: "patterns", Name: "Patterns", Description: "Stripes, rings, gradient and checkers"}, NewPatternsScene},
	{SceneInfo{ID: "glass", Name: "Glass", Description: "Hollow glass sphere over a reflective floor"}, NewGlassScene},
	{SceneInfo{ID: "group", Name: "Hexagon", Description: "Hexagon assembled from nested groups"}, NewGroupScene},
	{SceneInfo{ID: "shapes", Name: "Shapes", Description: "Cylinders and cones with and without caps"}, NewShapesScene},
}

// ListBuiltinScenes returns the built-in scenes in a stable order
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		scenes[i] = b.info
		scenes[i].Group = "Built-in Scenes"
		scenes[i].Type = TypeBuiltin
	}
	return scenes
}

func findBuiltin(id string) (builtinScene, bool) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b, true
		}
	}
	return builtinScene{}, false
}

// NewBuiltinScene builds the built-in scene with the given id
func NewBuiltinScene(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	b, ok := findBuiltin(id)
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q", id)
	}
	return b.build(cameraOverrides...)
}

// Load resolves id as a built-in scene name first and as a YAML file path
// otherwise
func Load(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if b, ok := findBuiltin(id); ok {
		return b.build(cameraOverrides...)
	}
	if _, err := os.Stat(id); err != nil {
		return nil, fmt.Errorf("%q is neither a built-in scene nor a readable file: %w", id, err)
	}
	return NewYAMLScene(id, cameraOverrides...)
}

// ListYAMLScenes scans dir for .yaml and .yml scene files. A missing
// directory yields an empty list; files whose header can't be read are
// logged and skipped.
func ListYAMLScenes(dir string, logger *slog.Logger) ([]SceneInfo, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseYAMLMetadata(filePath)
		if err != nil {
			logger.Warn("skipping scene file", "path", filePath, "error", err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseYAMLMetadata extracts metadata from the header comments of a scene
// file:
//
//	# Scene: Glass Bubbles
//	# Description: Nested transparent spheres
//	# Group: Refraction
func ParseYAMLMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Group:    "Scene Files",
		Type:     TypeYAML,
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// metadata stops at the first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		key, value, ok := strings.Cut(content, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Scene":
			info.Name = value
		case "Description":
			info.Description = value
		case "Group":
			info.Group = value
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string, logger *slog.Logger) ([]SceneInfo, error) {
	files, err := ListYAMLScenes(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-bubbles" -> "Glass Bubbles"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
