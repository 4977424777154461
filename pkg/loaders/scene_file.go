package loaders

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SceneFile is the parsed form of a YAML scene description. Angles are in
// degrees; the scene package converts everything to engine types.
type SceneFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Camera      CameraSpec  `yaml:"camera"`
	Light       *LightSpec  `yaml:"light"`
	Shapes      []ShapeSpec `yaml:"shapes"`
}

// CameraSpec positions the camera
type CameraSpec struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"fov"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`
}

// LightSpec describes the point light
type LightSpec struct {
	Position  []float64 `yaml:"position"`
	Intensity []float64 `yaml:"intensity"`
}

// ShapeSpec describes one shape and, for groups, its children
type ShapeSpec struct {
	Type      string        `yaml:"type"`
	Transform []TransformOp `yaml:"transform"`
	Material  *MaterialSpec `yaml:"material"`
	Minimum   *float64      `yaml:"minimum"`
	Maximum   *float64      `yaml:"maximum"`
	Closed    bool          `yaml:"closed"`
	Children  []ShapeSpec   `yaml:"children"`
}

// MaterialSpec overrides fields of the default material; nil fields keep
// their defaults
type MaterialSpec struct {
	Color           []float64    `yaml:"color"`
	Pattern         *PatternSpec `yaml:"pattern"`
	Ambient         *float64     `yaml:"ambient"`
	Diffuse         *float64     `yaml:"diffuse"`
	Specular        *float64     `yaml:"specular"`
	Shininess       *float64     `yaml:"shininess"`
	Reflective      *float64     `yaml:"reflective"`
	Transparency    *float64     `yaml:"transparency"`
	RefractiveIndex *float64     `yaml:"refractive-index"`
	NoCastShadow    bool         `yaml:"no-cast-shadow"`
}

// PatternSpec describes a two-color pattern
type PatternSpec struct {
	Type      string        `yaml:"type"`
	Colors    [][]float64   `yaml:"colors"`
	Transform []TransformOp `yaml:"transform"`
}

// TransformOp is one step of a transform list, written as a flow sequence
// such as [translate, 1, 0, 0] or [rotate-y, 90]
type TransformOp struct {
	Op   string
	Args []float64
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *TransformOp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return fmt.Errorf("line %d: transform must be a non-empty sequence", node.Line)
	}

	op := node.Content[0]
	if op.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: transform operation must be a name", op.Line)
	}
	t.Op = op.Value
	t.Args = make([]float64, 0, len(node.Content)-1)

	for _, arg := range node.Content[1:] {
		v, err := strconv.ParseFloat(arg.Value, 64)
		if err != nil || arg.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %s argument %q is not a number", arg.Line, t.Op, arg.Value)
		}
		t.Args = append(t.Args, v)
	}
	return nil
}

// LoadSceneFile reads and parses a YAML scene description
func LoadSceneFile(filename string) (*SceneFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	scene, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// ParseSceneFile parses a YAML scene description. Unknown keys are errors.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scene SceneFile
	if err := dec.Decode(&scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if len(scene.Shapes) == 0 {
		return nil, fmt.Errorf("scene has no shapes")
	}
	return &scene, nil
}
