package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// defaults for scene files that leave the camera partly unspecified
const (
	defaultFileWidth  = 400
	defaultFileHeight = 300
	defaultFileFOV    = 60.0 // degrees
)

// NewYAMLScene creates a scene from a YAML scene file
func NewYAMLScene(filepath string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := loaders.LoadSceneFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return BuildScene(file, cameraOverrides...)
}

// BuildScene converts a parsed scene file into a renderable scene
func BuildScene(file *loaders.SceneFile, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig, err := convertCamera(file.Camera)
	if err != nil {
		return nil, fmt.Errorf("failed to convert camera: %w", err)
	}

	w := NewWorld()
	w.Light, err = convertLight(file.Light)
	if err != nil {
		return nil, fmt.Errorf("failed to convert light: %w", err)
	}

	for i, spec := range file.Shapes {
		shape, err := convertShape(spec)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		w.AddShape(shape)
	}

	name := file.Name
	if name == "" {
		name = "scene file"
	}
	return newScene(name, w, cameraConfig, cameraOverrides...)
}

func convertCamera(spec loaders.CameraSpec) (geometry.CameraConfig, error) {
	from, err := convertVec3("from", spec.From, core.NewVec3(0, 0, -5))
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	to, err := convertVec3("to", spec.To, core.NewVec3(0, 0, 0))
	if err != nil {
		return geometry.CameraConfig{}, err
	}
	up, err := convertVec3("up", spec.Up, core.NewVec3(0, 1, 0))
	if err != nil {
		return geometry.CameraConfig{}, err
	}

	config := geometry.CameraConfig{
		From:        from,
		To:          to,
		Up:          up,
		Width:       defaultFileWidth,
		Height:      defaultFileHeight,
		FieldOfView: degrees(defaultFileFOV),
	}
	if spec.Width != 0 {
		config.Width = spec.Width
	}
	if spec.Height != 0 {
		config.Height = spec.Height
	}
	if spec.FieldOfView != 0 {
		config.FieldOfView = degrees(spec.FieldOfView)
	}
	return config, nil
}

// convertLight returns the white default light when spec is nil
func convertLight(spec *loaders.LightSpec) (*lights.PointLight, error) {
	if spec == nil {
		return defaultLight(), nil
	}
	position, err := convertVec3("position", spec.Position, core.NewVec3(-10, 10, -10))
	if err != nil {
		return nil, err
	}
	intensity, err := convertVec3("intensity", spec.Intensity, core.NewColor(1, 1, 1))
	if err != nil {
		return nil, err
	}
	return lights.NewPointLight(position, intensity), nil
}

func convertShape(spec loaders.ShapeSpec) (geometry.Shape, error) {
	var shape geometry.Shape
	bounded := false

	switch spec.Type {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		c := geometry.NewCylinder()
		if spec.Minimum != nil {
			c.Minimum = *spec.Minimum
		}
		if spec.Maximum != nil {
			c.Maximum = *spec.Maximum
		}
		c.Closed = spec.Closed
		shape, bounded = c, true
	case "cone":
		c := geometry.NewCone()
		if spec.Minimum != nil {
			c.Minimum = *spec.Minimum
		}
		if spec.Maximum != nil {
			c.Maximum = *spec.Maximum
		}
		c.Closed = spec.Closed
		shape, bounded = c, true
	case "group":
		if spec.Material != nil {
			return nil, fmt.Errorf("groups have no material; set it on the children")
		}
		g := geometry.NewGroup()
		for i, childSpec := range spec.Children {
			child, err := convertShape(childSpec)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			g.AddChild(child)
		}
		shape = g
	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}

	if !bounded && (spec.Minimum != nil || spec.Maximum != nil || spec.Closed) {
		return nil, fmt.Errorf("minimum, maximum and closed only apply to cylinders and cones, not %s", spec.Type)
	}
	if spec.Type != "group" && len(spec.Children) > 0 {
		return nil, fmt.Errorf("only groups can have children, not %s", spec.Type)
	}

	transform, err := convertTransform(spec.Transform)
	if err != nil {
		return nil, err
	}
	shape.SetTransform(transform)

	if spec.Material != nil {
		m, err := convertMaterial(spec.Material)
		if err != nil {
			return nil, err
		}
		shape.SetMaterial(m)
	}
	return shape, nil
}

func convertMaterial(spec *loaders.MaterialSpec) (material.Material, error) {
	m := material.DefaultMaterial()

	if spec.Color != nil && spec.Pattern != nil {
		return m, fmt.Errorf("material can have a color or a pattern, not both")
	}
	if spec.Color != nil {
		color, err := convertVec3("color", spec.Color, core.White)
		if err != nil {
			return m, err
		}
		m.Color = color
	}
	if spec.Pattern != nil {
		pattern, err := convertPattern(spec.Pattern)
		if err != nil {
			return m, err
		}
		m.Pattern = pattern
	}

	for _, field := range []struct {
		value  *float64
		target *float64
	}{
		{spec.Ambient, &m.Ambient},
		{spec.Diffuse, &m.Diffuse},
		{spec.Specular, &m.Specular},
		{spec.Shininess, &m.Shininess},
		{spec.Reflective, &m.Reflective},
		{spec.Transparency, &m.Transparency},
		{spec.RefractiveIndex, &m.RefractiveIndex},
	} {
		if field.value != nil {
			*field.target = *field.value
		}
	}
	m.NoCastShadow = spec.NoCastShadow

	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("invalid material: %w", err)
	}
	return m, nil
}

func convertPattern(spec *loaders.PatternSpec) (material.Pattern, error) {
	if len(spec.Colors) != 2 {
		return nil, fmt.Errorf("%s pattern needs exactly 2 colors, got %d", spec.Type, len(spec.Colors))
	}
	a, err := convertVec3("pattern color", spec.Colors[0], core.White)
	if err != nil {
		return nil, err
	}
	b, err := convertVec3("pattern color", spec.Colors[1], core.Black)
	if err != nil {
		return nil, err
	}

	var p material.Pattern
	switch spec.Type {
	case "stripes", "stripe":
		p = material.NewStripePattern(a, b)
	case "rings", "ring":
		p = material.NewRingPattern(a, b)
	case "gradient":
		p = material.NewGradientPattern(a, b)
	case "checkers":
		p = material.NewCheckersPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", spec.Type)
	}

	transform, err := convertTransform(spec.Transform)
	if err != nil {
		return nil, err
	}
	p.SetTransform(transform)
	return p, nil
}

// convertTransform chains the operations in the order listed, so the first
// operation is applied to the shape first
func convertTransform(ops []loaders.TransformOp) (core.Matrix, error) {
	steps := make([]core.Matrix, 0, len(ops))
	for _, op := range ops {
		m, err := convertTransformOp(op)
		if err != nil {
			return core.Matrix{}, err
		}
		steps = append(steps, m)
	}

	transform := core.Chain(steps...)
	if !transform.Invertible() {
		return core.Matrix{}, fmt.Errorf("transform %v is not invertible", ops)
	}
	return transform, nil
}

func convertTransformOp(op loaders.TransformOp) (core.Matrix, error) {
	args := op.Args
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d arguments, got %d", op.Op, n, len(args))
		}
		return nil
	}

	switch op.Op {
	case "translate":
		if err := want(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		if len(args) == 1 {
			return core.Scaling(args[0], args[0], args[0]), nil
		}
		if err := want(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate-x":
		if err := want(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationX(degrees(args[0])), nil
	case "rotate-y":
		if err := want(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationY(degrees(args[0])), nil
	case "rotate-z":
		if err := want(1); err != nil {
			return core.Matrix{}, err
		}
		return core.RotationZ(degrees(args[0])), nil
	case "shear":
		if err := want(6); err != nil {
			return core.Matrix{}, err
		}
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	}
	return core.Matrix{}, fmt.Errorf("unknown transform %q", op.Op)
}

// convertVec3 returns fallback for an empty value
func convertVec3(name string, values []float64, fallback core.Vec3) (core.Vec3, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", name, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
