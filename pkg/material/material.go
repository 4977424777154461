package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong parameters of a surface plus its reflective and
// refractive properties. Color and Pattern are alternative color sources:
// a non-nil Pattern replaces Color entirely, and Color is then ignored.
type Material struct {
	Color           core.Vec3 // flat color, used only while Pattern is nil
	Pattern         Pattern   // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 (matte) to 1 (mirror)
	Transparency    float64 // 0 (opaque) to 1 (fully transparent)
	RefractiveIndex float64
	NoCastShadow    bool // shaded normally but ignored by shadow rays
}

// DefaultMaterial returns a white, opaque, non-reflective material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: Vacuum,
	}
}

// NewMaterial returns the default material with the given flat color
func NewMaterial(color core.Vec3) Material {
	m := DefaultMaterial()
	m.Color = color
	return m
}

// Glass returns the default material made fully transparent with the index of glass
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = GlassIndex
	return m
}

// HasPattern reports whether the surface color comes from a pattern
func (m Material) HasPattern() bool {
	return m.Pattern != nil
}

// Validate checks the ranges of the scalar parameters
func (m Material) Validate() error {
	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("reflective must be in [0, 1], got %g", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency must be in [0, 1], got %g", m.Transparency)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("refractive index must be positive, got %g", m.RefractiveIndex)
	}
	if m.Shininess < 0 {
		return fmt.Errorf("shininess must be non-negative, got %g", m.Shininess)
	}
	return nil
}
