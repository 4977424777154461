package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflectance model at point. The surface color
// comes from the material's pattern (resolved through object's transform
// chain) when one is set. A point in shadow only receives ambient light.
// The result is not clamped.
func Lighting(m material.Material, object geometry.Shape, light Light, point, eye, normal core.Vec3, inShadow bool) core.Vec3 {
	color := m.Color
	if m.HasPattern() && object != nil {
		color = geometry.PatternAtShape(m.Pattern, object, point)
	}

	sample := light.Sample(point)
	effective := color.MultiplyVec(sample.Emission)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDotNormal := sample.Direction.Dot(normal)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDotEye := sample.Direction.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = sample.Emission.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
