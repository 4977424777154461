package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves |O + tD|² = 1. A tangent ray yields two equal roots.
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1.0

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return Intersections{
		NewIntersection((-b-sqrtD)/(2*a), s),
		NewIntersection((-b+sqrtD)/(2*a), s),
	}
}

// LocalNormalAt implements Shape
func (s *Sphere) LocalNormalAt(point core.Vec3) core.Vec3 {
	return point
}
