package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World owns the light and the top-level shapes. It is read-only while a
// frame renders.
type World struct {
	Light  *lights.PointLight
	Shapes []geometry.Shape
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{Shapes: make([]geometry.Shape, 0)}
}

// DefaultWorld returns the two-sphere fixture: a unit sphere with a green
// tinted matte material and a half-size default sphere inside it, lit by a
// white light at (-10, 10, -10).
func DefaultWorld() *World {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewVec3(-10, 10, -10), core.NewColor(1, 1, 1))

	outer := geometry.NewSphere()
	m := material.NewMaterial(core.NewColor(0.8, 1.0, 0.6))
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddShape(outer, inner)
	return w
}

// AddShape appends top-level shapes
func (w *World) AddShape(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Intersect returns every intersection of ray with the world, sorted by t,
// with coincident t values collapsed to one
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs.Dedup()
}

// IsShadowed reports whether something that casts shadows lies between
// point and the light. A world without a light has no shadows.
func (w *World) IsShadowed(point core.Vec3) bool {
	if w.Light == nil {
		return false
	}

	sample := w.Light.Sample(point)
	ray := core.NewRay(point, sample.Direction)
	for _, x := range w.Intersect(ray).Positive() {
		if x.T >= sample.Distance {
			return false
		}
		if !x.Object.Material().NoCastShadow {
			return true
		}
	}
	return false
}

// PrimitiveCount returns the number of leaf shapes, looking inside groups
func (w *World) PrimitiveCount() int {
	count := 0
	for _, shape := range w.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

func countPrimitives(shape geometry.Shape) int {
	g, ok := shape.(*geometry.Group)
	if !ok {
		return 1
	}
	count := 0
	for _, child := range g.Children() {
		count += countPrimitives(child)
	}
	return count
}
