package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is the closed set of renderable objects: Sphere, Plane, Cube,
// Cylinder, Cone, Group and TestShape. Each kind only supplies its unit
// local-space intersection and normal; everything that involves transforms
// or the group hierarchy is implemented once in this file.
type Shape interface {
	// LocalIntersect intersects a ray already in the shape's object space
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the unnormalized object-space normal at point
	LocalNormalAt(point core.Vec3) core.Vec3

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)

	Material() *material.Material
	SetMaterial(m material.Material)

	// Parent returns the enclosing group, or nil for a top-level shape
	Parent() *Group

	base() *shapeBase
}

// shapeBase holds the state common to every shape
type shapeBase struct {
	transform    core.Matrix
	inverse      core.Matrix
	normalMatrix core.Matrix // transpose of inverse
	material     material.Material
	parent       *Group
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:    core.Identity(),
		inverse:      core.Identity(),
		normalMatrix: core.Identity(),
		material:     material.DefaultMaterial(),
	}
}

func (b *shapeBase) base() *shapeBase { return b }

// Transform returns the object-to-world (or object-to-parent) transform
func (b *shapeBase) Transform() core.Matrix { return b.transform }

// InverseTransform returns the cached inverse of Transform
func (b *shapeBase) InverseTransform() core.Matrix { return b.inverse }

// SetTransform replaces the transform. It panics if m is not invertible.
func (b *shapeBase) SetTransform(m core.Matrix) {
	inv := m.Inverse()
	b.transform = m
	b.inverse = inv
	b.normalMatrix = inv.Transpose()
}

// Material returns a pointer to the shape's material for in-place edits
func (b *shapeBase) Material() *material.Material { return &b.material }

// SetMaterial replaces the material
func (b *shapeBase) SetMaterial(m material.Material) { b.material = m }

// Parent returns the enclosing group
func (b *shapeBase) Parent() *Group { return b.parent }

// Intersect transforms a world-space (or parent-space) ray into the shape's
// object space and returns the shape's intersections. t values are valid on
// the original ray because the direction is never renormalized.
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.InverseTransform()))
}

// WorldToObject converts a world-space point into s's object space, first
// walking up the parent chain so each group contributes its own inverse.
func WorldToObject(s Shape, point core.Vec3) core.Vec3 {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.InverseTransform().MulPoint(point)
}

// NormalToWorld converts an object-space normal to world space, one
// hierarchy level at a time. The result is normalized at every level and is
// always a direction.
func NormalToWorld(s Shape, normal core.Vec3) core.Vec3 {
	normal = s.base().normalMatrix.MulVector(normal).Normalize()
	if parent := s.Parent(); parent != nil {
		normal = NormalToWorld(parent, normal)
	}
	return normal
}

// NormalAt returns the unit world-space surface normal of s at worldPoint
func NormalAt(s Shape, worldPoint core.Vec3) core.Vec3 {
	local := WorldToObject(s, worldPoint)
	return NormalToWorld(s, s.LocalNormalAt(local))
}

// PatternAtShape resolves a pattern color at a world point on s: the point
// is mapped into object space through the parent chain and then into
// pattern space.
func PatternAtShape(p material.Pattern, s Shape, worldPoint core.Vec3) core.Vec3 {
	objectPoint := WorldToObject(s, worldPoint)
	return p.PatternAt(p.InverseTransform().MulPoint(objectPoint))
}

// ColorAt returns the unlit surface color of s at worldPoint: the pattern
// color when the material has one, otherwise its flat color.
func ColorAt(s Shape, worldPoint core.Vec3) core.Vec3 {
	m := s.Material()
	if m.HasPattern() {
		return PatternAtShape(m.Pattern, s, worldPoint)
	}
	return m.Color
}
