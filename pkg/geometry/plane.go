package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect implements Shape; rays parallel to the plane never hit it
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt implements Shape
func (p *Plane) LocalNormalAt(point core.Vec3) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}
