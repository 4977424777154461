package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// TestShape never intersects anything; it records the last object-space ray
// it was asked about so transform handling can be observed.
type TestShape struct {
	shapeBase
	SavedRay *core.Ray
}

// NewTestShape creates a test shape
func NewTestShape() *TestShape {
	return &TestShape{shapeBase: newShapeBase()}
}

// LocalIntersect saves the ray and reports no intersections
func (s *TestShape) LocalIntersect(ray core.Ray) Intersections {
	s.SavedRay = &ray
	return nil
}

// LocalNormalAt implements Shape
func (s *TestShape) LocalNormalAt(point core.Vec3) core.Vec3 {
	return point
}
