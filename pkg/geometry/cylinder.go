package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the object-space y axis. It is
// infinite unless Minimum/Maximum clip it; Closed adds flat end caps.
type Cylinder struct {
	shapeBase
	Minimum float64 // exclusive lower y bound
	Maximum float64 // exclusive upper y bound
	Closed  bool
}

// NewCylinder creates an infinite, open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder clipped to (minimum, maximum)
func NewTruncatedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect implements Shape. A ray parallel to the axis can only
// meet the caps.
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X + d.Z*d.Z
	if !core.NearZero(a) {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		cc := o.X*o.X + o.Z*o.Z - 1
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if y0 := o.Y + t0*d.Y; c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, NewIntersection(t0, c))
		}
		if y1 := o.Y + t1*d.Y; c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, NewIntersection(t1, c))
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.NearZero(ray.Direction.Y) {
		return xs
	}

	if t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y; withinCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	if t := (c.Maximum - ray.Origin.Y) / ray.Direction.Y; withinCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalNormalAt returns ±y on the caps and the radial direction elsewhere
func (c *Cylinder) LocalNormalAt(point core.Vec3) core.Vec3 {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVec3(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVec3(0, -1, 0)
	}
	return core.NewVec3(point.X, 0, point.Z)
}

// withinCap reports whether the ray at t lies inside the disk of the given
// radius around the y axis; the rim itself counts as inside
func withinCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius+core.Epsilon
}
