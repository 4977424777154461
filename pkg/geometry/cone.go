package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the object-space y axis whose radius
// equals |y|. Minimum/Maximum clip it and Closed caps the cut ends.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite, open double cone
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewTruncatedCone creates a cone clipped to (minimum, maximum)
func NewTruncatedCone(minimum, maximum float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect implements Shape. When the quadratic term vanishes the ray
// is parallel to one of the cone's halves and meets the surface at most once.
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case core.NearZero(a) && core.NearZero(b):
		// parallel to a half and through the apex: only the caps remain
	case core.NearZero(a):
		t := -cc / (2 * b)
		if y := o.Y + t*d.Y; c.Minimum < y && y < c.Maximum {
			xs = append(xs, NewIntersection(t, c))
		}
	default:
		// grazing rays can round to a slightly negative discriminant
		discriminant := b*b - 4*a*cc
		if discriminant < -core.Epsilon {
			break
		}

		sqrtD := math.Sqrt(max(discriminant, 0))
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

// intersectCaps tests the end caps; each cap's radius is |y| at its height
func (c *Cone) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.NearZero(ray.Direction.Y) {
		return xs
	}

	if t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y; withinCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, NewIntersection(t, c))
	}
	if t := (c.Maximum - ray.Origin.Y) / ray.Direction.Y; withinCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalNormalAt returns ±y on the caps; on the body the y component has the
// magnitude of the radial distance and the opposite sign of the point's y
func (c *Cone) LocalNormalAt(point core.Vec3) core.Vec3 {
	dist := math.Hypot(point.X, point.Z)

	if dist < math.Abs(c.Maximum) && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVec3(0, 1, 0)
	}
	if dist < math.Abs(c.Minimum) && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVec3(0, -1, 0)
	}

	y := dist
	if point.Y > 0 {
		y = -y
	}
	return core.NewVec3(point.X, y, point.Z)
}
