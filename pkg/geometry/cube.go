package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every object-space axis
type Cube struct {
	shapeBase
}

// NewCube creates a cube with the default material
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// LocalIntersect intersects the three slabs and keeps the overlap
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := max(xtmin, ytmin, ztmin)
	tmax := min(xtmax, ytmax, ztmax)

	if tmin > tmax || math.IsInf(tmin, 0) || math.IsInf(tmax, 0) {
		return nil
	}
	return Intersections{NewIntersection(tmin, c), NewIntersection(tmax, c)}
}

// checkAxis returns the entry and exit t for the slab [-1, 1] on one axis.
// A direction component near zero behaves like dividing by ±infinity: the
// slab is either always crossed (origin inside) or never (origin outside).
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	if math.Abs(direction) < core.Epsilon {
		if origin < -1 || origin > 1 {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}

	tmin = (-1 - origin) / direction
	tmax = (1 - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate
func (c *Cube) LocalNormalAt(point core.Vec3) core.Vec3 {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := max(ax, ay, az)

	switch maxc {
	case ax:
		return core.NewVec3(point.X, 0, 0)
	case ay:
		return core.NewVec3(0, point.Y, 0)
	}
	return core.NewVec3(0, 0, point.Z)
}
