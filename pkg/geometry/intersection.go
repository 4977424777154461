package geometry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection records where along a ray it meets a shape
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, usually sorted by T
type Intersections []Intersection

// NewIntersections collects intersections in the order given
func NewIntersections(xs ...Intersection) Intersections {
	return Intersections(xs)
}

// Sort orders the intersections by ascending T, keeping the relative order
// of equal values
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the intersection with the smallest non-negative T
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T >= 0 && (!found || x.T < hit.T) {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Positive returns the non-negative intersections in ascending order
func (xs Intersections) Positive() Intersections {
	out := make(Intersections, 0, len(xs))
	for _, x := range xs {
		if x.T >= 0 {
			out = append(out, x)
		}
	}
	out.Sort()
	return out
}

// Dedup collapses consecutive entries of a sorted list whose T values are
// within core.Epsilon, keeping the first of each run
func (xs Intersections) Dedup() Intersections {
	if len(xs) < 2 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if !core.ApproxEqual(x.T, out[len(out)-1].T) {
			out = append(out, x)
		}
	}
	return out
}

// At returns the i-th intersection and panics when i is out of range
func (xs Intersections) At(i int) Intersection {
	if i < 0 || i >= len(xs) {
		panic(fmt.Sprintf("geometry: intersection index %d out of range [0, %d)", i, len(xs)))
	}
	return xs[i]
}
