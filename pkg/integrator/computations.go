package integrator

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Computations holds everything shading needs to know about a hit
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Vec3
	Eye        core.Vec3 // Unit vector back toward the ray origin
	Normal     core.Vec3 // Unit normal facing the eye
	Inside     bool      // The ray started inside Object
	OverPoint  core.Vec3 // Point nudged off the surface toward the eye
	UnderPoint core.Vec3 // Point nudged below the surface
	ReflectV   core.Vec3
	N1         float64 // Refractive index of the medium being left
	N2         float64 // Refractive index of the medium being entered
}

// PrepareComputations precomputes the shading state of hit on ray. xs must
// be the full sorted intersection list hit came from: the refractive
// indices on either side of the surface are found by replaying every entry
// and exit along the ray up to hit.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.At(hit.T),
		Eye:    ray.Direction.Negate(),
	}

	comps.Normal = geometry.NormalAt(hit.Object, comps.Point)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	offset := comps.Normal.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.Normal)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs with a stack of the shapes the ray is inside
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	var containers []geometry.Shape

	innermost := func() float64 {
		if len(containers) == 0 {
			return material.Vacuum
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = innermost()
		}

		if i := slices.Index(containers, x.Object); i >= 0 {
			containers = slices.Delete(containers, i, i+1)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = innermost()
			break
		}
	}
	return n1, n2
}
