package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray. remaining is the number of
	// secondary bounces the integrator may still spawn.
	RayColor(ray core.Ray, world *scene.World, remaining int) core.Vec3

	// Stats returns the work done since the last ResetStats
	Stats() RayStats
	ResetStats()
}

// RayStats counts the work an integrator has done
type RayStats struct {
	Rays       int64 // Camera and secondary rays cast into the world
	ShadowRays int64 // Shadow tests toward the light
	Hits       int64 // Rays that hit something
}
