package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light is a source of direct illumination
type Light interface {
	// Sample returns the direction and distance FROM point TO the light,
	// along with the light's intensity
	Sample(point core.Vec3) LightSample
}

// LightSample describes a light as seen from a shading point
type LightSample struct {
	Point     core.Vec3 // Position of the light
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Emission  core.Vec3 // Light intensity
}
