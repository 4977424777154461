package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitely small light with no falloff
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample implements Light
func (l *PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	return LightSample{
		Point:     l.Position,
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Emission:  l.Intensity,
	}
}
