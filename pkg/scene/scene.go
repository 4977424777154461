package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *World
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
}

// newScene builds the camera from config with any override merged in
func newScene(name string, world *World, config geometry.CameraConfig, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if len(cameraOverrides) > 0 {
		config = geometry.MergeCameraConfig(config, cameraOverrides[0])
	}

	camera, err := geometry.NewCameraFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	return &Scene{
		Name:         name,
		World:        world,
		Camera:       camera,
		CameraConfig: config,
	}, nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.PrimitiveCount()
}

// defaultLight is the white point light used by the built-in scenes
func defaultLight() *lights.PointLight {
	return lights.NewPointLight(core.NewVec3(-10, 10, -10), core.NewColor(1, 1, 1))
}

// newFloor creates a horizontal plane through the origin
func newFloor(m material.Material) *geometry.Plane {
	floor := geometry.NewPlane()
	floor.SetMaterial(m)
	return floor
}
