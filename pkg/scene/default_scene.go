package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene frames the two-sphere fixture world
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		From:        core.NewVec3(0, 0, -5),
		To:          core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 3,
	}

	return newScene("default", DefaultWorld(), cameraConfig, cameraOverrides...)
}
