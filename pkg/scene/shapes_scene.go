package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShapesScene lines up open and capped cylinders and cones next to a
// cube so the cap handling is visible from above
func NewShapesScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		From:        core.NewVec3(0, 3, -5),
		To:          core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
	}

	w := NewWorld()
	w.Light = defaultLight()

	floorMat := material.NewMaterial(core.NewColor(0.5, 0.5, 0.5))
	floorMat.Specular = 0
	w.AddShape(newFloor(floorMat))

	red := material.NewMaterial(core.NewColor(0.8, 0.2, 0.2))
	blue := material.NewMaterial(core.NewColor(0.2, 0.2, 0.8))
	gold := material.NewMaterial(core.NewColor(0.8, 0.6, 0.2))
	gold.Reflective = 0.5

	// open tube tipped toward the camera so the inside shows
	tube := geometry.NewTruncatedCylinder(-0.5, 0.5, false)
	tube.SetTransform(core.Chain(
		core.Scaling(0.4, 1, 0.4),
		core.RotationX(-math.Pi/4),
		core.Translation(-1.8, 0.7, 0),
	))
	tube.SetMaterial(gold)

	drum := geometry.NewTruncatedCylinder(0, 0.6, true)
	drum.SetTransform(core.Chain(core.Scaling(0.5, 1, 0.5), core.Translation(-0.6, 0, 0.2)))
	drum.SetMaterial(red)

	// double cone standing on its lower tip
	hourglass := geometry.NewTruncatedCone(-1, 1, true)
	hourglass.SetTransform(core.Chain(core.Scaling(0.4, 0.5, 0.4), core.Translation(0.6, 0.5, 0.2)))
	hourglass.SetMaterial(blue)

	cube := geometry.NewCube()
	cube.SetTransform(core.Chain(
		core.Scaling(0.35, 0.35, 0.35),
		core.RotationY(math.Pi/6),
		core.Translation(1.8, 0.35, 0),
	))
	cube.SetMaterial(red)

	w.AddShape(tube, drum, hourglass, cube)

	return newScene("shapes", w, cameraConfig, cameraOverrides...)
}
