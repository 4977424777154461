package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGroupScene builds a hexagon of sphere corners and cylinder edges out of
// nested groups: each side is a group, and the six sides share one parent
func NewGroupScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		From:        core.NewVec3(0, 3, -4),
		To:          core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       300,
		Height:      300,
		FieldOfView: math.Pi / 3,
	}

	w := NewWorld()
	w.Light = defaultLight()

	floorMat := material.NewMaterial(core.NewColor(0.9, 0.9, 0.85))
	floorMat.Specular = 0
	floorMat.Reflective = 0.2
	w.AddShape(newFloor(floorMat))

	hex := newHexagon()
	hex.SetTransform(core.Chain(core.RotationX(-math.Pi/6), core.Translation(0, 1, 0)))
	w.AddShape(hex)

	return newScene("group", w, cameraConfig, cameraOverrides...)
}

func newHexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := range 6 {
		side := newHexagonSide()
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func newHexagonSide() *geometry.Group {
	m := material.NewMaterial(core.NewColor(0.8, 0.3, 0.2))
	m.Reflective = 0.15

	corner := geometry.NewSphere()
	corner.SetTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.Translation(0, 0, -1)))
	corner.SetMaterial(m)

	edge := geometry.NewTruncatedCylinder(0, 1, false)
	edge.SetTransform(core.Chain(
		core.Scaling(0.25, 1, 0.25),
		core.RotationZ(-math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0, 0, -1),
	))
	edge.SetMaterial(m)

	side := geometry.NewGroup()
	side.AddChildren(corner, edge)
	return side
}
