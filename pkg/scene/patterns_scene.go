package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPatternsScene shows every pattern: a checkered floor, a ringed back
// wall and three spheres with stripes, a gradient and rings
func NewPatternsScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		From:        core.NewVec3(0, 1.5, -5),
		To:          core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		Height:      200,
		FieldOfView: math.Pi / 3,
	}

	w := NewWorld()
	w.Light = defaultLight()

	floorMat := material.DefaultMaterial()
	floorMat.Pattern = material.NewCheckersPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.2))
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	w.AddShape(newFloor(floorMat))

	wall := geometry.NewPlane()
	wall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 10)))
	rings := material.NewRingPattern(core.NewColor(0.8, 0.7, 0.5), core.NewColor(0.6, 0.4, 0.3))
	rings.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.RotationX(math.Pi/2)))
	wallMat := material.DefaultMaterial()
	wallMat.Pattern = rings
	wallMat.Specular = 0
	wallMat.NoCastShadow = true
	wall.SetMaterial(wallMat)
	w.AddShape(wall)

	striped := geometry.NewSphere()
	striped.SetTransform(core.Translation(-0.5, 1, 0.5))
	stripes := material.NewStripePattern(core.NewColor(0.1, 1, 0.5), core.NewColor(0.1, 0.3, 0.2))
	stripes.SetTransform(core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationZ(math.Pi/4)))
	stripedMat := material.DefaultMaterial()
	stripedMat.Pattern = stripes
	stripedMat.Diffuse = 0.7
	stripedMat.Specular = 0.3
	striped.SetMaterial(stripedMat)

	graded := geometry.NewSphere()
	graded.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)))
	gradient := material.NewGradientPattern(core.NewColor(1, 0.2, 0.1), core.NewColor(0.1, 0.2, 1))
	gradient.SetTransform(core.Chain(core.Scaling(2, 1, 1), core.Translation(-1, 0, 0)))
	gradedMat := material.DefaultMaterial()
	gradedMat.Pattern = gradient
	graded.SetMaterial(gradedMat)

	ringed := geometry.NewSphere()
	ringed.SetTransform(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)))
	smallRings := material.NewRingPattern(core.NewColor(1, 0.8, 0.1), core.NewColor(0.3, 0.1, 0))
	smallRings.SetTransform(core.Chain(core.Scaling(0.15, 0.15, 0.15), core.RotationX(math.Pi/3)))
	ringedMat := material.DefaultMaterial()
	ringedMat.Pattern = smallRings
	ringed.SetMaterial(ringedMat)

	w.AddShape(striped, graded, ringed)

	return newScene("patterns", w, cameraConfig, cameraOverrides...)
}
