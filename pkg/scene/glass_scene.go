package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene places a hollow glass sphere, a mirror cube and capped
// cylinder and cone over a reflective checkered floor
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		From:        core.NewVec3(0, 2.5, -6),
		To:          core.NewVec3(0, 0.75, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		Height:      250,
		FieldOfView: math.Pi / 3,
	}

	w := NewWorld()
	w.Light = defaultLight()

	checkers := material.NewCheckersPattern(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))
	floorMat := material.DefaultMaterial()
	floorMat.Pattern = checkers
	floorMat.Specular = 0
	floorMat.Reflective = 0.4
	w.AddShape(newFloor(floorMat))

	// glass ball with an air bubble in the middle
	ball := geometry.NewGlassSphere()
	ball.SetTransform(core.Translation(0, 1, 0))
	ballMat := ball.Material()
	ballMat.Color = core.NewColor(0.1, 0.1, 0.1)
	ballMat.Ambient = 0
	ballMat.Diffuse = 0.1
	ballMat.Specular = 1
	ballMat.Shininess = 300
	ballMat.Reflective = 0.9

	bubble := geometry.NewGlassSphere()
	bubble.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0, 1, 0)))
	bubbleMat := bubble.Material()
	bubbleMat.Color = core.NewColor(0.1, 0.1, 0.1)
	bubbleMat.Ambient = 0
	bubbleMat.Diffuse = 0.1
	bubbleMat.Reflective = 0.9
	bubbleMat.RefractiveIndex = material.Air
	bubbleMat.NoCastShadow = true

	cube := geometry.NewCube()
	cube.SetTransform(core.Chain(
		core.Scaling(0.4, 0.4, 0.4),
		core.RotationY(math.Pi/5),
		core.Translation(2.2, 0.4, 0.8),
	))
	cubeMat := material.NewMaterial(core.NewColor(0.8, 0.1, 0.1))
	cubeMat.Reflective = 0.3
	cube.SetMaterial(cubeMat)

	cylinder := geometry.NewTruncatedCylinder(0, 1, true)
	cylinder.SetTransform(core.Chain(core.Scaling(0.4, 1.2, 0.4), core.Translation(-2, 0, 0.6)))
	cylinder.SetMaterial(material.NewMaterial(core.NewColor(0.1, 0.5, 0.8)))

	cone := geometry.NewTruncatedCone(-1, 0, true)
	cone.SetTransform(core.Chain(core.Scaling(0.5, 1, 0.5), core.Translation(1.2, 1, 2.5)))
	coneMat := material.NewMaterial(core.NewColor(1, 0.8, 0.2))
	coneMat.Shininess = 50
	cone.SetMaterial(coneMat)

	w.AddShape(ball, bubble, cube, cylinder, cone)

	return newScene("glass", w, cameraConfig, cameraOverrides...)
}
