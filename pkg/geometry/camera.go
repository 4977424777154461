package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps a canvas of HSize x VSize pixels onto a view plane one unit in
// front of the eye. The transform orients the world relative to the camera
// (see core.ViewTransform).
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64 // radians

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with an identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", hsize, vsize)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, fmt.Errorf("field of view must be in (0, π), got %g", fieldOfView)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)
	return c, nil
}

// PixelSize returns the world-space width of one pixel on the view plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform replaces the view transform; it panics if m is singular
func (c *Camera) SetTransform(m core.Matrix) {
	c.inverse = m.Inverse()
	c.transform = m
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(core.NewVec3(worldX, worldY, -1))
	origin := c.inverse.MulPoint(core.NewVec3(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// CameraConfig describes a camera by where it sits and what it looks at
type CameraConfig struct {
	From        core.Vec3 // Eye position
	To          core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Approximate up direction
	Width       int       // Canvas width in pixels
	Height      int       // Canvas height in pixels
	FieldOfView float64   // Horizontal or vertical extent in radians, whichever side is longer
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	var zero core.Vec3
	if override.From != zero {
		result.From = override.From
	}
	if override.To != zero {
		result.To = override.To
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// NewCameraFromConfig builds a camera and its view transform from config
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	camera, err := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err != nil {
		return nil, err
	}

	up := config.Up
	if up == (core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}
	forward := config.To.Subtract(config.From)
	if forward.Length() < core.Epsilon {
		return nil, fmt.Errorf("camera position %v and target %v coincide", config.From, config.To)
	}
	if forward.Normalize().Cross(up.Normalize()).Length() < core.Epsilon {
		return nil, fmt.Errorf("camera up %v is parallel to the view direction", up)
	}

	camera.SetTransform(core.ViewTransform(config.From, config.To, up))
	return camera, nil
}
