package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// Canvas is a width x height grid of linear RGB colors, row-major from the
// top-left corner. Every pixel starts black.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// WritePixel sets the color at (x, y); it panics outside the canvas
func (c *Canvas) WritePixel(x, y int, color core.Vec3) {
	c.pixels[c.index(x, y)] = color
}

// PixelAt returns the color at (x, y); it panics outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Vec3 {
	return c.pixels[c.index(x, y)]
}

// ToImage converts the canvas to 8-bit RGBA, clamping each channel to [0, 1]
// before scaling
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(c.PixelAt(x, y)))
		}
	}
	return img
}

// WritePPM serializes the canvas as plain-text PPM
func (c *Canvas) WritePPM(w io.Writer) error {
	return loaders.EncodePPM(w, c.ToImage())
}

// Save writes the canvas to filename. An empty format is inferred from the
// file extension.
func (c *Canvas) Save(filename, format string) error {
	return loaders.SaveImage(filename, c.ToImage(), format)
}

// vec3ToColor converts a linear color to RGBA with clamping and rounding
func vec3ToColor(v core.Vec3) color.RGBA {
	v = v.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(math.Round(255 * v.X)),
		G: uint8(math.Round(255 * v.Y)),
		B: uint8(math.Round(255 * v.Z)),
		A: 255,
	}
}
