package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels   int           // Pixels written to the canvas
	Rows     int           // Scanlines completed
	Duration time.Duration // Wall time of the render
	integrator.RayStats
}

// finish fills in the totals once rendering stops
func (s *RenderStats) finish(rays integrator.RayStats, width int, start time.Time) {
	s.Pixels = s.Rows * width
	s.RayStats = rays
	s.Duration = time.Since(start)
}

// RaysPerSecond returns the ray throughput of the render
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Duration.Seconds()
}

// HitRate returns the fraction of traced rays that hit a surface
func (s RenderStats) HitRate() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(count)
}
