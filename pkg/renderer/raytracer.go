package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene through its camera onto a canvas
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	config     Config
	integrator integrator.Integrator
	logger     *slog.Logger
}

// NewRaytracer creates a raytracer for s shading with a Whitted integrator.
// A nil logger discards output.
func NewRaytracer(s *scene.Scene, config Config, logger *slog.Logger) (*Raytracer, error) {
	if s == nil || s.World == nil || s.Camera == nil {
		return nil, errors.New("scene needs a world and a camera")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Raytracer{
		scene:      s,
		camera:     s.Camera,
		config:     config,
		integrator: integrator.NewWhitted(logger),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(in integrator.Integrator) {
	rt.integrator = in
}

// Render traces one ray per pixel, scanline by scanline from the top.
// Cancellation is checked between scanlines; on cancellation the canvas holds
// the rows finished so far and the context error is returned.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	start := time.Now()
	canvas := NewCanvas(rt.camera.HSize, rt.camera.VSize)
	rt.integrator.ResetStats()

	rt.logger.Info("render started",
		"scene", rt.scene.Name,
		"width", canvas.Width,
		"height", canvas.Height,
		"primitives", rt.scene.GetPrimitiveCount(),
		"max_depth", rt.config.MaxDepth,
	)

	var stats RenderStats
	for y := 0; y < canvas.Height; y++ {
		if err := ctx.Err(); err != nil {
			stats.finish(rt.integrator.Stats(), canvas.Width, start)
			rt.logger.Warn("render cancelled", "rows", stats.Rows, "error", err)
			return canvas, stats, err
		}
		rt.renderRow(canvas, y)
		stats.Rows++
	}
	stats.finish(rt.integrator.Stats(), canvas.Width, start)

	rt.logger.Info("render finished",
		"duration", stats.Duration,
		"rays", stats.Rays,
		"shadow_rays", stats.ShadowRays,
		"hits", stats.Hits,
	)
	return canvas, stats, nil
}

// renderRow shades every pixel of scanline y
func (rt *Raytracer) renderRow(canvas *Canvas, y int) {
	for x := 0; x < canvas.Width; x++ {
		ray := rt.camera.RayForPixel(x, y)
		canvas.WritePixel(x, y, rt.integrator.RayColor(ray, rt.scene.World, rt.config.MaxDepth))
	}
}
