package renderer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// defaultWorldScene frames the two-sphere world from (0, 0, -5) on an 11x11 canvas
func defaultWorldScene(t *testing.T) *scene.Scene {
	t.Helper()
	camera, err := geometry.NewCameraFromConfig(geometry.CameraConfig{
		From:        core.NewVec3(0, 0, -5),
		To:          core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       11,
		Height:      11,
		FieldOfView: math.Pi / 2,
	})
	require.NoError(t, err)
	return &scene.Scene{Name: "default world", World: scene.DefaultWorld(), Camera: camera}
}

func TestRaytracer_RenderDefaultWorld(t *testing.T) {
	rt, err := NewRaytracer(defaultWorldScene(t), DefaultConfig(), nil)
	require.NoError(t, err)

	canvas, stats, err := rt.Render(context.Background())
	require.NoError(t, err)

	center := canvas.PixelAt(5, 5)
	assert.InDelta(t, 0.38066, center.X, 1e-4)
	assert.InDelta(t, 0.47583, center.Y, 1e-4)
	assert.InDelta(t, 0.2855, center.Z, 1e-4)

	assert.Equal(t, 121, stats.Pixels)
	assert.Equal(t, 11, stats.Rows)
	assert.Equal(t, int64(121), stats.Rays)
	assert.Greater(t, stats.Hits, int64(0))
	assert.Less(t, stats.Hits, stats.Rays)
	assert.Equal(t, stats.Hits, stats.ShadowRays)
}

// flatIntegrator paints every ray with one color and counts the calls
type flatIntegrator struct {
	color     core.Vec3
	remaining []int
	stats     integrator.RayStats
}

func (f *flatIntegrator) RayColor(ray core.Ray, world *scene.World, remaining int) core.Vec3 {
	f.stats.Rays++
	f.remaining = append(f.remaining, remaining)
	return f.color
}

func (f *flatIntegrator) Stats() integrator.RayStats { return f.stats }

func (f *flatIntegrator) ResetStats() { f.stats = integrator.RayStats{} }

func TestRaytracer_SetIntegrator(t *testing.T) {
	config := DefaultConfig()
	config.MaxDepth = 3
	rt, err := NewRaytracer(defaultWorldScene(t), config, nil)
	require.NoError(t, err)

	flat := &flatIntegrator{color: core.NewColor(0.25, 0.5, 0.75), stats: integrator.RayStats{Rays: 99}}
	rt.SetIntegrator(flat)

	canvas, stats, err := rt.Render(context.Background())
	require.NoError(t, err)

	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			require.Equal(t, flat.color, canvas.PixelAt(x, y))
		}
	}
	// stats are reset at the start of every render
	assert.Equal(t, int64(121), stats.Rays)
	require.Len(t, flat.remaining, 121)
	assert.Equal(t, 3, flat.remaining[0])
}

func TestRaytracer_RenderBuiltinScene(t *testing.T) {
	s, err := scene.NewBuiltinScene("glass", geometry.CameraConfig{Width: 16, Height: 12})
	require.NoError(t, err)

	rt, err := NewRaytracer(s, DefaultConfig(), nil)
	require.NoError(t, err)

	canvas, stats, err := rt.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, canvas.Width)
	assert.Equal(t, 12, canvas.Height)
	assert.Equal(t, 16*12, stats.Pixels)
	// reflection and refraction spawn secondary rays
	assert.Greater(t, stats.Rays, int64(stats.Pixels))
}

func TestRaytracer_ZeroDepthSkipsSecondaryRays(t *testing.T) {
	s, err := scene.NewBuiltinScene("glass", geometry.CameraConfig{Width: 8, Height: 6})
	require.NoError(t, err)

	config := DefaultConfig()
	config.MaxDepth = 0
	rt, err := NewRaytracer(s, config, nil)
	require.NoError(t, err)

	_, stats, err := rt.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(stats.Pixels), stats.Rays)
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt, err := NewRaytracer(defaultWorldScene(t), DefaultConfig(), nil)
	require.NoError(t, err)

	canvas, stats, err := rt.Render(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, canvas)
	assert.Zero(t, stats.Rows)
	assert.Zero(t, stats.Pixels)
	assert.Zero(t, stats.Rays)
}

func TestRaytracer_Deterministic(t *testing.T) {
	s := defaultWorldScene(t)
	rt, err := NewRaytracer(s, DefaultConfig(), nil)
	require.NoError(t, err)

	first, _, err := rt.Render(context.Background())
	require.NoError(t, err)
	second, _, err := rt.Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ToImage().Pix, second.ToImage().Pix)
}

func TestRaytracer_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	rt, err := NewRaytracer(defaultWorldScene(t), DefaultConfig(), logger)
	require.NoError(t, err)
	_, _, err = rt.Render(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "render started")
	assert.Contains(t, buf.String(), "render finished")
	assert.Contains(t, buf.String(), `scene="default world"`)
	assert.NotContains(t, buf.String(), "shade hit")
}

func TestNewRaytracer_Errors(t *testing.T) {
	_, err := NewRaytracer(nil, DefaultConfig(), nil)
	assert.Error(t, err)

	_, err = NewRaytracer(&scene.Scene{World: scene.DefaultWorld()}, DefaultConfig(), nil)
	assert.Error(t, err)

	config := DefaultConfig()
	config.MaxDepth = -1
	_, err = NewRaytracer(defaultWorldScene(t), config, nil)
	assert.Error(t, err)
}
