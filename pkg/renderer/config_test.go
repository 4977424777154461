package renderer

import (
	"log/slog"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.MaxDepth)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.Format)
	assert.NoError(t, config.Validate())
}

func TestConfig_ApplyFile(t *testing.T) {
	file, err := loaders.ParseRenderConfig([]byte(`
max_depth = 2
output = "out/frame.bmp"
format = "bmp"
width = 64
height = 48
fov = 90.0
log_level = "debug"
`))
	require.NoError(t, err)

	config := DefaultConfig()
	config.ApplyFile(file)

	assert.Equal(t, 2, config.MaxDepth)
	assert.Equal(t, "out/frame.bmp", config.Output)
	assert.Equal(t, "bmp", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 64, config.Camera.Width)
	assert.Equal(t, 48, config.Camera.Height)
	assert.InDelta(t, math.Pi/2, config.Camera.FieldOfView, 1e-12)
}

func TestConfig_ApplyFileKeepsUnsetValues(t *testing.T) {
	file, err := loaders.ParseRenderConfig([]byte("format = \"tiff\"\n"))
	require.NoError(t, err)

	config := DefaultConfig()
	config.ApplyFile(file)
	config.ApplyFile(nil)

	assert.Equal(t, 5, config.MaxDepth)
	assert.Empty(t, config.Output)
	assert.Equal(t, "tiff", config.Format)
	assert.Zero(t, config.Camera.Width)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"negative width", func(c *Config) { c.Camera.Width = -10 }},
		{"field of view too wide", func(c *Config) { c.Camera.FieldOfView = math.Pi }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		level, err := ParseLogLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.expected, level, tt.name)
	}

	_, err := ParseLogLevel("trace")
	assert.Error(t, err)
}

func TestConfig_OutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	config := DefaultConfig()
	assert.Equal(t, filepath.Join("output", "glass", "render_20240309_140507.png"), config.OutputPath("glass", now))

	config.Format = "ppm"
	assert.Equal(t, filepath.Join("output", "glass", "render_20240309_140507.ppm"), config.OutputPath("glass", now))

	config.Output = "frames/one.bmp"
	assert.Equal(t, "frames/one.bmp", config.OutputPath("glass", now))
}
