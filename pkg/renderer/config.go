package renderer

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// Config controls a render
type Config struct {
	MaxDepth int    // Reflection/refraction bounces allowed per camera ray
	Output   string // Output image path; empty means output/<scene>/render_<timestamp>.<format>
	Format   string // ppm, png, bmp or tiff; empty infers from Output
	LogLevel string // debug, info, warn or error

	// Camera overrides merged over the scene's own camera. Zero fields keep
	// the scene value.
	Camera geometry.CameraConfig
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		LogLevel: "info",
	}
}

// ApplyFile merges the values set in a render configuration file
func (c *Config) ApplyFile(file *loaders.RenderFile) {
	if file == nil {
		return
	}
	if file.MaxDepth != nil {
		c.MaxDepth = *file.MaxDepth
	}
	if file.Output != "" {
		c.Output = file.Output
	}
	if file.Format != "" {
		c.Format = file.Format
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.Width != nil {
		c.Camera.Width = *file.Width
	}
	if file.Height != nil {
		c.Camera.Height = *file.Height
	}
	if file.FOV != nil {
		c.Camera.FieldOfView = *file.FOV * math.Pi / 180
	}
}

// Validate checks the ranges of the numeric settings
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 {
		return fmt.Errorf("image size must be non-negative, got %dx%d", c.Camera.Width, c.Camera.Height)
	}
	if c.Camera.FieldOfView < 0 || c.Camera.FieldOfView >= math.Pi {
		return fmt.Errorf("field of view must be in (0, 180) degrees, got %g", c.Camera.FieldOfView*180/math.Pi)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name to its slog level. Empty means info.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// OutputPath returns the configured output path, or a timestamped path
// under output/<sceneID>/ when none is set
func (c Config) OutputPath(sceneID string, now time.Time) string {
	if c.Output != "" {
		return c.Output
	}
	format := c.Format
	if format == "" {
		format = loaders.FormatPNG
	}
	name := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format)
	return filepath.Join("output", sceneID, name)
}
