package loaders

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RenderFile is the TOML render configuration. Every field is optional;
// nil or empty values leave the caller's defaults in place.
type RenderFile struct {
	MaxDepth *int     `toml:"max_depth"`
	Output   string   `toml:"output"`
	Format   string   `toml:"format"`
	Width    *int     `toml:"width"`
	Height   *int     `toml:"height"`
	FOV      *float64 `toml:"fov"` // degrees
	LogLevel string   `toml:"log_level"`
}

// LoadRenderConfig reads a TOML render configuration file
func LoadRenderConfig(filename string) (*RenderFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseRenderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// ParseRenderConfig parses TOML render configuration. Unknown keys are errors.
func ParseRenderConfig(data []byte) (*RenderFile, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg RenderFile
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxDepth != nil && *cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max_depth must be non-negative, got %d", *cfg.MaxDepth)
	}
	return &cfg, nil
}
