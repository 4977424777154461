package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// renderOptions holds the flags of the render command
type renderOptions struct {
	scene      string
	configPath string
	out        string
	format     string
	logLevel   string
	depth      int
	width      int
	height     int
	fov        float64 // degrees
	watch      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "raytracer",
		Short:         "Whitted ray tracer",
		Long:          "Renders scenes of spheres, planes, cubes, cylinders, cones and groups with Phong shading, hard shadows, reflection and refraction.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRenderCmd(stdout, stderr))
	root.AddCommand(newScenesCmd(stdout))
	root.AddCommand(newServeCmd(stderr))
	return root
}

func newRenderCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a built-in scene or a YAML scene file",
		Example: `  raytracer render --scene glass --out output/glass.png
  raytracer render --scene scenes/bubbles.yaml --width 800 --height 600 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.config(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(stderr, config.LogLevel)
			if err != nil {
				return err
			}

			if !opts.watch {
				return renderOnce(cmd.Context(), opts.scene, config, logger, stdout)
			}

			// the config file is one of the watched targets, so every
			// re-render reads it again
			render := func() error {
				config, err := opts.config(cmd)
				if err != nil {
					return err
				}
				logger, err := newLogger(stderr, config.LogLevel)
				if err != nil {
					return err
				}
				return renderOnce(cmd.Context(), opts.scene, config, logger, stdout)
			}
			return watchAndRender(cmd.Context(), opts.watchTargets(), render, logger)
		},
	}

	opts.bindFlags(cmd)
	return cmd
}

// bindFlags registers the render flags on cmd
func (o *renderOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.scene, "scene", "s", "default", "built-in scene name or path to a YAML scene file")
	flags.StringVarP(&o.configPath, "config", "c", "", "TOML render configuration file")
	flags.StringVarP(&o.out, "out", "o", "", "output image path (default output/<scene>/render_<timestamp>.<format>)")
	flags.StringVarP(&o.format, "format", "f", "", "image format: ppm, png, bmp or tiff (default from --out)")
	flags.IntVarP(&o.depth, "depth", "d", 5, "reflection and refraction bounces per camera ray")
	flags.IntVar(&o.width, "width", 0, "image width in pixels (default from the scene)")
	flags.IntVar(&o.height, "height", 0, "image height in pixels (default from the scene)")
	flags.Float64Var(&o.fov, "fov", 0, "field of view in degrees (default from the scene)")
	flags.BoolVarP(&o.watch, "watch", "w", false, "re-render whenever the scene or config file changes")
	flags.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
}

// config merges defaults, the config file and explicitly set flags, in
// that order of precedence
func (o *renderOptions) config(cmd *cobra.Command) (renderer.Config, error) {
	config := renderer.DefaultConfig()

	if o.configPath != "" {
		file, err := loaders.LoadRenderConfig(o.configPath)
		if err != nil {
			return config, err
		}
		config.ApplyFile(file)
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		config.MaxDepth = o.depth
	}
	if flags.Changed("out") {
		config.Output = o.out
	}
	if flags.Changed("format") {
		config.Format = o.format
	}
	if flags.Changed("log-level") {
		config.LogLevel = o.logLevel
	}
	if flags.Changed("width") {
		config.Camera.Width = o.width
	}
	if flags.Changed("height") {
		config.Camera.Height = o.height
	}
	if flags.Changed("fov") {
		config.Camera.FieldOfView = o.fov * math.Pi / 180
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// watchTargets returns the files whose changes trigger a re-render
func (o *renderOptions) watchTargets() []string {
	var targets []string
	if _, err := os.Stat(o.scene); err == nil {
		targets = append(targets, o.scene)
	}
	if o.configPath != "" {
		targets = append(targets, o.configPath)
	}
	return targets
}

// newLogger creates a text logger on w at the named level
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := renderer.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// renderOnce loads the scene, renders it and saves the image
func renderOnce(ctx context.Context, sceneID string, config renderer.Config, logger *slog.Logger, stdout io.Writer) error {
	s, err := scene.Load(sceneID, config.Camera)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(s, config, logger)
	if err != nil {
		return err
	}

	canvas, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render %s: %w", s.Name, err)
	}

	path := config.OutputPath(outputName(sceneID), time.Now())
	if err := canvas.Save(path, config.Format); err != nil {
		return err
	}

	img := canvas.ToImage()
	printSummary(stdout, summary{
		scene:     s,
		stats:     stats,
		path:      path,
		luminance: renderer.CalculateAverageLuminance(img),
		maxDepth:  config.MaxDepth,
	})
	return nil
}

// outputName turns a scene id into a directory name: built-in ids are used
// as they are, file paths lose their directory and extension
func outputName(sceneID string) string {
	base := filepath.Base(sceneID)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func newScenesCmd(stdout io.Writer) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes and the scene files in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := scene.ListAllScenes(dir, nil)
			if err != nil {
				return err
			}
			printScenes(stdout, scenes)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "scenes", "directory to scan for .yaml scene files")
	return cmd
}

func newServeCmd(stderr io.Writer) *cobra.Command {
	var (
		port     int
		dir      string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered previews over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, logLevel)
			if err != nil {
				return err
			}
			return server.NewServer(port, dir, logger).Start(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to serve on")
	cmd.Flags().StringVar(&dir, "dir", "scenes", "directory of .yaml scene files to serve")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}
