package main

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// summary is what printSummary reports about a finished render
type summary struct {
	scene     *scene.Scene
	stats     renderer.RenderStats
	path      string
	luminance float64
	maxDepth  int
}

// printSummary writes a short colored report. Colors are dropped when w is
// not a terminal.
func printSummary(w io.Writer, s summary) {
	out := termenv.NewOutput(w)
	label := func(text string) termenv.Style {
		return out.String(fmt.Sprintf("%-11s", text)).Faint()
	}

	camera := s.scene.Camera
	fmt.Fprintln(w, out.String("Rendered "+s.scene.Name).Bold().Foreground(out.Color("6")))
	fmt.Fprintf(w, "  %s %dx%d, %d primitives, depth %d\n", label("image"),
		camera.HSize, camera.VSize, s.scene.GetPrimitiveCount(), s.maxDepth)
	fmt.Fprintf(w, "  %s %d rays, %d shadow rays, %.1f%% hits\n", label("rays"),
		s.stats.Rays, s.stats.ShadowRays, 100*s.stats.HitRate())
	fmt.Fprintf(w, "  %s %v (%.0f rays/s)\n", label("time"),
		s.stats.Duration.Round(time.Millisecond), s.stats.RaysPerSecond())
	fmt.Fprintf(w, "  %s %.3f\n", label("luminance"), s.luminance)
	fmt.Fprintf(w, "  %s %s\n", label("saved"), out.String(s.path).Foreground(out.Color("2")))
}

// printScenes lists scenes grouped under bold headings
func printScenes(w io.Writer, scenes []scene.SceneInfo) {
	out := termenv.NewOutput(w)

	group := ""
	for _, info := range scenes {
		if info.Group != group {
			group = info.Group
			fmt.Fprintln(w, out.String(group).Bold())
		}
		line := fmt.Sprintf("  %-10s %s", info.ID, info.Name)
		if info.Description != "" {
			line += out.String(" - " + info.Description).Faint().String()
		}
		fmt.Fprintln(w, line)
	}
}
