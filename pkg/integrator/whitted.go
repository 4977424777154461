package integrator

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Whitted is a recursive ray tracer: Phong lighting with hard shadows plus
// mirror reflection and refraction. Recursion is bounded solely by the
// remaining budget handed to each call, so mirrors facing each other still
// terminate.
type Whitted struct {
	logger *slog.Logger
	trace  bool
	stats  RayStats
}

// NewWhitted creates a Whitted integrator. When logger is enabled for debug
// records, every shaded hit is traced. A nil logger discards everything.
func NewWhitted(logger *slog.Logger) *Whitted {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Whitted{
		logger: logger,
		trace:  logger.Enabled(context.Background(), slog.LevelDebug),
	}
}

// Stats returns the counts accumulated since the last ResetStats
func (w *Whitted) Stats() RayStats { return w.stats }

// ResetStats zeroes the counters
func (w *Whitted) ResetStats() { w.stats = RayStats{} }

// RayColor implements Integrator
func (w *Whitted) RayColor(ray core.Ray, world *scene.World, remaining int) core.Vec3 {
	return w.ColorAt(world, ray, remaining)
}

// ColorAt returns the color seen along ray, or black when it hits nothing
func (w *Whitted) ColorAt(world *scene.World, ray core.Ray, remaining int) core.Vec3 {
	w.stats.Rays++

	xs := world.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	w.stats.Hits++

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(world, comps, remaining)
}

// ShadeHit combines direct lighting at the hit with the reflected and
// refracted contributions. A surface that is both reflective and
// transparent splits the two by its Schlick reflectance.
func (w *Whitted) ShadeHit(world *scene.World, comps Computations, remaining int) core.Vec3 {
	m := comps.Object.Material()

	surface := core.Black
	shadowed := false
	if world.Light != nil {
		w.stats.ShadowRays++
		shadowed = world.IsShadowed(comps.OverPoint)
		surface = lights.Lighting(*m, comps.Object, world.Light, comps.OverPoint, comps.Eye, comps.Normal, shadowed)
	}

	reflected := w.ReflectedColor(world, comps, remaining)
	refracted := w.RefractedColor(world, comps, remaining)

	if w.trace {
		w.logger.Debug("shade hit",
			"remaining", remaining,
			"t", comps.T,
			"point", comps.Point,
			"inside", comps.Inside,
			"shadowed", shadowed,
			"n1", comps.N1,
			"n2", comps.N2,
		)
	}

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce off a reflective surface
func (w *Whitted) ReflectedColor(world *scene.World, comps Computations, remaining int) core.Vec3 {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(world, ray, remaining-1).Multiply(reflective)
}

// RefractedColor traces the ray bent through a transparent surface by
// Snell's law. Total internal reflection contributes nothing here; that
// light is carried by ReflectedColor.
func (w *Whitted) RefractedColor(world *scene.World, comps Computations, remaining int) core.Vec3 {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).Subtract(comps.Eye.Multiply(nRatio))
	ray := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(world, ray, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance at the hit
func Schlick(comps Computations) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
