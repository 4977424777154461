package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides a spatially varying surface color. PatternAt receives a
// point already mapped into pattern space; callers resolve the owning
// shape's transform chain and then InverseTransform first.
type Pattern interface {
	PatternAt(point core.Vec3) core.Vec3
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
}

// patternTransform is embedded by every pattern; the inverse is cached so
// lookups never invert on the hot path.
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityPatternTransform() patternTransform {
	return patternTransform{transform: core.Identity(), inverse: core.Identity()}
}

func (p *patternTransform) Transform() core.Matrix        { return p.transform }
func (p *patternTransform) InverseTransform() core.Matrix { return p.inverse }

// SetTransform panics if m is not invertible
func (p *patternTransform) SetTransform(m core.Matrix) {
	p.inverse = m.Inverse()
	p.transform = m
}

// StripePattern alternates between A and B along the x axis
type StripePattern struct {
	patternTransform
	A, B core.Vec3
}

// NewStripePattern creates a stripe pattern with unit-wide stripes
func NewStripePattern(a, b core.Vec3) *StripePattern {
	return &StripePattern{patternTransform: identityPatternTransform(), A: a, B: b}
}

// PatternAt implements Pattern
func (p *StripePattern) PatternAt(point core.Vec3) core.Vec3 {
	if even(math.Floor(point.X)) {
		return p.A
	}
	return p.B
}

// RingPattern alternates between A and B in concentric rings around the y axis
type RingPattern struct {
	patternTransform
	A, B core.Vec3
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b core.Vec3) *RingPattern {
	return &RingPattern{patternTransform: identityPatternTransform(), A: a, B: b}
}

// PatternAt implements Pattern
func (p *RingPattern) PatternAt(point core.Vec3) core.Vec3 {
	if even(math.Floor(math.Hypot(point.X, point.Z))) {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B across each unit of x
type GradientPattern struct {
	patternTransform
	A, B core.Vec3
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Vec3) *GradientPattern {
	return &GradientPattern{patternTransform: identityPatternTransform(), A: a, B: b}
}

// PatternAt implements Pattern
func (p *GradientPattern) PatternAt(point core.Vec3) core.Vec3 {
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
}

// CheckersPattern alternates between A and B in unit cubes
type CheckersPattern struct {
	patternTransform
	A, B core.Vec3
}

// NewCheckersPattern creates a 3D checker pattern
func NewCheckersPattern(a, b core.Vec3) *CheckersPattern {
	return &CheckersPattern{patternTransform: identityPatternTransform(), A: a, B: b}
}

// PatternAt implements Pattern
func (p *CheckersPattern) PatternAt(point core.Vec3) core.Vec3 {
	if even(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
		return p.A
	}
	return p.B
}

// TestPattern returns the pattern-space point itself as a color, which makes
// the transform chain observable in tests and debug renders.
type TestPattern struct {
	patternTransform
}

// NewTestPattern creates a test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{patternTransform: identityPatternTransform()}
}

// PatternAt implements Pattern
func (p *TestPattern) PatternAt(point core.Vec3) core.Vec3 {
	return core.NewColor(point.X, point.Y, point.Z)
}

// even reports whether a floored value is an even integer; works for negatives
func even(f float64) bool {
	return math.Mod(f, 2) == 0
}
