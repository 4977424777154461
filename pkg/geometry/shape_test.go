package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestShape_Defaults(t *testing.T) {
	s := NewTestShape()
	assert.True(t, core.Identity().ApproxEqual(s.Transform()))
	assert.Equal(t, material.DefaultMaterial(), *s.Material())
	assert.Nil(t, s.Parent())
}

func TestShape_SetMaterial(t *testing.T) {
	s := NewTestShape()
	m := material.DefaultMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	assert.Equal(t, 1.0, s.Material().Ambient)

	s.Material().Diffuse = 0.5
	assert.Equal(t, 0.5, s.Material().Diffuse)
}

func TestShape_SingularTransformPanics(t *testing.T) {
	s := NewTestShape()
	assert.Panics(t, func() { s.SetTransform(core.Scaling(0, 1, 1)) })
	assert.True(t, core.Identity().ApproxEqual(s.Transform()))
}

func TestIntersect_TransformsRayIntoObjectSpace(t *testing.T) {
	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	t.Run("scaled", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.Scaling(2, 2, 2))
		Intersect(s, r)
		require.NotNil(t, s.SavedRay)
		assertVec3(t, core.NewVec3(0, 0, -2.5), s.SavedRay.Origin)
		assertVec3(t, core.NewVec3(0, 0, 0.5), s.SavedRay.Direction)
	})

	t.Run("translated", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.Translation(5, 0, 0))
		Intersect(s, r)
		require.NotNil(t, s.SavedRay)
		assertVec3(t, core.NewVec3(-5, 0, -5), s.SavedRay.Origin)
		assertVec3(t, core.NewVec3(0, 0, 1), s.SavedRay.Direction)
	})
}

func TestNormalAt_TestShape(t *testing.T) {
	t.Run("translated", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.Translation(0, 1, 0))
		assertVec3(t, core.NewVec3(0, 0.70711, -0.70711), NormalAt(s, core.NewVec3(0, 1.70711, -0.70711)))
	})

	t.Run("transformed", func(t *testing.T) {
		s := NewTestShape()
		s.SetTransform(core.Chain(core.RotationZ(math.Pi/5), core.Scaling(1, 0.5, 1)))
		assertVec3(t, core.NewVec3(0, 0.97014, -0.24254), NormalAt(s, core.NewVec3(0, math.Sqrt2/2, -math.Sqrt2/2)))
	})
}

func TestPatternAtShape(t *testing.T) {
	white, black := core.NewColor(1, 1, 1), core.NewColor(0, 0, 0)

	tests := []struct {
		name     string
		object   core.Matrix
		pattern  core.Matrix
		stripes  bool
		point    core.Vec3
		expected core.Vec3
	}{
		{"stripes with object transform", core.Scaling(2, 2, 2), core.Identity(), true, core.NewVec3(1.5, 0, 0), white},
		{"stripes with pattern transform", core.Identity(), core.Scaling(2, 2, 2), true, core.NewVec3(1.5, 0, 0), white},
		{"stripes with both transforms", core.Scaling(2, 2, 2), core.Translation(0.5, 0, 0), true, core.NewVec3(2.5, 0, 0), white},
		{"stripes untransformed", core.Identity(), core.Identity(), true, core.NewVec3(1.5, 0, 0), black},
		{"test pattern with object transform", core.Scaling(2, 2, 2), core.Identity(), false, core.NewVec3(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"test pattern with pattern transform", core.Identity(), core.Scaling(2, 2, 2), false, core.NewVec3(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"test pattern with both transforms", core.Scaling(2, 2, 2), core.Translation(0.5, 1, 1.5), false, core.NewVec3(2.5, 3, 3.5), core.NewColor(0.75, 0.5, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			s.SetTransform(tt.object)

			var p material.Pattern = material.NewTestPattern()
			if tt.stripes {
				p = material.NewStripePattern(white, black)
			}
			p.SetTransform(tt.pattern)

			assertVec3(t, tt.expected, PatternAtShape(p, s, tt.point))
			// lookups are pure
			assertVec3(t, tt.expected, PatternAtShape(p, s, tt.point))
		})
	}
}

func TestPatternAtShape_ThroughGroup(t *testing.T) {
	g := NewGroup()
	g.SetTransform(core.Scaling(2, 2, 2))
	s := NewSphere()
	s.SetTransform(core.Translation(5, 0, 0))
	g.AddChild(s)

	assertVec3(t, core.NewVec3(0, 0, 0), PatternAtShape(material.NewTestPattern(), s, core.NewVec3(10, 0, 0)))
}

func TestColorAt(t *testing.T) {
	s := NewSphere()
	s.Material().Color = core.NewColor(0.2, 0.4, 0.6)
	assert.Equal(t, core.NewColor(0.2, 0.4, 0.6), ColorAt(s, core.NewVec3(1, 0, 0)))
}

func TestColorAt_PatternReplacesColor(t *testing.T) {
	s := NewSphere()
	m := s.Material()
	m.Color = core.NewColor(1, 0, 0)
	m.Pattern = material.NewStripePattern(core.NewColor(0, 1, 0), core.NewColor(0, 0, 1))

	assert.Equal(t, core.NewColor(0, 1, 0), ColorAt(s, core.NewVec3(0.5, 0, 0)))
	assert.Equal(t, core.NewColor(0, 0, 1), ColorAt(s, core.NewVec3(1.5, 0, 0)))

	m.Pattern = nil
	assert.Equal(t, core.NewColor(1, 0, 0), ColorAt(s, core.NewVec3(1.5, 0, 0)))

	s.Material().Pattern = material.NewTestPattern()
	assertVec3(t, core.NewVec3(1, 0, 0), ColorAt(s, core.NewVec3(1, 0, 0)))
}
