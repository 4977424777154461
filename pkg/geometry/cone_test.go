package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCone_LocalIntersect(t *testing.T) {
	tests := []struct {
		name              string
		origin, direction core.Vec3
		t0, t1            float64
	}{
		{"along z", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 5, 5},
		{"diagonal", core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 1), 8.66025, 8.66025},
		{"both halves", core.NewVec3(1, 1, -5), core.NewVec3(-0.5, -1, 1), 4.55006, 49.44994},
	}

	c := NewCone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			require.Len(t, xs, 2)
			assert.InDelta(t, tt.t0, xs[0].T, tolerance)
			assert.InDelta(t, tt.t1, xs[1].T, tolerance)
		})
	}
}

func TestCone_RayParallelToOneHalf(t *testing.T) {
	c := NewCone()
	xs := c.LocalIntersect(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 1).Normalize()))
	require.Len(t, xs, 1)
	assert.InDelta(t, 0.35355, xs[0].T, tolerance)
}

func TestCone_Caps(t *testing.T) {
	tests := []struct {
		origin, direction core.Vec3
		count             int
	}{
		{core.NewVec3(0, 0, -5), core.NewVec3(0, 1, 0), 0},
		{core.NewVec3(0, 0, -0.25), core.NewVec3(0, 1, 1), 2},
		{core.NewVec3(0, 0, -0.25), core.NewVec3(0, 1, 0), 4},
	}

	c := NewTruncatedCone(-0.5, 0.5, true)
	for _, tt := range tests {
		xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
		assert.Len(t, xs, tt.count, "ray from %v along %v", tt.origin, tt.direction)
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point, normal core.Vec3
	}{
		{core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec3(1, 1, 1), core.NewVec3(1, -math.Sqrt2, 1)},
		{core.NewVec3(-1, -1, 0), core.NewVec3(-1, 1, 0)},
	}

	c := NewCone()
	for _, tt := range tests {
		assertVec3(t, tt.normal, c.LocalNormalAt(tt.point))
	}
}

func TestCone_CapNormals(t *testing.T) {
	c := NewTruncatedCone(-1, 2, true)
	assert.Equal(t, core.NewVec3(0, 1, 0), c.LocalNormalAt(core.NewVec3(0.5, 2, 0)))
	assert.Equal(t, core.NewVec3(0, -1, 0), c.LocalNormalAt(core.NewVec3(0, -1, 0.5)))
}
