package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(3, -2, 5)
	b := NewVec3(-2, 3, 1)

	assert.Equal(t, NewVec3(1, 1, 6), a.Add(b))
	assert.Equal(t, NewVec3(5, -5, 4), a.Subtract(b))
	assert.Equal(t, NewVec3(-3, 2, -5), a.Negate())
	assert.Equal(t, NewVec3(1.5, -1, 2.5), a.Multiply(0.5))
}

func TestVec3_MagnitudeAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		length   float64
		expected Vec3
	}{
		{"unit x", NewVec3(1, 0, 0), 1, NewVec3(1, 0, 0)},
		{"axis aligned", NewVec3(4, 0, 0), 4, NewVec3(1, 0, 0)},
		{"general", NewVec3(1, 2, 3), math.Sqrt(14), NewVec3(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))},
		{"zero", NewVec3(0, 0, 0), 0, NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.length, tt.v.Length(), 1e-9)
			assert.True(t, tt.expected.ApproxEqual(tt.v.Normalize()), "got %v", tt.v.Normalize())
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(2, 3, 4)

	assert.Equal(t, 20.0, a.Dot(b))
	assert.Equal(t, NewVec3(-1, 2, -1), a.Cross(b))
	assert.Equal(t, NewVec3(1, -2, 1), b.Cross(a))
}

func TestVec3_Reflect(t *testing.T) {
	t.Run("at 45 degrees", func(t *testing.T) {
		v := NewVec3(1, -1, 0)
		n := NewVec3(0, 1, 0)
		assert.True(t, NewVec3(1, 1, 0).ApproxEqual(v.Reflect(n)))
	})

	t.Run("off a slanted surface", func(t *testing.T) {
		v := NewVec3(0, -1, 0)
		n := NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0)
		assert.True(t, NewVec3(1, 0, 0).ApproxEqual(v.Reflect(n)))
	})
}

func TestVec3_ColorProduct(t *testing.T) {
	c1 := NewColor(1, 0.2, 0.4)
	c2 := NewColor(0.9, 1, 0.1)
	assert.True(t, NewColor(0.9, 0.2, 0.04).ApproxEqual(c1.MultiplyVec(c2)))
}

func TestVec3_Clamp(t *testing.T) {
	assert.Equal(t, NewVec3(0, 0.5, 1), NewVec3(-1, 0.5, 1.5).Clamp(0, 1))
}
