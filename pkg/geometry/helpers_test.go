package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-4

func assertVec3(t *testing.T, expected, actual core.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, "x: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, "y: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, "z: expected %v, got %v", expected, actual)
}

func tValues(xs Intersections) []float64 {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}
