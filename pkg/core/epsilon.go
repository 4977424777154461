package core

import "math"

// Epsilon is the single tolerance used for degenerate-case tests, float
// equality and the over/under point nudge.
const Epsilon = 1e-4

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NearZero reports whether |x| is below Epsilon
func NearZero(x float64) bool {
	return math.Abs(x) < Epsilon
}
