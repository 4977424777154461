package core

import "math"

// Vec3 is a point, a direction or an RGB color. Colors keep red, green and
// blue in X, Y and Z.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a point or direction
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewColor creates a color from its channels
func NewColor(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b}
}

var (
	Black = Vec3{0, 0, 0}
	White = Vec3{1, 1, 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MultiplyVec multiplies channel by channel, used to tint one color by another
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Cross follows the right-hand rule
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize scales v to unit length. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Black
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect mirrors v about normal, which must be unit length
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Clamp limits every component to [lo, hi]
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	c := func(x float64) float64 { return max(lo, min(hi, x)) }
	return Vec3{c(v.X), c(v.Y), c(v.Z)}
}

// ApproxEqual compares component-wise within Epsilon
func (v Vec3) ApproxEqual(o Vec3) bool {
	return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y) && ApproxEqual(v.Z, o.Z)
}
