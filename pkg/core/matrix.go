package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is an affine 4x4 transform. The zero value is not usable; start
// from Identity or one of the builders.
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from its rows
func NewMatrix(rows [4][4]float64) Matrix {
	return Matrix{m: mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX rotates by radians around the x axis
func RotationX(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(radians)}
}

// RotationY rotates by radians around the y axis
func RotationY(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(radians)}
}

// RotationZ rotates by radians around the z axis
func RotationZ(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(radians)}
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform orients the world relative to an eye at from looking at to.
// left is not renormalized, so an up vector that is not perpendicular to the
// view direction shears the view slightly.
func ViewTransform(from, to, up Vec3) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms in the order they are applied to a point: the
// first argument is applied first.
func Chain(transforms ...Matrix) Matrix {
	out := Identity()
	for _, t := range transforms {
		out = t.Multiply(out)
	}
	return out
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{m: m.m.Mul4(other.m)}
}

// MulPoint applies m to a point (w = 1)
func (m Matrix) MulPoint(p Vec3) Vec3 {
	r := m.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// MulVector applies m to a direction (w = 0); translation is ignored
func (m Matrix) MulVector(v Vec3) Vec3 {
	r := m.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// Determinant returns the determinant of m
func (m Matrix) Determinant() float64 {
	return m.m.Det()
}

// Invertible reports whether m has an inverse
func (m Matrix) Invertible() bool {
	det := m.m.Det()
	return det != 0 && !math.IsNaN(det)
}

// Inverse returns the inverse of m. It panics when m is singular: a
// non-invertible transform is a scene-setup error, never a recoverable one.
func (m Matrix) Inverse() Matrix {
	if !m.Invertible() {
		panic(fmt.Sprintf("core: matrix is not invertible: %v", m.Rows()))
	}
	return Matrix{m: m.m.Inv()}
}

// Transpose returns the transpose of m
func (m Matrix) Transpose() Matrix {
	return Matrix{m: m.m.Transpose()}
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Rows returns the matrix as row-major values
func (m Matrix) Rows() [4][4]float64 {
	var rows [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m.m.At(r, c)
		}
	}
	return rows
}

// ApproxEqual compares element-wise within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for i := range m.m {
		if !ApproxEqual(m.m[i], other.m[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether m is the unusable zero value
func (m Matrix) IsZero() bool {
	return m.m == mgl64.Mat4{}
}
