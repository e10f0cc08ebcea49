package vmath

import (
	"fmt"
)

// Vec3 is a 3D vector over scalar type T
// Comparable with == (exact componentwise equality)
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// New creates a vector with the given components
func New[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Zero returns the vector with all components set to T's zero value
func Zero[T Scalar]() Vec3[T] {
	return Vec3[T]{}
}

// Dot returns a.X*b.X + a.Y*b.Y + a.Z*b.Z
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b
// Anticommutative: a.Cross(b) equals the negation of b.Cross(a)
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{a.X + s, a.Y + s, a.Z + s}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{a.X - s, a.Y - s, a.Z - s}
}

// Mul is vector × vector and returns the CROSS product a × b
// For a componentwise scalar multiply use Scale
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return a.Cross(b)
}

// Scale multiplies each component by s
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Div divides each component by s
// No zero check: integer T panics on s == 0, float T yields Inf/NaN
func (a Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// TODO: swizzle accessors (XY, ZYX, ...)

// String formats the vector as three lines "x: X\ny: Y\nz: Z"
func (a Vec3[T]) String() string {
	return fmt.Sprintf("x: %v\ny: %v\nz: %v", a.X, a.Y, a.Z)
}
