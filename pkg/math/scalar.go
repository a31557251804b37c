// Package math provides fixed-size vector, matrix and quaternion types for
// 3D transforms.
//
// Matrices are stored column-major (m[column][row]) so they can be handed to
// a graphics API as uniforms without conversion. Constructors such as
// Mat4FromValues take their arguments in row-major (textbook) order.
package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for vectors, matrices and quaternions
// that need square roots, trigonometry or division.
type Float interface {
	constraints.Float
}

// Integer is the scalar constraint for integer vectors.
type Integer interface {
	constraints.Integer
}

// Clamp returns the value f clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b.
func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * 180 / math.Pi
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

func tan[T Float](x T) T {
	return T(math.Tan(float64(x)))
}

func acos[T Float](x T) T {
	return T(math.Acos(float64(x)))
}

func atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// mod is the floating point remainder, matching the sign of a.
func mod[T Float](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
