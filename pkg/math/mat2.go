package math

import "fmt"

// Matrix2 is a 2x2 matrix stored column-major: m[column][row].
type Matrix2[T Float] [2][2]T

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Float]() Matrix2[T] {
	return Matrix2[T]{{1, 0}, {0, 1}}
}

// Mat2FromValues builds a matrix from values given in row-major order:
//
//	| a b |
//	| c d |
func Mat2FromValues[T Float](a, b, c, d T) Matrix2[T] {
	return Matrix2[T]{{a, c}, {b, d}}
}

// Mat2FromColumnMajor wraps an array that is already column-major.
func Mat2FromColumnMajor[T Float](cols [2][2]T) Matrix2[T] {
	return Matrix2[T](cols)
}

// Mat2FromRowMajor builds a matrix from an array of rows.
func Mat2FromRowMajor[T Float](rows [2][2]T) Matrix2[T] {
	return Matrix2[T](rows).Transpose()
}

// Mat2FromScale returns a scaling matrix.
func Mat2FromScale[T Float](scale Vector2[T]) Matrix2[T] {
	return Matrix2[T]{{scale.X, 0}, {0, scale.Y}}
}

// Mat2FromRotation returns a counter-clockwise rotation by angle radians.
func Mat2FromRotation[T Float](angle T) Matrix2[T] {
	sin, cos := sincos(angle)
	return Mat2FromValues(
		cos, -sin,
		sin, cos,
	)
}

// Mat2FromMat3 returns the upper-left 2x2 block.
func Mat2FromMat3[T Float](m Matrix3[T]) Matrix2[T] {
	return Matrix2[T]{
		{m[0][0], m[0][1]},
		{m[1][0], m[1][1]},
	}
}

// Mat2FromMat4 returns the upper-left 2x2 block.
func Mat2FromMat4[T Float](m Matrix4[T]) Matrix2[T] {
	return Matrix2[T]{
		{m[0][0], m[0][1]},
		{m[1][0], m[1][1]},
	}
}

// Row returns row i.
func (m Matrix2[T]) Row(i int) [2]T {
	return [2]T{m[0][i], m[1][i]}
}

// Column returns column i.
func (m Matrix2[T]) Column(i int) [2]T {
	return m[i]
}

// ColumnMajor returns the columns, the layout expected for uniforms.
func (m Matrix2[T]) ColumnMajor() [2][2]T {
	return m
}

// RowMajor returns the rows.
func (m Matrix2[T]) RowMajor() [2][2]T {
	return m.Transpose()
}

// Add returns the element-wise sum.
func (m Matrix2[T]) Add(other Matrix2[T]) Matrix2[T] {
	var result Matrix2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			result[c][r] = m[c][r] + other[c][r]
		}
	}
	return result
}

// Sub returns the element-wise difference.
func (m Matrix2[T]) Sub(other Matrix2[T]) Matrix2[T] {
	var result Matrix2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			result[c][r] = m[c][r] - other[c][r]
		}
	}
	return result
}

// Scale multiplies every element by s.
func (m Matrix2[T]) Scale(s T) Matrix2[T] {
	var result Matrix2[T]
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			result[c][r] = m[c][r] * s
		}
	}
	return result
}

// DivScalar multiplies every element by 1/s.
func (m Matrix2[T]) DivScalar(s T) Matrix2[T] {
	return m.Scale(1 / s)
}

// Mul returns m * other. The product applies other first.
func (m Matrix2[T]) Mul(other Matrix2[T]) Matrix2[T] {
	var result Matrix2[T]
	for c := 0; c < 2; c++ {
		col := other.Column(c)
		for r := 0; r < 2; r++ {
			row := m.Row(r)
			result[c][r] = row[0]*col[0] + row[1]*col[1]
		}
	}
	return result
}

// Div returns m * other⁻¹.
func (m Matrix2[T]) Div(other Matrix2[T]) Matrix2[T] {
	return m.Mul(other.Inverse())
}

// MulVec returns m * v.
func (m Matrix2[T]) MulVec(v Vector2[T]) Vector2[T] {
	return v.Transform(m)
}

// Transpose swaps rows and columns.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	return Matrix2[T]{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Determinant returns ad - bc.
func (m Matrix2[T]) Determinant() T {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Inverse returns the inverse matrix. A singular matrix produces Inf or NaN
// elements; use TryInverse to detect that case.
func (m Matrix2[T]) Inverse() Matrix2[T] {
	inv, _ := m.inverse()
	return inv
}

// TryInverse returns the inverse, or ErrSingularMatrix if the determinant is
// zero or not finite.
func (m Matrix2[T]) TryInverse() (Matrix2[T], error) {
	inv, det := m.inverse()
	if det == 0 || !isFinite(det) {
		return Matrix2[T]{}, fmt.Errorf("%w: determinant %v", ErrSingularMatrix, det)
	}
	return inv, nil
}

func (m Matrix2[T]) inverse() (Matrix2[T], T) {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]
	det := m.Determinant()
	return Mat2FromValues(d, -b, -c, a).Scale(1 / det), det
}
