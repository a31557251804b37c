package math

import "fmt"

// Matrix3 is a 3x3 matrix stored column-major: m[column][row].
type Matrix3[T Float] [3][3]T

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Matrix3[T] {
	return Matrix3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mat3FromValues builds a matrix from values given in row-major order.
func Mat3FromValues[T Float](a, b, c, d, e, f, g, h, i T) Matrix3[T] {
	return Matrix3[T]{
		{a, d, g},
		{b, e, h},
		{c, f, i},
	}
}

// Mat3FromColumnMajor wraps an array that is already column-major.
func Mat3FromColumnMajor[T Float](cols [3][3]T) Matrix3[T] {
	return Matrix3[T](cols)
}

// Mat3FromRowMajor builds a matrix from an array of rows.
func Mat3FromRowMajor[T Float](rows [3][3]T) Matrix3[T] {
	return Matrix3[T](rows).Transpose()
}

// Mat3FromScale returns a scaling matrix.
func Mat3FromScale[T Float](scale Vector3[T]) Matrix3[T] {
	return Matrix3[T]{
		{scale.X, 0, 0},
		{0, scale.Y, 0},
		{0, 0, scale.Z},
	}
}

// Mat3FromRotation returns the rotation matrix of q. A non-unit quaternion
// yields a matrix that also scales.
func Mat3FromRotation[T Float](q Quaternion[T]) Matrix3[T] {
	return Mat3FromTransform(Splat3[T](1), q)
}

// Mat3FromMat2 embeds m in the upper-left block of an identity matrix.
func Mat3FromMat2[T Float](m Matrix2[T]) Matrix3[T] {
	return Matrix3[T]{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}

// Mat3FromMat4 returns the upper-left 3x3 block, dropping translation and
// projection terms.
func Mat3FromMat4[T Float](m Matrix4[T]) Matrix3[T] {
	return Matrix3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Row returns row i.
func (m Matrix3[T]) Row(i int) [3]T {
	return [3]T{m[0][i], m[1][i], m[2][i]}
}

// Column returns column i.
func (m Matrix3[T]) Column(i int) [3]T {
	return m[i]
}

// ColumnMajor returns the columns, the layout expected for uniforms.
func (m Matrix3[T]) ColumnMajor() [3][3]T {
	return m
}

// RowMajor returns the rows.
func (m Matrix3[T]) RowMajor() [3][3]T {
	return m.Transpose()
}

// Add returns the element-wise sum.
func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	var result Matrix3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			result[c][r] = m[c][r] + other[c][r]
		}
	}
	return result
}

// Sub returns the element-wise difference.
func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	var result Matrix3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			result[c][r] = m[c][r] - other[c][r]
		}
	}
	return result
}

// Scale multiplies every element by s.
func (m Matrix3[T]) Scale(s T) Matrix3[T] {
	var result Matrix3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			result[c][r] = m[c][r] * s
		}
	}
	return result
}

// DivScalar multiplies every element by 1/s.
func (m Matrix3[T]) DivScalar(s T) Matrix3[T] {
	return m.Scale(1 / s)
}

// Mul returns m * other. The product applies other first.
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	var result Matrix3[T]
	for c := 0; c < 3; c++ {
		col := other.Column(c)
		for r := 0; r < 3; r++ {
			row := m.Row(r)
			result[c][r] = row[0]*col[0] + row[1]*col[1] + row[2]*col[2]
		}
	}
	return result
}

// Div returns m * other⁻¹.
func (m Matrix3[T]) Div(other Matrix3[T]) Matrix3[T] {
	return m.Mul(other.Inverse())
}

// MulVec returns m * v.
func (m Matrix3[T]) MulVec(v Vector3[T]) Vector3[T] {
	return v.Transform(m)
}

// Transpose swaps rows and columns.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var result Matrix3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			result[c][r] = m[r][c]
		}
	}
	return result
}

// Determinant expands along the first row.
func (m Matrix3[T]) Determinant() T {
	a, b, c := m[0][0], m[1][0], m[2][0]
	d, e, f := m[0][1], m[1][1], m[2][1]
	g, h, i := m[0][2], m[1][2], m[2][2]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse matrix. A singular matrix produces Inf or NaN
// elements; use TryInverse to detect that case.
func (m Matrix3[T]) Inverse() Matrix3[T] {
	inv, _ := m.inverse()
	return inv
}

// TryInverse returns the inverse, or ErrSingularMatrix if the determinant is
// zero or not finite.
func (m Matrix3[T]) TryInverse() (Matrix3[T], error) {
	inv, det := m.inverse()
	if det == 0 || !isFinite(det) {
		return Matrix3[T]{}, fmt.Errorf("%w: determinant %v", ErrSingularMatrix, det)
	}
	return inv, nil
}

// inverse returns the adjugate scaled by 1/det, along with det.
func (m Matrix3[T]) inverse() (Matrix3[T], T) {
	a, b, c := m[0][0], m[1][0], m[2][0]
	d, e, f := m[0][1], m[1][1], m[2][1]
	g, h, i := m[0][2], m[1][2], m[2][2]

	ca := e*i - f*h
	cb := -(d*i - f*g)
	cc := d*h - e*g
	det := a*ca + b*cb + c*cc

	adj := Mat3FromValues(
		ca, -(b*i - c*h), b*f-c*e,
		cb, a*i-c*g, -(a*f - c*d),
		cc, -(a*h - b*g), a*e-b*d,
	)
	return adj.Scale(1 / det), det
}
