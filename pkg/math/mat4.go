package math

import "fmt"

// Matrix4 is a 4x4 matrix stored column-major: m[column][row]. The memory
// layout matches what OpenGL expects for a mat4 uniform.
type Matrix4[T Float] [4][4]T

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Float]() Matrix4[T] {
	return Matrix4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromValues builds a matrix from values given in row-major order, so
// the call site reads like the matrix on paper.
func Mat4FromValues[T Float](
	v00, v01, v02, v03,
	v10, v11, v12, v13,
	v20, v21, v22, v23,
	v30, v31, v32, v33 T,
) Matrix4[T] {
	return Matrix4[T]{
		{v00, v10, v20, v30},
		{v01, v11, v21, v31},
		{v02, v12, v22, v32},
		{v03, v13, v23, v33},
	}
}

// Mat4FromColumnMajor wraps an array that is already column-major.
func Mat4FromColumnMajor[T Float](cols [4][4]T) Matrix4[T] {
	return Matrix4[T](cols)
}

// Mat4FromRowMajor builds a matrix from an array of rows.
func Mat4FromRowMajor[T Float](rows [4][4]T) Matrix4[T] {
	return Matrix4[T](rows).Transpose()
}

// Mat4FromPosition returns a translation matrix.
func Mat4FromPosition[T Float](pos Vector3[T]) Matrix4[T] {
	m := Identity4[T]()
	m[3][0] = pos.X
	m[3][1] = pos.Y
	m[3][2] = pos.Z
	return m
}

// Mat4FromScale returns a scaling matrix.
func Mat4FromScale[T Float](scale Vector3[T]) Matrix4[T] {
	m := Identity4[T]()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

// Mat4FromRotation returns the rotation matrix of q.
func Mat4FromRotation[T Float](q Quaternion[T]) Matrix4[T] {
	return Mat4FromMat3(Mat3FromRotation(q))
}

// Mat4FromMat3 embeds m in the upper-left block of an identity matrix.
func Mat4FromMat3[T Float](m Matrix3[T]) Matrix4[T] {
	return Matrix4[T]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromMat2 embeds m in the upper-left block of an identity matrix.
func Mat4FromMat2[T Float](m Matrix2[T]) Matrix4[T] {
	return Mat4FromMat3(Mat3FromMat2(m))
}

// Row returns row i.
func (m Matrix4[T]) Row(i int) [4]T {
	return [4]T{m[0][i], m[1][i], m[2][i], m[3][i]}
}

// Column returns column i.
func (m Matrix4[T]) Column(i int) [4]T {
	return m[i]
}

// ColumnMajor returns the columns, the layout expected for uniforms.
func (m Matrix4[T]) ColumnMajor() [4][4]T {
	return m
}

// RowMajor returns the rows.
func (m Matrix4[T]) RowMajor() [4][4]T {
	return m.Transpose()
}

// Position returns the translation column.
func (m Matrix4[T]) Position() Vector3[T] {
	return Vector3[T]{m[3][0], m[3][1], m[3][2]}
}

// Add returns the element-wise sum.
func (m Matrix4[T]) Add(other Matrix4[T]) Matrix4[T] {
	var result Matrix4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c][r] = m[c][r] + other[c][r]
		}
	}
	return result
}

// Sub returns the element-wise difference.
func (m Matrix4[T]) Sub(other Matrix4[T]) Matrix4[T] {
	var result Matrix4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c][r] = m[c][r] - other[c][r]
		}
	}
	return result
}

// Scale multiplies every element by s.
func (m Matrix4[T]) Scale(s T) Matrix4[T] {
	var result Matrix4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c][r] = m[c][r] * s
		}
	}
	return result
}

// DivScalar multiplies every element by 1/s.
func (m Matrix4[T]) DivScalar(s T) Matrix4[T] {
	return m.Scale(1 / s)
}

// Mul returns m * other. The product applies other first, so
// translate.Mul(rotate) rotates and then translates.
func (m Matrix4[T]) Mul(other Matrix4[T]) Matrix4[T] {
	var result Matrix4[T]
	for c := 0; c < 4; c++ {
		col := other.Column(c)
		for r := 0; r < 4; r++ {
			row := m.Row(r)
			result[c][r] = row[0]*col[0] + row[1]*col[1] + row[2]*col[2] + row[3]*col[3]
		}
	}
	return result
}

// Div returns m * other⁻¹.
func (m Matrix4[T]) Div(other Matrix4[T]) Matrix4[T] {
	return m.Mul(other.Inverse())
}

// MulVec returns m * v.
func (m Matrix4[T]) MulVec(v Vector4[T]) Vector4[T] {
	return v.Transform(m)
}

// TransformPoint transforms a point (w=1). The result is divided by w when
// the matrix is projective.
func (m Matrix4[T]) TransformPoint(p Vector3[T]) Vector3[T] {
	v := p.Extend(1).Transform(m)
	if v.W != 0 && v.W != 1 {
		return v.Truncate().Scale(1 / v.W)
	}
	return v.Truncate()
}

// TransformDirection transforms a direction (w=0), ignoring translation.
func (m Matrix4[T]) TransformDirection(d Vector3[T]) Vector3[T] {
	return d.Extend(0).Transform(m).Truncate()
}

// Transpose swaps rows and columns.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	var result Matrix4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			result[c][r] = m[r][c]
		}
	}
	return result
}

// Determinant returns the determinant, computed from the 2x2 minors of the
// first two and last two columns.
func (m Matrix4[T]) Determinant() T {
	s, c := m.minors()
	return det4(s, c)
}

// Inverse returns the inverse matrix. A singular matrix produces Inf or NaN
// elements; use TryInverse to detect that case.
func (m Matrix4[T]) Inverse() Matrix4[T] {
	inv, _ := m.inverse()
	return inv
}

// TryInverse returns the inverse, or ErrSingularMatrix if the determinant is
// zero or not finite. A successful result is identical to Inverse.
func (m Matrix4[T]) TryInverse() (Matrix4[T], error) {
	inv, det := m.inverse()
	if det == 0 || !isFinite(det) {
		return Matrix4[T]{}, fmt.Errorf("%w: determinant %v", ErrSingularMatrix, det)
	}
	return inv, nil
}

// minors returns the 2x2 minors of columns 0-1 (s) and columns 2-3 (c).
func (m Matrix4[T]) minors() (s, c [6]T) {
	a00, a01, a02, a03 := m[0][0], m[0][1], m[0][2], m[0][3]
	a10, a11, a12, a13 := m[1][0], m[1][1], m[1][2], m[1][3]
	a20, a21, a22, a23 := m[2][0], m[2][1], m[2][2], m[2][3]
	a30, a31, a32, a33 := m[3][0], m[3][1], m[3][2], m[3][3]

	s[0] = a00*a11 - a10*a01
	s[1] = a00*a12 - a10*a02
	s[2] = a00*a13 - a10*a03
	s[3] = a01*a12 - a11*a02
	s[4] = a01*a13 - a11*a03
	s[5] = a02*a13 - a12*a03

	c[5] = a22*a33 - a32*a23
	c[4] = a21*a33 - a31*a23
	c[3] = a21*a32 - a31*a22
	c[2] = a20*a33 - a30*a23
	c[1] = a20*a32 - a30*a22
	c[0] = a20*a31 - a30*a21
	return s, c
}

func det4[T Float](s, c [6]T) T {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func (m Matrix4[T]) inverse() (Matrix4[T], T) {
	a00, a01, a02, a03 := m[0][0], m[0][1], m[0][2], m[0][3]
	a10, a11, a12, a13 := m[1][0], m[1][1], m[1][2], m[1][3]
	a20, a21, a22, a23 := m[2][0], m[2][1], m[2][2], m[2][3]
	a30, a31, a32, a33 := m[3][0], m[3][1], m[3][2], m[3][3]

	s, c := m.minors()
	det := det4(s, c)
	inv := 1 / det

	var b Matrix4[T]
	b[0][0] = (a11*c[5] - a12*c[4] + a13*c[3]) * inv
	b[0][1] = (-a01*c[5] + a02*c[4] - a03*c[3]) * inv
	b[0][2] = (a31*s[5] - a32*s[4] + a33*s[3]) * inv
	b[0][3] = (-a21*s[5] + a22*s[4] - a23*s[3]) * inv

	b[1][0] = (-a10*c[5] + a12*c[2] - a13*c[1]) * inv
	b[1][1] = (a00*c[5] - a02*c[2] + a03*c[1]) * inv
	b[1][2] = (-a30*s[5] + a32*s[2] - a33*s[1]) * inv
	b[1][3] = (a20*s[5] - a22*s[2] + a23*s[1]) * inv

	b[2][0] = (a10*c[4] - a11*c[2] + a13*c[0]) * inv
	b[2][1] = (-a00*c[4] + a01*c[2] - a03*c[0]) * inv
	b[2][2] = (a30*s[4] - a31*s[2] + a33*s[0]) * inv
	b[2][3] = (-a20*s[4] + a21*s[2] - a23*s[0]) * inv

	b[3][0] = (-a10*c[3] + a11*c[1] - a12*c[0]) * inv
	b[3][1] = (a00*c[3] - a01*c[1] + a02*c[0]) * inv
	b[3][2] = (-a30*s[3] + a31*s[1] - a32*s[0]) * inv
	b[3][3] = (a20*s[3] - a21*s[1] + a22*s[0]) * inv
	return b, det
}
