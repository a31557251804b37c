package math

// Quaternion is a rotation quaternion r + i·i + j·j + k·k. Unit length is
// not enforced; a non-unit quaternion converts to a matrix that also scales.
type Quaternion[T Float] struct {
	R, I, J, K T
}

// IdentityQuaternion returns the quaternion (1, 0, 0, 0).
func IdentityQuaternion[T Float]() Quaternion[T] {
	return Quaternion[T]{R: 1}
}

// QuatFromXRotation returns a rotation of angle radians around the X axis.
func QuatFromXRotation[T Float](angle T) Quaternion[T] {
	sin, cos := sincos(angle / 2)
	return Quaternion[T]{cos, sin, 0, 0}
}

// QuatFromYRotation returns a rotation of angle radians around the Y axis.
func QuatFromYRotation[T Float](angle T) Quaternion[T] {
	sin, cos := sincos(angle / 2)
	return Quaternion[T]{cos, 0, sin, 0}
}

// QuatFromZRotation returns a rotation of angle radians around the Z axis.
func QuatFromZRotation[T Float](angle T) Quaternion[T] {
	sin, cos := sincos(angle / 2)
	return Quaternion[T]{cos, 0, 0, sin}
}

// QuatFromAxisRotation returns a rotation of angle radians around axis.
// The axis is used as given: a non-unit axis yields a non-unit quaternion,
// so pass axis.Normalize() for a pure rotation.
func QuatFromAxisRotation[T Float](angle T, axis Vector3[T]) Quaternion[T] {
	sin, cos := sincos(angle / 2)
	return Quaternion[T]{cos, sin * axis.X, sin * axis.Y, sin * axis.Z}
}

// QuatFromAxisAngle is QuatFromAxisRotation with the arguments swapped.
func QuatFromAxisAngle[T Float](axis Vector3[T], angle T) Quaternion[T] {
	return QuatFromAxisRotation(angle, axis)
}

// QuatFromVec4 maps (x, y, z, w) to (r, i, j, k).
func QuatFromVec4[T Float](v Vector4[T]) Quaternion[T] {
	return Quaternion[T]{v.X, v.Y, v.Z, v.W}
}

// QuatFromMat3 extracts the rotation of a pure rotation matrix.
func QuatFromMat3[T Float](m Matrix3[T]) Quaternion[T] {
	// rc is the element at row r, column c.
	r00, r01, r02 := m[0][0], m[1][0], m[2][0]
	r10, r11, r12 := m[0][1], m[1][1], m[2][1]
	r20, r21, r22 := m[0][2], m[1][2], m[2][2]

	trace := r00 + r11 + r22
	switch {
	case trace > 0:
		s := sqrt(trace+1) * 2
		return Quaternion[T]{s / 4, (r21 - r12) / s, (r02 - r20) / s, (r10 - r01) / s}
	case r00 > r11 && r00 > r22:
		s := sqrt(1+r00-r11-r22) * 2
		return Quaternion[T]{(r21 - r12) / s, s / 4, (r01 + r10) / s, (r02 + r20) / s}
	case r11 > r22:
		s := sqrt(1+r11-r00-r22) * 2
		return Quaternion[T]{(r02 - r20) / s, (r01 + r10) / s, s / 4, (r12 + r21) / s}
	default:
		s := sqrt(1+r22-r00-r11) * 2
		return Quaternion[T]{(r10 - r01) / s, (r02 + r20) / s, (r12 + r21) / s, s / 4}
	}
}

// Add returns the component-wise sum.
func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.R + other.R, q.I + other.I, q.J + other.J, q.K + other.K}
}

// Sub returns the component-wise difference.
func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.R - other.R, q.I - other.I, q.J - other.J, q.K - other.K}
}

// Neg negates every component. The result is the same rotation.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.R, -q.I, -q.J, -q.K}
}

// Scale multiplies every component by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.R * s, q.I * s, q.J * s, q.K * s}
}

// DivScalar multiplies every component by 1/s.
func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return q.Scale(1 / s)
}

// RemScalar returns the remainder of every component divided by s.
func (q Quaternion[T]) RemScalar(s T) Quaternion[T] {
	return Quaternion[T]{mod(q.R, s), mod(q.I, s), mod(q.J, s), mod(q.K, s)}
}

// Mul returns the Hamilton product q * other. As a rotation it applies
// other first.
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	ar, ai, aj, ak := q.R, q.I, q.J, q.K
	br, bi, bj, bk := other.R, other.I, other.J, other.K
	return Quaternion[T]{
		R: ar*br - ai*bi - aj*bj - ak*bk,
		I: ar*bi + ai*br + aj*bk - ak*bj,
		J: ar*bj - ai*bk + aj*br + ak*bi,
		K: ar*bk + ai*bj - aj*bi + ak*br,
	}
}

// Div returns q * other⁻¹. It panics if other is zero.
func (q Quaternion[T]) Div(other Quaternion[T]) Quaternion[T] {
	return q.Mul(other.Inverse())
}

// Conjugate returns (r, -i, -j, -k).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{q.R, -q.I, -q.J, -q.K}
}

// Dot returns the 4D dot product.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.R*other.R + q.I*other.I + q.J*other.J + q.K*other.K
}

// LengthSquared returns the squared norm.
func (q Quaternion[T]) LengthSquared() T {
	return q.Dot(q)
}

// Length returns the norm.
func (q Quaternion[T]) Length() T {
	return sqrt(q.LengthSquared())
}

// Normalize returns a unit quaternion. The zero quaternion stays zero.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	l := q.Length()
	if l == 0 {
		return Quaternion[T]{}
	}
	return q.Scale(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (q Quaternion[T]) IsZero() bool {
	return q.R == 0 && q.I == 0 && q.J == 0 && q.K == 0
}

// Inverse returns conj(q) / |q|². It panics with ErrZeroQuaternion if q is
// zero.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	if q.IsZero() {
		panic(ErrZeroQuaternion)
	}
	return q.inverse()
}

// TryInverse is Inverse returning ErrZeroQuaternion instead of panicking.
func (q Quaternion[T]) TryInverse() (Quaternion[T], error) {
	if q.IsZero() {
		return Quaternion[T]{}, ErrZeroQuaternion
	}
	return q.inverse(), nil
}

// inverse divides each conjugate component by the squared norm.
func (q Quaternion[T]) inverse() Quaternion[T] {
	s := q.LengthSquared()
	return Quaternion[T]{q.R / s, -q.I / s, -q.J / s, -q.K / s}
}

// Slerp spherically interpolates towards other along the shortest arc.
func (q Quaternion[T]) Slerp(other Quaternion[T], t T) Quaternion[T] {
	dot := q.Dot(other)
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	// Nearly parallel: fall back to normalized lerp.
	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := acos(dot)
	theta := theta0 * t
	sinTheta, cosTheta := sincos(theta)
	sinTheta0, _ := sincos(theta0)

	s0 := cosTheta - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0
	return q.Scale(s0).Add(other.Scale(s1))
}

// Lerp linearly interpolates towards other and normalizes the result.
func (q Quaternion[T]) Lerp(other Quaternion[T], t T) Quaternion[T] {
	return Quaternion[T]{
		Lerp(q.R, other.R, t),
		Lerp(q.I, other.I, t),
		Lerp(q.J, other.J, t),
		Lerp(q.K, other.K, t),
	}.Normalize()
}

// Rotate rotates v by q, which is assumed to be unit length.
func (q Quaternion[T]) Rotate(v Vector3[T]) Vector3[T] {
	u := Vector3[T]{q.I, q.J, q.K}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.R)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis and the angle in [0, π]. The identity
// rotation reports the X axis.
func (q Quaternion[T]) AxisAngle() (Vector3[T], T) {
	q = q.Normalize()
	if q.R < 0 {
		q = q.Neg()
	}
	v := Vector3[T]{q.I, q.J, q.K}
	s := v.Length()
	if s == 0 {
		return Vector3[T]{X: 1}, 0
	}
	return v.Scale(1 / s), 2 * atan2(s, q.R)
}

// Mat3 returns the rotation matrix of q.
func (q Quaternion[T]) Mat3() Matrix3[T] {
	return Mat3FromRotation(q)
}

// Mat4 returns the rotation matrix of q.
func (q Quaternion[T]) Mat4() Matrix4[T] {
	return Mat4FromRotation(q)
}

// Vec4 maps (r, i, j, k) to (x, y, z, w).
func (q Quaternion[T]) Vec4() Vector4[T] {
	return Vector4[T]{q.R, q.I, q.J, q.K}
}
