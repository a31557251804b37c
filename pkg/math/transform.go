package math

// Mat2FromTransform returns a rotation by angle radians applied after a
// scale.
func Mat2FromTransform[T Float](scale Vector2[T], angle T) Matrix2[T] {
	sin, cos := sincos(angle)
	return Mat2FromValues(
		cos*scale.X, -sin*scale.Y,
		sin*scale.X, cos*scale.Y,
	)
}

// Mat3FromTransform returns rotation(rot) * scale(scale), computed directly.
func Mat3FromTransform[T Float](scale Vector3[T], rot Quaternion[T]) Matrix3[T] {
	r, i, j, k := rot.R, rot.I, rot.J, rot.K
	sx, sy, sz := 2*scale.X, 2*scale.Y, 2*scale.Z

	return Mat3FromValues(
		sx*(0.5-(j*j+k*k)), sy*(i*j-k*r), sz*(i*k+j*r),
		sx*(i*j+k*r), sy*(0.5-(i*i+k*k)), sz*(j*k-i*r),
		sx*(i*k-j*r), sy*(j*k+i*r), sz*(0.5-(i*i+j*j)),
	)
}

// Mat3From2DTransform returns a homogeneous 2D transform: scale, then
// rotate by angle radians, then translate by pos.
func Mat3From2DTransform[T Float](pos, scale Vector2[T], angle T) Matrix3[T] {
	sin, cos := sincos(angle)
	return Mat3FromValues(
		scale.X*cos, scale.Y*-sin, pos.X,
		scale.X*sin, scale.Y*cos, pos.Y,
		0, 0, 1,
	)
}

// Mat4FromTransform returns translate(pos) * rotate(rot) * scale(scale),
// computed directly rather than by multiplying the three matrices.
func Mat4FromTransform[T Float](pos, scale Vector3[T], rot Quaternion[T]) Matrix4[T] {
	m := Mat4FromMat3(Mat3FromTransform(scale, rot))
	m[3][0] = pos.X
	m[3][1] = pos.Y
	m[3][2] = pos.Z
	return m
}

// Mat4FromInverseTransform returns the inverse of Mat4FromTransform with the
// same arguments, in closed form. It is the view matrix of a camera placed
// with that transform.
func Mat4FromInverseTransform[T Float](pos, scale Vector3[T], rot Quaternion[T]) Matrix4[T] {
	r, i, j, k := rot.R, rot.I, rot.J, rot.K
	x, y, z := 1/scale.X, 1/scale.Y, 1/scale.Z

	// scalar is |q|²; a unit quaternion gives s = 2.
	scalar := r*r + i*i + j*j + k*k
	s := 2 / (scalar * scalar)
	sx, sy, sz := s*x, s*y, s*z

	a := x - sx*(j*j+k*k)
	b := sx * (i*j + k*r)
	c := sx * (i*k - j*r)
	d := sy * (i*j - k*r)
	e := y - sy*(i*i+k*k)
	f := sy * (j*k + i*r)
	g := sz * (i*k + j*r)
	h := sz * (j*k - i*r)
	l := z - sz*(i*i+j*j)

	return Mat4FromValues(
		a, b, c, -(a*pos.X + b*pos.Y + c*pos.Z),
		d, e, f, -(d*pos.X + e*pos.Y + f*pos.Z),
		g, h, l, -(g*pos.X + h*pos.Y + l*pos.Z),
		0, 0, 0, 1,
	)
}

// Mat4FromPosAndRot returns translate(pos) * rotate(rot).
func Mat4FromPosAndRot[T Float](pos Vector3[T], rot Quaternion[T]) Matrix4[T] {
	return Mat4FromTransform(pos, Splat3[T](1), rot)
}

// Mat4FromPosAndScale returns translate(pos) * scale(scale).
func Mat4FromPosAndScale[T Float](pos, scale Vector3[T]) Matrix4[T] {
	m := Mat4FromScale(scale)
	m[3][0] = pos.X
	m[3][1] = pos.Y
	m[3][2] = pos.Z
	return m
}

// Mat4FromScaleAndRot returns rotate(rot) * scale(scale).
func Mat4FromScaleAndRot[T Float](scale Vector3[T], rot Quaternion[T]) Matrix4[T] {
	return Mat4FromMat3(Mat3FromTransform(scale, rot))
}
