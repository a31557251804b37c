package math

// ViewMatrix3D returns a perspective projection for a width x height
// viewport. The X axis is scaled by height/width and clip w takes the
// view-space z, so geometry in front of the camera has positive z.
func ViewMatrix3D[T Float](width, height uint32, fov, zfar, znear T) Matrix4[T] {
	aspect := T(height) / T(width)
	f := 1 / tan(fov/2)

	return Matrix4[T]{
		{f * aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (zfar + znear) / (zfar - znear), 1},
		{0, 0, -(2 * zfar * znear) / (zfar - znear), 0},
	}
}

// ViewMatrix2D returns a matrix that corrects the X axis for the viewport
// aspect ratio.
func ViewMatrix2D[T Float](width, height uint32) Matrix4[T] {
	aspect := T(height) / T(width)
	return Mat4FromScale(Vector3[T]{aspect, 1, 1})
}

// Perspective returns an OpenGL right-handed perspective projection.
// fovY is in radians.
func Perspective[T Float](fovY, aspect, near, far T) Matrix4[T] {
	f := 1 / tan(fovY/2)
	nf := 1 / (near - far)

	return Matrix4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Ortho returns an orthographic projection.
func Ortho[T Float](left, right, bottom, top, near, far T) Matrix4[T] {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Matrix4[T]{
		{2 * rl, 0, 0, 0},
		{0, 2 * tb, 0, 0},
		{0, 0, -2 * fn, 0},
		{-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1},
	}
}

// LookAt returns a view matrix looking from eye towards center.
func LookAt[T Float](eye, center, up Vector3[T]) Matrix4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Matrix4[T]{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}
