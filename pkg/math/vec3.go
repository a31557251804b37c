package math

// Vector3 is a 3D vector of floating point components.
type Vector3[T Float] struct {
	X, Y, Z T
}

// Splat3 returns a vector with every component set to v.
func Splat3[T Float](v T) Vector3[T] {
	return Vector3[T]{v, v, v}
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies componentwise.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides componentwise.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Rem returns the componentwise floating point remainder.
func (v Vector3[T]) Rem(other Vector3[T]) Vector3[T] {
	return Vector3[T]{mod(v.X, other.X), mod(v.Y, other.Y), mod(v.Z, other.Z)}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v scaled by 1/s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return v.Scale(1 / s)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector3[T]) RemScalar(s T) Vector3[T] {
	return v.Rem(Splat3(s))
}

// Dot returns the dot product.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product. The result is not
// normalized.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vector3[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// DistanceSquared returns the squared distance to another point.
func (v Vector3[T]) DistanceSquared(other Vector3[T]) T {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance to another point.
func (v Vector3[T]) Distance(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector.
// The zero vector normalizes to the zero vector.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Length()
	if l == 0 {
		return Vector3[T]{}
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates towards other.
func (v Vector3[T]) Lerp(other Vector3[T], t T) Vector3[T] {
	return Vector3[T]{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
	}
}

// Transform returns m * v. Each component is the dot product of a matrix
// row with v.
func (v Vector3[T]) Transform(m Matrix3[T]) Vector3[T] {
	return Vector3[T]{
		dot3(m.Row(0), v),
		dot3(m.Row(1), v),
		dot3(m.Row(2), v),
	}
}

// Extend appends a W component.
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Truncate drops the Z component.
func (v Vector3[T]) Truncate() Vector2[T] {
	return Vector2[T]{v.X, v.Y}
}

// XZ returns the XZ components as a Vector2.
func (v Vector3[T]) XZ() Vector2[T] {
	return Vector2[T]{v.X, v.Z}
}

// Array returns the components as an array, the layout used for uniforms.
func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Eq compares componentwise for equality.
func (v Vector3[T]) Eq(other Vector3[T]) BVec3 {
	return BVec3{v.X == other.X, v.Y == other.Y, v.Z == other.Z}
}

// Less reports componentwise whether v < other.
func (v Vector3[T]) Less(other Vector3[T]) BVec3 {
	return BVec3{v.X < other.X, v.Y < other.Y, v.Z < other.Z}
}

// More reports componentwise whether v > other.
func (v Vector3[T]) More(other Vector3[T]) BVec3 {
	return BVec3{v.X > other.X, v.Y > other.Y, v.Z > other.Z}
}

// LessOrEq reports componentwise whether v <= other.
func (v Vector3[T]) LessOrEq(other Vector3[T]) BVec3 {
	return BVec3{v.X <= other.X, v.Y <= other.Y, v.Z <= other.Z}
}

// MoreOrEq reports componentwise whether v >= other.
func (v Vector3[T]) MoreOrEq(other Vector3[T]) BVec3 {
	return BVec3{v.X >= other.X, v.Y >= other.Y, v.Z >= other.Z}
}

func dot3[T Float](a [3]T, v Vector3[T]) T {
	return a[0]*v.X + a[1]*v.Y + a[2]*v.Z
}
