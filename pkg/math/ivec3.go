package math

// IntVector3 is a 3D vector of integer components.
type IntVector3[T Integer] struct {
	X, Y, Z T
}

// IntSplat3 returns a vector with every component set to v.
func IntSplat3[T Integer](v T) IntVector3[T] {
	return IntVector3[T]{v, v, v}
}

// Add returns v + other.
func (v IntVector3[T]) Add(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v IntVector3[T]) Sub(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies componentwise.
func (v IntVector3[T]) Mul(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides componentwise, truncating toward zero.
func (v IntVector3[T]) Div(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Rem returns the componentwise remainder.
func (v IntVector3[T]) Rem(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{v.X % other.X, v.Y % other.Y, v.Z % other.Z}
}

// Neg returns -v. Unsigned components wrap.
func (v IntVector3[T]) Neg() IntVector3[T] {
	return IntVector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v IntVector3[T]) Scale(s T) IntVector3[T] {
	return IntVector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides every component by s.
func (v IntVector3[T]) DivScalar(s T) IntVector3[T] {
	return IntVector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// RemScalar returns the remainder of every component divided by s.
func (v IntVector3[T]) RemScalar(s T) IntVector3[T] {
	return IntVector3[T]{v.X % s, v.Y % s, v.Z % s}
}

// Dot returns the dot product.
func (v IntVector3[T]) Dot(other IntVector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the squared magnitude.
func (v IntVector3[T]) LengthSquared() T {
	return v.Dot(v)
}

// DistanceSquared returns the squared distance to another point.
func (v IntVector3[T]) DistanceSquared(other IntVector3[T]) T {
	return v.Sub(other).LengthSquared()
}

// Cross returns the right-handed cross product.
func (v IntVector3[T]) Cross(other IntVector3[T]) IntVector3[T] {
	return IntVector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Extend appends a W component.
func (v IntVector3[T]) Extend(w T) IntVector4[T] {
	return IntVector4[T]{v.X, v.Y, v.Z, w}
}

// Truncate drops the Z component.
func (v IntVector3[T]) Truncate() IntVector2[T] {
	return IntVector2[T]{v.X, v.Y}
}

// Array returns the components as an array.
func (v IntVector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Eq compares componentwise for equality.
func (v IntVector3[T]) Eq(other IntVector3[T]) BVec3 {
	return BVec3{v.X == other.X, v.Y == other.Y, v.Z == other.Z}
}

// Less reports componentwise whether v < other.
func (v IntVector3[T]) Less(other IntVector3[T]) BVec3 {
	return BVec3{v.X < other.X, v.Y < other.Y, v.Z < other.Z}
}

// More reports componentwise whether v > other.
func (v IntVector3[T]) More(other IntVector3[T]) BVec3 {
	return BVec3{v.X > other.X, v.Y > other.Y, v.Z > other.Z}
}

// LessOrEq reports componentwise whether v <= other.
func (v IntVector3[T]) LessOrEq(other IntVector3[T]) BVec3 {
	return BVec3{v.X <= other.X, v.Y <= other.Y, v.Z <= other.Z}
}

// MoreOrEq reports componentwise whether v >= other.
func (v IntVector3[T]) MoreOrEq(other IntVector3[T]) BVec3 {
	return BVec3{v.X >= other.X, v.Y >= other.Y, v.Z >= other.Z}
}
