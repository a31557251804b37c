package math

// IntVector4 is a 4D vector of integer components.
type IntVector4[T Integer] struct {
	X, Y, Z, W T
}

// IntSplat4 returns a vector with every component set to v.
func IntSplat4[T Integer](v T) IntVector4[T] {
	return IntVector4[T]{v, v, v, v}
}

// Add returns v + other.
func (v IntVector4[T]) Add(other IntVector4[T]) IntVector4[T] {
	return IntVector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v IntVector4[T]) Sub(other IntVector4[T]) IntVector4[T] {
	return IntVector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul multiplies componentwise.
func (v IntVector4[T]) Mul(other IntVector4[T]) IntVector4[T] {
	return IntVector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div divides componentwise, truncating toward zero.
func (v IntVector4[T]) Div(other IntVector4[T]) IntVector4[T] {
	return IntVector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Rem returns the componentwise remainder.
func (v IntVector4[T]) Rem(other IntVector4[T]) IntVector4[T] {
	return IntVector4[T]{v.X % other.X, v.Y % other.Y, v.Z % other.Z, v.W % other.W}
}

// Neg returns -v. Unsigned components wrap.
func (v IntVector4[T]) Neg() IntVector4[T] {
	return IntVector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * s.
func (v IntVector4[T]) Scale(s T) IntVector4[T] {
	return IntVector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar divides every component by s.
func (v IntVector4[T]) DivScalar(s T) IntVector4[T] {
	return IntVector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// RemScalar returns the remainder of every component divided by s.
func (v IntVector4[T]) RemScalar(s T) IntVector4[T] {
	return IntVector4[T]{v.X % s, v.Y % s, v.Z % s, v.W % s}
}

// Dot returns the dot product.
func (v IntVector4[T]) Dot(other IntVector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared magnitude.
func (v IntVector4[T]) LengthSquared() T {
	return v.Dot(v)
}

// DistanceSquared returns the squared distance to another point.
func (v IntVector4[T]) DistanceSquared(other IntVector4[T]) T {
	return v.Sub(other).LengthSquared()
}

// Truncate drops the W component.
func (v IntVector4[T]) Truncate() IntVector3[T] {
	return IntVector3[T]{v.X, v.Y, v.Z}
}

// Array returns the components as an array.
func (v IntVector4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// Eq compares componentwise for equality.
func (v IntVector4[T]) Eq(other IntVector4[T]) BVec4 {
	return BVec4{v.X == other.X, v.Y == other.Y, v.Z == other.Z, v.W == other.W}
}

// Less reports componentwise whether v < other.
func (v IntVector4[T]) Less(other IntVector4[T]) BVec4 {
	return BVec4{v.X < other.X, v.Y < other.Y, v.Z < other.Z, v.W < other.W}
}

// More reports componentwise whether v > other.
func (v IntVector4[T]) More(other IntVector4[T]) BVec4 {
	return BVec4{v.X > other.X, v.Y > other.Y, v.Z > other.Z, v.W > other.W}
}

// LessOrEq reports componentwise whether v <= other.
func (v IntVector4[T]) LessOrEq(other IntVector4[T]) BVec4 {
	return BVec4{v.X <= other.X, v.Y <= other.Y, v.Z <= other.Z, v.W <= other.W}
}

// MoreOrEq reports componentwise whether v >= other.
func (v IntVector4[T]) MoreOrEq(other IntVector4[T]) BVec4 {
	return BVec4{v.X >= other.X, v.Y >= other.Y, v.Z >= other.Z, v.W >= other.W}
}
