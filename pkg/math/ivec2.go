package math

// IntVector2 is a 2D vector of integer components.
type IntVector2[T Integer] struct {
	X, Y T
}

// IntSplat2 returns a vector with every component set to v.
func IntSplat2[T Integer](v T) IntVector2[T] {
	return IntVector2[T]{v, v}
}

// Add returns v + other.
func (v IntVector2[T]) Add(other IntVector2[T]) IntVector2[T] {
	return IntVector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v IntVector2[T]) Sub(other IntVector2[T]) IntVector2[T] {
	return IntVector2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies componentwise.
func (v IntVector2[T]) Mul(other IntVector2[T]) IntVector2[T] {
	return IntVector2[T]{v.X * other.X, v.Y * other.Y}
}

// Div divides componentwise, truncating toward zero.
func (v IntVector2[T]) Div(other IntVector2[T]) IntVector2[T] {
	return IntVector2[T]{v.X / other.X, v.Y / other.Y}
}

// Rem returns the componentwise remainder.
func (v IntVector2[T]) Rem(other IntVector2[T]) IntVector2[T] {
	return IntVector2[T]{v.X % other.X, v.Y % other.Y}
}

// Neg returns -v. Unsigned components wrap.
func (v IntVector2[T]) Neg() IntVector2[T] {
	return IntVector2[T]{-v.X, -v.Y}
}

// Scale returns v * s.
func (v IntVector2[T]) Scale(s T) IntVector2[T] {
	return IntVector2[T]{v.X * s, v.Y * s}
}

// DivScalar divides every component by s.
func (v IntVector2[T]) DivScalar(s T) IntVector2[T] {
	return IntVector2[T]{v.X / s, v.Y / s}
}

// RemScalar returns the remainder of every component divided by s.
func (v IntVector2[T]) RemScalar(s T) IntVector2[T] {
	return IntVector2[T]{v.X % s, v.Y % s}
}

// Dot returns the dot product.
func (v IntVector2[T]) Dot(other IntVector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude.
func (v IntVector2[T]) LengthSquared() T {
	return v.Dot(v)
}

// DistanceSquared returns the squared distance to another point.
func (v IntVector2[T]) DistanceSquared(other IntVector2[T]) T {
	return v.Sub(other).LengthSquared()
}

// Extend appends a Z component.
func (v IntVector2[T]) Extend(z T) IntVector3[T] {
	return IntVector3[T]{v.X, v.Y, z}
}

// Truncate drops the Y component.
func (v IntVector2[T]) Truncate() T {
	return v.X
}

// Array returns the components as an array.
func (v IntVector2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Eq compares componentwise for equality.
func (v IntVector2[T]) Eq(other IntVector2[T]) BVec2 {
	return BVec2{v.X == other.X, v.Y == other.Y}
}

// Less reports componentwise whether v < other.
func (v IntVector2[T]) Less(other IntVector2[T]) BVec2 {
	return BVec2{v.X < other.X, v.Y < other.Y}
}

// More reports componentwise whether v > other.
func (v IntVector2[T]) More(other IntVector2[T]) BVec2 {
	return BVec2{v.X > other.X, v.Y > other.Y}
}

// LessOrEq reports componentwise whether v <= other.
func (v IntVector2[T]) LessOrEq(other IntVector2[T]) BVec2 {
	return BVec2{v.X <= other.X, v.Y <= other.Y}
}

// MoreOrEq reports componentwise whether v >= other.
func (v IntVector2[T]) MoreOrEq(other IntVector2[T]) BVec2 {
	return BVec2{v.X >= other.X, v.Y >= other.Y}
}
