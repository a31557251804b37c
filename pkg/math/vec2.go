package math

// Vector2 is a 2D vector of floating point components.
type Vector2[T Float] struct {
	X, Y T
}

// Splat2 returns a vector with both components set to v.
func Splat2[T Float](v T) Vector2[T] {
	return Vector2[T]{v, v}
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies componentwise.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// Div divides componentwise.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// Rem returns the componentwise floating point remainder.
func (v Vector2[T]) Rem(other Vector2[T]) Vector2[T] {
	return Vector2[T]{mod(v.X, other.X), mod(v.Y, other.Y)}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Scale returns v * s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// DivScalar returns v scaled by 1/s.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return v.Scale(1 / s)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector2[T]) RemScalar(s T) Vector2[T] {
	return v.Rem(Splat2(s))
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vector2[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// DistanceSquared returns the squared distance to another point.
func (v Vector2[T]) DistanceSquared(other Vector2[T]) T {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance to another point.
func (v Vector2[T]) Distance(other Vector2[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector.
// The zero vector normalizes to the zero vector.
func (v Vector2[T]) Normalize() Vector2[T] {
	l := v.Length()
	if l == 0 {
		return Vector2[T]{}
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates towards other.
func (v Vector2[T]) Lerp(other Vector2[T], t T) Vector2[T] {
	return Vector2[T]{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// Transform returns m * v. Each component is the dot product of a matrix
// row with v.
func (v Vector2[T]) Transform(m Matrix2[T]) Vector2[T] {
	return Vector2[T]{
		dot2(m.Row(0), v),
		dot2(m.Row(1), v),
	}
}

// Extend appends a Z component.
func (v Vector2[T]) Extend(z T) Vector3[T] {
	return Vector3[T]{v.X, v.Y, z}
}

// Truncate drops the Y component.
func (v Vector2[T]) Truncate() T {
	return v.X
}

// Array returns the components as an array, the layout used for uniforms.
func (v Vector2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Eq compares componentwise for equality.
func (v Vector2[T]) Eq(other Vector2[T]) BVec2 {
	return BVec2{v.X == other.X, v.Y == other.Y}
}

// Less reports componentwise whether v < other.
func (v Vector2[T]) Less(other Vector2[T]) BVec2 {
	return BVec2{v.X < other.X, v.Y < other.Y}
}

// More reports componentwise whether v > other.
func (v Vector2[T]) More(other Vector2[T]) BVec2 {
	return BVec2{v.X > other.X, v.Y > other.Y}
}

// LessOrEq reports componentwise whether v <= other.
func (v Vector2[T]) LessOrEq(other Vector2[T]) BVec2 {
	return BVec2{v.X <= other.X, v.Y <= other.Y}
}

// MoreOrEq reports componentwise whether v >= other.
func (v Vector2[T]) MoreOrEq(other Vector2[T]) BVec2 {
	return BVec2{v.X >= other.X, v.Y >= other.Y}
}

func dot2[T Float](a [2]T, v Vector2[T]) T {
	return a[0]*v.X + a[1]*v.Y
}
