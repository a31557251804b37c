package math

// Vector4 is a 4D vector of floating point components.
type Vector4[T Float] struct {
	X, Y, Z, W T
}

// Splat4 returns a vector with every component set to v.
func Splat4[T Float](v T) Vector4[T] {
	return Vector4[T]{v, v, v, v}
}

// Add returns v + other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul multiplies componentwise.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div divides componentwise.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Rem returns the componentwise floating point remainder.
func (v Vector4[T]) Rem(other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		mod(v.X, other.X),
		mod(v.Y, other.Y),
		mod(v.Z, other.Z),
		mod(v.W, other.W),
	}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * s.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar returns v scaled by 1/s.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return v.Scale(1 / s)
}

// RemScalar returns the remainder of every component divided by s.
func (v Vector4[T]) RemScalar(s T) Vector4[T] {
	return v.Rem(Splat4(s))
}

// Dot returns the dot product.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared magnitude.
func (v Vector4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the magnitude.
func (v Vector4[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// DistanceSquared returns the squared distance to another point.
func (v Vector4[T]) DistanceSquared(other Vector4[T]) T {
	return v.Sub(other).LengthSquared()
}

// Distance returns the distance to another point.
func (v Vector4[T]) Distance(other Vector4[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector.
// The zero vector normalizes to the zero vector.
func (v Vector4[T]) Normalize() Vector4[T] {
	l := v.Length()
	if l == 0 {
		return Vector4[T]{}
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates towards other.
func (v Vector4[T]) Lerp(other Vector4[T], t T) Vector4[T] {
	return Vector4[T]{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
		Lerp(v.W, other.W, t),
	}
}

// Transform returns m * v.
func (v Vector4[T]) Transform(m Matrix4[T]) Vector4[T] {
	return Vector4[T]{
		dot4(m.Row(0), v),
		dot4(m.Row(1), v),
		dot4(m.Row(2), v),
		dot4(m.Row(3), v),
	}
}

// Truncate drops the W component.
func (v Vector4[T]) Truncate() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// Array returns the components as an array, the layout used for uniforms.
func (v Vector4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// Eq compares componentwise for equality.
func (v Vector4[T]) Eq(other Vector4[T]) BVec4 {
	return BVec4{v.X == other.X, v.Y == other.Y, v.Z == other.Z, v.W == other.W}
}

// Less reports componentwise whether v < other.
func (v Vector4[T]) Less(other Vector4[T]) BVec4 {
	return BVec4{v.X < other.X, v.Y < other.Y, v.Z < other.Z, v.W < other.W}
}

// More reports componentwise whether v > other.
func (v Vector4[T]) More(other Vector4[T]) BVec4 {
	return BVec4{v.X > other.X, v.Y > other.Y, v.Z > other.Z, v.W > other.W}
}

// LessOrEq reports componentwise whether v <= other.
func (v Vector4[T]) LessOrEq(other Vector4[T]) BVec4 {
	return BVec4{v.X <= other.X, v.Y <= other.Y, v.Z <= other.Z, v.W <= other.W}
}

// MoreOrEq reports componentwise whether v >= other.
func (v Vector4[T]) MoreOrEq(other Vector4[T]) BVec4 {
	return BVec4{v.X >= other.X, v.Y >= other.Y, v.Z >= other.Z, v.W >= other.W}
}

func dot4[T Float](a [4]T, v Vector4[T]) T {
	return a[0]*v.X + a[1]*v.Y + a[2]*v.Z + a[3]*v.W
}
