package math

// BVec2 is a 2D vector of booleans, produced by componentwise comparisons.
type BVec2 struct {
	X, Y bool
}

// BVec3 is a 3D vector of booleans.
type BVec3 struct {
	X, Y, Z bool
}

// BVec4 is a 4D vector of booleans.
type BVec4 struct {
	X, Y, Z, W bool
}

// And returns the componentwise logical and.
func (b BVec2) And(other BVec2) BVec2 {
	return BVec2{b.X && other.X, b.Y && other.Y}
}

// Or returns the componentwise logical or.
func (b BVec2) Or(other BVec2) BVec2 {
	return BVec2{b.X || other.X, b.Y || other.Y}
}

// Xor returns the componentwise exclusive or.
func (b BVec2) Xor(other BVec2) BVec2 {
	return BVec2{b.X != other.X, b.Y != other.Y}
}

// Not negates every component.
func (b BVec2) Not() BVec2 {
	return BVec2{!b.X, !b.Y}
}

// Any reports whether at least one component is true.
func (b BVec2) Any() bool { return b.X || b.Y }

// All reports whether every component is true.
func (b BVec2) All() bool { return b.X && b.Y }

// Truncate drops the Y component.
func (b BVec2) Truncate() bool { return b.X }

// Extend appends a Z component.
func (b BVec2) Extend(z bool) BVec3 { return BVec3{b.X, b.Y, z} }

// Array returns the components as an array.
func (b BVec2) Array() [2]bool {
	return [2]bool{b.X, b.Y}
}

// And returns the componentwise logical and.
func (b BVec3) And(other BVec3) BVec3 {
	return BVec3{b.X && other.X, b.Y && other.Y, b.Z && other.Z}
}

// Or returns the componentwise logical or.
func (b BVec3) Or(other BVec3) BVec3 {
	return BVec3{b.X || other.X, b.Y || other.Y, b.Z || other.Z}
}

// Xor returns the componentwise exclusive or.
func (b BVec3) Xor(other BVec3) BVec3 {
	return BVec3{b.X != other.X, b.Y != other.Y, b.Z != other.Z}
}

// Not negates every component.
func (b BVec3) Not() BVec3 {
	return BVec3{!b.X, !b.Y, !b.Z}
}

// Any reports whether at least one component is true.
func (b BVec3) Any() bool { return b.X || b.Y || b.Z }

// All reports whether every component is true.
func (b BVec3) All() bool { return b.X && b.Y && b.Z }

// Truncate drops the Z component.
func (b BVec3) Truncate() BVec2 { return BVec2{b.X, b.Y} }

// Extend appends a W component.
func (b BVec3) Extend(w bool) BVec4 { return BVec4{b.X, b.Y, b.Z, w} }

// Array returns the components as an array.
func (b BVec3) Array() [3]bool {
	return [3]bool{b.X, b.Y, b.Z}
}

// And returns the componentwise logical and.
func (b BVec4) And(other BVec4) BVec4 {
	return BVec4{b.X && other.X, b.Y && other.Y, b.Z && other.Z, b.W && other.W}
}

// Or returns the componentwise logical or.
func (b BVec4) Or(other BVec4) BVec4 {
	return BVec4{b.X || other.X, b.Y || other.Y, b.Z || other.Z, b.W || other.W}
}

// Xor returns the componentwise exclusive or.
func (b BVec4) Xor(other BVec4) BVec4 {
	return BVec4{b.X != other.X, b.Y != other.Y, b.Z != other.Z, b.W != other.W}
}

// Not negates every component.
func (b BVec4) Not() BVec4 {
	return BVec4{!b.X, !b.Y, !b.Z, !b.W}
}

// Any reports whether at least one component is true.
func (b BVec4) Any() bool { return b.X || b.Y || b.Z || b.W }

// All reports whether every component is true.
func (b BVec4) All() bool { return b.X && b.Y && b.Z && b.W }

// Truncate drops the W component.
func (b BVec4) Truncate() BVec3 { return BVec3{b.X, b.Y, b.Z} }

// Array returns the components as an array.
func (b BVec4) Array() [4]bool {
	return [4]bool{b.X, b.Y, b.Z, b.W}
}
