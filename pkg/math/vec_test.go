package math

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want (5, 7, 9)", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v, want (3, 3, 3)", got)
	}
	if got := a.Mul(b); got != (Vec3{4, 10, 18}) {
		t.Errorf("Mul: got %v, want (4, 10, 18)", got)
	}
	if got := b.Div(Vec3{2, 5, 3}); got != (Vec3{2, 1, 2}) {
		t.Errorf("Div: got %v, want (2, 1, 2)", got)
	}
	if got := b.Rem(Vec3{3, 3, 4}); got != (Vec3{1, 2, 2}) {
		t.Errorf("Rem: got %v, want (1, 2, 2)", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v, want (2, 4, 6)", got)
	}
	if got := b.DivScalar(2); got != (Vec3{2, 2.5, 3}) {
		t.Errorf("DivScalar: got %v, want (2, 2.5, 3)", got)
	}
	if got := b.RemScalar(4); got != (Vec3{0, 1, 2}) {
		t.Errorf("RemScalar: got %v, want (0, 1, 2)", got)
	}
	if got := a.Neg(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Neg: got %v, want (-1, -2, -3)", got)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, 5, 6}); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
	if got := Vec3X.Dot(Vec3Y); got != 0 {
		t.Errorf("orthogonal Dot: got %v, want 0", got)
	}
}

func TestVec3Cross(t *testing.T) {
	if got := Vec3X.Cross(Vec3Y); got != Vec3Z {
		t.Errorf("X × Y: got %v, want %v", got, Vec3Z)
	}
	if got := Vec3Y.Cross(Vec3Z); got != Vec3X {
		t.Errorf("Y × Z: got %v, want %v", got, Vec3X)
	}
	if got := Vec3Z.Cross(Vec3X); got != Vec3Y {
		t.Errorf("Z × X: got %v, want %v", got, Vec3Y)
	}

	// Anti-commutative
	a := Vec3{1.5, -2, 3}
	b := Vec3{-4, 0.5, 2}
	if a.Cross(b) != b.Cross(a).Neg() {
		t.Errorf("a × b = %v, want -(b × a) = %v", a.Cross(b), b.Cross(a).Neg())
	}

	// Result is perpendicular to both inputs
	c := a.Cross(b)
	if !near(c.Dot(a), 0) || !near(c.Dot(b), 0) {
		t.Errorf("cross product not perpendicular: %v·a=%v %v·b=%v", c, c.Dot(a), c, c.Dot(b))
	}
}

func TestVecLength(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := (Vec3{3, 4, 0}).LengthSquared(); got != 25 {
		t.Errorf("LengthSquared: got %v, want 25", got)
	}
	if got := (Vec2{1, 1}).Distance(Vec2{4, 5}); got != 5 {
		t.Errorf("Vec2 Distance: got %v, want 5", got)
	}
	if got := (Vec4{1, 1, 1, 1}).DistanceSquared(Vec4{}); got != 4 {
		t.Errorf("Vec4 DistanceSquared: got %v, want 4", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []Vec3{
		{3, 4, 0},
		{1, 1, 1},
		{-7, 0.25, 12},
		{0, 0, 1e-3},
	}
	for _, v := range tests {
		if l := v.Normalize().Length(); !near(l, 1) {
			t.Errorf("Normalize(%v).Length() = %v, want 1", v, l)
		}
	}

	if l := (Vec2{5, -2}).Normalize().Length(); !near(l, 1) {
		t.Errorf("Vec2 Normalize length = %v, want 1", l)
	}
	if l := (Vec4{1, 2, 3, 4}).Normalize().Length(); !near(l, 1) {
		t.Errorf("Vec4 Normalize length = %v, want 1", l)
	}
	if l := (DVec3{1, 2, 3}).Normalize().Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("DVec3 Normalize length = %v, want 1", l)
	}
}

func TestVecNormalizeZero(t *testing.T) {
	if got := Vec2Zero.Normalize(); got != Vec2Zero {
		t.Errorf("Vec2 zero Normalize: got %v, want zero", got)
	}
	if got := Vec3Zero.Normalize(); got != Vec3Zero {
		t.Errorf("Vec3 zero Normalize: got %v, want zero", got)
	}
	if got := Vec4Zero.Normalize(); got != Vec4Zero {
		t.Errorf("Vec4 zero Normalize: got %v, want zero", got)
	}
}

func TestVecLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, 10, 15}) {
		t.Errorf("Lerp 0.5: got %v, want (5, 10, 15)", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp 0: got %v, want %v", got, a)
	}
}

func TestVecExtendTruncate(t *testing.T) {
	v2 := Vec2{1, 2}
	if got := v2.Extend(3); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec2 Extend: got %v", got)
	}
	if got := v2.Truncate(); got != 1 {
		t.Errorf("Vec2 Truncate: got %v, want 1", got)
	}
	v3 := Vec3{1, 2, 3}
	if got := v3.Extend(4); got != (Vec4{1, 2, 3, 4}) {
		t.Errorf("Vec3 Extend: got %v", got)
	}
	if got := v3.Truncate(); got != v2 {
		t.Errorf("Vec3 Truncate: got %v, want %v", got, v2)
	}
	if got := v3.Extend(4).Truncate(); got != v3 {
		t.Errorf("Vec4 Truncate: got %v, want %v", got, v3)
	}
	if got := v3.XZ(); got != (Vec2{1, 3}) {
		t.Errorf("XZ: got %v, want (1, 3)", got)
	}
}

func TestVecArray(t *testing.T) {
	if got := (Vec2{1, 2}).Array(); got != [2]float32{1, 2} {
		t.Errorf("Vec2 Array: got %v", got)
	}
	if got := (Vec3{1, 2, 3}).Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("Vec3 Array: got %v", got)
	}
	if got := (DVec4{1, 2, 3, 4}).Array(); got != [4]float64{1, 2, 3, 4} {
		t.Errorf("DVec4 Array: got %v", got)
	}
}

func TestVecComparisons(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 2, 1}

	tests := []struct {
		name string
		got  BVec3
		want BVec3
	}{
		{"Eq", a.Eq(b), BVec3{false, true, false}},
		{"Less", a.Less(b), BVec3{true, false, false}},
		{"More", a.More(b), BVec3{false, false, true}},
		{"LessOrEq", a.LessOrEq(b), BVec3{true, true, false}},
		{"MoreOrEq", a.MoreOrEq(b), BVec3{false, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := (Vec2{1, 5}).Less(Vec2{2, 4}); got != (BVec2{true, false}) {
		t.Errorf("Vec2 Less: got %v", got)
	}
	if got := (Vec4{1, 2, 3, 4}).Eq(Vec4{1, 2, 3, 4}); !got.All() {
		t.Errorf("Vec4 Eq: got %v, want all true", got)
	}
}

func TestVecTransform(t *testing.T) {
	// Each output component is a matrix row dotted with the vector.
	m3 := Mat3FromValues[float32](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	if got := (Vec3{1, 0, 0}).Transform(m3); got != (Vec3{1, 4, 7}) {
		t.Errorf("Vec3 Transform: got %v, want (1, 4, 7)", got)
	}
	if got := (Vec3{1, 1, 1}).Transform(m3); got != (Vec3{6, 15, 24}) {
		t.Errorf("Vec3 Transform: got %v, want (6, 15, 24)", got)
	}

	m2 := Mat2FromValues[float32](1, 2, 3, 4)
	if got := (Vec2{1, 1}).Transform(m2); got != (Vec2{3, 7}) {
		t.Errorf("Vec2 Transform: got %v, want (3, 7)", got)
	}

	m4 := Mat4FromPosition(Vec3{1, 2, 3})
	if got := (Vec4{0, 0, 0, 1}).Transform(m4); got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Vec4 Transform: got %v, want (1, 2, 3, 1)", got)
	}
}

func TestSplat(t *testing.T) {
	if got := Splat3[float32](2); got != (Vec3{2, 2, 2}) {
		t.Errorf("Splat3: got %v", got)
	}
	if got := Splat2(0.5); got != (DVec2{0.5, 0.5}) {
		t.Errorf("Splat2: got %v", got)
	}
	if got := Splat4[float32](1); got != Vec4One {
		t.Errorf("Splat4: got %v", got)
	}
}
