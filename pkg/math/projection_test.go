package math

import (
	"math"
	"testing"
)

func TestViewMatrix3D(t *testing.T) {
	m := ViewMatrix3D[float32](800, 600, 1, 1024, 0.1)

	f := float32(1 / math.Tan(0.5))
	aspect := float32(600) / 800
	if !near(m[0][0], f*aspect) {
		t.Errorf("[0][0] = %v, want %v", m[0][0], f*aspect)
	}
	if !near(m[1][1], f) {
		t.Errorf("[1][1] = %v, want %v", m[1][1], f)
	}
	// Clip w is view-space z.
	if m.Row(3) != [4]float32{0, 0, 1, 0} {
		t.Errorf("row 3 = %v, want [0 0 1 0]", m.Row(3))
	}

	// Near and far planes map to -1 and 1 after the divide.
	for _, tc := range []struct{ z, want float32 }{{0.1, -1}, {1024, 1}} {
		p := m.TransformPoint(Vec3{0, 0, tc.z})
		if math.Abs(float64(p.Z-tc.want)) > 1e-3 {
			t.Errorf("z=%v maps to %v, want %v", tc.z, p.Z, tc.want)
		}
	}
}

func TestViewMatrix2D(t *testing.T) {
	m := ViewMatrix2D[float32](200, 100)
	if m != Mat4FromScale(Vec3{0.5, 1, 1}) {
		t.Errorf("ViewMatrix2D = %v", m)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 1, 10)

	if !near(m[0][0], 1) || !near(m[1][1], 1) {
		t.Errorf("90° fov should give unit focal length: %v %v", m[0][0], m[1][1])
	}
	if m[2][3] != -1 {
		t.Errorf("[2][3] = %v, want -1", m[2][3])
	}

	// Looking down -Z: near maps to -1, far to 1.
	if p := m.TransformPoint(Vec3{0, 0, -1}); !near(p.Z, -1) {
		t.Errorf("near plane z = %v, want -1", p.Z)
	}
	if p := m.TransformPoint(Vec3{0, 0, -10}); !near(p.Z, 1) {
		t.Errorf("far plane z = %v, want 1", p.Z)
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho[float32](0, 800, 0, 600, -1, 1)

	tests := []struct {
		in, want Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{-1, -1, 0}},
		{Vec3{800, 600, 0}, Vec3{1, 1, 0}},
		{Vec3{400, 300, 0}, Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !nearVec3(got, tt.want) {
			t.Errorf("Ortho(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3Zero, Vec3Y)

	// The target ends up straight ahead on -Z.
	if got := view.TransformPoint(Vec3Zero); !nearVec3(got, Vec3{0, 0, -5}) {
		t.Errorf("target in view space = %v, want (0, 0, -5)", got)
	}
	if got := view.TransformPoint(eye); !nearVec3(got, Vec3Zero) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := view.TransformDirection(Vec3Y); !nearVec3(got, Vec3Y) {
		t.Errorf("up in view space = %v, want %v", got, Vec3Y)
	}
}

func TestLookAtMatchesInverseTransform(t *testing.T) {
	// A camera at (0,0,5) with no rotation looks down -Z at the origin.
	pos := Vec3{0, 0, 5}
	look := LookAt(pos, Vec3Zero, Vec3Y)
	inv := Mat4FromInverseTransform(pos, Vec3One, QuatIdentity)
	if d := maxDiff4(look, inv); d > epsilon {
		t.Errorf("LookAt differs from inverse camera transform by %v", d)
	}
}
