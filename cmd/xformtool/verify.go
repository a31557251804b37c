package main

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/Faultbox/gltypes/pkg/math"
)

// tolerance for identities evaluated in float64 on well-conditioned inputs.
const tolerance = 1e-9

// failure describes one identity that did not hold.
type failure struct {
	check string
	pos   math.DVec3
	scale math.DVec3
	rot   math.DQuat
	err   float64
}

func (f failure) String() string {
	return fmt.Sprintf("%s: error %.3g (pos %v, scale %v, rot %v)", f.check, f.err, f.pos, f.scale, f.rot)
}

// verify checks the algebra identities on n random TRS triples drawn
// from seed. Scales stay within [0.1, 10] to keep matrices well conditioned.
func verify(n int, seed uint64) []failure {
	rng := rand.New(rand.NewSource(seed))

	var failures []failure
	for i := 0; i < n; i++ {
		pos := math.DVec3{X: between(rng, -100, 100), Y: between(rng, -100, 100), Z: between(rng, -100, 100)}
		scale := math.DVec3{X: between(rng, 0.1, 10), Y: between(rng, 0.1, 10), Z: between(rng, 0.1, 10)}
		axis := math.DVec3{X: between(rng, -1, 1), Y: between(rng, -1, 1), Z: between(rng, -1, 1)}
		if axis.LengthSquared() < 1e-6 {
			axis = math.DVec3Y
		}
		rot := math.QuatFromAxisAngle(axis.Normalize(), between(rng, -gomath.Pi, gomath.Pi))

		for _, c := range checkTransform(pos, scale, rot) {
			if c.err > tolerance || gomath.IsNaN(c.err) {
				failures = append(failures, failure{c.name, pos, scale, rot, c.err})
			}
		}
	}
	return failures
}

type result struct {
	name string
	err  float64
}

func checkTransform(pos, scale math.DVec3, rot math.DQuat) []result {
	m := math.Mat4FromTransform(pos, scale, rot)
	trs := math.Mat4FromPosition(pos).Mul(math.Mat4FromRotation(rot)).Mul(math.Mat4FromScale(scale))
	inv := math.Mat4FromInverseTransform(pos, scale, rot)

	// Relative to the largest entry, since translations reach the hundreds.
	size := 1 + maxAbs(m) + maxAbs(inv)

	axis, angle := rot.AxisAngle()
	back := math.QuatFromAxisAngle(axis, angle)

	x, y := pos.Normalize(), scale.Normalize()

	return []result{
		{"transform matches T*R*S", diff(m, trs) / size},
		{"closed-form inverse", residual(m.Mul(inv)) / size},
		{"general inverse", residual(m.Inverse().Mul(m)) / size},
		{"quaternion inverse", quatDiff(rot.Mul(rot.Inverse()), math.DQuatIdentity)},
		{"axis-angle round trip", gomath.Min(quatDiff(back, rot), quatDiff(back.Neg(), rot))},
		{"matrix round trip", gomath.Min(quatDiff(math.QuatFromMat3(rot.Mat3()), rot), quatDiff(math.QuatFromMat3(rot.Mat3()).Neg(), rot))},
		{"normalize length", gomath.Abs(x.Length() - 1)},
		{"cross anticommutes", x.Cross(y).Add(y.Cross(x)).Length()},
	}
}

// residual returns the largest deviation of m from the identity.
func residual[T math.Float](m math.Matrix4[T]) float64 {
	return diff(m, math.Identity4[T]())
}

func diff[T math.Float](a, b math.Matrix4[T]) float64 {
	var worst float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			worst = gomath.Max(worst, gomath.Abs(float64(a[c][r]-b[c][r])))
		}
	}
	return worst
}

func maxAbs(m math.DMat4) float64 {
	return diff(m, math.DMat4{})
}

func quatDiff(a, b math.DQuat) float64 {
	return gomath.Max(
		gomath.Max(gomath.Abs(a.R-b.R), gomath.Abs(a.I-b.I)),
		gomath.Max(gomath.Abs(a.J-b.J), gomath.Abs(a.K-b.K)),
	)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math.DVec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.DVec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.DVec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return math.DVec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
