package model

import (
	"github.com/Faultbox/gltypes/pkg/math"
)

// InterpolateRotKeys interpolates rotation keyframes at time t.
// Keys must be sorted by time. Times outside the keyed range hold the
// first or last rotation.
func InterpolateRotKeys(keys []RotKey, t float32) math.Quat {
	if len(keys) == 0 {
		return math.QuatIdentity
	}
	prev, next := surrounding(len(keys), func(i int) float32 { return keys[i].Time }, t)
	if prev == next {
		return keys[prev].Rotation
	}

	k0, k1 := keys[prev], keys[next]
	return k0.Rotation.Slerp(k1.Rotation, fraction(k0.Time, k1.Time, t))
}

// InterpolateScaleKeys interpolates scale keyframes at time t.
func InterpolateScaleKeys(keys []ScaleKey, t float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3One
	}
	prev, next := surrounding(len(keys), func(i int) float32 { return keys[i].Time }, t)
	if prev == next {
		return keys[prev].Scale
	}

	k0, k1 := keys[prev], keys[next]
	return k0.Scale.Lerp(k1.Scale, fraction(k0.Time, k1.Time, t))
}

// SpinRotation returns the rotation reached after spinning for t seconds.
// The axes compose as Y·X·Z, so z is applied first and y last.
func SpinRotation(spin math.Vec3, t float32) math.Quat {
	return math.QuatFromYRotation(spin.Y * t).
		Mul(math.QuatFromXRotation(spin.X * t)).
		Mul(math.QuatFromZRotation(spin.Z * t))
}

// HasAnimation reports whether any node changes over time.
// A single keyframe is a static pose, not an animation.
func HasAnimation(nodes []Node) bool {
	for i := range nodes {
		node := &nodes[i]
		if len(node.RotKeys) > 1 || len(node.ScaleKeys) > 1 {
			return true
		}
		if len(node.RotKeys) == 0 && node.Spin != (math.Vec3{}) {
			return true
		}
	}
	return false
}

// surrounding finds the keys on either side of t. Both indices are equal
// when t is before the first key or at or past the last one.
func surrounding(n int, time func(int) float32, t float32) (prev, next int) {
	for i := 0; i < n; i++ {
		if time(i) > t {
			if i == 0 {
				return 0, 0
			}
			return i - 1, i
		}
		prev = i
	}
	return prev, prev
}

func fraction(t0, t1, t float32) float32 {
	if t1 == t0 {
		return 0
	}
	return (t - t0) / (t1 - t0)
}
