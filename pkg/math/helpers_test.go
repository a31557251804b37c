package math

import "math"

const epsilon = 1e-5

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func nearVec3(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func nearQuat(a, b Quat) bool {
	return near(a.R, b.R) && near(a.I, b.I) && near(a.J, b.J) && near(a.K, b.K)
}

// maxDiff4 returns the largest element-wise difference between a and b.
func maxDiff4(a, b Mat4) float32 {
	var worst float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if d := abs(a[c][r] - b[c][r]); d > worst {
				worst = d
			}
		}
	}
	return worst
}

func maxDiff3(a, b Mat3) float32 {
	var worst float32
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if d := abs(a[c][r] - b[c][r]); d > worst {
				worst = d
			}
		}
	}
	return worst
}
