// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/gltypes/internal/engine/model"
	"github.com/Faultbox/gltypes/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// ScreenToRay converts pixel coordinates to a world-space ray. viewProj is
// projection * view; a singular matrix returns ErrSingularMatrix.
func ScreenToRay(screen, viewport math.Vec2, viewProj math.Mat4) (Ray, error) {
	inv, err := viewProj.TryInverse()
	if err != nil {
		return Ray{}, err
	}

	// Normalized device coordinates, Y up
	ndc := math.Vec2{
		X: 2*screen.X/viewport.X - 1,
		Y: 1 - 2*screen.Y/viewport.Y,
	}

	// Unproject the near and far plane points
	near := inv.TransformPoint(ndc.Extend(-1))
	far := inv.TransformPoint(ndc.Extend(1))

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}, nil
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return math.Vec3{}, false // parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false // behind the origin
	}
	return r.At(t), true
}

// IntersectBounds tests the ray against a box using the slab method.
// If the ray starts inside the box, the exit distance is returned.
func (r Ray) IntersectBounds(box model.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin, dir := r.Origin.Array(), r.Direction.Array()
	lo, hi := box.Min.Array(), box.Max.Array()
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// DistanceToPoint returns how far p lies from the ray, and how far along
// the ray its closest point is. Points behind the origin measure to the origin.
func (r Ray) DistanceToPoint(p math.Vec3) (dist, along float32) {
	along = p.Sub(r.Origin).Dot(r.Direction)
	if along < 0 {
		return p.Distance(r.Origin), 0
	}
	return p.Distance(r.At(along)), along
}

// Nearest returns the index of the point closest to the ray origin among
// those within radius of the ray, or -1.
func (r Ray) Nearest(points []math.Vec3, radius float32) int {
	best, bestAlong := -1, float32(gomath.MaxFloat32)
	for i, p := range points {
		dist, along := r.DistanceToPoint(p)
		if dist <= radius && along < bestAlong {
			best, bestAlong = i, along
		}
	}
	return best
}
