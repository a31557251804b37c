package model

import (
	"github.com/Faultbox/gltypes/pkg/math"
)

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// EmptyBounds returns a box that any point will replace.
func EmptyBounds() Bounds {
	return Bounds{
		Min: math.Splat3[float32](1e10),
		Max: math.Splat3[float32](-1e10),
	}
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X
}

// Add grows the box to contain p.
func (b Bounds) Add(p math.Vec3) Bounds {
	b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	return b
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Transform returns the box containing all eight corners of b under m.
func (b Bounds) Transform(m math.Mat4) Bounds {
	out := EmptyBounds()
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		out = out.Add(m.TransformPoint(corner))
	}
	return out
}
