// Package model provides scene node hierarchies and keyframe animation.
package model

import (
	"errors"

	"github.com/Faultbox/gltypes/pkg/math"
)

var (
	// ErrUnknownParent is returned when a node names a parent that does not exist.
	ErrUnknownParent = errors.New("model: unknown parent")
	// ErrCycle is returned when following parents leads back to a node.
	ErrCycle = errors.New("model: parent cycle")
	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("model: duplicate node name")
)

// Node is one transform in a hierarchy. Children inherit the parent's
// world matrix.
type Node struct {
	Name     string
	Parent   string
	Position math.Vec3
	Scale    math.Vec3
	Rotation math.Quat

	// Spin is a constant angular velocity in radians per second around
	// x, y and z. It is ignored when RotKeys is set.
	Spin math.Vec3

	RotKeys   []RotKey
	ScaleKeys []ScaleKey
}

// NewNode returns a node at the origin with unit scale and no rotation.
func NewNode(name string) Node {
	return Node{
		Name:     name,
		Scale:    math.Vec3One,
		Rotation: math.QuatIdentity,
	}
}

// RotKey is a rotation keyframe. Time is in seconds.
type RotKey struct {
	Time     float32
	Rotation math.Quat
}

// ScaleKey is a scale keyframe. Time is in seconds.
type ScaleKey struct {
	Time  float32
	Scale math.Vec3
}
