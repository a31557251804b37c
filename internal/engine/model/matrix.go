package model

import (
	"fmt"

	"github.com/Faultbox/gltypes/pkg/math"
)

// LocalRotation returns the node's rotation at time t. Rotation keys
// replace the static rotation; otherwise spin is applied on top of it.
func LocalRotation(node *Node, t float32) math.Quat {
	if len(node.RotKeys) > 0 {
		return InterpolateRotKeys(node.RotKeys, t)
	}
	if node.Spin == (math.Vec3{}) {
		return node.Rotation
	}
	return SpinRotation(node.Spin, t).Mul(node.Rotation)
}

// LocalMatrix builds Position * Rotation * Scale for a node at time t.
func LocalMatrix(node *Node, t float32) math.Mat4 {
	scale := node.Scale
	if len(node.ScaleKeys) > 0 {
		scale = scale.Mul(InterpolateScaleKeys(node.ScaleKeys, t))
	}
	return math.Mat4FromTransform(node.Position, scale, LocalRotation(node, t))
}

// WorldMatrix returns parent_world * local for a node at time t. A missing
// parent is treated as the root, and a cycle stops at the first repeat.
func WorldMatrix(node *Node, nodes []Node, t float32) math.Mat4 {
	visited := make(map[string]bool)
	return worldMatrix(node, nodes, t, visited)
}

func worldMatrix(node *Node, nodes []Node, t float32, visited map[string]bool) math.Mat4 {
	// Prevent infinite recursion
	if visited[node.Name] {
		return math.Mat4Identity
	}
	visited[node.Name] = true

	local := LocalMatrix(node, t)
	if node.Parent != "" && node.Parent != node.Name {
		if parent := FindNode(nodes, node.Parent); parent != nil {
			return worldMatrix(parent, nodes, t, visited).Mul(local)
		}
	}
	return local
}

// FindNode returns the node with the given name, or nil.
func FindNode(nodes []Node, name string) *Node {
	for i := range nodes {
		if nodes[i].Name == name {
			return &nodes[i]
		}
	}
	return nil
}

// CheckHierarchy reports duplicate names, unknown parents and parent cycles.
func CheckHierarchy(nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for i := range nodes {
		if seen[nodes[i].Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, nodes[i].Name)
		}
		seen[nodes[i].Name] = true
	}

	for i := range nodes {
		node := &nodes[i]
		path := map[string]bool{node.Name: true}
		for node.Parent != "" {
			parent := FindNode(nodes, node.Parent)
			if parent == nil {
				return fmt.Errorf("%w: %q (parent of %q)", ErrUnknownParent, node.Parent, node.Name)
			}
			if path[parent.Name] {
				return fmt.Errorf("%w: %q", ErrCycle, nodes[i].Name)
			}
			path[parent.Name] = true
			node = parent
		}
	}
	return nil
}
