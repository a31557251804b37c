// Package scene loads node hierarchies from YAML or TOML files and
// evaluates the per-node uniforms a renderer would upload each frame.
package scene

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gltypes/internal/engine/camera"
	"github.com/Faultbox/gltypes/internal/engine/model"
	"github.com/Faultbox/gltypes/internal/engine/picking"
	"github.com/Faultbox/gltypes/internal/logger"
	"github.com/Faultbox/gltypes/pkg/math"
)

// Camera kinds accepted by CameraDef.Kind.
const (
	CameraTransform = "transform"
	CameraOrbit     = "orbit"
	CameraFollow    = "follow"
)

var (
	// ErrUnknownCamera is returned for an unrecognized camera kind.
	ErrUnknownCamera = errors.New("scene: unknown camera kind")
	// ErrUnknownTarget is returned when a follow camera names a missing node.
	ErrUnknownTarget = errors.New("scene: unknown follow target")
	// ErrBadRotation is returned for a rotation that has no direction.
	ErrBadRotation = errors.New("scene: rotation has no axis")
)

// Scene is a loaded, ready to evaluate node hierarchy.
type Scene struct {
	Nodes []model.Node
	Light math.Vec3 // unit direction

	eye    camera.Camera
	follow *camera.ThirdPersonCamera
	target string
}

// Uniforms holds everything a shader needs to draw one node. Matrices are
// column-major so they can be uploaded as is.
type Uniforms struct {
	Name   string
	Model  [4][4]float32 // node world matrix
	Camera [4][4]float32 // world to eye
	View   [4][4]float32 // projection
	Light  [3]float32
	Origin math.Vec3 // node origin in world space
}

// Load reads and builds a scene, choosing the decoder by extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Scene loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("nodes", len(s.Nodes)),
		zap.Bool("animated", model.HasAnimation(s.Nodes)),
	)
	return s, nil
}

// Build turns a decoded file into a scene, checking the hierarchy.
func Build(f *File) (*Scene, error) {
	s := &Scene{
		Nodes: make([]model.Node, 0, len(f.Nodes)),
		Light: math.Vec3{X: f.Light[0], Y: f.Light[1], Z: f.Light[2]}.Normalize(),
	}

	for _, def := range f.Nodes {
		node, err := buildNode(def)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		s.Nodes = append(s.Nodes, node)
	}
	if err := model.CheckHierarchy(s.Nodes); err != nil {
		return nil, err
	}

	if err := s.buildCamera(f.Camera); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return s, nil
}

func buildNode(def NodeDef) (model.Node, error) {
	node := model.NewNode(def.Name)
	node.Parent = def.Parent
	node.Position = vec3(def.Position)
	node.Spin = vec3(def.Spin)
	if def.Scale != nil {
		node.Scale = vec3(*def.Scale)
	}

	rot, err := rotation(def.Rotation)
	if err != nil {
		return node, err
	}
	node.Rotation = rot

	for _, k := range def.RotKeys {
		q, err := rotation(&k.RotationDef)
		if err != nil {
			return node, fmt.Errorf("rotation key at %vs: %w", k.Time, err)
		}
		node.RotKeys = append(node.RotKeys, model.RotKey{Time: k.Time, Rotation: q})
	}
	for _, k := range def.ScaleKeys {
		node.ScaleKeys = append(node.ScaleKeys, model.ScaleKey{Time: k.Time, Scale: vec3(k.Scale)})
	}
	return node, nil
}

func (s *Scene) buildCamera(def CameraDef) error {
	switch def.Kind {
	case "", CameraTransform:
		cam := camera.NewTransformCamera(vec3(def.Position))
		if def.Scale != nil {
			cam.Scale = vec3(*def.Scale)
		}
		rot, err := rotation(def.Rotation)
		if err != nil {
			return err
		}
		cam.Rotation = rot
		s.eye = cam

	case CameraOrbit:
		cam := camera.NewOrbitCamera()
		cam.Center = vec3(def.Center)
		if def.Distance > 0 {
			cam.Distance = def.Distance
		}
		cam.RotationX = def.Pitch
		cam.RotationY = def.Yaw
		s.eye = cam

	case CameraFollow:
		if model.FindNode(s.Nodes, def.Target) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTarget, def.Target)
		}
		cam := camera.NewThirdPersonCamera()
		if def.Distance > 0 {
			cam.Distance = def.Distance
		}
		if def.Pitch != 0 {
			cam.Pitch = def.Pitch
		}
		cam.Yaw = def.Yaw
		s.follow = cam
		s.target = def.Target

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCamera, def.Kind)
	}
	return nil
}

// Input is one step of camera control. Drag is in pixels, Pan is
// (forward, right, up) in camera-relative units and Zoom is in scroll steps.
type Input struct {
	Drag math.Vec2
	Pan  math.Vec3
	Zoom float32
	Fit  bool // frame the node origins at time t first
}

// Steer applies input to the scene camera. Orbit cameras take every
// control. Follow cameras turn with Drag.X and zoom. Transform cameras
// have no controls and ignore input.
func (s *Scene) Steer(in Input, t float32) {
	if cam, ok := s.eye.(*camera.OrbitCamera); ok {
		if in.Fit {
			if b := s.Bounds(t); !b.Empty() {
				cam.FitToBounds(b.Min, b.Max)
			}
		}
		if in.Drag != (math.Vec2{}) {
			cam.HandleDrag(in.Drag.X, in.Drag.Y)
		}
		if in.Pan != (math.Vec3{}) {
			cam.HandleMovement(in.Pan.X, in.Pan.Y, in.Pan.Z)
		}
		if in.Zoom != 0 {
			cam.HandleZoom(in.Zoom)
		}
	}

	if s.follow != nil {
		if in.Drag.X != 0 {
			s.follow.HandleYaw(in.Drag.X)
		}
		if in.Zoom != 0 {
			s.follow.HandleZoom(in.Zoom)
		}
	}
}

// ViewMatrix returns the camera matrix at time t. A follow camera tracks
// its target node, so its view changes with the animation.
func (s *Scene) ViewMatrix(t float32) math.Mat4 {
	if s.follow != nil {
		target := model.FindNode(s.Nodes, s.target)
		origin := model.WorldMatrix(target, s.Nodes, t).Position()
		return s.follow.Follow(origin).ViewMatrix()
	}
	return s.eye.ViewMatrix()
}

// Evaluate computes one Uniforms record per node at time t seconds.
func (s *Scene) Evaluate(t float32, projection math.Mat4) []Uniforms {
	view := s.ViewMatrix(t).ColumnMajor()
	proj := projection.ColumnMajor()
	light := s.Light.Array()

	out := make([]Uniforms, len(s.Nodes))
	for i := range s.Nodes {
		world := model.WorldMatrix(&s.Nodes[i], s.Nodes, t)
		out[i] = Uniforms{
			Name:   s.Nodes[i].Name,
			Model:  world.ColumnMajor(),
			Camera: view,
			View:   proj,
			Light:  light,
			Origin: math.Vec4{W: 1}.Transform(world).Truncate(),
		}
	}
	return out
}

// Bounds returns the box around every node origin at time t.
func (s *Scene) Bounds(t float32) model.Bounds {
	b := model.EmptyBounds()
	for i := range s.Nodes {
		b = b.Add(model.WorldMatrix(&s.Nodes[i], s.Nodes, t).Position())
	}
	return b
}

// Pick returns the node whose origin lies within radius of the ray through
// a pixel, preferring the one nearest the camera.
func (s *Scene) Pick(t float32, projection math.Mat4, pixel, viewport math.Vec2, radius float32) (string, bool, error) {
	ray, err := picking.ScreenToRay(pixel, viewport, projection.Mul(s.ViewMatrix(t)))
	if err != nil {
		return "", false, fmt.Errorf("failed to cast pick ray: %w", err)
	}

	origins := make([]math.Vec3, len(s.Nodes))
	for i := range s.Nodes {
		origins[i] = model.WorldMatrix(&s.Nodes[i], s.Nodes, t).Position()
	}
	i := ray.Nearest(origins, radius)
	if i < 0 {
		return "", false, nil
	}
	return s.Nodes[i].Name, true, nil
}

func rotation(def *RotationDef) (math.Quat, error) {
	if def == nil {
		return math.QuatIdentity, nil
	}
	if def.Quat != nil {
		q := math.Quat{R: def.Quat[0], I: def.Quat[1], J: def.Quat[2], K: def.Quat[3]}
		if q.IsZero() {
			return q, fmt.Errorf("%w: zero quaternion", ErrBadRotation)
		}
		return q.Normalize(), nil
	}
	if def.Angle == 0 {
		return math.QuatIdentity, nil
	}
	axis := vec3(def.Axis)
	if axis.LengthSquared() == 0 {
		return math.QuatIdentity, ErrBadRotation
	}
	return math.QuatFromAxisAngle(axis.Normalize(), def.Angle), nil
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
