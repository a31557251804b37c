// Package camera provides view matrix sources for scene evaluation.
package camera

import (
	gomath "math"

	"github.com/Faultbox/gltypes/pkg/math"
)

// Camera is anything that can produce a view matrix.
type Camera interface {
	ViewMatrix() math.Mat4
}

// TransformCamera places the eye with an ordinary position, scale and
// rotation. Its view matrix is the inverse of that transform.
type TransformCamera struct {
	Position math.Vec3
	Scale    math.Vec3
	Rotation math.Quat
}

// NewTransformCamera creates a camera at pos with unit scale and no rotation.
func NewTransformCamera(pos math.Vec3) *TransformCamera {
	return &TransformCamera{
		Position: pos,
		Scale:    math.Vec3One,
		Rotation: math.QuatIdentity,
	}
}

// ViewMatrix returns the inverse of the camera transform.
func (c *TransformCamera) ViewMatrix() math.Mat4 {
	return math.Mat4FromInverseTransform(c.Position, c.Scale, c.Rotation)
}

// Transform returns the camera's own world transform.
func (c *TransformCamera) Transform() math.Mat4 {
	return math.Mat4FromTransform(c.Position, c.Scale, c.Rotation)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.5,
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Center.Add(sphere(c.Distance, c.RotationX, c.RotationY))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3Y)
}

// HandleDrag updates rotation based on a drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on a scroll delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point relative to the current yaw.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance
	speed := c.Distance * 0.01

	sin, cos := sincos(c.RotationY)
	move := math.Vec3{
		X: -sin*forward + cos*right,
		Y: up,
		Z: -cos*forward - sin*right,
	}
	c.Center = c.Center.Add(move.Scale(speed))
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)

	size := hi.Sub(lo)
	maxSize := size.X
	if size.Z > maxSize {
		maxSize = size.Z
	}
	if size.Y > maxSize {
		maxSize = size.Y
	}
	c.Distance = math.Clamp(maxSize*1.5, c.MinDistance, c.MaxDistance)

	c.RotationX = math.Clamp(0.6, c.MinPitch, c.MaxPitch)
	c.RotationY = 0
}

// ThirdPersonCamera follows a target from behind.
type ThirdPersonCamera struct {
	Yaw   float32 // around the target, radians
	Pitch float32 // fixed elevation, radians

	Distance    float32
	MinDistance float32
	MaxDistance float32

	// LookOffset raises the look-at point above the target origin.
	LookOffset float32

	YawSensitivity  float32
	ZoomSensitivity float32
}

// NewThirdPersonCamera creates a new third-person camera.
func NewThirdPersonCamera() *ThirdPersonCamera {
	return &ThirdPersonCamera{
		Pitch:           0.85,
		Distance:        30.0,
		MinDistance:     10.0,
		MaxDistance:     80.0,
		LookOffset:      3.0,
		YawSensitivity:  0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position calculates the camera position for a target.
func (c *ThirdPersonCamera) Position(target math.Vec3) math.Vec3 {
	// Behind and above the target
	offset := sphere(c.Distance, c.Pitch, c.Yaw)
	return math.Vec3{
		X: target.X - offset.X,
		Y: target.Y + offset.Y,
		Z: target.Z - offset.Z,
	}
}

// ViewMatrix returns the view matrix looking at target.
func (c *ThirdPersonCamera) ViewMatrix(target math.Vec3) math.Mat4 {
	look := target.Add(math.Vec3{Y: c.LookOffset})
	return math.LookAt(c.Position(target), look, math.Vec3Y)
}

// Follow binds the camera to a target so it satisfies Camera.
func (c *ThirdPersonCamera) Follow(target math.Vec3) Camera {
	return following{c, target}
}

// HandleYaw rotates the camera horizontally around the target.
func (c *ThirdPersonCamera) HandleYaw(deltaX float32) {
	c.Yaw -= deltaX * c.YawSensitivity
}

// HandleZoom updates distance from the target.
func (c *ThirdPersonCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

type following struct {
	cam    *ThirdPersonCamera
	target math.Vec3
}

func (f following) ViewMatrix() math.Mat4 {
	return f.cam.ViewMatrix(f.target)
}

// sphere converts distance, pitch and yaw into a Y-up offset.
func sphere(distance, pitch, yaw float32) math.Vec3 {
	sp, cp := sincos(pitch)
	sy, cy := sincos(yaw)
	return math.Vec3{
		X: distance * cp * sy,
		Y: distance * sp,
		Z: distance * cp * cy,
	}
}

func sincos(a float32) (float32, float32) {
	s, c := gomath.Sincos(float64(a))
	return float32(s), float32(c)
}
