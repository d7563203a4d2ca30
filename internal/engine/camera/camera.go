// Package camera provides the free-fly camera used to explore the terrain.
package camera

import (
	gomath "math"

	"github.com/vastheim/clipterra/pkg/math"
)

// FlyCamera is an unconstrained first-person camera. Yaw/pitch are Euler
// angles in degrees; the clipmap only ever consumes the XZ position.
type FlyCamera struct {
	Position math.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees, clamped to (-89, 89)

	Speed       float32 // world units per second
	RotateSpeed float32 // degrees per second

	startPosition math.Vec3
	startYaw      float32
	startPitch    float32
}

// New creates a fly camera at the given position looking toward -Z,
// pitched down at the terrain.
func New(position math.Vec3, speed float32) *FlyCamera {
	c := &FlyCamera{
		Position:      position,
		Yaw:           -90,
		Pitch:         -25,
		Speed:         speed,
		RotateSpeed:   60,
		startPosition: position,
		startYaw:      -90,
		startPitch:    -25,
	}
	return c
}

// Front returns the normalized view direction from the Euler angles.
func (c *FlyCamera) Front() math.Vec3 {
	yaw := float64(c.Yaw) * gomath.Pi / 180
	pitch := float64(c.Pitch) * gomath.Pi / 180

	return math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// up is the world up axis; the camera never rolls.
var up = math.Vec3{X: 0, Y: 1, Z: 0}

// Move translates the camera: forward along the view direction, strafe
// along the right vector, vertical along world up. Inputs are -1/0/+1
// key axes; dt scales them to units.
func (c *FlyCamera) Move(forward, strafe, vertical float32, dt float32) {
	step := c.Speed * dt

	if forward != 0 {
		c.Position = c.Position.Add(c.Front().Scale(forward * step))
	}
	if strafe != 0 {
		right := c.Front().Cross(up).Normalize()
		c.Position = c.Position.Add(right.Scale(strafe * step))
	}
	if vertical != 0 {
		c.Position = c.Position.Add(up.Scale(vertical * step))
	}
}

// Rotate turns the camera by the given key axes scaled with dt, clamping
// pitch short of the poles.
func (c *FlyCamera) Rotate(yawAxis, pitchAxis float32, dt float32) {
	c.Yaw += yawAxis * c.RotateSpeed * dt
	c.Pitch += pitchAxis * c.RotateSpeed * dt

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Reset restores the initial position and orientation.
func (c *FlyCamera) Reset() {
	c.Position = c.startPosition
	c.Yaw = c.startYaw
	c.Pitch = c.startPitch
}

// ViewMatrix returns the view matrix for the current pose.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front()), up)
}

// XZ returns the viewer position on the terrain plane, the input to
// clipmap re-centering.
func (c *FlyCamera) XZ() math.Vec2 {
	return c.Position.XZ()
}
