package camera

import (
	"testing"

	"github.com/vastheim/clipterra/pkg/math"
)

func TestFrontAtDefaultYaw(t *testing.T) {
	c := New(math.Vec3{Y: 500}, 300)
	c.Pitch = 0

	f := c.Front()
	// Yaw -90 with level pitch looks down -Z.
	if absf(f.X) > 0.001 || absf(f.Y) > 0.001 || absf(f.Z+1) > 0.001 {
		t.Errorf("front at yaw -90: got %v, want (0,0,-1)", f)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(math.Vec3{}, 300)

	c.Rotate(0, 1, 10) // would pitch far past vertical
	if c.Pitch > 89 {
		t.Errorf("pitch not clamped: %f", c.Pitch)
	}

	c.Rotate(0, -1, 10)
	c.Rotate(0, -1, 10)
	if c.Pitch < -89 {
		t.Errorf("pitch not clamped below: %f", c.Pitch)
	}
}

func TestMoveForward(t *testing.T) {
	c := New(math.Vec3{Y: 500}, 100)
	c.Pitch = 0

	c.Move(1, 0, 0, 1) // one second forward at speed 100

	if absf(c.Position.Z+100) > 0.01 {
		t.Errorf("forward move: Z got %f, want -100", c.Position.Z)
	}
	if absf(c.Position.Y-500) > 0.01 {
		t.Errorf("level forward move should not change Y, got %f", c.Position.Y)
	}
}

func TestVerticalMoveIgnoresPitch(t *testing.T) {
	c := New(math.Vec3{}, 50)
	c.Pitch = -45

	c.Move(0, 0, 1, 2)

	if absf(c.Position.Y-100) > 0.01 {
		t.Errorf("vertical move: Y got %f, want 100", c.Position.Y)
	}
	if absf(c.Position.X) > 0.01 || absf(c.Position.Z) > 0.01 {
		t.Errorf("vertical move leaked into XZ: %v", c.Position)
	}
}

func TestReset(t *testing.T) {
	start := math.Vec3{X: 1, Y: 500, Z: 300}
	c := New(start, 300)

	c.Move(1, 1, 1, 3)
	c.Rotate(1, 1, 2)
	c.Reset()

	if c.Position != start {
		t.Errorf("reset position: got %v, want %v", c.Position, start)
	}
	if c.Yaw != -90 || c.Pitch != -25 {
		t.Errorf("reset angles: got yaw %f pitch %f", c.Yaw, c.Pitch)
	}
}

func TestXZ(t *testing.T) {
	c := New(math.Vec3{X: 12, Y: 500, Z: 7}, 300)
	if got := c.XZ(); got != (math.Vec2{X: 12, Y: 7}) {
		t.Errorf("XZ: got %v, want {12 7}", got)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
