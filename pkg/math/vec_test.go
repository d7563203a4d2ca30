package math

import "testing"

func TestVec2Floor(t *testing.T) {
	tests := []struct {
		in   Vec2
		want Vec2
	}{
		{Vec2{2.4, 1.4}, Vec2{2, 1}},
		{Vec2{2.0, 1.0}, Vec2{2, 1}},
		{Vec2{-0.5, -1.5}, Vec2{-1, -2}},
		{Vec2{0, 0}, Vec2{0, 0}},
	}

	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.want {
			t.Errorf("Floor(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 2}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Div(2); got != (Vec2{1.5, 2}) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %f, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{0, 3, 4}
	n := v.Normalize()
	if n != (Vec3{0, 0.6, 0.8}) {
		t.Errorf("Normalize: got %v", n)
	}

	// Zero vector stays zero instead of producing NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestVec3XZ(t *testing.T) {
	v := Vec3{12, 99, 7}
	if got := v.XZ(); got != (Vec2{12, 7}) {
		t.Errorf("XZ: got %v, want {12 7}", got)
	}
}
