package math

import (
	stdmath "math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-6
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: got %f, want 11", got)
	}
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Length: got %f, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero vector normalize should be zero, got %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y: got %v, want z", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("y cross x: got %v, want -z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{1, 2, 2}.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
}

func TestVec4Ops(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{5, 6, 7, 8}

	if got := a.Add(b); got != (Vec4{6, 8, 10, 12}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Dot(b); got != 70 {
		t.Errorf("Dot: got %f, want 70", got)
	}
	if got := a.Scale(2); got != (Vec4{2, 4, 6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ: got %v", got)
	}
}
