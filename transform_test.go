package bramble

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	tr := NewTransform()
	assertMatrix(t, "identity", tr.Matrix(), identityTransform)
}

func TestTransformTranslation(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(Vec2{10, 20})
	assertMatrix(t, "translation", tr.Matrix(), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestTransformScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(Vec2{2, 3})
	assertMatrix(t, "scale", tr.Matrix(), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestTransformRotation90(t *testing.T) {
	tr := NewTransform()
	tr.SetRotation(90)
	// Counter-clockwise on screen: +x maps to -y.
	assertMatrix(t, "rot90", tr.Matrix(), [6]float64{0, -1, 1, 0, 0, 0})
	x, y := transformPoint(tr.Matrix(), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, -1)
}

func TestTransformOrigin(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(Vec2{100, 50})
	tr.SetOrigin(Vec2{16, 8})
	tr.SetScale(Vec2{2, 2})
	// The origin lands on the position regardless of scale.
	x, y := transformPoint(tr.Matrix(), 16, 8)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 50)
	x, y = transformPoint(tr.Matrix(), 0, 0)
	assertNear(t, "x0", x, 68)
	assertNear(t, "y0", y, 34)
}

func TestTransformGlobalOffset(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(Vec2{10, 10})
	tr.SetGlobalOffset(Vec2{-4, 6})
	assertMatrix(t, "offset", tr.Matrix(), [6]float64{1, 0, 0, 1, 6, 16})
}

func TestTransformSettersReportChange(t *testing.T) {
	tr := NewTransform()
	if !tr.SetPosition(Vec2{1, 2}) {
		t.Error("first SetPosition should report a change")
	}
	if tr.SetPosition(Vec2{1, 2}) {
		t.Error("same SetPosition should not report a change")
	}
	if tr.SetScale(Vec2{1, 1}) {
		t.Error("default scale should not report a change")
	}
	if tr.SetRotation(0) {
		t.Error("default rotation should not report a change")
	}
}

func TestTransformMatrixLazy(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(Vec2{5, 5})
	if !tr.dirty {
		t.Fatal("setter should mark the matrix dirty")
	}
	tr.Matrix()
	if tr.dirty {
		t.Error("Matrix should clear dirty")
	}
	tr.SetPosition(Vec2{5, 5})
	if tr.dirty {
		t.Error("unchanged setter should not mark dirty")
	}
}

func BenchmarkComposeMatrix(b *testing.B) {
	for b.Loop() {
		composeMatrix(Vec2{100, 50}, Vec2{16, 16}, Vec2{2, 2}, 30, Vec2{-8, 4})
	}
}
