package viewer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTransformInitialState(t *testing.T) {
	c := NewTransformController()
	s := c.State()
	if s.Zoom != 1 || s.RotationDegrees != 0 || s.Offset.DX != 0 || s.Offset.DY != 0 {
		t.Errorf("unexpected initial state: %+v", s)
	}
}

func TestZoomClampUpper(t *testing.T) {
	c := NewTransformController()
	for i := 0; i < 20; i++ {
		c.ZoomIn()
	}
	if got := c.State().Zoom; !almostEqual(got, 2.5) {
		t.Errorf("zoom after 20 zoom-ins = %g, want 2.5", got)
	}
	// Repeated calls at the boundary stay put.
	c.ZoomIn()
	if got := c.State().Zoom; !almostEqual(got, 2.5) {
		t.Errorf("zoom at upper boundary moved to %g", got)
	}
}

func TestZoomClampLower(t *testing.T) {
	c := NewTransformController()
	for i := 0; i < 20; i++ {
		c.ZoomOut()
	}
	if got := c.State().Zoom; !almostEqual(got, 0.5) {
		t.Errorf("zoom after 20 zoom-outs = %g, want 0.5", got)
	}
	c.ZoomOut()
	if got := c.State().Zoom; !almostEqual(got, 0.5) {
		t.Errorf("zoom at lower boundary moved to %g", got)
	}
}

func TestZoomAlwaysInRange(t *testing.T) {
	c := NewTransformController()
	ops := []func(){c.ZoomIn, c.ZoomIn, c.ZoomOut, c.ZoomIn, c.ZoomOut, c.ZoomOut, c.ZoomOut, c.ZoomIn}
	for i := 0; i < 100; i++ {
		ops[i%len(ops)]()
		z := c.State().Zoom
		if z < 0.5-1e-9 || z > 2.5+1e-9 {
			t.Fatalf("zoom escaped range after %d ops: %g", i+1, z)
		}
	}
}

func TestRotationUnbounded(t *testing.T) {
	c := NewTransformController()
	for i := 0; i < 30; i++ {
		c.RotateRight()
	}
	if got := c.State().RotationDegrees; !almostEqual(got, 450) {
		t.Errorf("rotation after 30 right steps = %g, want 450", got)
	}
	for i := 0; i < 60; i++ {
		c.RotateLeft()
	}
	if got := c.State().RotationDegrees; !almostEqual(got, -450) {
		t.Errorf("rotation after 60 left steps = %g, want -450", got)
	}
}

func TestMoveAccumulates(t *testing.T) {
	c := NewTransformController()
	c.Move(10, -5)
	c.Move(-3, 2)
	s := c.State()
	if !almostEqual(s.Offset.DX, 7) || !almostEqual(s.Offset.DY, -3) {
		t.Errorf("offset = (%g, %g), want (7, -3)", s.Offset.DX, s.Offset.DY)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	c := NewTransformController()
	c.ZoomIn()
	c.RotateLeft()
	c.Move(40, 40)
	c.Reset()
	s := c.State()
	if s.Zoom != 1 || s.RotationDegrees != 0 || s.Offset != (Offset{}) {
		t.Errorf("state after reset: %+v", s)
	}

	// Reset is unconditional, including from the initial state.
	c.Reset()
	if got := c.State(); got != (TransformState{Zoom: 1}) {
		t.Errorf("second reset changed state: %+v", got)
	}
}

func TestComposedOrder(t *testing.T) {
	c := NewTransformController()
	c.Move(12, -8)
	c.RotateRight()
	c.RotateRight()
	c.ZoomIn()

	ct := c.Composed()
	want := ComposedTransform{TranslateX: 12, TranslateY: -8, RotateDegrees: 30, Scale: 1.2}
	if !almostEqual(ct.TranslateX, want.TranslateX) ||
		!almostEqual(ct.TranslateY, want.TranslateY) ||
		!almostEqual(ct.RotateDegrees, want.RotateDegrees) ||
		!almostEqual(ct.Scale, want.Scale) {
		t.Errorf("composed = %+v, want %+v", ct, want)
	}

	if got, want := ct.String(), "translate(12px, -8px) rotate(30deg) scale(1.2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestComposedStringInitial(t *testing.T) {
	c := NewTransformController()
	if got, want := c.Composed().String(), "translate(0px, 0px) rotate(0deg) scale(1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
