package viewer

import "fmt"

const (
	zoomStep = 0.2
	zoomMin  = 0.5
	zoomMax  = 2.5

	rotateStep = 15.0
)

// Offset is a 2D translation in pixels.
type Offset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// TransformState holds the zoom, rotation and translation applied to the
// displayed artwork or model. Zoom is clamped to [0.5, 2.5] after every
// mutation; rotation and offset accumulate without bound.
type TransformState struct {
	Zoom            float64 `json:"zoom"`
	RotationDegrees float64 `json:"rotationDegrees"`
	Offset          Offset  `json:"offset"`
}

// TransformController applies discrete step operations to a TransformState.
// Operations are synchronous and have no side effects beyond the state.
// Not safe for concurrent use; the viewer session serializes commands.
type TransformController struct {
	state TransformState
}

// NewTransformController returns a controller at the initial state
// (zoom 1, rotation 0, offset 0,0).
func NewTransformController() *TransformController {
	return &TransformController{state: TransformState{Zoom: 1}}
}

// State returns a copy of the current state.
func (c *TransformController) State() TransformState {
	return c.state
}

// ZoomIn steps zoom up by 0.2, clamped at 2.5. Repeated calls at the
// boundary are no-ops.
func (c *TransformController) ZoomIn() {
	c.state.Zoom = clampZoom(c.state.Zoom + zoomStep)
}

// ZoomOut steps zoom down by 0.2, clamped at 0.5.
func (c *TransformController) ZoomOut() {
	c.state.Zoom = clampZoom(c.state.Zoom - zoomStep)
}

// RotateLeft steps rotation by -15 degrees. No clamping; the display layer
// normalizes modulo 360 if it needs to.
func (c *TransformController) RotateLeft() {
	c.state.RotationDegrees -= rotateStep
}

// RotateRight steps rotation by +15 degrees.
func (c *TransformController) RotateRight() {
	c.state.RotationDegrees += rotateStep
}

// Move adds the given delta to the current offset. Unbounded.
func (c *TransformController) Move(dx, dy float64) {
	c.state.Offset.DX += dx
	c.state.Offset.DY += dy
}

// Reset restores zoom 1, rotation 0 and offset (0,0) unconditionally.
func (c *TransformController) Reset() {
	c.state = TransformState{Zoom: 1}
}

func clampZoom(z float64) float64 {
	if z < zoomMin {
		return zoomMin
	}
	if z > zoomMax {
		return zoomMax
	}
	return z
}

// ComposedTransform is the visual transform in application order:
// translate, then rotate, then scale. Scaling after rotation keeps the
// rotation axis stable.
type ComposedTransform struct {
	TranslateX    float64 `json:"translateX"`
	TranslateY    float64 `json:"translateY"`
	RotateDegrees float64 `json:"rotateDegrees"`
	Scale         float64 `json:"scale"`
}

// Composed returns the composed transform for the current state.
func (c *TransformController) Composed() ComposedTransform {
	return ComposedTransform{
		TranslateX:    c.state.Offset.DX,
		TranslateY:    c.state.Offset.DY,
		RotateDegrees: c.state.RotationDegrees,
		Scale:         c.state.Zoom,
	}
}

// String renders the transform as a CSS transform list, in order.
func (t ComposedTransform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) rotate(%gdeg) scale(%g)",
		t.TranslateX, t.TranslateY, t.RotateDegrees, t.Scale)
}
