package bramble

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform holds a drawable's placement and derives its affine matrix on
// demand. Matrix layout is [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform struct {
	position     Vec2
	origin       Vec2
	scale        Vec2
	rotation     float64 // degrees, counter-clockwise on screen
	globalOffset Vec2

	matrix [6]float64
	dirty  bool
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{scale: Vec2{1, 1}, matrix: identityTransform}
}

// Position returns the translation.
func (t *Transform) Position() Vec2 { return t.position }

// Origin returns the pivot subtracted before scale and rotation.
func (t *Transform) Origin() Vec2 { return t.origin }

// Scale returns the 2D scale.
func (t *Transform) Scale() Vec2 { return t.scale }

// Rotation returns the rotation in degrees.
func (t *Transform) Rotation() float64 { return t.rotation }

// GlobalOffset returns the scene offset added to the position.
func (t *Transform) GlobalOffset() Vec2 { return t.globalOffset }

// SetPosition sets the translation. Reports whether the value changed.
func (t *Transform) SetPosition(v Vec2) bool {
	if t.position == v {
		return false
	}
	t.position = v
	t.dirty = true
	return true
}

// SetOrigin sets the pivot. Reports whether the value changed.
func (t *Transform) SetOrigin(v Vec2) bool {
	if t.origin == v {
		return false
	}
	t.origin = v
	t.dirty = true
	return true
}

// SetScale sets the 2D scale. Reports whether the value changed.
func (t *Transform) SetScale(v Vec2) bool {
	if t.scale == v {
		return false
	}
	t.scale = v
	t.dirty = true
	return true
}

// SetRotation sets the rotation in degrees. Reports whether the value changed.
func (t *Transform) SetRotation(deg float64) bool {
	if t.rotation == deg {
		return false
	}
	t.rotation = deg
	t.dirty = true
	return true
}

// SetGlobalOffset sets the scene offset. Reports whether the value changed.
func (t *Transform) SetGlobalOffset(v Vec2) bool {
	if t.globalOffset == v {
		return false
	}
	t.globalOffset = v
	t.dirty = true
	return true
}

// Matrix returns the composed affine matrix, recomputing it if any component
// changed since the last call.
//
// Composition order:
//
//	Translate(-origin) -> Scale -> Rotate -> Translate(position + globalOffset)
func (t *Transform) Matrix() [6]float64 {
	if t.dirty {
		t.matrix = composeMatrix(t.position, t.origin, t.scale, t.rotation, t.globalOffset)
		t.dirty = false
	}
	return t.matrix
}

func composeMatrix(pos, origin, scale Vec2, rotation float64, offset Vec2) [6]float64 {
	// Screen Y points down, so a counter-clockwise angle is a negative
	// rotation in screen space.
	sin, cos := math.Sincos(-rotation * math.Pi / 180)
	sx, sy := scale.X, scale.Y

	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy

	tx := pos.X + offset.X - (a*origin.X + c*origin.Y)
	ty := pos.Y + offset.Y - (b*origin.X + d*origin.Y)
	return [6]float64{a, b, c, d, tx, ty}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
