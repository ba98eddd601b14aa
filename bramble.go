package bramble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	css "github.com/mazznoer/csscolorparser"
	"golang.org/x/exp/constraints"
)

// Vec2 is a 2D vector used for positions, origins, scales, and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width may be negative for a
// horizontally flipped texture rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// HFlipped returns the rectangle mirrored horizontally: it spans the same
// pixels but is sampled right to left.
func (r Rect) HFlipped() Rect {
	return Rect{X: r.X + r.Width, Y: r.Y, Width: -r.Width, Height: r.Height}
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IntRect is an integer rectangle, used for source rectangles and viewports.
type IntRect struct {
	X, Y, Width, Height int
}

// ToRect converts r to a float rectangle.
func (r IntRect) ToRect() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}

// Intersects reports whether r and other share at least one pixel. Empty
// rectangles never intersect anything.
func (r IntRect) Intersects(other IntRect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Color is an overlay color with components in [0, 255]. The alpha component
// is the blend strength of the overlay, not the sprite's opacity.
type Color struct {
	R, G, B, A float64
}

// NewColor returns a color with every component clamped to [0, 255].
func NewColor(r, g, b, a float64) Color {
	return Color{clamp(r, 0, 255), clamp(g, 0, 255), clamp(b, 0, 255), clamp(a, 0, 255)}
}

// ParseColor parses a CSS color string ("#ff8800", "rgba(0,0,0,0.5)",
// "tomato", ...) into a Color.
func ParseColor(s string) (Color, error) {
	c, err := css.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	return NewColor(c.R*255, c.G*255, c.B*255, c.A*255), nil
}

// Norm returns the color normalized to [0, 1].
func (c Color) Norm() [4]float32 {
	return [4]float32{normByte(c.R), normByte(c.G), normByte(c.B), normByte(c.A)}
}

// HasEffect reports whether the color overlay changes the sprite at all.
func (c Color) HasEffect() bool {
	return c.A != 0
}

// Tone shifts the sprite's colors. R, G and B are in [-255, 255]; Gray in
// [0, 255] desaturates toward luminance.
type Tone struct {
	R, G, B, Gray float64
}

// NewTone returns a tone with every component clamped to its range.
func NewTone(r, g, b, gray float64) Tone {
	return Tone{clamp(r, -255, 255), clamp(g, -255, 255), clamp(b, -255, 255), clamp(gray, 0, 255)}
}

// Norm returns the tone normalized to [-1, 1] (gray to [0, 1]).
func (t Tone) Norm() [4]float32 {
	return [4]float32{float32(t.R / 255), float32(t.G / 255), float32(t.B / 255), float32(t.Gray / 255)}
}

// HasEffect reports whether the tone changes the sprite at all.
func (t Tone) HasEffect() bool {
	return t.R != 0 || t.G != 0 || t.B != 0 || t.Gray != 0
}

// normByte maps a 0-255 value to [0, 1].
func normByte(v float64) float32 {
	return float32(clamp(v, 0, 255) / 255)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BlendType selects how a sprite is composited onto the target.
type BlendType uint8

const (
	BlendNormal      BlendType = iota // source-over
	BlendAddition                     // dst + src
	BlendSubtraction                  // dst - src
)

// ParseBlendType converts an integer blend code. Unknown values fall back to
// BlendNormal.
func ParseBlendType(v int) BlendType {
	switch v {
	case int(BlendAddition):
		return BlendAddition
	case int(BlendSubtraction):
		return BlendSubtraction
	default:
		return BlendNormal
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendType.
// Ebitengine uses premultiplied alpha, so the source factor is One where a
// straight-alpha pipeline would use SrcAlpha.
func (b BlendType) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAddition:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendSubtraction:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// ShaderTier identifies one of the three sprite shader programs, cheapest
// first.
type ShaderTier uint8

const (
	ShaderSimple ShaderTier = iota // position + texture only
	ShaderAlpha                    // uniform opacity
	ShaderEffect                   // color, tone, flash, bush depth
	shaderTierCount
)

func (t ShaderTier) String() string {
	switch t {
	case ShaderSimple:
		return "simple"
	case ShaderAlpha:
		return "alpha"
	case ShaderEffect:
		return "effect"
	default:
		return fmt.Sprintf("ShaderTier(%d)", uint8(t))
	}
}

// CompatLevel selects legacy attribute behaviors.
type CompatLevel uint8

const (
	// CompatVX re-partitions wave chunks when the sprite moves or zooms,
	// keeping chunk boundaries aligned to the screen grid.
	CompatVX CompatLevel = iota
	// CompatXP only rebuilds wave geometry on wave, rect, mirror and
	// vertical-zoom changes.
	CompatXP
)

// SpriteEventType identifies a sprite lifecycle event.
type SpriteEventType uint8

const (
	EventSpriteCreated  SpriteEventType = iota // fires from Scene.NewSprite
	EventSpriteReleased                        // fires from Sprite.Release
	EventFlashEnded                            // fires when a flash runs out
)
