package bramble

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader sources ---
// All shaders use //kage:unit pixels. Ebitengine hands shaders premultiplied
// colors; the effect shader un-premultiplies before processing and
// re-premultiplies its output.

const alphaSpriteShaderSrc = `//kage:unit pixels
package main

var Opacity float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	return imageSrc0At(src) * Opacity
}
`

const spriteShaderSrc = `//kage:unit pixels
package main

var Color vec4
var Tone vec4
var Opacity float
var BushDepth float
var BushOpacity float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	rgb := c.rgb
	if c.a > 0 {
		rgb /= c.a
	}

	// Tone: desaturate toward luminance, then shift.
	luma := dot(rgb, vec3(0.299, 0.587, 0.114))
	rgb = mix(rgb, vec3(luma), Tone.a)
	rgb += Tone.rgb

	a := c.a * Opacity

	// Color overlay; alpha is the blend strength.
	rgb = mix(rgb, Color.rgb, Color.a)

	// Texels below the bush line take the bush opacity.
	texY := (src.y - imageSrc0Origin().y) / imageSrc0Size().y
	aboveBush := 0.0
	if texY < BushDepth {
		aboveBush = 1.0
	}
	a *= clamp(BushOpacity+aboveBush, 0.0, 1.0)

	rgb = clamp(rgb, vec3(0), vec3(1))
	return vec4(rgb*a, a)
}
`

// compileShader compiles a Kage source, wrapping failures in
// ErrShaderCompile.
func compileShader(name, src string) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShaderCompile, name, err)
	}
	return s, nil
}

// ebitenShader is the plain tier: Ebitengine's built-in textured pipeline.
type ebitenShader struct {
	r        *EbitenRenderer
	tier     ShaderTier
	program  *ebiten.Shader // nil for the built-in pipeline
	uniforms map[string]any
	matrix   [6]float64
	viewport IntRect
}

func (sh *ebitenShader) Bind()                    { sh.r.current = sh }
func (sh *ebitenShader) SetMatrix(m [6]float64)   { sh.matrix = m }
func (sh *ebitenShader) SetProjection(vp IntRect) { sh.viewport = vp }

// alphaShader scales the whole sprite by a uniform opacity.
type alphaShader struct {
	ebitenShader
}

func (sh *alphaShader) SetAlpha(a float32) {
	sh.uniforms["Opacity"] = a
}

// effectShader applies color, tone, opacity and the bush band.
type effectShader struct {
	ebitenShader
	color [4]float32
	tone  [4]float32
}

func (sh *effectShader) SetEffects(p EffectParams) {
	sh.color = p.Color
	sh.tone = p.Tone
	sh.uniforms["Color"] = sh.color[:]
	sh.uniforms["Tone"] = sh.tone[:]
	sh.uniforms["Opacity"] = p.Opacity
	sh.uniforms["BushDepth"] = p.BushDepth
	sh.uniforms["BushOpacity"] = p.BushOpacity
}
