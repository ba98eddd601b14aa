package bramble

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer is the Ebitengine implementation of Renderer. The simple
// tier uses the built-in textured pipeline; the alpha and effect tiers run
// Kage programs compiled once at construction.
type EbitenRenderer struct {
	target  *ebiten.Image
	texture *ebiten.Image
	blend   BlendType
	current *ebitenShader

	simple *ebitenShader
	alpha  *alphaShader
	effect *effectShader

	verts    []ebiten.Vertex // transformed vertex scratch, high-water mark
	trisOp   ebiten.DrawTrianglesOptions
	shaderOp ebiten.DrawTrianglesShaderOptions
}

// NewEbitenRenderer compiles the sprite programs. Errors wrap
// ErrShaderCompile.
func NewEbitenRenderer() (*EbitenRenderer, error) {
	alphaProg, err := compileShader("alpha", alphaSpriteShaderSrc)
	if err != nil {
		return nil, err
	}
	effectProg, err := compileShader("effect", spriteShaderSrc)
	if err != nil {
		alphaProg.Deallocate()
		return nil, err
	}

	Logger().Info("bramble: renderer ready", slog.Int("programs", 2))
	return newEbitenRenderer(alphaProg, effectProg), nil
}

func newEbitenRenderer(alphaProg, effectProg *ebiten.Shader) *EbitenRenderer {
	r := &EbitenRenderer{}
	r.simple = &ebitenShader{r: r, tier: ShaderSimple}
	r.alpha = &alphaShader{ebitenShader{r: r, tier: ShaderAlpha, program: alphaProg, uniforms: map[string]any{"Opacity": float32(1)}}}
	r.effect = &effectShader{ebitenShader: ebitenShader{r: r, tier: ShaderEffect, program: effectProg, uniforms: make(map[string]any, 5)}}
	r.effect.SetEffects(EffectParams{Opacity: 1, BushOpacity: 1})
	r.current = r.simple
	return r
}

// SetTarget sets the image subsequent draws land on.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Shader returns the program for tier.
func (r *EbitenRenderer) Shader(tier ShaderTier) Shader {
	switch tier {
	case ShaderAlpha:
		return r.alpha
	case ShaderEffect:
		return r.effect
	default:
		return r.simple
	}
}

// SetBlend sets the blend state of subsequent draws.
func (r *EbitenRenderer) SetBlend(b BlendType) {
	r.blend = b
}

// BindTexture sets the texture of subsequent draws. A disposed bitmap binds
// nothing, and draws are skipped until another texture is bound.
func (r *EbitenRenderer) BindTexture(b *Bitmap) {
	r.texture = b.Image()
}

// DrawQuads draws the committed quads of q with the bound program, matrix,
// texture and blend state.
func (r *EbitenRenderer) DrawQuads(q *QuadBatch) {
	if r.target == nil || r.texture == nil {
		return
	}
	src, indices := q.Committed()
	if len(indices) == 0 {
		return
	}
	sh := r.current
	if cap(r.verts) < len(src) {
		r.verts = make([]ebiten.Vertex, len(src))
	}
	r.verts = r.verts[:len(src)]
	tb := r.texture.Bounds()
	transformVertices(src, r.verts, sh.matrix, float32(tb.Min.X), float32(tb.Min.Y))

	dst := viewportImage(r.target, sh.viewport)
	if sh.program == nil {
		r.trisOp.Blend = r.blend.EbitenBlend()
		dst.DrawTriangles(r.verts, indices, r.texture, &r.trisOp)
		return
	}
	r.shaderOp.Blend = r.blend.EbitenBlend()
	r.shaderOp.Uniforms = sh.uniforms
	r.shaderOp.Images[0] = r.texture
	dst.DrawTrianglesShader(r.verts, indices, sh.program, &r.shaderOp)
	r.shaderOp.Images[0] = nil
}

// Dispose releases the compiled programs.
func (r *EbitenRenderer) Dispose() {
	for _, p := range []*ebiten.Shader{r.alpha.program, r.effect.program} {
		if p != nil {
			p.Deallocate()
		}
	}
}

// transformVertices writes src transformed by m into dst. Texture coordinates
// are shifted by the texture's origin so sub-image bitmaps sample correctly.
func transformVertices(src, dst []ebiten.Vertex, m [6]float64, srcOX, srcOY float32) {
	for i := range src {
		s := &src[i]
		x, y := transformPoint(m, float64(s.DstX), float64(s.DstY))
		dst[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   s.SrcX + srcOX,
			SrcY:   s.SrcY + srcOY,
			ColorR: s.ColorR,
			ColorG: s.ColorG,
			ColorB: s.ColorB,
			ColorA: s.ColorA,
		}
	}
}
