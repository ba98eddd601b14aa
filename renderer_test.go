package bramble

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenRendererShaderTiers(t *testing.T) {
	r := newEbitenRenderer(nil, nil)
	if _, ok := r.Shader(ShaderAlpha).(AlphaShader); !ok {
		t.Error("alpha tier should implement AlphaShader")
	}
	if _, ok := r.Shader(ShaderEffect).(EffectShader); !ok {
		t.Error("effect tier should implement EffectShader")
	}
	if _, ok := r.Shader(ShaderSimple).(EffectShader); ok {
		t.Error("simple tier should not take effects")
	}

	r.Shader(ShaderEffect).Bind()
	if r.current.tier != ShaderEffect {
		t.Errorf("bound tier = %v, want effect", r.current.tier)
	}
}

func TestEbitenRendererUniforms(t *testing.T) {
	r := newEbitenRenderer(nil, nil)
	r.Shader(ShaderAlpha).(AlphaShader).SetAlpha(0.5)
	if got := r.alpha.uniforms["Opacity"]; got != float32(0.5) {
		t.Errorf("alpha Opacity = %v", got)
	}

	r.Shader(ShaderEffect).(EffectShader).SetEffects(EffectParams{
		Color:       [4]float32{1, 0, 0, 0.5},
		Tone:        [4]float32{0, 0, 0, 1},
		Opacity:     0.25,
		BushDepth:   0.75,
		BushOpacity: 0.5,
	})
	u := r.effect.uniforms
	if c := u["Color"].([]float32); len(c) != 4 || c[0] != 1 || c[3] != 0.5 {
		t.Errorf("Color = %v", c)
	}
	if tn := u["Tone"].([]float32); tn[3] != 1 {
		t.Errorf("Tone = %v", tn)
	}
	if u["Opacity"] != float32(0.25) || u["BushDepth"] != float32(0.75) || u["BushOpacity"] != float32(0.5) {
		t.Errorf("uniforms = %v", u)
	}
}

func TestEbitenRendererMatrixAndProjection(t *testing.T) {
	r := newEbitenRenderer(nil, nil)
	sh := r.Shader(ShaderSimple)
	sh.SetMatrix([6]float64{2, 0, 0, 2, 5, 5})
	sh.SetProjection(IntRect{Width: 100, Height: 100})
	if r.simple.matrix != [6]float64{2, 0, 0, 2, 5, 5} || r.simple.viewport.Width != 100 {
		t.Errorf("shader state = %+v", r.simple)
	}
}

func TestEbitenRendererDrawWithoutTarget(t *testing.T) {
	r := newEbitenRenderer(nil, nil)
	r.BindTexture(testBitmap(8, 8))
	q := NewQuadBatch(1)
	q.Commit()
	r.DrawQuads(q) // no target, no texture: must not panic
	if len(r.verts) != 0 {
		t.Error("nothing should be transformed without a target")
	}
}

func TestTransformVertices(t *testing.T) {
	src := []ebiten.Vertex{
		{DstX: 0, DstY: 0, SrcX: 1, SrcY: 2, ColorA: 1},
		{DstX: 10, DstY: 5, SrcX: 3, SrcY: 4, ColorA: 1},
	}
	dst := make([]ebiten.Vertex, len(src))
	transformVertices(src, dst, [6]float64{2, 0, 0, 3, 100, 50}, 16, 32)

	if dst[0].DstX != 100 || dst[0].DstY != 50 {
		t.Errorf("v0 = (%v,%v)", dst[0].DstX, dst[0].DstY)
	}
	if dst[1].DstX != 120 || dst[1].DstY != 65 {
		t.Errorf("v1 = (%v,%v)", dst[1].DstX, dst[1].DstY)
	}
	if dst[1].SrcX != 19 || dst[1].SrcY != 36 {
		t.Errorf("v1 src = (%v,%v)", dst[1].SrcX, dst[1].SrcY)
	}
	if dst[1].ColorA != 1 {
		t.Error("vertex color should pass through")
	}
}

func TestBitmapDispose(t *testing.T) {
	b := testBitmap(8, 4)
	if b.Rect() != (IntRect{Width: 8, Height: 4}) {
		t.Errorf("Rect = %+v", b.Rect())
	}
	b.Dispose()
	b.Dispose()
	if !b.IsDisposed() || b.Image() != nil || !nullOrDisposed(b) {
		t.Error("disposed bitmap should be unusable")
	}
	if !nullOrDisposed(nil) {
		t.Error("nil bitmap should count as disposed")
	}
}
