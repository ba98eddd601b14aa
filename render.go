package bramble

// Shader is a bound sprite program. Every tier accepts a transform matrix and
// the viewport projection.
type Shader interface {
	Bind()
	SetMatrix(m [6]float64)
	SetProjection(viewport IntRect)
}

// AlphaShader is implemented by the opacity-only tier.
type AlphaShader interface {
	Shader
	SetAlpha(alpha float32)
}

// EffectShader is implemented by the full-effects tier.
type EffectShader interface {
	Shader
	SetEffects(p EffectParams)
}

// EffectParams are the uniforms of the full-effects tier. Colors are
// normalized; Tone RGB is in [-1, 1].
type EffectParams struct {
	Color       [4]float32
	Tone        [4]float32
	Opacity     float32
	BushDepth   float32 // normalized texture-space y below which the bush band starts
	BushOpacity float32
}

// Renderer is the backend a Sprite draws through.
type Renderer interface {
	// Shader returns the program for tier. It must not return nil.
	Shader(tier ShaderTier) Shader
	SetBlend(b BlendType)
	BindTexture(b *Bitmap)
	// DrawQuads issues one draw call for the committed quads of q.
	DrawQuads(q *QuadBatch)
}

// BlendStack tracks nested blend states and applies the top to a Renderer.
type BlendStack struct {
	r     Renderer
	stack []BlendType
}

// NewBlendStack returns a stack whose base state is BlendNormal.
func NewBlendStack(r Renderer) *BlendStack {
	return &BlendStack{r: r}
}

// Push makes b the current blend state.
func (s *BlendStack) Push(b BlendType) {
	s.stack = append(s.stack, b)
	s.r.SetBlend(b)
}

// Pop restores the previous blend state. Popping an empty stack is a no-op.
func (s *BlendStack) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.r.SetBlend(s.Top())
}

// Top returns the current blend state.
func (s *BlendStack) Top() BlendType {
	if len(s.stack) == 0 {
		return BlendNormal
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of pushed states.
func (s *BlendStack) Depth() int {
	return len(s.stack)
}

// RenderContext is the per-frame state handed to Sprite.Draw in place of
// global render state.
type RenderContext struct {
	Renderer Renderer
	Viewport IntRect
	Blend    *BlendStack

	// Frame stats, filled in as sprites draw.
	drawCalls int
	tiers     [shaderTierCount]int
}

// NewRenderContext returns a context drawing through r into viewport.
func NewRenderContext(r Renderer, viewport IntRect) *RenderContext {
	return &RenderContext{Renderer: r, Viewport: viewport, Blend: NewBlendStack(r)}
}

// DrawCalls returns how many draw calls were issued through this context.
func (rc *RenderContext) DrawCalls() int {
	return rc.drawCalls
}

// shaderState is the attribute snapshot tier selection depends on.
type shaderState struct {
	opacity   int
	color     Color
	tone      Tone
	flashing  bool
	bushDepth int
}

// selectShaderTier picks the cheapest program that can render s.
func selectShaderTier(s shaderState) ShaderTier {
	if s.color.HasEffect() || s.tone.HasEffect() || s.flashing || s.bushDepth != 0 {
		return ShaderEffect
	}
	if s.opacity != 255 {
		return ShaderAlpha
	}
	return ShaderSimple
}
