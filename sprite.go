package bramble

// spriteIDCounter is a plain counter (no atomic, bramble is single-threaded).
var spriteIDCounter uint32

func nextSpriteID() uint32 {
	spriteIDCounter++
	return spriteIDCounter
}

// Sprite draws a rectangle of a shared Bitmap with a transform, overlays,
// blending and the wave deformation. Sprites are created and owned by a
// Scene; call Release when done.
//
// All mutation happens on the rendering goroutine. Setters that affect
// geometry mark it dirty, and the scene resolves dirty state in the prepare
// phase before any sprite draws.
type Sprite struct {
	ID uint32

	scene  *Scene
	bitmap *Bitmap
	quad   *QuadBatch
	trans  Transform

	srcRect     IntRect
	mirrored    bool
	bushDepth   int
	efBushDepth float32
	bushOpacity int
	opacity     int
	blendType   BlendType
	color       Color
	tone        Tone
	z           int

	// Viewport rectangle (size only, at 0,0) and scroll origin.
	sceneRect IntRect
	sceneOrig Vec2

	// Would this sprite be visible on the screen if drawn?
	visible bool

	wave   wave
	flash  flash
	compat CompatLevel

	disposed bool
}

func newSprite(s *Scene) *Sprite {
	sp := &Sprite{
		ID:          nextSpriteID(),
		scene:       s,
		quad:        NewQuadBatch(1),
		trans:       NewTransform(),
		bushOpacity: 128,
		opacity:     255,
		wave:        newWave(),
	}
	if s != nil {
		sp.compat = s.compat
		sp.onGeometryChange(s.geometry)
	}
	return sp
}

// dead reports whether the sprite is released. In debug mode a released
// sprite access panics instead.
func (sp *Sprite) dead(op string) bool {
	if !sp.disposed {
		return false
	}
	if globalDebug {
		debugCheckDisposed(sp, op)
	}
	return true
}

// Err returns ErrDisposed once the sprite has been released.
func (sp *Sprite) Err() error {
	if sp.disposed {
		return ErrDisposed
	}
	return nil
}

// IsDisposed reports whether Release has been called.
func (sp *Sprite) IsDisposed() bool {
	return sp.disposed
}

// Release detaches the sprite from its scene and frees its geometry. The
// bitmap is not disposed. Safe to call more than once.
func (sp *Sprite) Release() {
	if sp.disposed {
		return
	}
	if sp.scene != nil {
		sp.scene.detach(sp)
	}
	sp.disposed = true
	sp.visible = false
	sp.bitmap = nil
	sp.quad.Release()
	sp.wave.batch.Release()
	sp.wave.active = false
	sp.wave.dirty = false
}

// --- Bitmap & source rectangle ---

// Bitmap returns the bound bitmap, or nil.
func (sp *Sprite) Bitmap() *Bitmap { return sp.bitmap }

// SetBitmap binds a bitmap and resets the source rectangle to its full
// extent. Binding nil or a disposed bitmap keeps the current geometry.
func (sp *Sprite) SetBitmap(b *Bitmap) {
	if sp.dead("SetBitmap") || sp.bitmap == b {
		return
	}
	sp.bitmap = b
	if nullOrDisposed(b) {
		return
	}
	sp.srcRect = b.Rect()
	sp.onSrcRectChange()
}

// SrcRect returns the source rectangle.
func (sp *Sprite) SrcRect() IntRect { return sp.srcRect }

// SetSrcRect sets the rectangle of the bitmap to draw. While a bitmap is
// bound the size is clamped so the rectangle stays inside it.
func (sp *Sprite) SetSrcRect(r IntRect) {
	if sp.dead("SetSrcRect") {
		return
	}
	r = sp.clampSrcRect(r)
	if r == sp.srcRect {
		return
	}
	sp.srcRect = r
	sp.onSrcRectChange()
}

func (sp *Sprite) clampSrcRect(r IntRect) IntRect {
	var bw, bh int
	if !nullOrDisposed(sp.bitmap) {
		bw, bh = sp.bitmap.Width(), sp.bitmap.Height()
		r.Width = clamp(r.Width, 0, max(bw-r.X, 0))
		r.Height = clamp(r.Height, 0, max(bh-r.Y, 0))
		return r
	}
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}

// onSrcRectChange rebuilds everything derived from the source rectangle.
func (sp *Sprite) onSrcRectChange() {
	tex := sp.srcRect.ToRect()
	pos := Rect{Width: tex.Width, Height: tex.Height}
	if sp.mirrored {
		tex = tex.HFlipped()
	}
	sp.quad.SetQuad(0, tex, pos)
	sp.quad.Commit()
	sp.recomputeBushDepth()
	sp.wave.dirty = true
}

// Width returns the source rectangle width.
func (sp *Sprite) Width() int { return sp.srcRect.Width }

// Height returns the source rectangle height.
func (sp *Sprite) Height() int { return sp.srcRect.Height }

// --- Transform ---

// X returns the horizontal position.
func (sp *Sprite) X() int { return int(sp.trans.Position().X) }

// Y returns the vertical position.
func (sp *Sprite) Y() int { return int(sp.trans.Position().Y) }

// OX returns the horizontal origin.
func (sp *Sprite) OX() int { return int(sp.trans.Origin().X) }

// OY returns the vertical origin.
func (sp *Sprite) OY() int { return int(sp.trans.Origin().Y) }

// ZoomX returns the horizontal scale.
func (sp *Sprite) ZoomX() float64 { return sp.trans.Scale().X }

// ZoomY returns the vertical scale.
func (sp *Sprite) ZoomY() float64 { return sp.trans.Scale().Y }

// Angle returns the rotation in degrees, counter-clockwise.
func (sp *Sprite) Angle() float64 { return sp.trans.Rotation() }

// Matrix returns the sprite's composed transform.
func (sp *Sprite) Matrix() [6]float64 { return sp.trans.Matrix() }

// SetX sets the horizontal position.
func (sp *Sprite) SetX(v int) {
	if sp.dead("SetX") {
		return
	}
	p := sp.trans.Position()
	if sp.trans.SetPosition(Vec2{float64(v), p.Y}) && sp.compat == CompatVX {
		sp.wave.dirty = true
	}
}

// SetY sets the vertical position.
func (sp *Sprite) SetY(v int) {
	if sp.dead("SetY") {
		return
	}
	p := sp.trans.Position()
	if sp.trans.SetPosition(Vec2{p.X, float64(v)}) && sp.compat == CompatVX {
		sp.wave.dirty = true
	}
}

// SetPosition sets both coordinates.
func (sp *Sprite) SetPosition(x, y int) {
	sp.SetX(x)
	sp.SetY(y)
}

// SetOX sets the horizontal origin.
func (sp *Sprite) SetOX(v int) {
	if sp.dead("SetOX") {
		return
	}
	o := sp.trans.Origin()
	sp.trans.SetOrigin(Vec2{float64(v), o.Y})
}

// SetOY sets the vertical origin.
func (sp *Sprite) SetOY(v int) {
	if sp.dead("SetOY") {
		return
	}
	o := sp.trans.Origin()
	sp.trans.SetOrigin(Vec2{o.X, float64(v)})
}

// SetZoomX sets the horizontal scale.
func (sp *Sprite) SetZoomX(v float64) {
	if sp.dead("SetZoomX") {
		return
	}
	s := sp.trans.Scale()
	if sp.trans.SetScale(Vec2{v, s.Y}) && sp.compat == CompatVX {
		sp.wave.dirty = true
	}
}

// SetZoomY sets the vertical scale.
func (sp *Sprite) SetZoomY(v float64) {
	if sp.dead("SetZoomY") {
		return
	}
	s := sp.trans.Scale()
	if !sp.trans.SetScale(Vec2{s.X, v}) {
		return
	}
	sp.recomputeBushDepth()
	sp.wave.dirty = true
}

// SetAngle sets the rotation in degrees, counter-clockwise.
func (sp *Sprite) SetAngle(v float64) {
	if sp.dead("SetAngle") {
		return
	}
	sp.trans.SetRotation(v)
}

// Mirror reports whether the sprite is flipped horizontally.
func (sp *Sprite) Mirror() bool { return sp.mirrored }

// SetMirror flips the sprite horizontally.
func (sp *Sprite) SetMirror(v bool) {
	if sp.dead("SetMirror") || sp.mirrored == v {
		return
	}
	sp.mirrored = v
	sp.onSrcRectChange()
}

// Z returns the draw order key; higher draws later.
func (sp *Sprite) Z() int { return sp.z }

// SetZ sets the draw order key.
func (sp *Sprite) SetZ(z int) {
	if sp.dead("SetZ") || sp.z == z {
		return
	}
	sp.z = z
	if sp.scene != nil {
		sp.scene.sorted = false
	}
}

// --- Bush ---

// BushDepth returns the height in pixels of the translucent band at the
// sprite's bottom.
func (sp *Sprite) BushDepth() int { return sp.bushDepth }

// SetBushDepth sets the bush band height in unscaled pixels.
func (sp *Sprite) SetBushDepth(v int) {
	if sp.dead("SetBushDepth") || sp.bushDepth == v {
		return
	}
	sp.bushDepth = v
	sp.recomputeBushDepth()
}

// BushOpacity returns the bush band opacity (0-255).
func (sp *Sprite) BushOpacity() int { return sp.bushOpacity }

// SetBushOpacity sets the bush band opacity, clamped to 0-255.
func (sp *Sprite) SetBushOpacity(v int) {
	if sp.dead("SetBushOpacity") {
		return
	}
	sp.bushOpacity = clamp(v, 0, 255)
}

// EffectiveBushDepth returns the normalized texture-space y at which the bush
// band starts.
func (sp *Sprite) EffectiveBushDepth() float32 { return sp.efBushDepth }

// recomputeBushDepth converts the pixel bush depth into a fraction of the
// bitmap height, accounting for vertical zoom and the source rectangle.
func (sp *Sprite) recomputeBushDepth() {
	if nullOrDisposed(sp.bitmap) {
		return
	}
	h := float64(sp.bitmap.Height())
	zoomY := sp.trans.Scale().Y
	if h == 0 || zoomY == 0 {
		sp.efBushDepth = 1
		return
	}
	texBushDepth := float64(sp.bushDepth)/zoomY - float64(sp.srcRect.Y+sp.srcRect.Height) + h
	sp.efBushDepth = float32(1 - texBushDepth/h)
}

// --- Overlays & blending ---

// Opacity returns the sprite opacity (0-255).
func (sp *Sprite) Opacity() int { return sp.opacity }

// SetOpacity sets the sprite opacity, clamped to 0-255.
func (sp *Sprite) SetOpacity(v int) {
	if sp.dead("SetOpacity") {
		return
	}
	sp.opacity = clamp(v, 0, 255)
}

// BlendType returns the blend mode.
func (sp *Sprite) BlendType() BlendType { return sp.blendType }

// SetBlendType sets the blend mode. Unknown values fall back to BlendNormal.
func (sp *Sprite) SetBlendType(b BlendType) {
	if sp.dead("SetBlendType") {
		return
	}
	sp.blendType = ParseBlendType(int(b))
}

// Color returns the color overlay.
func (sp *Sprite) Color() Color { return sp.color }

// SetColor sets the color overlay; alpha is the blend strength.
func (sp *Sprite) SetColor(c Color) {
	if sp.dead("SetColor") {
		return
	}
	sp.color = NewColor(c.R, c.G, c.B, c.A)
}

// Tone returns the tone adjustment.
func (sp *Sprite) Tone() Tone { return sp.tone }

// SetTone sets the tone adjustment.
func (sp *Sprite) SetTone(t Tone) {
	if sp.dead("SetTone") {
		return
	}
	sp.tone = NewTone(t.R, t.G, t.B, t.Gray)
}

// Flash overlays c for duration update ticks, fading it out linearly. A nil
// color hides the sprite for the duration instead.
func (sp *Sprite) Flash(c *Color, duration int) {
	if sp.dead("Flash") {
		return
	}
	if c != nil {
		n := NewColor(c.R, c.G, c.B, c.A)
		c = &n
	}
	sp.flash.start(c, duration)
}

// Flashing reports whether a flash is in progress.
func (sp *Sprite) Flashing() bool { return sp.flash.flashing }

// --- Wave ---

// WaveAmp returns the wave amplitude in pixels.
func (sp *Sprite) WaveAmp() int { return sp.wave.amp }

// WaveLength returns the wave period in pixels.
func (sp *Sprite) WaveLength() int { return sp.wave.length }

// WaveSpeed returns the phase speed; each update adds speed/180 degrees.
func (sp *Sprite) WaveSpeed() float64 { return sp.wave.speed }

// WavePhase returns the phase in degrees.
func (sp *Sprite) WavePhase() float64 { return sp.wave.phase }

// WaveMode returns the wave mode.
func (sp *Sprite) WaveMode() int { return sp.wave.mode }

// WaveSize returns the chunk size in pixels.
func (sp *Sprite) WaveSize() int { return sp.wave.size }

// WaveActive reports whether the last prepare produced wave geometry.
func (sp *Sprite) WaveActive() bool { return sp.wave.active }

// WaveBatch returns the committed wave geometry.
func (sp *Sprite) WaveBatch() *QuadBatch { return sp.wave.batch }

// SetWaveAmp sets the amplitude. Zero disables the wave.
func (sp *Sprite) SetWaveAmp(v int) {
	if sp.dead("SetWaveAmp") || sp.wave.amp == v {
		return
	}
	sp.wave.amp = v
	sp.wave.dirty = true
}

// SetWaveLength sets the wave period in pixels.
func (sp *Sprite) SetWaveLength(v int) {
	if sp.dead("SetWaveLength") || sp.wave.length == v {
		return
	}
	sp.wave.length = v
	sp.wave.dirty = true
}

// SetWaveSpeed sets the phase speed. Geometry is unaffected until the next
// Update advances the phase.
func (sp *Sprite) SetWaveSpeed(v float64) {
	if sp.dead("SetWaveSpeed") {
		return
	}
	sp.wave.speed = v
}

// SetWavePhase sets the phase in degrees.
func (sp *Sprite) SetWavePhase(v float64) {
	if sp.dead("SetWavePhase") || sp.wave.phase == v {
		return
	}
	sp.wave.phase = v
	sp.wave.dirty = true
}

// SetWaveMode selects the deformation variant (see the Wave* constants).
func (sp *Sprite) SetWaveMode(v int) {
	if sp.dead("SetWaveMode") || sp.wave.mode == v {
		return
	}
	sp.wave.mode = v
	sp.wave.dirty = true
}

// SetWaveSize sets the chunk size in screen pixels.
func (sp *Sprite) SetWaveSize(v int) {
	if sp.dead("SetWaveSize") || sp.wave.size == v {
		return
	}
	sp.wave.size = v
	sp.wave.dirty = true
}

// --- Frame protocol ---

// Visible reports the result of the last visibility pass.
func (sp *Sprite) Visible() bool { return sp.visible }

// Update advances the sprite by one tick: the flash fades and the wave phase
// moves by speed/180 degrees.
func (sp *Sprite) Update() {
	if sp.dead("Update") {
		return
	}
	if sp.flash.update() && sp.scene != nil {
		sp.scene.emit(SpriteEvent{Type: EventFlashEnded, SpriteID: sp.ID})
	}
	sp.wave.phase += sp.wave.speed / 180
	sp.wave.dirty = true
}

// prepare resolves dirty wave geometry and refreshes visibility. Called once
// per frame before any sprite draws.
func (sp *Sprite) prepare() {
	if sp.disposed {
		return
	}
	if sp.wave.dirty {
		sp.updateWave()
		sp.wave.dirty = false
	}
	sp.updateVisibility()
}

func (sp *Sprite) updateWave() {
	if nullOrDisposed(sp.bitmap) {
		return
	}
	sp.wave.rebuild(waveInput{
		src:      sp.srcRect,
		zoom:     sp.trans.Scale(),
		position: sp.trans.Position(),
		mirrored: sp.mirrored,
	})
}

func (sp *Sprite) updateVisibility() {
	sp.visible = false

	if nullOrDisposed(sp.bitmap) || sp.opacity == 0 {
		return
	}

	// Skip the wave bounding box; it is costlier than drawing.
	if sp.wave.active {
		sp.visible = true
		return
	}

	// Zoomed or rotated sprites opt out of culling.
	scale := sp.trans.Scale()
	if scale.X != 1 || scale.Y != 1 || sp.trans.Rotation() != 0 {
		sp.visible = true
		return
	}

	pos, orig := sp.trans.Position(), sp.trans.Origin()
	self := IntRect{
		X:      int(pos.X) - (int(orig.X) + int(sp.sceneOrig.X)),
		Y:      int(pos.Y) - (int(orig.Y) + int(sp.sceneOrig.Y)),
		Width:  sp.bitmap.Width(),
		Height: sp.bitmap.Height(),
	}
	sp.visible = self.Intersects(sp.sceneRect)
}

// shaderState snapshots the attributes shader selection depends on.
func (sp *Sprite) shaderState() shaderState {
	return shaderState{
		opacity:   sp.opacity,
		color:     sp.color,
		tone:      sp.tone,
		flashing:  sp.flash.flashing,
		bushDepth: sp.bushDepth,
	}
}

// Draw issues the sprite's geometry through rc. Invisible sprites, sprites
// hidden by an empty flash, and sprites whose bitmap went away are skipped.
func (sp *Sprite) Draw(rc *RenderContext) {
	if sp.disposed || !sp.visible || sp.flash.empty {
		return
	}
	if nullOrDisposed(sp.bitmap) {
		return
	}

	tier := selectShaderTier(sp.shaderState())
	sh := rc.Renderer.Shader(tier)
	sh.Bind()
	sh.SetMatrix(sp.trans.Matrix())
	sh.SetProjection(rc.Viewport)

	switch tier {
	case ShaderEffect:
		if es, ok := sh.(EffectShader); ok {
			es.SetEffects(EffectParams{
				Color:       sp.flash.overlay(sp.color).Norm(),
				Tone:        sp.tone.Norm(),
				Opacity:     normByte(float64(sp.opacity)),
				BushDepth:   sp.efBushDepth,
				BushOpacity: normByte(float64(sp.bushOpacity)),
			})
		}
	case ShaderAlpha:
		if as, ok := sh.(AlphaShader); ok {
			as.SetAlpha(normByte(float64(sp.opacity)))
		}
	}

	rc.Blend.Push(sp.blendType)
	rc.Renderer.BindTexture(sp.bitmap)
	if sp.wave.active {
		rc.Renderer.DrawQuads(sp.wave.batch)
	} else {
		rc.Renderer.DrawQuads(sp.quad)
	}
	rc.Blend.Pop()

	rc.drawCalls++
	rc.tiers[tier]++
}

// onGeometryChange applies the hosting viewport's rectangle and origin.
func (sp *Sprite) onGeometryChange(g Geometry) {
	sp.trans.SetGlobalOffset(g.Offset())
	sp.sceneRect = IntRect{Width: g.Rect.Width, Height: g.Rect.Height}
	sp.sceneOrig = g.Origin
}
