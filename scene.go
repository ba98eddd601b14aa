package bramble

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, sprite lifecycle events are forwarded to it.
type EntityStore interface {
	EmitEvent(event SpriteEvent)
}

// SpriteEvent carries a sprite lifecycle notification.
type SpriteEvent struct {
	Type     SpriteEventType
	SpriteID uint32
}

// Geometry describes the viewport a scene renders into: its rectangle on the
// screen and its scroll origin.
type Geometry struct {
	Rect   IntRect
	Origin Vec2
}

// Offset returns where scene coordinate (0, 0) lands on the screen.
func (g Geometry) Offset() Vec2 {
	return Vec2{X: float64(g.Rect.X) - g.Origin.X, Y: float64(g.Rect.Y) - g.Origin.Y}
}

const defaultSpriteCap = 256

// Scene owns a set of sprites and runs the two-phase frame: every sprite is
// prepared before any sprite draws.
type Scene struct {
	sprites []*Sprite
	order   []*Sprite // Z-sorted draw order, rebuilt when sorted is false
	sorted  bool

	geometry Geometry
	compat   CompatLevel
	store    EntityStore
	debug    bool

	renderer   *EbitenRenderer // lazily created by Draw
	updateFunc func() error

	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates an empty scene. The default geometry is an empty viewport;
// Draw sizes it to the screen unless WithGeometry or SetGeometry set one.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Scene{
		sprites:       make([]*Sprite, 0, defaultSpriteCap),
		sorted:        true,
		geometry:      o.geometry,
		compat:        o.compat,
		store:         o.store,
		renderer:      o.renderer,
		ScreenshotDir: o.screenshotDir,
	}
	if o.debug {
		s.SetDebugMode(true)
	}
	return s
}

// NewSprite creates a sprite owned by this scene.
func (s *Scene) NewSprite() *Sprite {
	sp := newSprite(s)
	s.sprites = append(s.sprites, sp)
	s.sorted = false
	s.emit(SpriteEvent{Type: EventSpriteCreated, SpriteID: sp.ID})
	return sp
}

// Remove releases sp. It fails if sp belongs to another scene or was already
// released.
func (s *Scene) Remove(sp *Sprite) error {
	if sp.disposed {
		return ErrDisposed
	}
	if sp.scene != s {
		return ErrNotOwned
	}
	sp.Release()
	return nil
}

// detach drops sp from the frame lists. Called from Sprite.Release.
func (s *Scene) detach(sp *Sprite) {
	for i, c := range s.sprites {
		if c == sp {
			copy(s.sprites[i:], s.sprites[i+1:])
			s.sprites[len(s.sprites)-1] = nil
			s.sprites = s.sprites[:len(s.sprites)-1]
			break
		}
	}
	s.sorted = false
	sp.scene = nil
	s.emit(SpriteEvent{Type: EventSpriteReleased, SpriteID: sp.ID})
}

// Sprites returns the live sprites in creation order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Scene) Sprites() []*Sprite {
	return s.sprites
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Geometry returns the current viewport geometry.
func (s *Scene) Geometry() Geometry {
	return s.geometry
}

// SetGeometry moves or resizes the viewport and pushes the change to every
// sprite.
func (s *Scene) SetGeometry(g Geometry) {
	if s.geometry == g {
		return
	}
	s.geometry = g
	for _, sp := range s.sprites {
		sp.onGeometryChange(g)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

func (s *Scene) emit(ev SpriteEvent) {
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, released-sprite
// access panics and per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that sprite
// operations can check it cheaply.
var globalDebug bool

// Update advances every sprite by one tick.
func (s *Scene) Update() {
	// Sprites may release themselves from a flash-ended store callback.
	for i := 0; i < len(s.sprites); i++ {
		sp := s.sprites[i]
		sp.Update()
		if i < len(s.sprites) && s.sprites[i] != sp {
			i--
		}
	}
}

// Draw renders the scene onto screen through the Ebitengine backend. With an
// empty geometry the viewport covers the whole screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.geometry.Rect.Width == 0 && s.geometry.Rect.Height == 0 {
		b := screen.Bounds()
		s.SetGeometry(Geometry{Rect: IntRect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}, Origin: s.geometry.Origin})
	}
	if s.renderer == nil {
		r, err := NewEbitenRenderer()
		if err != nil {
			panic(err)
		}
		s.renderer = r
	}
	s.renderer.SetTarget(screen)
	s.Render(s.renderer)
	s.flushScreenshots(screen)
}

// Render runs the two-phase frame through r: prepare every sprite, then draw
// them in Z order. Returns the number of draw calls issued.
func (s *Scene) Render(r Renderer) int {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for _, sp := range s.sprites {
		sp.prepare()
	}

	if s.debug {
		stats.prepareTime = time.Since(t0)
		t0 = time.Now()
	}

	if !s.sorted {
		s.rebuildOrder()
	}
	rc := NewRenderContext(r, s.geometry.Rect)
	for _, sp := range s.order {
		sp.Draw(rc)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		stats.spriteCount = len(s.sprites)
		stats.visibleCount = countVisible(s.sprites)
		stats.drawCallCount = rc.drawCalls
		stats.tiers = rc.tiers
		s.debugLog(stats)
	}
	return rc.drawCalls
}

// rebuildOrder rebuilds the Z-sorted draw order. Uses insertion sort: zero
// allocations, stable, and O(n) when already sorted.
func (s *Scene) rebuildOrder() {
	n := len(s.sprites)
	if cap(s.order) < n {
		s.order = make([]*Sprite, n)
	}
	s.order = s.order[:n]
	copy(s.order, s.sprites)
	for i := 1; i < n; i++ {
		key := s.order[i]
		j := i - 1
		for j >= 0 && s.order[j].z > key.z {
			s.order[j+1] = s.order[j]
			j--
		}
		s.order[j+1] = key
	}
	s.sorted = true
}

// viewportImage clips target to the viewport rectangle.
func viewportImage(target *ebiten.Image, vp IntRect) *ebiten.Image {
	if vp.Width <= 0 || vp.Height <= 0 {
		return target
	}
	return target.SubImage(image.Rect(vp.X, vp.Y, vp.X+vp.Width, vp.Y+vp.Height)).(*ebiten.Image)
}
