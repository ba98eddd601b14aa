package bramble

import "testing"

func TestWithCompat(t *testing.T) {
	s := NewScene(WithCompat(CompatXP))
	sp := s.NewSprite()
	if sp.compat != CompatXP {
		t.Errorf("sprite compat = %v, want XP", sp.compat)
	}
}

func TestWithGeometry(t *testing.T) {
	g := Geometry{Rect: IntRect{X: 4, Y: 4, Width: 320, Height: 240}}
	s := NewScene(WithGeometry(g))
	if s.Geometry() != g {
		t.Errorf("Geometry = %+v", s.Geometry())
	}
	if off := s.NewSprite().trans.GlobalOffset(); off != (Vec2{4, 4}) {
		t.Errorf("sprite offset = %+v", off)
	}
}

func TestWithDebug(t *testing.T) {
	s := NewScene(WithDebug(true))
	t.Cleanup(func() { s.SetDebugMode(false) })
	if !s.debug || !globalDebug {
		t.Error("WithDebug should enable debug mode")
	}
}

func TestWithEntityStore(t *testing.T) {
	store := &recordingStore{}
	s := NewScene(WithEntityStore(store))
	s.NewSprite()
	if store.count(EventSpriteCreated) != 1 {
		t.Errorf("events = %+v", store.events)
	}
}

func TestOptionsLastWins(t *testing.T) {
	s := NewScene(WithCompat(CompatXP), WithCompat(CompatVX))
	if s.compat != CompatVX {
		t.Errorf("compat = %v, want VX", s.compat)
	}
}
