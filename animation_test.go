package bramble

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	g := TweenPosition(sp, 100, 50, 10, ease.Linear)

	g.Update(5)
	if sp.X() != 50 || sp.Y() != 25 {
		t.Errorf("halfway = (%d,%d), want (50,25)", sp.X(), sp.Y())
	}
	if g.Done {
		t.Error("group should not be done halfway")
	}
	g.Update(5)
	if sp.X() != 100 || sp.Y() != 50 || !g.Done {
		t.Errorf("end = (%d,%d) done=%v", sp.X(), sp.Y(), g.Done)
	}
}

func TestTweenOpacityAndAngle(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	op := TweenOpacity(sp, 55, 4, ease.Linear)
	rot := TweenAngle(sp, 90, 4, ease.Linear)
	op.Update(2)
	rot.Update(2)
	if sp.Opacity() != 155 {
		t.Errorf("Opacity = %d, want 155", sp.Opacity())
	}
	assertNear(t, "Angle", sp.Angle(), 45)
}

func TestTweenZoomDirtiesWave(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	sp.prepare()
	g := TweenZoom(sp, 2, 2, 2, ease.Linear)
	g.Update(1)
	assertNear(t, "ZoomY", sp.ZoomY(), 1.5)
	if !sp.wave.dirty {
		t.Error("zoom tween should dirty the wave")
	}
}

func TestTweenColor(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	g := TweenColor(sp, Color{200, 100, 0, 255}, 2, ease.Linear)
	g.Update(2)
	if sp.Color() != (Color{200, 100, 0, 255}) {
		t.Errorf("Color = %+v", sp.Color())
	}
}

func TestTweenWaveAmp(t *testing.T) {
	sp := newTestSprite(newTestScene(), 32, 32)
	g := TweenWaveAmp(sp, 8, 2, ease.Linear)
	g.Update(1)
	if sp.WaveAmp() != 4 {
		t.Errorf("WaveAmp = %d, want 4", sp.WaveAmp())
	}
	sp.prepare()
	if !sp.WaveActive() {
		t.Error("wave should be active")
	}
}

func TestTweenStopsOnRelease(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	g := TweenPosition(sp, 100, 100, 10, ease.Linear)
	sp.Release()
	g.Update(5)
	if !g.Done {
		t.Error("group should stop when the sprite is released")
	}
	if sp.X() != 0 {
		t.Errorf("released sprite moved to %d", sp.X())
	}
}
