package bramble

import (
	"strings"
	"testing"
)

func TestDebugCheckDisposedMessage(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	sp.Release()

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "SetOpacity on released sprite") {
			t.Errorf("panic = %v", r)
		}
	}()
	debugCheckDisposed(sp, "SetOpacity")
}

func TestDebugCheckDisposedLive(t *testing.T) {
	sp := newTestSprite(newTestScene(), 8, 8)
	debugCheckDisposed(sp, "SetX") // must not panic
}

func TestCountVisible(t *testing.T) {
	s := newTestScene()
	newTestSprite(s, 8, 8)
	off := newTestSprite(s, 8, 8)
	off.SetPosition(-50, 0)
	s.NewSprite()
	s.Render(newFakeRenderer())

	if n := countVisible(s.Sprites()); n != 1 {
		t.Errorf("countVisible = %d, want 1", n)
	}
}
