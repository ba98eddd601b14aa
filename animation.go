package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 sprite attributes at once. Values go through
// the sprite's setters, so dirty tracking and clamping apply as if the caller
// had set them. If the target sprite is released, the group stops
// immediately.
//
// There is no global animation manager. Callers call Update themselves, in
// whatever unit the duration was given in (ticks or seconds).
type TweenGroup struct {
	tweens [4]*gween.Tween
	apply  [4]func(float64)
	count  int
	target *Sprite
	Done   bool
}

func newTweenGroup(sp *Sprite) *TweenGroup {
	return &TweenGroup{target: sp}
}

func (g *TweenGroup) add(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.apply[g.count] = apply
	g.count++
}

// Update advances all tweens by dt and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates the sprite position. Intermediate values are
// truncated to whole pixels.
func TweenPosition(sp *Sprite, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	g.add(float64(sp.X()), float64(toX), duration, fn, func(v float64) { sp.SetX(int(v)) })
	g.add(float64(sp.Y()), float64(toY), duration, fn, func(v float64) { sp.SetY(int(v)) })
	return g
}

// TweenZoom animates both zoom factors.
func TweenZoom(sp *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	g.add(sp.ZoomX(), toX, duration, fn, sp.SetZoomX)
	g.add(sp.ZoomY(), toY, duration, fn, sp.SetZoomY)
	return g
}

// TweenAngle animates the rotation in degrees.
func TweenAngle(sp *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	g.add(sp.Angle(), to, duration, fn, sp.SetAngle)
	return g
}

// TweenOpacity animates the opacity (0-255).
func TweenOpacity(sp *Sprite, to int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	g.add(float64(sp.Opacity()), float64(to), duration, fn, func(v float64) { sp.SetOpacity(int(v + 0.5)) })
	return g
}

// TweenColor animates all four components of the blend color.
func TweenColor(sp *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	from := sp.Color()
	set := func(f func(c *Color, v float64)) func(float64) {
		return func(v float64) {
			c := sp.Color()
			f(&c, v)
			sp.SetColor(c)
		}
	}
	g.add(from.R, to.R, duration, fn, set(func(c *Color, v float64) { c.R = v }))
	g.add(from.G, to.G, duration, fn, set(func(c *Color, v float64) { c.G = v }))
	g.add(from.B, to.B, duration, fn, set(func(c *Color, v float64) { c.B = v }))
	g.add(from.A, to.A, duration, fn, set(func(c *Color, v float64) { c.A = v }))
	return g
}

// TweenWaveAmp animates the wave amplitude. Intermediate values are rounded
// to whole pixels.
func TweenWaveAmp(sp *Sprite, to int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(sp)
	g.add(float64(sp.WaveAmp()), float64(to), duration, fn, func(v float64) { sp.SetWaveAmp(int(v + 0.5)) })
	return g
}
