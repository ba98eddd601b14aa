package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash is a timed color overlay that fades out over a number of update
// ticks. A flash without a color hides its sprite for the duration instead.
type flash struct {
	flashing bool
	empty    bool // hide the sprite while flashing
	color    Color
	duration int
	counter  int
	fade     *gween.Tween
}

// start begins a flash. A nil color starts an empty (hiding) flash.
// Durations below one tick are ignored.
func (f *flash) start(c *Color, duration int) {
	if duration < 1 {
		return
	}
	f.flashing = true
	f.duration = duration
	f.counter = 0
	if c == nil {
		f.empty = true
		f.fade = nil
		return
	}
	f.empty = false
	f.color = *c
	f.fade = gween.New(float32(c.A), 0, float32(duration), ease.Linear)
}

// update advances the flash by one tick. Reports whether the flash ended on
// this tick.
func (f *flash) update() bool {
	if !f.flashing {
		return false
	}
	f.counter++
	if f.counter > f.duration {
		f.flashing = false
		f.empty = false
		f.fade = nil
		return true
	}
	if f.fade != nil {
		a, _ := f.fade.Update(1)
		f.color.A = float64(a)
	}
	return false
}

// overlay returns the color to blend when both the flash and the sprite
// color are set: whichever has the higher alpha wins.
func (f *flash) overlay(spriteColor Color) Color {
	if f.flashing && !f.empty && f.color.A > spriteColor.A {
		return f.color
	}
	return spriteColor
}
