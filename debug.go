package bramble

import (
	"fmt"
	"log/slog"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	prepareTime   time.Duration
	drawTime      time.Duration
	spriteCount   int
	visibleCount  int
	drawCallCount int
	tiers         [shaderTierCount]int
}

// debugLog reports frame stats on the package logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("bramble: frame",
		slog.Duration("prepare", stats.prepareTime),
		slog.Duration("draw", stats.drawTime),
		slog.Int("sprites", stats.spriteCount),
		slog.Int("visible", stats.visibleCount),
		slog.Int("drawCalls", stats.drawCallCount),
		slog.Int(ShaderSimple.String(), stats.tiers[ShaderSimple]),
		slog.Int(ShaderAlpha.String(), stats.tiers[ShaderAlpha]),
		slog.Int(ShaderEffect.String(), stats.tiers[ShaderEffect]),
	)
}

// debugCheckDisposed panics with a descriptive message when a released
// sprite is used. Only called in debug mode.
func debugCheckDisposed(sp *Sprite, op string) {
	if sp.disposed {
		panic(fmt.Sprintf("bramble debug: %s on released sprite (ID %d)", op, sp.ID))
	}
}

// countVisible counts sprites that passed the last visibility pass.
func countVisible(sprites []*Sprite) int {
	n := 0
	for _, sp := range sprites {
		if sp.visible {
			n++
		}
	}
	return n
}
