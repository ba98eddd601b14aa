package bramble

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the update rate. Zero keeps Ebitengine's default of 60.
	TPS int
	// Background is the clear color, in 0-255 units.
	Background Color
	// ShowFPS draws the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	Debug   bool
}

// SetUpdateFunc sets a callback run once per tick before the sprites update.
// A non-nil error stops Run and is returned from it.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	bg    color.NRGBA
}

func (g *game) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window closes or the update
// callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("bramble: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{
		scene: scene,
		cfg:   cfg,
		bg: color.NRGBA{
			R: uint8(cfg.Background.R),
			G: uint8(cfg.Background.G),
			B: uint8(cfg.Background.B),
			A: uint8(cfg.Background.A),
		},
	}
	Logger().Info("bramble: run",
		slog.String("title", cfg.Title),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height))
	return ebiten.RunGame(g)
}
