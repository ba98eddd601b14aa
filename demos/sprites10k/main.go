// sprites10k spawns 10,000 sprites that rotate, zoom, fade, tint and bounce
// around the screen simultaneously; every eighth one also waves. A stress
// test for the bramble rendering pipeline and its shader tiers.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bramble"
)

const (
	screenW  = 1280
	screenH  = 720
	count    = 10_000
	tileSize = 64
)

type mover struct {
	sp         *bramble.Sprite
	x, y       float64
	dx, dy     float64
	rotSpeed   float64
	zoomSpeed  float64
	zoomBase   float64
	zoomAmp    float64
	alphaSpeed float64
	phase      float64
}

func main() {
	img := ebiten.NewImage(tileSize, tileSize)
	img.Fill(color.RGBA{0xe0, 0x7a, 0x5f, 0xff})
	bmp := bramble.NewBitmapFromImage(img)

	scene := bramble.NewScene()
	movers := make([]mover, count)

	for i := range movers {
		sp := scene.NewSprite()
		sp.SetBitmap(bmp)
		sp.SetOX(tileSize / 2)
		sp.SetOY(tileSize / 2)

		base := 0.15 + rand.Float64()*0.2
		sp.SetZoomX(base)
		sp.SetZoomY(base)

		if i%3 == 0 {
			sp.SetColor(bramble.NewColor(rand.Float64()*255, rand.Float64()*255, rand.Float64()*255, 96))
		}
		if i%8 == 0 {
			sp.SetWaveAmp(2)
			sp.SetWaveSize(4)
		}

		movers[i] = mover{
			sp:         sp,
			x:          rand.Float64() * screenW,
			y:          rand.Float64() * screenH,
			dx:         (rand.Float64() - 0.5) * 4,
			dy:         (rand.Float64() - 0.5) * 4,
			rotSpeed:   (rand.Float64() - 0.5) * 4,
			zoomSpeed:  1 + rand.Float64()*2,
			zoomBase:   base,
			zoomAmp:    0.03 + rand.Float64()*0.07,
			alphaSpeed: 0.5 + rand.Float64()*2,
			phase:      rand.Float64() * math.Pi * 2,
		}
	}

	var frame float64
	scene.SetUpdateFunc(func() error {
		frame++
		t := frame / 60.0

		if frame == 30 {
			scene.Screenshot("thumbnail")
		}

		for i := range movers {
			m := &movers[i]
			m.x += m.dx
			m.y += m.dy
			if m.x < 0 || m.x > screenW {
				m.dx = -m.dx
			}
			if m.y < 0 || m.y > screenH {
				m.dy = -m.dy
			}

			sp := m.sp
			sp.SetPosition(int(m.x), int(m.y))
			sp.SetAngle(sp.Angle() + m.rotSpeed)

			z := m.zoomBase + m.zoomAmp*math.Sin(t*m.zoomSpeed+m.phase)
			sp.SetZoomX(z)
			sp.SetZoomY(z)

			sp.SetOpacity(int(127 + 128*math.Sin(t*m.alphaSpeed+m.phase)))
		}
		return nil
	})

	if err := bramble.Run(scene, bramble.RunConfig{
		Title:      "Bramble - 10k Sprites",
		Width:      screenW,
		Height:     screenH,
		Background: bramble.NewColor(15, 15, 23, 255),
		ShowFPS:    true,
	}); err != nil {
		log.Fatal(err)
	}
}
