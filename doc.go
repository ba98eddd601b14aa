// Package bramble is a 2D sprite renderer for [Ebitengine] modeled on the
// classic RPG Maker sprite: a textured quad with a source rectangle,
// transform, opacity, color and tone overlays, a bush band, blend modes,
// timed flashes, and a wave deformation that slices the sprite into strips
// or grid chunks.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := bramble.NewScene()
//	sp := scene.NewSprite()
//	sp.SetBitmap(bramble.NewBitmapFromImage(img))
//	sp.SetPosition(100, 50)
//	sp.SetWaveAmp(4)
//	bramble.Run(scene, bramble.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Frames
//
// A frame has two phases. [Scene.Render] first prepares every sprite,
// rebuilding dirty wave geometry and visibility, and only then draws the
// visible sprites in Z order. Drawing never mutates sprite state.
//
// Each sprite draws with the cheapest of three programs that can express it:
// a plain textured pass, an opacity-only pass, or the full effect pass for
// color, tone, flash and bush. See [ShaderTier].
//
// # Backends
//
// Sprites draw through the [Renderer] interface. [EbitenRenderer] is the
// Ebitengine implementation; tests and tools can supply their own.
//
// # Key features
//
// Waves in ten modes, flashes, blend modes, screenshots, tweens (via
// [gween]), and ECS integration (via the [Donburi] adapter in bramble/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bramble
