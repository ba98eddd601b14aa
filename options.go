package bramble

// SceneOption configures a Scene during creation.
//
// Example:
//
//	scene := bramble.NewScene(
//		bramble.WithCompat(bramble.CompatXP),
//		bramble.WithGeometry(bramble.Geometry{Rect: bramble.IntRect{Width: 640, Height: 480}}),
//	)
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	compat        CompatLevel
	debug         bool
	store         EntityStore
	geometry      Geometry
	renderer      *EbitenRenderer
	screenshotDir string
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		compat:        CompatVX,
		screenshotDir: "screenshots",
	}
}

// WithCompat selects legacy attribute behaviors for sprites created by the
// scene.
func WithCompat(level CompatLevel) SceneOption {
	return func(o *sceneOptions) {
		o.compat = level
	}
}

// WithDebug starts the scene in debug mode (see Scene.SetDebugMode).
func WithDebug(enabled bool) SceneOption {
	return func(o *sceneOptions) {
		o.debug = enabled
	}
}

// WithEntityStore forwards sprite lifecycle events to store.
func WithEntityStore(store EntityStore) SceneOption {
	return func(o *sceneOptions) {
		o.store = store
	}
}

// WithGeometry sets the initial viewport geometry.
func WithGeometry(g Geometry) SceneOption {
	return func(o *sceneOptions) {
		o.geometry = g
	}
}

// WithRenderer makes Draw use r instead of creating its own backend. Useful
// to share compiled shaders between scenes.
func WithRenderer(r *EbitenRenderer) SceneOption {
	return func(o *sceneOptions) {
		o.renderer = r
	}
}

// WithScreenshotDir sets where Screenshot writes PNG files.
func WithScreenshotDir(dir string) SceneOption {
	return func(o *sceneOptions) {
		o.screenshotDir = dir
	}
}
