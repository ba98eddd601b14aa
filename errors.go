package bramble

import "errors"

var (
	// ErrDisposed is returned when an operation targets a released sprite.
	ErrDisposed = errors.New("bramble: sprite is disposed")
	// ErrNotOwned is returned when a sprite is handed to a scene that does
	// not own it.
	ErrNotOwned = errors.New("bramble: sprite is not owned by this scene")
	// ErrInvalidColor wraps CSS color parse failures.
	ErrInvalidColor = errors.New("bramble: invalid color")
	// ErrShaderCompile wraps Kage compile failures.
	ErrShaderCompile = errors.New("bramble: shader compile failed")
)
