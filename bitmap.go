package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Bitmap is a texture shared by any number of sprites. Sprites only read it;
// its lifetime belongs to the caller, and sprites tolerate it being disposed
// at any time.
type Bitmap struct {
	image    *ebiten.Image
	width    int
	height   int
	disposed bool
}

// NewBitmap allocates a blank bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		image:  ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// NewBitmapFromImage wraps an existing image. The bitmap takes over the
// image: disposing the bitmap deallocates it.
func NewBitmapFromImage(img *ebiten.Image) *Bitmap {
	b := img.Bounds()
	return &Bitmap{image: img, width: b.Dx(), height: b.Dy()}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Rect returns the full extent of the bitmap.
func (b *Bitmap) Rect() IntRect {
	return IntRect{Width: b.width, Height: b.height}
}

// Image returns the backing texture, or nil once disposed.
func (b *Bitmap) Image() *ebiten.Image {
	if b == nil || b.disposed {
		return nil
	}
	return b.image
}

// Dispose releases the texture. Safe to call more than once.
func (b *Bitmap) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.image != nil {
		b.image.Deallocate()
		b.image = nil
	}
}

// IsDisposed reports whether Dispose has been called.
func (b *Bitmap) IsDisposed() bool {
	return b.disposed
}

// nullOrDisposed reports whether b is absent or no longer usable.
func nullOrDisposed(b *Bitmap) bool {
	return b == nil || b.disposed
}
