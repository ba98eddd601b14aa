package bramble

import "math"

// Wave modes. Modes 0-3 displace horizontal strips, 4-7 vertical strips, and
// 8 and above split the sprite into a grid for whole-sprite effects. Values
// outside a family's documented set behave like that family's default.
const (
	WaveHorizontal           = 0 // strips shift sideways on screen
	WaveHorizontalRipple     = 1 // strips shift their texture sample vertically
	WaveHorizontalInterlaced = 2 // like 0, alternating direction per strip
	WaveHorizontalRippleAlt  = 3 // like 1, alternating direction per strip
	WaveVertical             = 4 // columns shift vertically on screen
	WaveVerticalRipple       = 5 // columns shift their texture sample sideways
	WaveVerticalInterlaced   = 6 // like 4, alternating direction per column
	WaveVerticalRippleAlt    = 7 // like 5, alternating direction per column
	WaveExplode              = 8 // chunks fly outward from the center
	WaveDrop                 = 9 // chunks sway and fall row by row
)

const (
	defaultWaveLength = 180
	defaultWaveSpeed  = 360
	defaultWaveSize   = 8
)

// wave is the deformation state of a sprite. active is true iff amp != 0
// after the last rebuild; dirty is set by every input change and cleared by
// prepare.
type wave struct {
	amp    int
	length int
	speed  float64
	phase  float64 // degrees
	mode   int
	size   int

	active bool
	dirty  bool
	batch  *QuadBatch

	hspans []chunkSpan
	vspans []chunkSpan
}

func newWave() wave {
	return wave{
		length: defaultWaveLength,
		speed:  defaultWaveSpeed,
		size:   defaultWaveSize,
		batch:  NewQuadBatch(0),
	}
}

// waveInput is the sprite state the partition depends on.
type waveInput struct {
	src      IntRect
	zoom     Vec2
	position Vec2 // screen position used to align chunk boundaries
	mirrored bool
}

// chunkSpan is one strip of the on-screen extent: offset and length in
// screen pixels from the sprite's top (or left) edge. index drives the
// alternating and grid modes: the unaligned first chunk is 0, full chunks
// count from 1, and the trailing remainder shares the last full chunk's index.
type chunkSpan struct {
	offset, length, index int
}

// partitionSpans splits visible screen pixels into an unaligned first chunk
// (screenPos mod size long), full chunks of size, and an unaligned remainder.
func partitionSpans(dst []chunkSpan, screenPos float64, visible, size int) []chunkSpan {
	dst = dst[:0]
	if visible <= 0 {
		return dst
	}
	first := floorMod(int(screenPos), size)
	if first > visible {
		first = visible
	}
	if first > 0 {
		dst = append(dst, chunkSpan{0, first, 0})
	}
	full := (visible - first) / size
	for i := 0; i < full; i++ {
		dst = append(dst, chunkSpan{first + i*size, size, i + 1})
	}
	if last := (visible - first) % size; last > 0 {
		dst = append(dst, chunkSpan{first + full*size, last, full})
	}
	return dst
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func (w *wave) chunkSize() int {
	if w.size < 1 {
		return 1
	}
	return w.size
}

// displacement returns the sinusoidal offset of the chunk starting at
// offset screen pixels along the wave axis.
func (w *wave) displacement(phaseRad float64, offset int) float64 {
	pos := phaseRad
	if w.length != 0 {
		pos += float64(offset) / float64(w.length) * 2 * math.Pi
	}
	return math.Sin(pos) * float64(w.amp)
}

// rebuild recomputes the wave batch from the current state and commits it
// exactly once. Callers guarantee a live bitmap.
func (w *wave) rebuild(in waveInput) {
	if w.amp == 0 {
		w.active = false
		return
	}
	w.active = true

	width, height := in.src.Width, in.src.Height
	if w.amp < -(width / 2) {
		w.batch.Resize(0)
		w.batch.Commit()
		return
	}
	if w.amp < 0 {
		x := -w.amp
		tex := Rect{
			X:      float64(in.src.X + x),
			Y:      float64(in.src.Y),
			Width:  float64(width - 2*x),
			Height: float64(height),
		}
		pos := Rect{X: float64(x), Width: tex.Width, Height: tex.Height}
		if in.mirrored {
			tex = tex.HFlipped()
		}
		w.batch.Resize(1)
		w.batch.SetQuad(0, tex, pos)
		w.batch.Commit()
		return
	}

	zoomX, zoomY := math.Abs(in.zoom.X), math.Abs(in.zoom.Y)
	visibleW := int(float64(width) * zoomX)
	visibleH := int(float64(height) * zoomY)
	size := w.chunkSize()

	switch {
	case w.mode < 4:
		w.vspans = partitionSpans(w.vspans, in.position.Y, visibleH, size)
		w.batch.Resize(len(w.vspans))
		phase := w.phase * math.Pi / 180
		for i, sp := range w.vspans {
			w.emitHorzChunk(i, in, phase, zoomY, sp)
		}
	case w.mode < 8:
		w.hspans = partitionSpans(w.hspans, in.position.X, visibleW, size)
		w.batch.Resize(len(w.hspans))
		phase := w.phase * math.Pi / 180
		spanW := float64(visibleW) / zoomX
		for i, sp := range w.hspans {
			w.emitVertChunk(i, in, phase, zoomX, spanW, sp)
		}
	default:
		w.vspans = partitionSpans(w.vspans, in.position.Y, visibleH, size)
		w.hspans = partitionSpans(w.hspans, in.position.X, visibleW, size)
		tX, tY := len(w.hspans), len(w.vspans)
		w.batch.Resize(tX * tY)
		phase := w.phase / 180
		spanW := float64(visibleW) / zoomX
		for r, row := range w.vspans {
			for c, col := range w.hspans {
				w.emitEffectChunk(r*tX+c, in, phase, zoomX, zoomY, spanW, col, row, tX, tY)
			}
		}
	}
	w.batch.Commit()
}

// emitHorzChunk writes a full-width strip into quad i, displaced along x (or
// sampled with a y offset for the ripple modes).
func (w *wave) emitHorzChunk(i int, in waveInput, phase, zoomY float64, sp chunkSpan) {
	d := w.displacement(phase, sp.offset)

	tex := Rect{
		Y:      float64(sp.offset) / zoomY,
		Width:  float64(in.src.Width),
		Height: float64(sp.length) / zoomY,
	}
	pos := tex
	switch w.mode {
	case WaveHorizontalRipple:
		tex.Y += d
	case WaveHorizontalInterlaced:
		pos.X = alternate(sp.index, d)
	case WaveHorizontalRippleAlt:
		tex.Y += alternate(sp.index, d)
	default:
		pos.X = d
	}
	w.batch.SetQuad(i, sourceTex(tex, in), pos)
}

// emitVertChunk writes a full-height column displaced along y (or sampled
// with an x offset for the ripple modes).
func (w *wave) emitVertChunk(i int, in waveInput, phase, zoomX, spanW float64, sp chunkSpan) {
	d := w.displacement(phase, sp.offset)

	tex := Rect{
		X:      float64(sp.offset) / zoomX,
		Width:  float64(sp.length) / zoomX,
		Height: float64(in.src.Height),
	}
	pos := tex
	if in.mirrored {
		pos.X = spanW - pos.X - pos.Width
	}
	switch w.mode {
	case WaveVerticalRipple:
		tex.X += d
	case WaveVerticalInterlaced:
		pos.Y = alternate(sp.index, d)
	case WaveVerticalRippleAlt:
		tex.X += alternate(sp.index, d)
	default:
		pos.Y = d
	}
	w.batch.SetQuad(i, sourceTex(tex, in), pos)
}

// emitEffectChunk writes the grid chunk at col and row of a tX by tY grid
// into quad i. phase is the wave phase as a fraction of 180 degrees.
func (w *wave) emitEffectChunk(i int, in waveInput, phase, zoomX, zoomY, spanW float64, col, row chunkSpan, tX, tY int) {
	tex := Rect{
		X:      float64(col.offset) / zoomX,
		Y:      float64(row.offset) / zoomY,
		Width:  float64(col.length) / zoomX,
		Height: float64(row.length) / zoomY,
	}
	pos := tex
	if in.mirrored {
		pos.X = spanW - pos.X - pos.Width
	}
	amp, length := float64(w.amp), float64(w.length)
	ix, iy := col.index, row.index

	switch w.mode {
	case WaveDrop:
		idx := float64(ix + (tX/4)*iy)
		dsp := phase*length - idx
		xDsp := math.Sin(phase+float64(ix)) * amp
		if dsp < 0 {
			dsp = 0
			xDsp = 0
		}
		pos.X += xDsp
		pos.Y -= dsp
	default:
		dst := amp*phase + length*phase*phase/2
		idx := float64(tX*tY - (ix + tX*iy))
		dsp := idx * phase
		midX := (float64(ix) - float64(tX/2)) / float64(tX)
		midY := float64(tY-iy-1) / float64(tY)
		dir := 1.0
		if in.mirrored {
			dir = -1
		}
		pos.X += dsp * midX * dst * dir
		pos.Y -= dsp * midY * dst
	}
	w.batch.SetQuad(i, sourceTex(tex, in), pos)
}

// alternate returns d for even chunk indices and -d for odd ones.
func alternate(i int, d float64) float64 {
	if i%2 == 0 {
		return d
	}
	return -d
}

// sourceTex moves a sprite-local texture rect into bitmap space and applies
// mirroring.
func sourceTex(tex Rect, in waveInput) Rect {
	tex.X += float64(in.src.X)
	tex.Y += float64(in.src.Y)
	if in.mirrored {
		return tex.HFlipped()
	}
	return tex
}
