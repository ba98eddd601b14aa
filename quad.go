package bramble

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxBatchQuads is the largest number of quads a QuadBatch can address with
// 16-bit indices.
const MaxBatchQuads = (1 << 16) / 4

// QuadBatch is an ordered sequence of textured quads, four vertices each.
// Writes go to a staging buffer; Commit uploads them to the committed buffer,
// which is the only data a Renderer reads.
type QuadBatch struct {
	staging   []ebiten.Vertex
	committed []ebiten.Vertex
	indices   []uint16
	count     int
	commits   int
}

// NewQuadBatch returns a batch holding n zeroed quads.
func NewQuadBatch(n int) *QuadBatch {
	q := &QuadBatch{}
	q.Resize(n)
	return q
}

// Len returns the number of quads in the batch.
func (q *QuadBatch) Len() int {
	return q.count
}

// Commits returns how many commit operations the batch has seen.
func (q *QuadBatch) Commits() int {
	return q.commits
}

// Resize sets the number of quads. Existing quads below the new size keep
// their staged data; new quads are zeroed. Storage grows to a high-water mark
// and is never shrunk.
func (q *QuadBatch) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxBatchQuads {
		Logger().Warn("bramble: quad batch truncated",
			slog.Int("requested", n), slog.Int("max", MaxBatchQuads))
		n = MaxBatchQuads
	}
	need := n * 4
	if cap(q.staging) < need {
		grown := make([]ebiten.Vertex, need)
		copy(grown, q.staging)
		q.staging = grown
	}
	old := len(q.staging)
	q.staging = q.staging[:need]
	for i := old; i < need; i++ {
		q.staging[i] = ebiten.Vertex{}
	}
	q.count = n
	q.ensureIndices(n)
}

// ensureIndices extends the shared index pattern (0,1,2, 2,3,0 per quad) to
// cover n quads.
func (q *QuadBatch) ensureIndices(n int) {
	have := len(q.indices) / 6
	for i := have; i < n; i++ {
		base := uint16(i * 4)
		q.indices = append(q.indices, base, base+1, base+2, base+2, base+3, base)
	}
}

// SetQuad writes quad i with texture rectangle tex and position rectangle
// pos. Vertex order is top-left, top-right, bottom-right, bottom-left of each
// rectangle, so a flipped tex rect mirrors the sampled image.
func (q *QuadBatch) SetQuad(i int, tex, pos Rect) {
	if i < 0 || i >= q.count {
		return
	}
	setTexPosRect(q.staging[i*4:i*4+4], tex, pos)
}

func setTexPosRect(v []ebiten.Vertex, tex, pos Rect) {
	x0, y0 := float32(pos.X), float32(pos.Y)
	x1, y1 := float32(pos.X+pos.Width), float32(pos.Y+pos.Height)
	u0, v0 := float32(tex.X), float32(tex.Y)
	u1, v1 := float32(tex.X+tex.Width), float32(tex.Y+tex.Height)

	v[0] = ebiten.Vertex{DstX: x0, DstY: y0, SrcX: u0, SrcY: v0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	v[1] = ebiten.Vertex{DstX: x1, DstY: y0, SrcX: u1, SrcY: v0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	v[2] = ebiten.Vertex{DstX: x1, DstY: y1, SrcX: u1, SrcY: v1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	v[3] = ebiten.Vertex{DstX: x0, DstY: y1, SrcX: u0, SrcY: v1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
}

// Commit uploads every staged quad.
func (q *QuadBatch) Commit() {
	q.CommitRange(0, q.count)
}

// CommitRange uploads n staged quads starting at offset. The committed
// buffer is first sized to the current quad count, so quads outside the range
// keep their previously committed data.
func (q *QuadBatch) CommitRange(offset, n int) {
	need := q.count * 4
	if cap(q.committed) < need {
		grown := make([]ebiten.Vertex, need)
		copy(grown, q.committed)
		q.committed = grown
	}
	q.committed = q.committed[:need]
	q.commits++

	if offset < 0 {
		n += offset
		offset = 0
	}
	if offset+n > q.count {
		n = q.count - offset
	}
	if n <= 0 {
		return
	}
	copy(q.committed[offset*4:(offset+n)*4], q.staging[offset*4:(offset+n)*4])
}

// Committed returns the uploaded vertices and the matching index slice. The
// returned slices MUST NOT be mutated by the caller.
func (q *QuadBatch) Committed() ([]ebiten.Vertex, []uint16) {
	quads := len(q.committed) / 4
	return q.committed, q.indices[:quads*6]
}

// Quad reads back committed quad i as texture and position rectangles.
func (q *QuadBatch) Quad(i int) (tex, pos Rect, ok bool) {
	if i < 0 || (i+1)*4 > len(q.committed) {
		return Rect{}, Rect{}, false
	}
	v := q.committed[i*4 : i*4+4]
	tex = Rect{
		X:      float64(v[0].SrcX),
		Y:      float64(v[0].SrcY),
		Width:  float64(v[2].SrcX - v[0].SrcX),
		Height: float64(v[2].SrcY - v[0].SrcY),
	}
	pos = Rect{
		X:      float64(v[0].DstX),
		Y:      float64(v[0].DstY),
		Width:  float64(v[2].DstX - v[0].DstX),
		Height: float64(v[2].DstY - v[0].DstY),
	}
	return tex, pos, true
}

// Release drops all vertex storage. The batch is empty afterwards but may be
// reused.
func (q *QuadBatch) Release() {
	q.staging = nil
	q.committed = nil
	q.indices = nil
	q.count = 0
}
