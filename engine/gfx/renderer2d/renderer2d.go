package renderer2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/hubastard/trellis/engine/core"
	"github.com/hubastard/trellis/engine/profiler"
)

// maxBatchVertices is what 16-bit indices can address in one draw.
const maxBatchVertices = math.MaxUint16 + 1

var (
	ErrBatchTooLarge    = errors.New("renderer2d: submission exceeds batch capacity")
	ErrIndexOutOfRange  = errors.New("renderer2d: index references a vertex outside its submission")
	ErrIncompleteTriple = errors.New("renderer2d: index count is not a multiple of 3")
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls   int
	Submissions int
	VertexCount int
	IndexCount  int
}

// TriangleCount reports triangles drawn this frame.
func (s Statistics) TriangleCount() int { return s.IndexCount / 3 }

// Renderer2D batches triangle meshes on the CPU and hands each batch to the
// GPU boundary as one vertex buffer and one 16-bit index buffer.
type Renderer2D struct {
	r           core.Renderer
	verts       []core.Vertex
	inds        []uint16
	maxVertices int
	stats       Statistics
}

// New creates a batching renderer. maxVertices bounds a single batch; it is
// capped at the 16-bit index range and defaults to that range when <= 0.
func New(r core.Renderer, maxVertices int) *Renderer2D {
	if maxVertices <= 0 || maxVertices > maxBatchVertices {
		maxVertices = maxBatchVertices
	}
	return &Renderer2D{
		r:           r,
		maxVertices: maxVertices,
		verts:       make([]core.Vertex, 0, min(maxVertices, 1024)),
		inds:        make([]uint16, 0, min(maxVertices, 1024)*3),
	}
}

func (rd *Renderer2D) BeginScene() {
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() error { return rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// Submit queues a mesh whose indices refer to its own vertices (starting
// at 0). Indices are rebased onto the batch; the batch is flushed first
// when the mesh would not fit.
func (rd *Renderer2D) Submit(vertices []core.Vertex, indices []uint16) error {
	if len(vertices) > rd.maxVertices {
		return fmt.Errorf("%w: %d vertices, capacity %d", ErrBatchTooLarge, len(vertices), rd.maxVertices)
	}
	if len(indices)%3 != 0 {
		return ErrIncompleteTriple
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return fmt.Errorf("%w: index %d, %d vertices", ErrIndexOutOfRange, i, len(vertices))
		}
	}
	if len(vertices) == 0 {
		return nil
	}

	if len(rd.verts)+len(vertices) > rd.maxVertices {
		if err := rd.flush(); err != nil {
			return err
		}
	}

	base := uint16(len(rd.verts))
	rd.verts = append(rd.verts, vertices...)
	for _, i := range indices {
		rd.inds = append(rd.inds, base+i)
	}
	rd.stats.Submissions++
	rd.stats.VertexCount += len(vertices)
	rd.stats.IndexCount += len(indices)
	return nil
}

// --- internals ---

func (rd *Renderer2D) flush() error {
	if len(rd.inds) == 0 {
		rd.resetBatch()
		return nil
	}
	defer profiler.Start("renderer2d.flush")()

	if err := rd.r.UpdateMesh(rd.verts, rd.inds); err != nil {
		return fmt.Errorf("renderer2d: upload: %w", err)
	}
	rd.r.DrawMesh(len(rd.inds))
	rd.stats.DrawCalls++

	rd.resetBatch()
	return nil
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
}
