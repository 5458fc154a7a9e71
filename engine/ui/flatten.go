package ui

import (
	"errors"
	"math"

	"github.com/hubastard/trellis/engine/core"
)

// MaxVertices is the number of vertices 16-bit indices can address.
const MaxVertices = math.MaxUint16 + 1

var ErrTooManyVertices = errors.New("ui: mesh exceeds the 16-bit index range")

// Mesh is the flattened geometry of a widget tree. It replaces the previous
// frame's buffers as a whole.
type Mesh struct {
	Vertices []core.Vertex
	Indices  []uint16
}

// Flatten tessellates children and their descendants depth-first in
// insertion order. Each node is handed the number of vertices already
// emitted as its index offset, so every index stays valid against the
// concatenated buffer. A node's children are placed relative to the
// node's own top-left corner. Nodes that are not rendered are skipped
// together with their subtree.
func Flatten(children []Family, frame Frame) (Mesh, error) {
	var m Mesh
	if err := m.appendAll(children, frame); err != nil {
		return Mesh{}, err
	}
	return m, nil
}

func (m *Mesh) appendAll(children []Family, frame Frame) error {
	for _, c := range children {
		if !c.IsRendered() {
			continue
		}
		vertices, indices, err := c.VerticesAndIndices(frame, len(m.Vertices))
		if err != nil {
			return err
		}
		if len(m.Vertices)+len(vertices) > MaxVertices {
			return ErrTooManyVertices
		}
		m.Vertices = append(m.Vertices, vertices...)
		m.Indices = append(m.Indices, indices...)

		if len(c.Children()) == 0 {
			continue
		}
		sub, err := frame.Child(c.Pos())
		if err != nil {
			return err
		}
		if err := m.appendAll(c.Children(), sub); err != nil {
			return err
		}
	}
	return nil
}
