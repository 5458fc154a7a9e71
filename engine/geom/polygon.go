package geom

import (
	"github.com/hubastard/trellis/engine/units"
)

// Polygon is a convex outline with its fan triangulation.
type Polygon struct {
	Vertices []units.Position
	Indices  []uint16
}

// NewFan triangulates vertices as a fan around vertex 0. Fewer than three
// vertices produce no triangles.
func NewFan(vertices []units.Position) Polygon {
	p := Polygon{Vertices: vertices}
	if len(vertices) < 3 {
		return p
	}
	p.Indices = make([]uint16, 0, 3*(len(vertices)-2))
	for i := 1; i+1 < len(vertices); i++ {
		p.Indices = append(p.Indices, 0, uint16(i), uint16(i+1))
	}
	return p
}

// Triangles returns the number of triangles in the fan.
func (p Polygon) Triangles() int { return len(p.Indices) / 3 }

// Offset returns the indices shifted by base, for appending the polygon to
// a buffer that already holds base vertices.
func (p Polygon) Offset(base uint16) []uint16 {
	out := make([]uint16, len(p.Indices))
	for i, idx := range p.Indices {
		out[i] = idx + base
	}
	return out
}
