package ui

import (
	"image"

	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/core"
	"github.com/hubastard/trellis/engine/units"
)

// Widgets opt into small capability sets instead of sharing one base type.

// Widget is implemented by every node of the tree.
type Widget interface {
	// IsRendered reports whether the node contributes geometry.
	IsRendered() bool
}

// AreaWidget occupies a rectangular area.
type AreaWidget interface {
	Widget
	SetSize(size units.Size)
	SetBackgroundColor(color colors.Color)
}

// WindowWidget holds root-container properties that are handed to the
// windowing system and never affect geometry.
type WindowWidget interface {
	AreaWidget
	SetMinSize(size units.Size)
	SetMaxSize(size units.Size)
	SetTitle(title string)
	SetResizable(resizable bool)
	SetAlwaysOnTop(alwaysOnTop bool)
	SetWindowIcon(icon ...image.Image)
}

// Parent exclusively owns an ordered list of children. Children render in
// insertion order, so later children cover earlier ones.
type Parent interface {
	Widget
	AddChild(child Family)
	ChildrenLen() int
	Children() []Family
}

// Child is a node that emits geometry inside its parent.
type Child interface {
	Widget
	Node() *Base
	Pos() units.Position
	SetPosition(pos units.Position)
	SetPositionLogical(x, y float64)
	SetPositionPhysical(x, y float64)
	// VerticesAndIndices tessellates the node in frame. Every returned
	// index is shifted by indexOffset so the batch can be appended to a
	// buffer already holding indexOffset vertices.
	VerticesAndIndices(frame Frame, indexOffset int) ([]core.Vertex, []uint16, error)
}

// Family is a renderable node that can itself hold children.
type Family interface {
	Parent
	Child
}

// Frame is the geometry context a child is tessellated in.
type Frame struct {
	// Surface is the size of the whole rendering surface; clip-space
	// coordinates are relative to it.
	Surface units.Size
	// Origin is the top-left corner of the parent, in logical pixels of
	// surface space.
	Origin units.Position
	// Scale is the logical to physical pixel ratio.
	Scale float64
}

// Child returns the frame for the children of a node placed at pos inside f.
func (f Frame) Child(pos units.Position) (Frame, error) {
	origin, err := f.Origin.Add(pos.ToLogical(f.Scale))
	if err != nil {
		return Frame{}, err
	}
	f.Origin = origin
	return f, nil
}
