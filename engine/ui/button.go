package ui

import (
	"fmt"

	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/core"
	"github.com/hubastard/trellis/engine/geom"
	"github.com/hubastard/trellis/engine/units"
)

// DefaultFascets is the corner fidelity of a Button.
const DefaultFascets = 4

// Button is a rounded rectangle filled with its background color. It can
// hold children, which are positioned relative to its top-left corner.
type Button struct {
	Common[*Button]
	radius  units.Length
	fascets int
}

var _ Family = (*Button)(nil)

// NewButton returns a 200x100 logical pixel button at (0, 0) with 25 px
// corners.
func NewButton() *Button {
	b := &Button{
		radius:  units.FromLogicalPixels(25),
		fascets: DefaultFascets,
	}
	b.Common = NewCommon(b)
	b.base.size = units.LogicalSize(200, 100)
	b.base.color = colors.Color{0.7, 0.1, 0.4, 1}
	return b
}

func (b *Button) CornerRadius() units.Length    { return b.radius }
func (b *Button) SetRadius(radius units.Length) { b.radius = radius }

// Radius sets the corner radius in logical pixels.
func (b *Button) Radius(r float64) *Button { b.radius = units.FromLogicalPixels(r); return b }

// Fascets sets the number of segments per rounded corner.
func (b *Button) Fascets(n int) *Button { b.fascets = n; return b }

// Polygon builds the button outline in its own top-left space, in the units
// of its size and radius.
func (b *Button) Polygon() (geom.Polygon, error) {
	outline, err := geom.RoundedRect(b.base.size, b.radius, b.fascets)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewFan(outline), nil
}

func (b *Button) VerticesAndIndices(frame Frame, indexOffset int) ([]core.Vertex, []uint16, error) {
	poly, err := b.Polygon()
	if err != nil {
		return nil, nil, fmt.Errorf("button: %w", err)
	}
	if len(poly.Vertices) == 0 {
		return nil, nil, nil
	}
	if indexOffset < 0 || indexOffset+len(poly.Vertices) > MaxVertices {
		return nil, nil, ErrTooManyVertices
	}

	// the position is placed like a child frame, so it may use other units
	// than the outline
	local, err := frame.Child(b.base.position)
	if err != nil {
		return nil, nil, fmt.Errorf("button: %w", err)
	}

	rgb := b.base.color.RGB()
	vertices := make([]core.Vertex, len(poly.Vertices))
	for i, p := range poly.Vertices {
		abs, err := local.Origin.Add(p.ToLogical(frame.Scale))
		if err != nil {
			return nil, nil, fmt.Errorf("button: %w", err)
		}
		xy, err := geom.ClipSpace(abs, frame.Surface, frame.Scale)
		if err != nil {
			return nil, nil, fmt.Errorf("button: %w", err)
		}
		vertices[i] = core.Vertex{Position: [3]float32{xy[0], xy[1], 0}, Color: rgb}
	}
	return vertices, poly.Offset(uint16(indexOffset)), nil
}
