// Package geom tessellates widget outlines.
//
// All positions live in a y-down space whose origin is the top-left of the
// shape being built, matching screen coordinates. "Top" therefore means
// negative y. ClipSpace flips y when mapping into normalized device
// coordinates.
package geom

import (
	"math"
	"slices"

	"github.com/hubastard/trellis/engine/units"
)

// Arc fidelity bounds; requests outside are clamped. At MaxFascets the four
// corners of a rounded rectangle still fit a 16-bit indexed mesh.
const (
	MinFascets = 1
	MaxFascets = 1<<16/4 - 1
)

func clampFascets(fascets int) int {
	return min(max(fascets, MinFascets), MaxFascets)
}

// MakeTopRightArc samples the top right quarter of a circle of the given
// radius centered on the origin. fascets is the number of segments in the
// quarter, so fascets+1 points are returned, running counter-clockwise
// from (r, 0) to (0, -r). A negative radius is treated as zero.
func MakeTopRightArc(radius units.Length, fascets int) []units.Position {
	fascets = clampFascets(fascets)
	r := math.Max(radius.Value, 0)
	u := radius.Unit

	out := make([]units.Position, fascets+1)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(4*fascets)
		out[i] = units.Position{
			X: units.Length{Value: r * math.Cos(angle), Unit: u},
			Y: units.Length{Value: -r * math.Sin(angle), Unit: u},
		}
	}
	// cos(pi/2) is not exactly zero
	out[fascets].X.Value = 0
	return out
}

// MakeTopLeftArc runs counter-clockwise from (0, -r) to (-r, 0).
func MakeTopLeftArc(radius units.Length, fascets int) []units.Position {
	arc := mirror(MakeTopRightArc(radius, fascets), true, false)
	slices.Reverse(arc)
	return arc
}

// MakeBottomLeftArc runs counter-clockwise from (-r, 0) to (0, r).
func MakeBottomLeftArc(radius units.Length, fascets int) []units.Position {
	return mirror(MakeTopRightArc(radius, fascets), true, true)
}

// MakeBottomRightArc runs counter-clockwise from (0, r) to (r, 0).
func MakeBottomRightArc(radius units.Length, fascets int) []units.Position {
	arc := mirror(MakeTopRightArc(radius, fascets), false, true)
	slices.Reverse(arc)
	return arc
}

func mirror(vertices []units.Position, x, y bool) []units.Position {
	for i := range vertices {
		if x {
			vertices[i].X = vertices[i].X.Negative()
		}
		if y {
			vertices[i].Y = vertices[i].Y.Negative()
		}
	}
	return vertices
}
