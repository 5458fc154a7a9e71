package geom

import (
	"github.com/hubastard/trellis/engine/units"
)

// Translate returns a copy of vertices moved by (dx, dy).
func Translate(vertices []units.Position, dx, dy units.Length) ([]units.Position, error) {
	out := make([]units.Position, len(vertices))
	d := units.NewPosition(dx, dy)
	for i, v := range vertices {
		p, err := v.Add(d)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Negate returns a copy of vertices mirrored through the origin.
func Negate(vertices []units.Position) []units.Position {
	out := make([]units.Position, len(vertices))
	for i, v := range vertices {
		out[i] = v.Negative()
	}
	return out
}

// RoundedRect builds the outline of a size-sized rectangle whose corners
// are rounded with radius, in the rectangle's local space. The outline
// winds counter-clockwise on screen starting at the top-left corner:
// top-left, bottom-left, bottom-right, top-right.
//
// The radius is clamped to [0, min(w, h)/2]. Seam vertices shared by two
// corners are emitted once, so a zero radius yields the four corners and a
// square with the maximum radius yields a circle. An empty size yields no
// vertices.
func RoundedRect(size units.Size, radius units.Length, fascets int) ([]units.Position, error) {
	if size.Empty() {
		return nil, nil
	}
	two := units.FromScalar(2)
	halfW, err := size.Width.DivideBy(two)
	if err != nil {
		return nil, err
	}
	halfH, err := size.Height.DivideBy(two)
	if err != nil {
		return nil, err
	}
	maxR, err := units.Min(halfW, halfH)
	if err != nil {
		return nil, err
	}

	r := radius
	if r.Value < 0 {
		r.Value = 0
	}
	if over, err := maxR.Less(r); err != nil {
		return nil, err
	} else if over {
		r = maxR
	}

	if r.IsZero() {
		return corners(size), nil
	}

	right, err := size.Width.Subtract(r)
	if err != nil {
		return nil, err
	}
	bottom, err := size.Height.Subtract(r)
	if err != nil {
		return nil, err
	}

	quadrants := []struct {
		arc    []units.Position
		dx, dy units.Length
	}{
		{MakeTopLeftArc(r, fascets), r, r},
		{MakeBottomLeftArc(r, fascets), r, bottom},
		{MakeBottomRightArc(r, fascets), right, bottom},
		{MakeTopRightArc(r, fascets), right, r},
	}
	outline := make([]units.Position, 0, 4*(clampFascets(fascets)+1))
	for _, q := range quadrants {
		placed, err := Translate(q.arc, q.dx, q.dy)
		if err != nil {
			return nil, err
		}
		outline = append(outline, placed...)
	}
	return dedupe(outline), nil
}

func corners(size units.Size) []units.Position {
	x0 := units.Length{Unit: size.Width.Unit}
	y0 := units.Length{Unit: size.Height.Unit}
	return []units.Position{
		{X: x0, Y: y0},
		{X: x0, Y: size.Height},
		{X: size.Width, Y: size.Height},
		{X: size.Width, Y: y0},
	}
}

// dedupe drops consecutive equal vertices, treating the outline as closed.
func dedupe(outline []units.Position) []units.Position {
	out := outline[:0]
	for _, p := range outline {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Equal(out[0]) {
		out = out[:len(out)-1]
	}
	return out
}
