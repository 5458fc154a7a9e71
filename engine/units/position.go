package units

import "fmt"

// Position is a point (x, y) in a y-down coordinate space.
type Position struct {
	X, Y Length
}

func NewPosition(x, y Length) Position { return Position{X: x, Y: y} }

func LogicalPosition(x, y float64) Position {
	return Position{X: FromLogicalPixels(x), Y: FromLogicalPixels(y)}
}

func PhysicalPosition(x, y float64) Position {
	return Position{X: FromPhysicalPixels(x), Y: FromPhysicalPixels(y)}
}

func (p Position) Equal(o Position) bool { return p.X.Equal(o.X) && p.Y.Equal(o.Y) }

func (p Position) Negative() Position { return Position{X: p.X.Negative(), Y: p.Y.Negative()} }

func (p Position) Add(o Position) (Position, error) {
	x, err := p.X.Add(o.X)
	if err != nil {
		return Position{}, err
	}
	y, err := p.Y.Add(o.Y)
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

func (p Position) Subtract(o Position) (Position, error) {
	return p.Add(o.Negative())
}

// ToLogical converts both coordinates to logical pixels.
func (p Position) ToLogical(scale float64) Position {
	return Position{X: p.X.ToLogical(scale), Y: p.Y.ToLogical(scale)}
}

// InLogical returns the unrounded logical pixel coordinates.
func (p Position) InLogical(scale float64) (x, y float64) {
	return p.X.InLogical(scale), p.Y.InLogical(scale)
}

func (p Position) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }
