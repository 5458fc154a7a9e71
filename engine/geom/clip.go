package geom

import (
	"github.com/hubastard/trellis/engine/units"
)

// ClipSpace maps p, given in the y-down space of a surface of the given
// size, into normalized device coordinates: [0, width] becomes [-1, 1]
// left to right and [0, height] becomes [1, -1] top to bottom.
func ClipSpace(p units.Position, surface units.Size, scale float64) ([2]float32, error) {
	x, err := p.X.ToLogical(scale).DivideBy(surface.Width.ToLogical(scale))
	if err != nil {
		return [2]float32{}, err
	}
	y, err := p.Y.ToLogical(scale).DivideBy(surface.Height.ToLogical(scale))
	if err != nil {
		return [2]float32{}, err
	}
	return [2]float32{float32(x.Value*2 - 1), float32(1 - y.Value*2)}, nil
}
