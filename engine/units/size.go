package units

import "fmt"

// Size is an area expressed as a width and a height.
type Size struct {
	Width, Height Length
}

// DefaultSize is 500x500 logical pixels.
func DefaultSize() Size { return LogicalSize(500, 500) }

func NewSize(width, height Length) Size { return Size{Width: width, Height: height} }

func LogicalSize(width, height float64) Size {
	return Size{Width: FromLogicalPixels(width), Height: FromLogicalPixels(height)}
}

func PhysicalSize(width, height float64) Size {
	return Size{Width: FromPhysicalPixels(width), Height: FromPhysicalPixels(height)}
}

func (s Size) Equal(o Size) bool { return s.Width.Equal(o.Width) && s.Height.Equal(o.Height) }

// ToLogical converts both dimensions to logical pixels.
func (s Size) ToLogical(scale float64) Size {
	return Size{Width: s.Width.ToLogical(scale), Height: s.Height.ToLogical(scale)}
}

// InLogical returns the unrounded logical pixel dimensions.
func (s Size) InLogical(scale float64) (w, h float64) {
	return s.Width.InLogical(scale), s.Height.InLogical(scale)
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.Width.Value <= 0 || s.Height.Value <= 0 }

func (s Size) String() string { return fmt.Sprintf("%vx%v", s.Width, s.Height) }
