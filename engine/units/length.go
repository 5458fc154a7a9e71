// Package units implements unit-tagged linear measurements.
//
// A Length remembers whether it was expressed in logical pixels
// (device-independent), physical pixels (device dots) or as a unit-less
// scalar. The tag travels through every arithmetic operation so that a
// logical/physical mix-up is reported where the two values are combined
// instead of showing up later as a misplaced widget.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrUnitMismatch is returned when two lengths of incompatible units
	// are combined.
	ErrUnitMismatch = errors.New("units: unit mismatch")
	// ErrDivideByZero is returned by DivideBy for a zero divisor.
	ErrDivideByZero = errors.New("units: division by zero length")
)

// Unit tags a Length.
type Unit uint8

const (
	UnitGeneric Unit = iota
	UnitLogical
	UnitPhysical
)

func (u Unit) String() string {
	switch u {
	case UnitGeneric:
		return "generic"
	case UnitLogical:
		return "logical"
	case UnitPhysical:
		return "physical"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

func (u Unit) suffix() string {
	switch u {
	case UnitLogical:
		return "lpx"
	case UnitPhysical:
		return "ppx"
	default:
		return ""
	}
}

// equalityScale is 10^8: lengths are equal when they agree to 8 decimals.
const equalityScale = 1e8

// Length is a linear dimension (a width, height or coordinate).
// The zero value is a generic zero.
type Length struct {
	Value float64
	Unit  Unit
}

func FromLogicalPixels(px float64) Length  { return Length{Value: px, Unit: UnitLogical} }
func FromPhysicalPixels(px float64) Length { return Length{Value: px, Unit: UnitPhysical} }
func FromScalar(v float64) Length          { return Length{Value: v, Unit: UnitGeneric} }

// InLogical returns the length in logical pixels for the given
// logical-to-physical scale. Generic lengths pass through unchanged.
func (l Length) InLogical(scale float64) float64 {
	if l.Unit == UnitPhysical {
		return l.Value / scale
	}
	return l.Value
}

// InPhysical returns the length in physical pixels for the given
// logical-to-physical scale. Generic lengths pass through unchanged.
func (l Length) InPhysical(scale float64) float64 {
	if l.Unit == UnitLogical {
		return l.Value * scale
	}
	return l.Value
}

// LogicalLength is InLogical rounded to the nearest whole logical pixel.
func (l Length) LogicalLength(scale float64) float32 {
	return float32(math.Round(l.InLogical(scale)))
}

// PhysicalLength is InPhysical rounded to the nearest whole device pixel.
func (l Length) PhysicalLength(scale float64) float32 {
	return float32(math.Round(l.InPhysical(scale)))
}

// ToLogical converts l into a logical length. Generic lengths are
// returned as is.
func (l Length) ToLogical(scale float64) Length {
	if l.Unit == UnitGeneric {
		return l
	}
	return FromLogicalPixels(l.InLogical(scale))
}

// ToPhysical converts l into a physical length. Generic lengths are
// returned as is.
func (l Length) ToPhysical(scale float64) Length {
	if l.Unit == UnitGeneric {
		return l
	}
	return FromPhysicalPixels(l.InPhysical(scale))
}

func (l Length) IsZero() bool { return l.Value == 0 }

// Negative flips the sign and keeps the unit.
func (l Length) Negative() Length {
	return Length{Value: -l.Value, Unit: l.Unit}
}

// Equal compares values at 8 decimal places and the unit tag.
func (l Length) Equal(o Length) bool {
	return l.Unit == o.Unit &&
		math.Round(l.Value*equalityScale) == math.Round(o.Value*equalityScale)
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.suffix()
}

// additive reports whether l and o may be added or subtracted, and the
// unit of the result. A zero operand adopts the other operand's unit.
func (l Length) additive(o Length) (Unit, bool) {
	switch {
	case l.Unit == o.Unit:
		return l.Unit, true
	case l.Value == 0:
		return o.Unit, true
	case o.Value == 0:
		return l.Unit, true
	}
	return 0, false
}

// multiplicative is additive plus free mixing with generic scalars.
func (l Length) multiplicative(o Length) (Unit, bool) {
	if u, ok := l.additive(o); ok {
		return u, true
	}
	switch {
	case l.Unit == UnitGeneric:
		return o.Unit, true
	case o.Unit == UnitGeneric:
		return l.Unit, true
	}
	return 0, false
}

func mismatch(op string, a, b Length) error {
	return fmt.Errorf("%s %v (%v) and %v (%v): %w", op, a, a.Unit, b, b.Unit, ErrUnitMismatch)
}

// Add returns l+o. Both operands must share a unit unless one is zero.
func (l Length) Add(o Length) (Length, error) {
	u, ok := l.additive(o)
	if !ok {
		return Length{}, mismatch("add", l, o)
	}
	return Length{Value: l.Value + o.Value, Unit: u}, nil
}

// Subtract returns l-o under the same unit rules as Add.
func (l Length) Subtract(o Length) (Length, error) {
	u, ok := l.additive(o)
	if !ok {
		return Length{}, mismatch("subtract", l, o)
	}
	return Length{Value: l.Value - o.Value, Unit: u}, nil
}

// Multiply returns l*o. Besides the Add rules, either operand may be a
// generic scalar, in which case the result carries the other unit.
func (l Length) Multiply(o Length) (Length, error) {
	u, ok := l.multiplicative(o)
	if !ok {
		return Length{}, mismatch("multiply", l, o)
	}
	return Length{Value: l.Value * o.Value, Unit: u}, nil
}

// DivideBy returns l/o. Dividing two lengths of the same unit yields a
// generic ratio; dividing by a generic scalar keeps l's unit.
func (l Length) DivideBy(o Length) (Length, error) {
	u, ok := l.multiplicative(o)
	if !ok {
		return Length{}, mismatch("divide", l, o)
	}
	if o.Value == 0 {
		return Length{}, fmt.Errorf("divide %v by %v: %w", l, o, ErrDivideByZero)
	}
	if l.Unit == o.Unit {
		u = UnitGeneric
	}
	return Length{Value: l.Value / o.Value, Unit: u}, nil
}

// Less reports whether l < o. The operands must be additive-compatible.
func (l Length) Less(o Length) (bool, error) {
	if _, ok := l.additive(o); !ok {
		return false, mismatch("compare", l, o)
	}
	return l.Value < o.Value, nil
}

// Min returns the smaller of a and b.
func Min(a, b Length) (Length, error) {
	less, err := b.Less(a)
	if err != nil {
		return Length{}, err
	}
	if less {
		return b, nil
	}
	return a, nil
}
