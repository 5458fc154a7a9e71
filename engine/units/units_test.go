package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubtractRoundTrip(t *testing.T) {
	tests := []struct{ a, b Length }{
		{FromLogicalPixels(10), FromLogicalPixels(3.25)},
		{FromPhysicalPixels(-7.5), FromPhysicalPixels(1e-3)},
		{FromScalar(0.1), FromScalar(0.2)},
		{FromLogicalPixels(4.6193976625564339), FromLogicalPixels(1.913417161825449)},
	}
	for _, tt := range tests {
		sum, err := tt.a.Add(tt.b)
		require.NoError(t, err)
		back, err := sum.Subtract(tt.b)
		require.NoError(t, err)
		assert.True(t, back.Equal(tt.a), "%v + %v - %v = %v", tt.a, tt.b, tt.b, back)
	}
}

func TestAddUnitMismatch(t *testing.T) {
	_, err := FromLogicalPixels(1).Add(FromPhysicalPixels(1))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = FromPhysicalPixels(1).Subtract(FromLogicalPixels(2))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	// Generic scalars only mix under multiplication and division.
	_, err = FromScalar(2).Add(FromLogicalPixels(2))
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestZeroIsUnitPolymorphic(t *testing.T) {
	sum, err := FromLogicalPixels(0).Add(FromPhysicalPixels(4))
	require.NoError(t, err)
	assert.Equal(t, FromPhysicalPixels(4), sum)

	diff, err := FromLogicalPixels(4).Subtract(FromPhysicalPixels(0))
	require.NoError(t, err)
	assert.Equal(t, FromLogicalPixels(4), diff)

	var zero Length
	sum, err = zero.Add(FromLogicalPixels(3))
	require.NoError(t, err)
	assert.Equal(t, UnitLogical, sum.Unit)
}

func TestMultiplyDivide(t *testing.T) {
	m, err := FromLogicalPixels(3).Multiply(FromScalar(2))
	require.NoError(t, err)
	assert.True(t, m.Equal(FromLogicalPixels(6)))

	m, err = FromScalar(2).Multiply(FromPhysicalPixels(3))
	require.NoError(t, err)
	assert.True(t, m.Equal(FromPhysicalPixels(6)))

	d, err := FromLogicalPixels(50).DivideBy(FromLogicalPixels(200))
	require.NoError(t, err)
	assert.True(t, d.Equal(FromScalar(0.25)))

	d, err = FromPhysicalPixels(9).DivideBy(FromScalar(3))
	require.NoError(t, err)
	assert.True(t, d.Equal(FromPhysicalPixels(3)))

	_, err = FromLogicalPixels(1).Multiply(FromPhysicalPixels(2))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = FromLogicalPixels(1).DivideBy(FromPhysicalPixels(2))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	_, err = FromLogicalPixels(1).DivideBy(FromLogicalPixels(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestNegative(t *testing.T) {
	n := FromPhysicalPixels(12).Negative()
	assert.Equal(t, FromPhysicalPixels(-12), n)
}

func TestEqualTolerance(t *testing.T) {
	a := FromLogicalPixels(0.1 + 0.2)
	assert.True(t, a.Equal(FromLogicalPixels(0.3)))
	assert.False(t, a.Equal(FromPhysicalPixels(0.3)))
	assert.False(t, FromLogicalPixels(1).Equal(FromLogicalPixels(1.00000002)))
	assert.True(t, FromLogicalPixels(-3.535533905932738).Equal(FromLogicalPixels(-3.5355339059327373)))
}

func TestScaleConversion(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 1.25, 1.5, 2, 3} {
		for _, l := range []float64{0, 4, 8, 48, 640} {
			phys := FromLogicalPixels(l).PhysicalLength(scale)
			assert.Equal(t, float32(l*scale), phys, "scale %v length %v", scale, l)

			back := FromPhysicalPixels(l * scale).LogicalLength(scale)
			assert.Equal(t, float32(l), back, "scale %v length %v", scale, l)
		}
	}
}

func TestGenericPassesThrough(t *testing.T) {
	g := FromScalar(7.4)
	assert.Equal(t, 7.4, g.InLogical(2))
	assert.Equal(t, 7.4, g.InPhysical(2))
	assert.Equal(t, g, g.ToLogical(3))
}

func TestRoundingToPixelGrid(t *testing.T) {
	assert.Equal(t, float32(15), FromLogicalPixels(10.2).PhysicalLength(1.5))
	assert.Equal(t, float32(7), FromPhysicalPixels(10).LogicalLength(1.5))
	assert.InDelta(t, 6.6666666, FromPhysicalPixels(10).InLogical(1.5), 1e-6)
}

func TestMin(t *testing.T) {
	m, err := Min(FromLogicalPixels(3), FromLogicalPixels(2))
	require.NoError(t, err)
	assert.Equal(t, FromLogicalPixels(2), m)

	_, err = Min(FromLogicalPixels(3), FromPhysicalPixels(2))
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestPositionAndSize(t *testing.T) {
	p, err := LogicalPosition(1, 2).Add(LogicalPosition(3, 4))
	require.NoError(t, err)
	assert.True(t, p.Equal(LogicalPosition(4, 6)))

	_, err = LogicalPosition(1, 2).Subtract(PhysicalPosition(1, 1))
	assert.ErrorIs(t, err, ErrUnitMismatch)

	assert.True(t, DefaultSize().Equal(LogicalSize(500, 500)))
	assert.True(t, PhysicalSize(1000, 600).ToLogical(2).Equal(LogicalSize(500, 300)))
	assert.True(t, LogicalSize(0, 10).Empty())
	assert.Equal(t, "500lpxx500lpx", DefaultSize().String())
}
