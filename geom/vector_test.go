package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper. Construction failures here are bugs in the test, not the
// subject under test, so we just panic.
func vec(components ...float64) Vector {
	v, err := NewVector(components...)
	if err != nil {
		panic(err)
	}
	return v
}

func TestNewVector(t *testing.T) {
	v, err := NewVector(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Dimension())
	assert.Equal(t, []float64{1, 2, 3, 4}, v.Components())

	_, err = NewVector()
	assert.ErrorIs(t, err, ErrInvalidVector)
}

func TestNewVectorRejectsNonFinite(t *testing.T) {
	badComponents := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, bad := range badComponents {
		_, err := NewVector(1, bad)
		assert.ErrorIs(t, err, ErrInvalidVector)

		_, err = NewVector(bad)
		assert.ErrorIs(t, err, ErrInvalidVector)

		_, err = NewVector2D(1, bad)
		assert.ErrorIs(t, err, ErrInvalidVector)

		_, err = NewVector3D(1, 2, bad)
		assert.ErrorIs(t, err, ErrInvalidVector)
	}
}

func TestVectorComponentsAreACopy(t *testing.T) {
	v := vec(1, 2)
	comps := v.Components()
	comps[0] = 99
	assert.Equal(t, []float64{1, 2}, v.Components())
}

func TestVectorAddSub(t *testing.T) {
	v := vec(1, 2, 3)
	w := vec(4, -5, 6)

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -3, 9}, sum.Components())

	// v + w - w == v
	back, err := sum.Sub(w)
	require.NoError(t, err)
	assert.True(t, back.Equal(v))

	_, err = v.Add(vec(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = v.Sub(vec(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestVectorDot(t *testing.T) {
	v := vec(1, 2, 3)
	w := vec(4, 5, 6)

	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	// Commutativity
	dot2, err := w.Dot(v)
	require.NoError(t, err)
	assert.Equal(t, dot, dot2)

	_, err = v.Dot(vec(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestVectorMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, vec(3, 4).Magnitude())
	assert.Equal(t, 0.0, vec(0, 0, 0).Magnitude())
	assert.Equal(t, 2.0, vec(-2).Magnitude())
}

func TestVectorNormalize(t *testing.T) {
	v := vec(3, 4)
	unit, err := v.Normalize()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6, 0.8}, unit.Components())
	// Value semantics: the receiver is unchanged
	assert.Equal(t, []float64{3, 4}, v.Components())

	_, err = vec(0, 0).Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVectorIsZero(t *testing.T) {
	assert.True(t, vec(0, 0, 0).IsZero())
	assert.True(t, vec(0).IsZero())
	assert.False(t, vec(0, 1e-300, 0).IsZero())
}

func TestVectorEqual(t *testing.T) {
	assert.True(t, vec(1, 2).Equal(vec(1, 2)))
	assert.False(t, vec(1, 2).Equal(vec(1, 2, 0)))
	// Exact equality, no tolerance
	assert.False(t, vec(1, 2).Equal(vec(1, 2+1e-15)))
}

func TestVectorScale(t *testing.T) {
	assert.Equal(t, []float64{2, -4}, vec(1, -2).Scale(2).Components())
}

func TestVectorCross(t *testing.T) {
	e1 := vec(1, 0, 0)
	e2 := vec(0, 1, 0)

	cross, err := e1.Cross(e2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, cross.Components())

	// Anticommutativity
	cross, err = e2.Cross(e1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, -1}, cross.Components())

	_, err = vec(1, 0).Cross(e2)
	assert.ErrorIs(t, err, ErrWrongDimension)
	_, err = e1.Cross(vec(1, 0))
	assert.ErrorIs(t, err, ErrWrongDimension)
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "Vector(dimension: 2, components: [1 2])", vec(1, 2).String())
}

func TestConstructionRoundTrip(t *testing.T) {
	sequences := [][]float64{
		{1},
		{0, 0},
		{1.5, -2.5, 1e100},
		{1, 2, 3, 4, 5, 6, 7},
	}
	for _, comps := range sequences {
		v, err := NewVector(comps...)
		require.NoError(t, err)
		assert.Equal(t, comps, v.Components())
	}
}
