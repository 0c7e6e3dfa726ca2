package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwoDLine(t *testing.T) {
	line, err := NewTwoDLine(2, -1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, line.Slope)
	assert.Equal(t, -1.0, line.Intercept)

	_, err = NewTwoDLine(math.NaN(), 0)
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = NewTwoDLine(0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestTwoDLineFromPoints(t *testing.T) {
	line, err := TwoDLineFromPoints(vec(0, 0), vec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, line.Slope)
	assert.Equal(t, 0.0, line.Intercept)

	// Order of points doesn't matter
	line, err = TwoDLineFromPoints(vec(1, 1), vec(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, line.Slope)
	assert.Equal(t, 0.0, line.Intercept)

	line, err = TwoDLineFromPoints(vec(0, 3), vec(2, 7))
	require.NoError(t, err)
	assert.Equal(t, 2.0, line.Slope)
	assert.Equal(t, 3.0, line.Intercept)
}

func TestTwoDLineFromPointsDegenerate(t *testing.T) {
	_, err := TwoDLineFromPoints(vec(1, 1), vec(1, 1))
	assert.ErrorIs(t, err, ErrDegenerateInput)

	// Vertical lines have no slope-intercept representation
	_, err = TwoDLineFromPoints(vec(1, 0), vec(1, 5))
	assert.ErrorIs(t, err, ErrDegenerateInput)

	_, err = TwoDLineFromPoints(vec(1, 0, 0), vec(0, 1, 0))
	assert.ErrorIs(t, err, ErrWrongDimension)
}

func TestTwoDLineAt(t *testing.T) {
	line, err := NewTwoDLine(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, line.At(0))
	assert.Equal(t, 7.0, line.At(2))
}

func TestNewThreeDLine(t *testing.T) {
	point := vec(1, 2, 3)
	direction := vec(4, 5, 6)

	line, err := NewThreeDLine(point, direction)
	require.NoError(t, err)
	assert.True(t, line.Point.Equal(point))
	assert.True(t, line.Direction.Equal(direction))

	_, err = NewThreeDLine(point, vec(0, 0, 0))
	assert.ErrorIs(t, err, ErrDegenerateInput)

	_, err = NewThreeDLine(vec(1, 2), direction)
	assert.ErrorIs(t, err, ErrWrongDimension)
	_, err = NewThreeDLine(point, vec(4, 5))
	assert.ErrorIs(t, err, ErrWrongDimension)
}

func TestThreeDLineFromPoints(t *testing.T) {
	line, err := ThreeDLineFromPoints(vec(1, 1, 1), vec(2, 3, 4))
	require.NoError(t, err)
	assert.True(t, line.Point.Equal(vec(1, 1, 1)))
	assert.True(t, line.Direction.Equal(vec(1, 2, 3)))

	_, err = ThreeDLineFromPoints(vec(1, 1, 1), vec(1, 1, 1))
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestThreeDLineParametricForm(t *testing.T) {
	line, err := NewThreeDLine(vec(1, 2, 3), vec(4, -5, 0))
	require.NoError(t, err)
	assert.Equal(t, [3]string{
		"x = 1 + 4*t",
		"y = 2 + -5*t",
		"z = 3 + 0*t",
	}, line.ParametricForm())
}

func TestThreeDLineSymmetricForm(t *testing.T) {
	line, err := NewThreeDLine(vec(1, 2, 3), vec(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, "(x - 1)/4 = (y - 2)/5 = (z - 3)/6", line.SymmetricForm())
}

func TestThreeDLineSymmetricFormZeroComponents(t *testing.T) {
	line, err := NewThreeDLine(vec(1, 2, 5), vec(1, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, "(x - 1)/1 = (y - 2)/2, z = 5", line.SymmetricForm())

	// Two zero components leave a single ratio and two fixed axes
	line, err = NewThreeDLine(vec(1, 2, 5), vec(0, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, "(y - 2)/3, x = 1, z = 5", line.SymmetricForm())
}

func TestThreeDLineEqual(t *testing.T) {
	a, err := NewThreeDLine(vec(1, 2, 3), vec(4, 5, 6))
	require.NoError(t, err)
	b, err := NewThreeDLine(vec(1, 2, 3), vec(4, 5, 6))
	require.NoError(t, err)
	c, err := NewThreeDLine(vec(1, 2, 3), vec(8, 10, 12))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	// Same geometric line, different representation
	assert.False(t, a.Equal(c))
}

func TestLineStrings(t *testing.T) {
	line, err := NewTwoDLine(1.5, -2)
	require.NoError(t, err)
	assert.Equal(t, "TwoDLine(slope: 1.5, intercept: -2)", line.String())

	line3, err := NewThreeDLine(vec(1, 2, 3), vec(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, "ThreeDLine(point: [1 2 3], direction: [4 5 6])", line3.String())
}
