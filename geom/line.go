package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// The two line variants share no representation, so they are separate
// concrete types rather than implementations of some line interface. The
// only surface they have in common is the diagnostic String.

// TwoDLine is a 2D line in slope-intercept form, y = slope*x + intercept.
// This form cannot represent vertical lines; constructing one from two
// points with equal x-coordinates is a degenerate-input error.
type TwoDLine struct {
	Slope     float64
	Intercept float64
}

// NewTwoDLine builds a line from its slope and intercept. Both must be
// finite.
func NewTwoDLine(slope, intercept float64) (TwoDLine, error) {
	if !isFinite(slope) || !isFinite(intercept) {
		return TwoDLine{}, errors.Wrapf(ErrInvalidLine, "slope %v, intercept %v", slope, intercept)
	}
	return TwoDLine{Slope: slope, Intercept: intercept}, nil
}

// TwoDLineFromPoints builds the line through two distinct 2D points.
// Coincident points determine no line, and points sharing an x-coordinate
// determine a vertical line, which slope-intercept form cannot hold; both
// are degenerate-input errors.
func TwoDLineFromPoints(p1, p2 Vector) (TwoDLine, error) {
	if p1.Dimension() != 2 || p2.Dimension() != 2 {
		return TwoDLine{}, errors.Wrapf(ErrWrongDimension, "2D line through %d-dimensional and %d-dimensional points",
			p1.Dimension(), p2.Dimension())
	}
	if p1.Equal(p2) {
		return TwoDLine{}, errors.Wrap(ErrDegenerateInput, "coincident points")
	}
	if p1.Component(0) == p2.Component(0) {
		return TwoDLine{}, errors.Wrap(ErrDegenerateInput, "vertical line is not representable in slope-intercept form")
	}
	slope := (p2.Component(1) - p1.Component(1)) / (p2.Component(0) - p1.Component(0))
	intercept := p1.Component(1) - slope*p1.Component(0)
	return NewTwoDLine(slope, intercept)
}

// At returns the y value of the line at x.
func (l TwoDLine) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func (l TwoDLine) String() string {
	return fmt.Sprintf("TwoDLine(slope: %g, intercept: %g)", l.Slope, l.Intercept)
}

// ThreeDLine is a 3D line in parametric form, point + t*direction. The
// direction is never the zero vector.
type ThreeDLine struct {
	Point     Vector
	Direction Vector
}

// NewThreeDLine builds a line from a point on it and a direction vector.
// Both must be three-dimensional and the direction must be nonzero.
func NewThreeDLine(point, direction Vector) (ThreeDLine, error) {
	if point.Dimension() != 3 || direction.Dimension() != 3 {
		return ThreeDLine{}, errors.Wrapf(ErrWrongDimension, "3D line from %d-dimensional point and %d-dimensional direction",
			point.Dimension(), direction.Dimension())
	}
	if direction.IsZero() {
		return ThreeDLine{}, errors.Wrap(ErrDegenerateInput, "zero direction vector")
	}
	return ThreeDLine{Point: point, Direction: direction}, nil
}

// ThreeDLineFromPoints builds the line through two distinct 3D points, with
// direction p2 - p1.
func ThreeDLineFromPoints(p1, p2 Vector) (ThreeDLine, error) {
	if p1.Dimension() != 3 || p2.Dimension() != 3 {
		return ThreeDLine{}, errors.Wrapf(ErrWrongDimension, "3D line through %d-dimensional and %d-dimensional points",
			p1.Dimension(), p2.Dimension())
	}
	if p1.Equal(p2) {
		return ThreeDLine{}, errors.Wrap(ErrDegenerateInput, "coincident points")
	}
	direction, err := p2.Sub(p1)
	if err != nil {
		return ThreeDLine{}, err
	}
	return NewThreeDLine(p1, direction)
}

// Equal reports whether the other line has exactly the same point and
// direction. Note this is representation equality, not geometric identity:
// the same line described from a different point compares unequal.
func (l ThreeDLine) Equal(other ThreeDLine) bool {
	return l.Point.Equal(other.Point) && l.Direction.Equal(other.Direction)
}

var axisNames = [3]string{"x", "y", "z"}

// ParametricForm returns the three coordinate equations of the line,
// "x = x0 + dx*t" and so on, as display strings.
func (l ThreeDLine) ParametricForm() [3]string {
	var out [3]string
	for i := range out {
		out[i] = fmt.Sprintf("%s = %g + %g*t", axisNames[i], l.Point.Component(i), l.Direction.Component(i))
	}
	return out
}

// SymmetricForm returns the symmetric form of the line,
// (x - x0)/dx = (y - y0)/dy = (z - z0)/dz, as a display string. Axes whose
// direction component is zero cannot appear as ratios; they are rendered as
// fixed-coordinate equations ("z = 5") and appended after the ratios,
// comma-separated.
func (l ThreeDLine) SymmetricForm() string {
	var ratios, fixed []string
	for i := 0; i < 3; i++ {
		d := l.Direction.Component(i)
		p := l.Point.Component(i)
		if d == 0 {
			fixed = append(fixed, fmt.Sprintf("%s = %g", axisNames[i], p))
			continue
		}
		ratios = append(ratios, fmt.Sprintf("(%s - %g)/%g", axisNames[i], p, d))
	}
	parts := []string{}
	if len(ratios) > 0 {
		parts = append(parts, strings.Join(ratios, " = "))
	}
	parts = append(parts, fixed...)
	return strings.Join(parts, ", ")
}

func (l ThreeDLine) String() string {
	return fmt.Sprintf("ThreeDLine(point: %v, direction: %v)", l.Point.comps, l.Direction.comps)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
