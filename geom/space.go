package geom

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/geomspace/dbg"
)

// Spaces are homogeneous, value-unique collections of lines: a 2D space
// holds 2D lines and a 3D space holds 3D lines, so dimension compatibility
// is settled by the type system instead of checked at runtime.

// Space2D is an unordered collection of distinct 2D lines.
type Space2D struct {
	lines []TwoDLine
}

// NewSpace2D returns an empty 2D space.
func NewSpace2D() *Space2D {
	return &Space2D{}
}

// Add inserts the line, reporting whether it was actually added. Adding a
// line already present is a no-op returning false.
func (s *Space2D) Add(line TwoDLine) bool {
	if s.Contains(line) {
		return false
	}
	s.lines = append(s.lines, line)
	return true
}

// Remove deletes the line, reporting whether it was present.
func (s *Space2D) Remove(line TwoDLine) bool {
	for i, l := range s.lines {
		if l == line {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the line is in the space.
func (s *Space2D) Contains(line TwoDLine) bool {
	for _, l := range s.lines {
		if l == line {
			return true
		}
	}
	return false
}

// Len returns the number of lines in the space.
func (s *Space2D) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the contained lines. Order is not significant.
func (s *Space2D) Lines() []TwoDLine {
	out := make([]TwoDLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// SolveTwoDLines returns the intersection point of two 2D lines. Parallel
// distinct lines have no solution; identical lines have infinitely many.
// Otherwise the 2x2 system solves analytically:
// x = (i2-i1)/(s1-s2), y = s1*x + i1.
func SolveTwoDLines(l1, l2 TwoDLine) (Vector, error) {
	if l1.Slope == l2.Slope {
		if l1.Intercept == l2.Intercept {
			return Vector{}, errors.Wrapf(ErrInfiniteSolutions, "%v and %v are identical", l1, l2)
		}
		return Vector{}, errors.Wrapf(ErrNoSolution, "%v and %v are parallel", l1, l2)
	}
	x := (l2.Intercept - l1.Intercept) / (l1.Slope - l2.Slope)
	y := l1.At(x)
	return Vector{comps: []float64{x, y}}, nil
}

// Intersections returns the intersection points of every pair of contained
// lines, skipping parallel and coincident pairs. A point where three lines
// meet appears once per pair.
func (s *Space2D) Intersections() []Vector {
	var points []Vector
	for i := 0; i < len(s.lines); i++ {
		for j := i + 1; j < len(s.lines); j++ {
			point, err := SolveTwoDLines(s.lines[i], s.lines[j])
			if err != nil {
				continue
			}
			points = append(points, point)
		}
	}
	return points
}

// DebugString renders the space's contents for terminal debugging, one line
// per line, with readable names. Horizontal lines are colored cyan since
// they are the usual suspects in slope arithmetic; everything else is green.
func (s *Space2D) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Space2D(%d lines)\n", len(s.lines))
	for _, l := range s.lines {
		name := dbg.Name(l)
		if l.Slope == 0 {
			name = aurora.Cyan(name).String()
		} else {
			name = aurora.Green(name).String()
		}
		fmt.Fprintf(&b, "  %s: %v\n", name, l)
	}
	return b.String()
}

func (s *Space2D) String() string {
	return fmt.Sprintf("Space2D(lines: %d)", len(s.lines))
}

// Space3D is an unordered collection of distinct 3D lines. Uniqueness is
// representation equality (see ThreeDLine.Equal).
type Space3D struct {
	lines []ThreeDLine
}

// NewSpace3D returns an empty 3D space.
func NewSpace3D() *Space3D {
	return &Space3D{}
}

// Add inserts the line, reporting whether it was actually added.
func (s *Space3D) Add(line ThreeDLine) bool {
	if s.Contains(line) {
		return false
	}
	s.lines = append(s.lines, line)
	return true
}

// Remove deletes the line, reporting whether it was present.
func (s *Space3D) Remove(line ThreeDLine) bool {
	for i, l := range s.lines {
		if l.Equal(line) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the line is in the space.
func (s *Space3D) Contains(line ThreeDLine) bool {
	for _, l := range s.lines {
		if l.Equal(line) {
			return true
		}
	}
	return false
}

// Len returns the number of lines in the space.
func (s *Space3D) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the contained lines. Order is not significant.
func (s *Space3D) Lines() []ThreeDLine {
	out := make([]ThreeDLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Space3D) String() string {
	return fmt.Sprintf("Space3D(lines: %d)", len(s.lines))
}
