package geom

import "github.com/pkg/errors"

// Every failure in this package bottoms out at one of these sentinels, so
// callers can classify with errors.Is without parsing messages. Call sites
// wrap them with context (the offending dimensions, the reason string, etc).
//
// Validity *inspection* is the one deliberate exception: CheckBasis returns a
// BasisCheck result, because an invalid basis is an expected answer, not a
// contract violation.
var (
	// ErrInvalidVector means a vector was constructed from an empty sequence
	// or one containing NaN or infinite components.
	ErrInvalidVector = errors.New("invalid vector")

	// ErrDimensionMismatch means an operation was attempted between vectors
	// of differing dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrWrongDimension means a fixed-dimension operation (cross product,
	// 2D/3D construction) was given a vector of the wrong dimension.
	ErrWrongDimension = errors.New("wrong dimension")

	// ErrDegenerateVector means the zero vector was used where a direction is
	// required (normalization).
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrInvalidLine means a line was constructed with a non-finite slope or
	// intercept.
	ErrInvalidLine = errors.New("invalid line")

	// ErrDegenerateInput means the inputs collapse the object being built:
	// coincident points, a zero direction vector, or two points that would
	// require a vertical slope-intercept line.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrEmptyInput means a predicate over a set of vectors was given none.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidBasis means a plane rejected its replacement basis vectors.
	// The wrapped message carries the reason string from the basis check.
	ErrInvalidBasis = errors.New("invalid basis")

	// ErrNoSolution means two 2D lines are parallel and distinct.
	ErrNoSolution = errors.New("no solution")

	// ErrInfiniteSolutions means two 2D lines are identical.
	ErrInfiniteSolutions = errors.New("infinite solutions")
)
