package geom

import "github.com/pkg/errors"

// Orthogonal reports whether the dot product of a and b is exactly zero.
// Like everything else in this package, the comparison is exact: (1, 0) and
// (0, 1) are orthogonal, a pair whose dot product merely rounds to zero is
// not.
func Orthogonal(a, b Vector) (bool, error) {
	dot, err := a.Dot(b)
	if err != nil {
		return false, err
	}
	return dot == 0.0, nil
}

// Parallel reports whether a and b point along the same line through the
// origin. This is direction-vector parallelism, not geometric-line
// parallelism: it compares component ratios, so (2, 4) and (1, 2) are
// parallel while (1, 2) and (2, 1) are not.
//
// The zero vector is treated as parallel to everything, including vectors of
// a different dimension. The zero vector has no direction, so this is a
// convention rather than a theorem, but it is the convention the rest of the
// package relies on (a zero basis vector is reported as "zero vector", never
// as a dimension problem).
func Parallel(a, b Vector) (bool, error) {
	if a.IsZero() || b.IsZero() {
		return true, nil
	}
	if a.Dimension() != b.Dimension() {
		return false, errors.Wrapf(ErrDimensionMismatch, "parallelism of %d-dimensional and %d-dimensional vectors",
			a.Dimension(), b.Dimension())
	}

	// The ratio a[i]/b[i] established at the first index where b is nonzero
	// must hold at every later index. An index where b is zero but a is not
	// breaks parallelism outright.
	ratio := 0.0
	established := false
	for i := 0; i < a.Dimension(); i++ {
		ac, bc := a.Component(i), b.Component(i)
		if bc == 0 {
			if ac != 0 {
				return false, nil
			}
			continue
		}
		r := ac / bc
		if !established {
			ratio = r
			established = true
			continue
		}
		if r != ratio {
			return false, nil
		}
	}
	return true, nil
}
