package geom

import "github.com/pkg/errors"

// Reason strings reported by CheckBasis, in the order the rules are applied.
// First failure wins.
const (
	ReasonCountMismatch     = "count must equal dimension"
	ReasonDimensionMismatch = "dimension mismatch"
	ReasonZeroVector        = "zero vector"
	ReasonNotIndependent    = "not linearly independent"
)

// BasisCheck is the result of a basis validity check. An invalid basis is an
// expected, inspectable outcome, so it is reported here rather than as an
// error; errors are reserved for malformed input (an empty set).
type BasisCheck struct {
	Valid  bool
	Reason string
}

// CheckBasis reports whether the given vectors form a basis of the space
// whose dimension they live in: exactly n vectors of dimension n, none zero,
// no two parallel.
//
// The parallelism rule is a necessary but not sufficient independence test
// above two dimensions (three pairwise-non-parallel vectors can still be
// coplanar); a rank check would close that gap.
func CheckBasis(vectors ...Vector) (BasisCheck, error) {
	if len(vectors) == 0 {
		return BasisCheck{}, errors.Wrap(ErrEmptyInput, "check basis")
	}
	n := vectors[0].Dimension()
	if len(vectors) != n {
		return BasisCheck{Reason: ReasonCountMismatch}, nil
	}
	return checkIndependent(vectors), nil
}

// checkIndependent applies the membership rules shared by CheckBasis and
// Plane.SetBasisVectors: uniform dimension, no zero vector, no parallel
// pair. It does not require the count to match the dimension, which is what
// lets a plane embedded in 3D validate its two basis vectors.
func checkIndependent(vectors []Vector) BasisCheck {
	n := vectors[0].Dimension()
	for _, v := range vectors {
		if v.Dimension() != n {
			return BasisCheck{Reason: ReasonDimensionMismatch}
		}
	}
	for _, v := range vectors {
		if v.IsZero() {
			return BasisCheck{Reason: ReasonZeroVector}
		}
	}
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			// Dimensions are uniform and zero vectors are already ruled out,
			// so Parallel cannot fail here.
			parallel, _ := Parallel(vectors[i], vectors[j])
			if parallel {
				return BasisCheck{Reason: ReasonNotIndependent}
			}
		}
	}
	return BasisCheck{Valid: true}
}
