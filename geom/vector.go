// Package geom is a small geometric algebra toolkit: n-dimensional vectors,
// 2D and 3D lines, planes, and spaces of lines, with construction-time
// validation and exact-equality predicates.
//
// All types are value objects: constructed once, validated up front, and
// immutable afterward except where a mutator is explicitly documented
// (Plane's setters, space membership). Nothing in the package locks; callers
// sharing a mutable instance across goroutines synchronize it themselves.
package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Vector is an ordered, fixed-length sequence of finite real components. The
// dimension is fixed at construction and every operation producing a new
// vector preserves finiteness, so a Vector in hand is always well-formed.
//
// Equality throughout this package is exact float comparison, not
// tolerance-based. Applications that hand us the same components twice must
// get equal vectors back, and we cannot tolerate loss of precision deciding,
// say, orthogonality of hand-constructed axes.
type Vector struct {
	comps []float64
}

// NewVector builds a vector from the given components. It fails if the
// sequence is empty or any component is NaN or infinite.
//
// This is the generic construction path. Building 2D or 3D vectors through it
// works, but logs a warning on the package channel (see SetLogger), since
// the dimension-checked constructors are the intended path for those.
func NewVector(components ...float64) (Vector, error) {
	v, err := newVector(components)
	if err != nil {
		return Vector{}, err
	}
	if v.Dimension() < 4 {
		logger().Warn("generic constructor used for low dimension",
			"dimension", v.Dimension())
	}
	return v, nil
}

// NewVector2D builds a two-dimensional vector. Same finiteness rules as
// NewVector, without the low-dimension warning.
func NewVector2D(x, y float64) (Vector, error) {
	return newVector([]float64{x, y})
}

// NewVector3D builds a three-dimensional vector. Same finiteness rules as
// NewVector, without the low-dimension warning.
func NewVector3D(x, y, z float64) (Vector, error) {
	return newVector([]float64{x, y, z})
}

func newVector(components []float64) (Vector, error) {
	if len(components) == 0 {
		return Vector{}, errors.Wrap(ErrInvalidVector, "no components")
	}
	for i, c := range components {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector{}, errors.Wrapf(ErrInvalidVector, "component %d is %v", i, c)
		}
	}
	comps := make([]float64, len(components))
	copy(comps, components)
	return Vector{comps: comps}, nil
}

// zeroVector returns the zero vector of the given dimension. Internal only;
// the exported constructors never reject zeros, so this just skips the scan.
func zeroVector(dimension int) Vector {
	return Vector{comps: make([]float64, dimension)}
}

// Dimension returns the number of components.
func (v Vector) Dimension() int {
	return len(v.comps)
}

// Component returns the i-th component. Panics if i is out of range, like a
// slice index would.
func (v Vector) Component(i int) float64 {
	return v.comps[i]
}

// Components returns a copy of the component sequence. Mutating the returned
// slice does not affect the vector.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.comps))
	copy(out, v.comps)
	return out
}

// Add returns the element-wise sum as a new vector.
func (v Vector) Add(other Vector) (Vector, error) {
	if v.Dimension() != other.Dimension() {
		return Vector{}, errors.Wrapf(ErrDimensionMismatch, "add %d-dimensional and %d-dimensional vectors",
			v.Dimension(), other.Dimension())
	}
	comps := make([]float64, len(v.comps))
	for i := range v.comps {
		comps[i] = v.comps[i] + other.comps[i]
	}
	return Vector{comps: comps}, nil
}

// Sub returns the element-wise difference as a new vector.
func (v Vector) Sub(other Vector) (Vector, error) {
	if v.Dimension() != other.Dimension() {
		return Vector{}, errors.Wrapf(ErrDimensionMismatch, "subtract %d-dimensional and %d-dimensional vectors",
			v.Dimension(), other.Dimension())
	}
	comps := make([]float64, len(v.comps))
	for i := range v.comps {
		comps[i] = v.comps[i] - other.comps[i]
	}
	return Vector{comps: comps}, nil
}

// Scale returns the vector multiplied by the scalar k.
func (v Vector) Scale(k float64) Vector {
	comps := make([]float64, len(v.comps))
	for i := range v.comps {
		comps[i] = v.comps[i] * k
	}
	return Vector{comps: comps}
}

// Dot returns the sum of element-wise products.
func (v Vector) Dot(other Vector) (float64, error) {
	if v.Dimension() != other.Dimension() {
		return 0, errors.Wrapf(ErrDimensionMismatch, "dot product of %d-dimensional and %d-dimensional vectors",
			v.Dimension(), other.Dimension())
	}
	sum := 0.0
	for i := range v.comps {
		sum += v.comps[i] * other.comps[i]
	}
	return sum, nil
}

// Magnitude returns the Euclidean length. It is zero only for the zero
// vector.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, c := range v.comps {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Normalize returns a new unit vector in the same direction. The receiver is
// unchanged. Normalizing the zero vector fails, since it has no direction.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}, errors.Wrap(ErrDegenerateVector, "normalize zero vector")
	}
	return v.Scale(1 / mag), nil
}

// IsZero reports whether every component is exactly 0.0.
func (v Vector) IsZero() bool {
	for _, c := range v.comps {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether the other vector has the same dimension and exactly
// equal components, pairwise.
func (v Vector) Equal(other Vector) bool {
	if v.Dimension() != other.Dimension() {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != other.comps[i] {
			return false
		}
	}
	return true
}

// Cross returns the cross product. Both vectors must be three-dimensional;
// the cross product is not defined for the other dimensions this package
// handles.
func (v Vector) Cross(other Vector) (Vector, error) {
	if v.Dimension() != 3 || other.Dimension() != 3 {
		return Vector{}, errors.Wrapf(ErrWrongDimension, "cross product of %d-dimensional and %d-dimensional vectors",
			v.Dimension(), other.Dimension())
	}
	a, b := v.comps, other.comps
	return Vector{comps: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(dimension: %d, components: %v)", v.Dimension(), v.comps)
}
