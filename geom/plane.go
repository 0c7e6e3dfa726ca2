package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Plane is a 2D affine subspace embedded in 3D, defined by an origin point
// and two linearly independent basis vectors. A freshly constructed plane is
// the xy-plane through the origin.
//
// Plane is the one mutable type in the package: the setters replace the
// origin and basis, re-validating on the way in, so the independence
// invariant holds between any two calls. No internal locking; callers
// sharing a plane across goroutines synchronize it themselves.
type Plane struct {
	origin Vector
	basis  [2]Vector
}

// PlaneEquation holds the coefficients of the implicit plane equation
// Ax + By + Cz + D = 0. A, B, C are the components of the plane's normal.
type PlaneEquation struct {
	A, B, C, D float64
}

// NewPlane returns the xy-plane: origin at zero, standard basis vectors
// (1, 0, 0) and (0, 1, 0).
func NewPlane() *Plane {
	e1 := Vector{comps: []float64{1, 0, 0}}
	e2 := Vector{comps: []float64{0, 1, 0}}
	return &Plane{
		origin: zeroVector(3),
		basis:  [2]Vector{e1, e2},
	}
}

// Origin returns the plane's origin point.
func (p *Plane) Origin() Vector {
	return p.origin
}

// BasisVectors returns the plane's two basis vectors.
func (p *Plane) BasisVectors() [2]Vector {
	return p.basis
}

// SetOrigin replaces the origin. The point must be three-dimensional; any
// 3D point is accepted.
func (p *Plane) SetOrigin(point Vector) error {
	if point.Dimension() != 3 {
		return errors.Wrapf(ErrWrongDimension, "plane origin of dimension %d", point.Dimension())
	}
	p.origin = point
	return nil
}

// SetBasisVectors replaces the basis pair. The vectors must be
// three-dimensional, nonzero, and non-parallel; otherwise the plane is left
// unchanged and the error carries the reason the pair was rejected.
//
// Note the check is pair independence, not a full basis of 3-space: two
// vectors can never satisfy CheckBasis in three dimensions, but two
// independent ones are exactly what an embedded plane needs.
func (p *Plane) SetBasisVectors(b0, b1 Vector) error {
	check := checkIndependent([]Vector{b0, b1})
	if !check.Valid {
		return errors.Wrap(ErrInvalidBasis, check.Reason)
	}
	if b0.Dimension() != 3 {
		return errors.Wrapf(ErrWrongDimension, "plane basis of dimension %d", b0.Dimension())
	}
	p.basis = [2]Vector{b0, b1}
	return nil
}

// EquationParameters derives the implicit equation Ax + By + Cz + D = 0 from
// the current origin and basis. The normal is cross(basis0, basis1), so
// A, B, C are its components and D = -(A*x0 + B*y0 + C*z0). Recomputed on
// every call; nothing is cached.
func (p *Plane) EquationParameters() PlaneEquation {
	// The setters maintain the invariants, so the cross product cannot fail.
	normal, _ := p.basis[0].Cross(p.basis[1])
	a, b, c := normal.Component(0), normal.Component(1), normal.Component(2)
	d := -(a*p.origin.Component(0) + b*p.origin.Component(1) + c*p.origin.Component(2))
	return PlaneEquation{A: a, B: b, C: c, D: d}
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane(origin: %v, basis: [%v %v])",
		p.origin.comps, p.basis[0].comps, p.basis[1].comps)
}

func (e PlaneEquation) String() string {
	return fmt.Sprintf("PlaneEquation(A: %g, B: %g, C: %g, D: %g)", e.A, e.B, e.C, e.D)
}
