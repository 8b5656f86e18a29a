// SPDX-License-Identifier: MIT
// Package xtal: lattice basis arithmetic and Wigner-Seitz minimum-image
// reduction. Grounded on SearchData.cc's fast_pbc_displacement_cart and
// robust_pbc_displacement_cart, and on the general Voronoi minimum-image
// technique of testing displacement projections against the finitely many
// candidate lattice vectors within one shell of the origin.

package xtal

import "github.com/katalvlaran/xtalmap/matrix"

// Lattice is a 3x3 basis whose columns are the Cartesian lattice vectors
// a, b, c.
type Lattice struct {
	basis *matrix.Dense
	inv   *matrix.Dense
	tol   float64
}

// NewLattice constructs a Lattice from a column-vector basis. Returns
// ErrSingularLattice if the basis determinant is within tol of zero.
func NewLattice(basis *matrix.Dense, tol float64) (Lattice, error) {
	if basis == nil || basis.Rows() != 3 || basis.Cols() != 3 {
		return Lattice{}, ErrInvalidInput
	}
	if tol <= 0 {
		return Lattice{}, ErrInvalidInput
	}
	det, err := matrix.Det(basis)
	if err != nil {
		return Lattice{}, err
	}
	if det < 0 {
		det = -det
	}
	if det < tol {
		return Lattice{}, ErrSingularLattice
	}
	inv, err := matrix.Inverse(basis)
	if err != nil {
		return Lattice{}, ErrSingularLattice
	}
	return Lattice{basis: basis.Clone(), inv: inv, tol: tol}, nil
}

// Basis returns a defensive copy of the Cartesian basis matrix.
func (l Lattice) Basis() *matrix.Dense { return l.basis.Clone() }

// Tol returns the numerical tolerance the lattice was constructed with.
func (l Lattice) Tol() float64 { return l.tol }

// CartesianFromFractional maps a fractional coordinate to Cartesian: x = L*f.
func (l Lattice) CartesianFromFractional(frac Vec3) Vec3 {
	return matVec(l.basis, frac)
}

// FractionalFromCartesian maps a Cartesian coordinate to fractional: f = L^-1*x.
func (l Lattice) FractionalFromCartesian(cart Vec3) Vec3 {
	return matVec(l.inv, cart)
}

// Superlattice returns the lattice L*T for an integer transformation matrix
// T with a positive determinant.
func (l Lattice) Superlattice(t Mat3Int) (Lattice, error) {
	if t.Det() <= 0 {
		return Lattice{}, ErrNonPositiveDeterminant
	}
	sup, err := matrix.Mul(l.basis, t.ToDense())
	if err != nil {
		return Lattice{}, err
	}
	return NewLattice(sup, l.tol)
}

// Reoriented returns the lattice L*N for a unimodular integer matrix N.
func (l Lattice) Reoriented(n Mat3Int) (Lattice, error) {
	if !n.IsUnimodular() {
		return Lattice{}, ErrNotUnimodular
	}
	out, err := matrix.Mul(l.basis, n.ToDense())
	if err != nil {
		return Lattice{}, err
	}
	return NewLattice(out, l.tol)
}

// voronoiCandidates returns the lattice vectors L*g for every g in
// {-1,0,1}^3 \ {0}, up to 26 vectors — the standard candidate set for
// Wigner-Seitz minimum-image reduction of a triclinic cell.
func (l Lattice) voronoiCandidates() []Vec3 {
	out := make([]Vec3, 0, 26)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				out = append(out, l.CartesianFromFractional(Vec3{float64(i), float64(j), float64(k)}))
			}
		}
	}
	return out
}

// MaxVoronoiMeasure returns the largest value of (d.g)/(0.5*g.g) over the 26
// candidate lattice vectors g, and the g that attains it. A displacement d
// is inside the Voronoi (Wigner-Seitz) cell centered at the origin iff this
// measure is <= 1.
func (l Lattice) MaxVoronoiMeasure(d Vec3) (float64, Vec3) {
	best := 0.0
	var bestG Vec3
	for _, g := range l.voronoiCandidates() {
		denom := 0.5 * g.Dot(g)
		if denom == 0 {
			continue
		}
		measure := d.Dot(g) / denom
		if measure > best {
			best = measure
			bestG = g
		}
	}
	return best, bestG
}

// ReduceToVoronoiCell applies iterative Wigner-Seitz minimum-image reduction:
// while d projects outside the Voronoi cell onto some candidate g by more
// than 1+tol, subtract g. Grounded on SearchData.cc's
// robust_pbc_displacement_cart. maxIter bounds pathological non-convergence.
func (l Lattice) ReduceToVoronoiCell(d Vec3, maxIter int) (Vec3, error) {
	for iter := 0; iter < maxIter; iter++ {
		measure, g := l.MaxVoronoiMeasure(d)
		if measure <= 1+l.tol {
			return d, nil
		}
		d = d.Sub(g)
	}
	return Vec3{}, ErrNumericalTolerance
}

// FastMinimumImage returns the displacement reduced by rounding its
// fractional representation to the nearest lattice point — cheap, but only
// exact for near-cubic cells. Grounded on SearchData.cc's
// fast_pbc_displacement_cart.
func (l Lattice) FastMinimumImage(d Vec3) Vec3 {
	frac := l.FractionalFromCartesian(d)
	shift := frac.Round()
	shiftedFrac := frac.Sub(shift)
	return l.CartesianFromFractional(shiftedFrac)
}

func matVec(m *matrix.Dense, v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += m.MustAt(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}
