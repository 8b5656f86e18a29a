// SPDX-License-Identifier: MIT
// Package xtal: sentinel error set. Callers use errors.Is; wrap with
// fmt.Errorf("%w", ...) at outer boundaries when extra context is needed.

package xtal

import "errors"

var (
	// ErrInvalidInput flags malformed arguments: a basis that is not 3x3,
	// a non-positive tolerance, an empty site list or a site with no
	// allowed occupants, a bound below 1, or a sublattice count, site
	// index or unit cell outside an IndexConverter's range.
	ErrInvalidInput = errors.New("xtal: invalid input")

	// ErrSingularLattice indicates a lattice basis with zero or
	// near-zero determinant, which has no inverse and cannot host
	// fractional-coordinate arithmetic.
	ErrSingularLattice = errors.New("xtal: singular lattice basis")

	// ErrNumericalTolerance indicates a bounded iterative reduction (Voronoi
	// minimum-image search) failed to converge within its iteration cap —
	// a sign of a pathologically small tolerance rather than a bug.
	ErrNumericalTolerance = errors.New("xtal: numerical reduction did not converge")

	// ErrNonPositiveDeterminant flags an integer transformation matrix
	// requested for superlattice construction with det <= 0.
	ErrNonPositiveDeterminant = errors.New("xtal: transformation determinant must be positive")

	// ErrNotUnimodular flags an integer matrix whose determinant is not ±1.
	ErrNotUnimodular = errors.New("xtal: matrix is not unimodular")
)
