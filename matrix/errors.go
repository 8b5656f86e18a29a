// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors (MustAt or MustSet on an out-of-range index).

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or unexpected Inf value where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or unexpected Inf encountered")

	// ErrSingular is returned when a matrix has no inverse within tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates the Jacobi eigensolver failed to converge.
	ErrEigenFailed = errors.New("matrix: eigendecomposition failed to converge")
)
