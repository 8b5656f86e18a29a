// SPDX-License-Identifier: MIT
// Package matrix: shared shape validators used by the linear-algebra kernels.

package matrix

// ValidateSquare returns ErrNonSquare unless m is r x r for some r > 0.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrBadShape
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}
	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have
// identical dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrBadShape
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Cols() == b.Rows().
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrBadShape
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}
	return nil
}
