// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Facades exist so call sites read as intention ("symmetric part of F")
// rather than a chain of kernel calls. Each facade delegates to the
// canonical kernel; no logic is duplicated here.

package matrix

// RightStretch returns the symmetric positive-semidefinite right-stretch
// tensor U = sqrt(F^T F) of a deformation gradient F, via eigendecomposition
// of the symmetric matrix F^T F.
func RightStretch(f *Dense, tol float64, maxIter int) (*Dense, error) {
	ft, err := Transpose(f)
	if err != nil {
		return nil, wrap("RightStretch", err)
	}
	ftf, err := Mul(ft, f)
	if err != nil {
		return nil, wrap("RightStretch", err)
	}
	return SqrtSymmetricPSD(ftf, tol, maxIter)
}

// FrobeniusNormSquared returns sum_ij m(i,j)^2.
func FrobeniusNormSquared(m *Dense) float64 {
	sum := 0.0
	for _, x := range m.data {
		sum += x * x
	}
	return sum
}

// Trace returns the sum of the diagonal of a square matrix, or 0 if m is nil
// or non-square.
func Trace(m *Dense) float64 {
	if m == nil || m.Rows() != m.Cols() {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.Rows(); i++ {
		sum += m.data[i*m.cols+i]
	}
	return sum
}
