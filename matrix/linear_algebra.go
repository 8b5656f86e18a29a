// SPDX-License-Identifier: MIT
// Package matrix: dense linear-algebra kernels.
//
// All kernels validate shapes with the centralized validators and return
// wrapped sentinels rather than panicking on caller-supplied input. Loop
// orders are fixed (row-major, ascending) so results are bit-for-bit
// reproducible across runs — the mapping search depends on that for
// deterministic tie-breaking.

package matrix

import (
	"fmt"
	"math"
)

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// Add returns a+b elementwise.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, wrap("Add", err)
	}
	out, _ := NewDense(a.Rows(), a.Cols())
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// Sub returns a-b elementwise.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, wrap("Sub", err)
	}
	out, _ := NewDense(a.Rows(), a.Cols())
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// Scale returns m scaled elementwise by alpha.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if m == nil {
		return nil, wrap("Scale", ErrBadShape)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out, nil
}

// Transpose returns the transpose of m.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, wrap("Transpose", ErrBadShape)
	}
	out, _ := NewDense(m.Cols(), m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out, nil
}

// Mul returns a*b using the standard O(n^3) triple loop.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, wrap("Mul", err)
	}
	out, _ := NewDense(a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols(); j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Dense, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, wrap("Identity", err)
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}
	return out, nil
}

// Inverse returns m^-1 via Gauss-Jordan elimination with partial pivoting.
// Returns ErrSingular if no pivot exceeds eps in magnitude.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, wrap("Inverse", err)
	}
	const eps = 1e-12
	n := m.Rows()

	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = m.data[i*n+j]
		}
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				best, pivot = v, r
			}
		}
		if best < eps {
			return nil, wrap("Inverse", ErrSingular)
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = aug[i][n+j]
		}
	}
	return out, nil
}

// Det returns the determinant of a square matrix via LU-free cofactor
// expansion for n<=3 and Gaussian elimination otherwise.
func Det(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, wrap("Det", err)
	}
	n := m.Rows()
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	case 3:
		a := m.data
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6]), nil
	}

	work := make([][]float64, n)
	for i := range work {
		work[i] = make([]float64, n)
		copy(work[i], m.data[i*n:(i+1)*n])
	}
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(work[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(work[r][col]); v > best {
				best, pivot = v, r
			}
		}
		if best < 1e-15 {
			return 0, nil
		}
		if pivot != col {
			work[col], work[pivot] = work[pivot], work[col]
			det = -det
		}
		det *= work[col][col]
		for r := col + 1; r < n; r++ {
			factor := work[r][col] / work[col][col]
			for j := col; j < n; j++ {
				work[r][j] -= factor * work[col][j]
			}
		}
	}
	return det, nil
}

// EigenSymmetric computes eigenvalues and eigenvectors of a symmetric matrix
// via the cyclic Jacobi rotation method. Returns eigenvalues (ascending) and
// a matrix whose columns are the corresponding unit eigenvectors.
//
// Fails with ErrEigenFailed if maxIter sweeps do not bring the off-diagonal
// norm below tol.
func EigenSymmetric(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, wrap("Eigen", err)
	}
	n := m.Rows()
	a := m.Clone()
	v, _ := Identity(n)

	offDiagNorm := func() float64 {
		sum := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				x := a.data[i*n+j]
				sum += 2 * x * x
			}
		}
		return math.Sqrt(sum)
	}

	for iter := 0; iter <= maxIter; iter++ {
		if offDiagNorm() < tol {
			vals := make([]float64, n)
			for i := 0; i < n; i++ {
				vals[i] = a.data[i*n+i]
			}
			sortEigenPairsAscending(vals, v)
			return vals, v, nil
		}
		if iter == maxIter {
			break
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				apq := a.data[p*n+q]
				if math.Abs(apq) < 1e-300 {
					continue
				}
				app, aqq := a.data[p*n+p], a.data[q*n+q]
				theta := (aqq - app) / (2 * apq)
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				a.data[p*n+p] = app - t*apq
				a.data[q*n+q] = aqq + t*apq
				a.data[p*n+q] = 0
				a.data[q*n+p] = 0

				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq := a.data[i*n+p], a.data[i*n+q]
					a.data[i*n+p] = c*aip - s*aiq
					a.data[p*n+i] = a.data[i*n+p]
					a.data[i*n+q] = s*aip + c*aiq
					a.data[q*n+i] = a.data[i*n+q]
				}
				for i := 0; i < n; i++ {
					vip, viq := v.data[i*n+p], v.data[i*n+q]
					v.data[i*n+p] = c*vip - s*viq
					v.data[i*n+q] = s*vip + c*viq
				}
			}
		}
	}
	return nil, nil, wrap("Eigen", ErrEigenFailed)
}

// sortEigenPairsAscending reorders eigenvalues (and matching eigenvector
// columns of v) into ascending order via a simple selection sort — n is at
// most a handful for this package's callers (3x3 strain tensors).
func sortEigenPairsAscending(vals []float64, v *Dense) {
	n := len(vals)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if vals[j] < vals[min] {
				min = j
			}
		}
		if min == i {
			continue
		}
		vals[i], vals[min] = vals[min], vals[i]
		for r := 0; r < n; r++ {
			v.data[r*n+i], v.data[r*n+min] = v.data[r*n+min], v.data[r*n+i]
		}
	}
}

// SqrtSymmetricPSD returns the unique symmetric positive-semidefinite square
// root U of a symmetric positive-semidefinite matrix m, via eigendecomposition:
// m = V D V^T => U = V sqrt(D) V^T.
func SqrtSymmetricPSD(m *Dense, tol float64, maxIter int) (*Dense, error) {
	vals, v, err := EigenSymmetric(m, tol, maxIter)
	if err != nil {
		return nil, wrap("SqrtSymmetricPSD", err)
	}
	n := m.Rows()
	sqrtD, _ := NewDense(n, n)
	for i, lambda := range vals {
		if lambda < 0 {
			if lambda < -tol {
				return nil, wrap("SqrtSymmetricPSD", ErrEigenFailed)
			}
			lambda = 0
		}
		sqrtD.data[i*n+i] = math.Sqrt(lambda)
	}
	vt, _ := Transpose(v)
	tmp, _ := Mul(v, sqrtD)
	return Mul(tmp, vt)
}
