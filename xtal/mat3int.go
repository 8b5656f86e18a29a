// SPDX-License-Identifier: MIT
// Package xtal: 3x3 integer matrices for transformation-to-superlattice (T)
// and reorientation (N) matrices. Kept as a dedicated fixed-size type
// (rather than matrix.Dense) so determinant and comparisons stay exact
// integer arithmetic — no floating-point drift in the combinatorial HNF
// and unimodular searches.

package xtal

import "github.com/katalvlaran/xtalmap/matrix"

// Mat3Int is a column-major-agnostic 3x3 integer matrix; Rows/Cols indexing
// matches matrix.Dense: entry (i,j) is row i, column j.
type Mat3Int [3][3]int

// IdentityMat3Int returns the 3x3 integer identity.
func IdentityMat3Int() Mat3Int {
	return Mat3Int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Det returns the determinant via cofactor expansion.
func (m Mat3Int) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsUnimodular reports whether |det(m)| == 1.
func (m Mat3Int) IsUnimodular() bool {
	d := m.Det()
	return d == 1 || d == -1
}

// Mul returns m*other.
func (m Mat3Int) Mul(other Mat3Int) Mat3Int {
	var out Mat3Int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// ToDense converts m to a *matrix.Dense of float64 entries.
func (m Mat3Int) ToDense() *matrix.Dense {
	d, _ := matrix.NewDense(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.MustSet(i, j, float64(m[i][j]))
		}
	}
	return d
}

// Less provides a fixed lexicographic ordering over row-major entries, used
// to pick a deterministic canonical representative among symmetry-equivalent
// candidates (spec section 4.D step 4, section 4.H).
func (m Mat3Int) Less(other Mat3Int) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m[i][j] != other[i][j] {
				return m[i][j] < other[i][j]
			}
		}
	}
	return false
}

// Equal reports exact entrywise equality.
func (m Mat3Int) Equal(other Mat3Int) bool {
	return m == other
}
