// SPDX-License-Identifier: MIT
// Package xtal: Hermite Normal Form enumeration of integer superlattice
// transformation matrices of a given determinant. Follows the standard
// Hart-Forcade parametrization used for superlattice enumeration: every
// integer matrix with a fixed positive determinant is equivalent, under
// right-multiplication by a matrix in GL(3,Z) (recombining its columns,
// which leaves the superlattice unchanged), to exactly one lower
// triangular matrix
//
//	[ a 0 0 ]
//	[ b d 0 ]
//	[ c e f ]
//
// with a*d*f = det, a,d,f > 0, 0 <= b < d, 0 <= c < f, 0 <= e < f. No pack
// example enumerates HNFs; this parametrization is this module's own Open
// Question resolution (see the module's design notes).

package xtal

// EnumerateHNF returns every lower-triangular Hermite Normal Form matrix
// with determinant det, in a fixed deterministic order (ascending a, then
// d, then b, then f, then c, then e). Returns ErrNonPositiveDeterminant if
// det <= 0.
func EnumerateHNF(det int) ([]Mat3Int, error) {
	if det <= 0 {
		return nil, ErrNonPositiveDeterminant
	}
	var out []Mat3Int
	for a := 1; a <= det; a++ {
		if det%a != 0 {
			continue
		}
		rem := det / a
		for d := 1; d <= rem; d++ {
			if rem%d != 0 {
				continue
			}
			f := rem / d
			for b := 0; b < d; b++ {
				for c := 0; c < f; c++ {
					for e := 0; e < f; e++ {
						out = append(out, Mat3Int{
							{a, 0, 0},
							{b, d, 0},
							{c, e, f},
						})
					}
				}
			}
		}
	}
	return out, nil
}
