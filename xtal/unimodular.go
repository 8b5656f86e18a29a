// SPDX-License-Identifier: MIT
// Package xtal: bounded enumeration of unimodular integer 3x3 matrices,
// used to search lattice reorientations N. GL(3,Z) is infinite, so a
// complete search is impossible; entries are bounded to a small range
// (spec section 9's lattice-mapping enumeration is explicitly allowed to
// trade completeness for a bounded search, per the module's design notes).

package xtal

// EnumerateUnimodular returns every integer 3x3 matrix with entries in
// [-bound, bound] and determinant exactly ±1, in a fixed deterministic
// order (row-major ascending entry order, matching Mat3Int.Less). Returns
// ErrInvalidInput if bound < 1.
func EnumerateUnimodular(bound int) ([]Mat3Int, error) {
	if bound < 1 {
		return nil, ErrInvalidInput
	}
	var out []Mat3Int
	var m Mat3Int
	var rec func(idx int)
	rec = func(idx int) {
		if idx == 9 {
			if m.IsUnimodular() {
				out = append(out, m)
			}
			return
		}
		row, col := idx/3, idx%3
		for v := -bound; v <= bound; v++ {
			m[row][col] = v
			rec(idx + 1)
		}
	}
	rec(0)
	return out, nil
}

// EnumerateProperUnimodular is EnumerateUnimodular restricted to
// determinant +1 (orientation-preserving reorientations), the common case
// when the search should not also flip chirality.
func EnumerateProperUnimodular(bound int) ([]Mat3Int, error) {
	all, err := EnumerateUnimodular(bound)
	if err != nil {
		return nil, err
	}
	var out []Mat3Int
	for _, m := range all {
		if m.Det() == 1 {
			out = append(out, m)
		}
	}
	return out, nil
}
