// SPDX-License-Identifier: MIT
// Package lattice: fixed-transform lattice mapping, grounded on
// map_lattices_without_reorientation from the collaborator library this
// module's enumerator is otherwise built to replace. Useful when the
// caller already knows the supercell transform (e.g. from a prior
// relaxation) and only needs the deformation gradient it implies, without
// paying for a reorientation search.
package lattice

import (
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// MapLatticesWithoutReorientation computes the deformation gradient F
// implied by F*l1*t = l2 for a caller-supplied transformation matrix t
// (identity if the two lattices already agree in volume and orientation),
// skipping the reorientation search NewEnumerator performs.
func MapLatticesWithoutReorientation(l1, l2 xtal.Lattice, t xtal.Mat3Int) (Mapping, error) {
	if t.Det() <= 0 {
		return Mapping{}, ErrInvalidInput
	}
	sup, err := l1.Superlattice(t)
	if err != nil {
		return Mapping{}, err
	}
	supInv, err := matrix.Inverse(sup.Basis())
	if err != nil {
		return Mapping{}, err
	}
	f, err := matrix.Mul(l2.Basis(), supInv)
	if err != nil {
		return Mapping{}, err
	}
	return NewMapping(f, t, xtal.IdentityMat3Int())
}
