// Package lattice: strain cost conventions. Both derive from the symmetric
// right-stretch tensor U = sqrt(F^T F) of a mapping's deformation gradient;
// they differ only in whether the Biot strain E = U - I is normed directly
// (isotropic) or first had its point-group-invariant part subtracted off
// (symmetry-breaking), so that a strain the prim's own symmetry cannot
// distinguish from a uniform dilation contributes nothing to the
// symmetry-breaking cost.

package lattice

import (
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// StrainCost returns the isotropic strain cost (1/3)*trace((U-I)^2), which
// for symmetric U-I equals the Frobenius norm squared of the Biot strain
// divided by 3. Non-negative, zero iff U == I.
func StrainCost(m Mapping, tol float64, maxIter int) (float64, error) {
	e, err := biotStrain(m.F, tol, maxIter)
	if err != nil {
		return 0, err
	}
	return matrix.FrobeniusNormSquared(e) / 3.0, nil
}

// SymmetryBreakingCost projects the Biot strain onto the subspace that
// breaks the prim factor group's symmetry (i.e. subtracts the group average
// of the conjugated strain, which is the point-group-invariant part) and
// norms the remainder the same way as StrainCost. With an empty factor
// group this is identical to StrainCost.
func SymmetryBreakingCost(m Mapping, factorGroup xtal.FactorGroup, tol float64, maxIter int) (float64, error) {
	e, err := biotStrain(m.F, tol, maxIter)
	if err != nil {
		return 0, err
	}
	if len(factorGroup) == 0 {
		return matrix.FrobeniusNormSquared(e) / 3.0, nil
	}

	avg, _ := matrix.NewDense(3, 3)
	for _, op := range factorGroup {
		rt, err := matrix.Transpose(op.Rotation)
		if err != nil {
			return 0, err
		}
		tmp, err := matrix.Mul(rt, e)
		if err != nil {
			return 0, err
		}
		conj, err := matrix.Mul(tmp, op.Rotation)
		if err != nil {
			return 0, err
		}
		avg, err = matrix.Add(avg, conj)
		if err != nil {
			return 0, err
		}
	}
	avg, err = matrix.Scale(avg, 1.0/float64(len(factorGroup)))
	if err != nil {
		return 0, err
	}
	breaking, err := matrix.Sub(e, avg)
	if err != nil {
		return 0, err
	}
	return matrix.FrobeniusNormSquared(breaking) / 3.0, nil
}

func biotStrain(f *matrix.Dense, tol float64, maxIter int) (*matrix.Dense, error) {
	u, err := matrix.RightStretch(f, tol, maxIter)
	if err != nil {
		return nil, err
	}
	id, err := matrix.Identity(3)
	if err != nil {
		return nil, err
	}
	return matrix.Sub(u, id)
}
