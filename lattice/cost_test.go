package lattice_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func identityF(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(3)
	require.NoError(t, err)
	return m
}

func TestStrainCostZeroForIdentity(t *testing.T) {
	m, err := lattice.NewMapping(identityF(t), xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	cost, err := lattice.StrainCost(m, 1e-10, 200)
	require.NoError(t, err)
	require.InDelta(t, 0.0, cost, 1e-9)
}

func TestStrainCostUniformDilationMatchesScenario2(t *testing.T) {
	f, err := matrix.Scale(identityF(t), 1.02)
	require.NoError(t, err)
	m, err := lattice.NewMapping(f, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	cost, err := lattice.StrainCost(m, 1e-10, 200)
	require.NoError(t, err)
	require.InDelta(t, 3*0.02*0.02/3.0, cost, 1e-9) // 4e-4
}

func TestStrainCostInvariantUnderRotation(t *testing.T) {
	// A pure rotation R has right-stretch U = sqrt(R^T R) = I, so strain
	// cost of F=R must equal the strain cost of F=I: zero.
	rot, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rot.MustSet(0, 0, 0)
	rot.MustSet(0, 1, -1)
	rot.MustSet(1, 0, 1)
	rot.MustSet(1, 1, 0)
	rot.MustSet(2, 2, 1)

	m, err := lattice.NewMapping(rot, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)
	cost, err := lattice.StrainCost(m, 1e-10, 200)
	require.NoError(t, err)
	require.InDelta(t, 0.0, cost, 1e-9)
}

func TestSymmetryBreakingCostWithEmptyFactorGroupMatchesIsotropic(t *testing.T) {
	f, err := matrix.Scale(identityF(t), 1.05)
	require.NoError(t, err)
	m, err := lattice.NewMapping(f, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	iso, err := lattice.StrainCost(m, 1e-10, 200)
	require.NoError(t, err)
	sym, err := lattice.SymmetryBreakingCost(m, nil, 1e-10, 200)
	require.NoError(t, err)
	require.InDelta(t, iso, sym, 1e-9)
}

func TestSymmetryBreakingCostZeroForIsotropicStrainUnderFullGroup(t *testing.T) {
	// A uniform dilation is invariant under conjugation by any orthogonal
	// group element, so its symmetry-breaking component is zero even
	// though the strain itself is nonzero.
	f, err := matrix.Scale(identityF(t), 1.05)
	require.NoError(t, err)
	m, err := lattice.NewMapping(f, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	rot, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rot.MustSet(0, 0, 0)
	rot.MustSet(0, 1, -1)
	rot.MustSet(1, 0, 1)
	rot.MustSet(1, 1, 0)
	rot.MustSet(2, 2, 1)
	fg := xtal.FactorGroup{{Rotation: identityF(t)}, {Rotation: rot}}

	sym, err := lattice.SymmetryBreakingCost(m, fg, 1e-10, 200)
	require.NoError(t, err)
	require.InDelta(t, 0.0, sym, 1e-9)
}
