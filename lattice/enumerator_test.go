package lattice_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func cubic(t *testing.T, a float64) xtal.Lattice {
	t.Helper()
	m, err := matrix.Identity(3)
	require.NoError(t, err)
	m, err = matrix.Scale(m, a)
	require.NoError(t, err)
	l, err := xtal.NewLattice(m, 1e-8)
	require.NoError(t, err)
	return l
}

func TestEnumeratorRejectsBadVolumeRange(t *testing.T) {
	l1 := cubic(t, 4.0)
	_, err := lattice.NewEnumerator(l1, l1, lattice.WithVolumeRange(2, 1))
	require.ErrorIs(t, err, lattice.ErrInvalidInput)
}

func TestEnumeratorIdentityMappingIsFirstAndZeroCost(t *testing.T) {
	l1 := cubic(t, 4.0)
	e, err := lattice.NewEnumerator(l1, l1, lattice.WithVolumeRange(1, 1), lattice.WithReorientationBound(1))
	require.NoError(t, err)

	best, err := e.Next()
	require.NoError(t, err)
	require.InDelta(t, 0.0, best.Cost, 1e-9)
	require.Equal(t, xtal.IdentityMat3Int(), best.Mapping.T)
}

func TestEnumeratorExhaustsAfterAllCandidates(t *testing.T) {
	l1 := cubic(t, 4.0)
	e, err := lattice.NewEnumerator(l1, l1, lattice.WithVolumeRange(1, 1), lattice.WithReorientationBound(1))
	require.NoError(t, err)

	count := 0
	for {
		_, err := e.Next()
		if err != nil {
			require.ErrorIs(t, err, lattice.ErrExhausted)
			break
		}
		count++
		require.Less(t, count, 1000)
	}
	require.Greater(t, count, 0)
}

func TestEnumeratorEmitsAscendingCost(t *testing.T) {
	l1 := cubic(t, 4.0)
	child, err := matrix.Identity(3)
	require.NoError(t, err)
	child, err = matrix.Scale(child, 4.05) // slightly larger, several reorientations compete
	require.NoError(t, err)
	l2, err := xtal.NewLattice(child, 1e-8)
	require.NoError(t, err)

	e, err := lattice.NewEnumerator(l1, l2, lattice.WithVolumeRange(1, 1), lattice.WithReorientationBound(1))
	require.NoError(t, err)

	last := -1.0
	for {
		c, err := e.Next()
		if err != nil {
			break
		}
		require.GreaterOrEqual(t, c.Cost, last)
		last = c.Cost
	}
}

func TestEnumeratorRespectsMaxCost(t *testing.T) {
	l1 := cubic(t, 4.0)
	e, err := lattice.NewEnumerator(l1, l1, lattice.WithVolumeRange(1, 1), lattice.WithMaxCost(1e-12))
	require.NoError(t, err)

	best, err := e.Next()
	require.NoError(t, err)
	require.LessOrEqual(t, best.Cost, 1e-12)
}
