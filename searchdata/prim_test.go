package searchdata_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func unitLattice(t *testing.T) xtal.Lattice {
	t.Helper()
	m, err := matrix.Identity(3)
	require.NoError(t, err)
	l, err := xtal.NewLattice(m, 1e-8)
	require.NoError(t, err)
	return l
}

func TestNewPrimSearchDataDerivesFields(t *testing.T) {
	sites := []xtal.Site{
		{CartesianCoord: xtal.Vec3{0, 0, 0}, AllowedOccupants: []string{"Fe"}},
		{CartesianCoord: xtal.Vec3{0.5, 0.5, 0.5}, AllowedOccupants: []string{"Fe", "Va"}},
	}
	prim, err := xtal.NewBasicStructure(unitLattice(t), sites)
	require.NoError(t, err)

	data, err := searchdata.NewPrimSearchData(prim, nil)
	require.NoError(t, err)
	require.Equal(t, 2, data.NPrimSite)
	require.True(t, data.VacanciesAllowed)
	require.Len(t, data.PrimSiteCoordinateCart, 2)
}
