package searchdata_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func onePrimSite(t *testing.T) *searchdata.PrimSearchData {
	t.Helper()
	sites := []xtal.Site{{CartesianCoord: xtal.Vec3{0, 0, 0}, AllowedOccupants: []string{"Fe"}}}
	prim, err := xtal.NewBasicStructure(unitLattice(t), sites)
	require.NoError(t, err)
	data, err := searchdata.NewPrimSearchData(prim, nil)
	require.NoError(t, err)
	return data
}

func TestNewLatticeMappingSearchDataIdentity(t *testing.T) {
	prim := onePrimSite(t)
	structure, err := searchdata.NewStructureSearchData(unitLattice(t), []xtal.Vec3{{0, 0, 0}}, []string{"Fe"}, nil)
	require.NoError(t, err)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	m, err := lattice.NewMapping(id, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	lmData, err := searchdata.NewLatticeMappingSearchData(prim, structure, m)
	require.NoError(t, err)
	require.Equal(t, xtal.IdentityMat3Int(), lmData.CombinedTransform)
	require.Len(t, lmData.SupercellSiteCoordinateCart, 1)
	require.Equal(t, xtal.Vec3{0, 0, 0}, lmData.SupercellSiteCoordinateCart[0])
	require.Equal(t, xtal.Vec3{0, 0, 0}, lmData.AtomCoordinateCartInSupercell[0])
}

func TestNewAtomMappingSearchDataBuildsCostMatrix(t *testing.T) {
	prim := onePrimSite(t)
	structure, err := searchdata.NewStructureSearchData(unitLattice(t), []xtal.Vec3{{0, 0, 0}}, []string{"Fe"}, nil)
	require.NoError(t, err)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	m, err := lattice.NewMapping(id, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	lmData, err := searchdata.NewLatticeMappingSearchData(prim, structure, m)
	require.NoError(t, err)

	amData, err := searchdata.NewAtomMappingSearchData(lmData, xtal.Vec3{}, false, 0)
	require.NoError(t, err)
	require.Equal(t, 1, amData.CostMatrix.Rows())
	v, _ := amData.CostMatrix.At(0, 0)
	require.InDelta(t, 0.0, v, 1e-12)
}
