package searchdata_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func TestNewStructureSearchDataRejectsMismatchedLengths(t *testing.T) {
	_, err := searchdata.NewStructureSearchData(unitLattice(t), []xtal.Vec3{{}}, nil, nil)
	require.ErrorIs(t, err, searchdata.ErrAtomTypeCountMismatch)
}

func TestNewStructureSearchDataDefaultsToIdentityFactorGroup(t *testing.T) {
	data, err := searchdata.NewStructureSearchData(unitLattice(t), []xtal.Vec3{{0, 0, 0}}, []string{"Fe"}, nil)
	require.NoError(t, err)
	require.Len(t, data.StructureFactorGroup, 1)
	require.Equal(t, 1, data.NAtom)
}
