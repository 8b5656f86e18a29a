package mapping_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/mapping"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func TestNewAtomMappingRejectsNonBijection(t *testing.T) {
	_, err := mapping.NewAtomMapping([]xtal.Vec3{{}, {}}, []int{0, 0}, xtal.Vec3{})
	require.ErrorIs(t, err, mapping.ErrInvalidPermutation)
}

func TestNewAtomMappingRejectsMismatchedLengths(t *testing.T) {
	_, err := mapping.NewAtomMapping([]xtal.Vec3{{}}, []int{0, 1}, xtal.Vec3{})
	require.ErrorIs(t, err, mapping.ErrInvalidPermutation)
}

func TestNewAtomMappingAcceptsValidBijection(t *testing.T) {
	m, err := mapping.NewAtomMapping([]xtal.Vec3{{}, {}}, []int{1, 0}, xtal.Vec3{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, m.Permutation)
}
