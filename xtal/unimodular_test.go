package xtal_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func TestEnumerateUnimodularRejectsBadBound(t *testing.T) {
	_, err := xtal.EnumerateUnimodular(0)
	require.ErrorIs(t, err, xtal.ErrInvalidInput)
}

func TestEnumerateUnimodularContainsIdentity(t *testing.T) {
	all, err := xtal.EnumerateUnimodular(1)
	require.NoError(t, err)
	found := false
	for _, m := range all {
		if m == xtal.IdentityMat3Int() {
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestEnumerateUnimodularAllAreUnimodular(t *testing.T) {
	all, err := xtal.EnumerateUnimodular(1)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for _, m := range all {
		require.True(t, m.IsUnimodular())
	}
}

func TestEnumerateProperUnimodularOnlyDetPlusOne(t *testing.T) {
	proper, err := xtal.EnumerateProperUnimodular(1)
	require.NoError(t, err)
	require.NotEmpty(t, proper)
	for _, m := range proper {
		require.Equal(t, 1, m.Det())
	}
}
