package xtal_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func TestIdentityOpIsNoOp(t *testing.T) {
	op := xtal.IdentityOp(4)
	v := xtal.Vec3{1, 2, 3}
	require.Equal(t, v, op.ApplyToLatticeVector(v))
	require.Equal(t, v, op.ApplyToPoint(v))
	for i, p := range op.SitePerm {
		require.Equal(t, i, p)
	}
}

func TestInternalTranslationsFiltersNonIdentityOps(t *testing.T) {
	pureTranslation := xtal.IdentityOp(2)
	pureTranslation.Translation = xtal.Vec3{0.5, 0, 0}

	rotated := xtal.IdentityOp(2)
	rotated.SitePerm = []int{1, 0}

	fg := xtal.FactorGroup{xtal.IdentityOp(2), pureTranslation, rotated}
	translations := fg.InternalTranslations()
	require.Len(t, translations, 2)
}

func TestApplyToMat3IntConjugatesByIdentity(t *testing.T) {
	op := xtal.IdentityOp(1)
	m := xtal.Mat3Int{{2, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	out, err := op.ApplyToMat3Int(m)
	require.NoError(t, err)
	require.Equal(t, m, out)
}
