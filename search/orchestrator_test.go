package search_test

import (
	"testing"

	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/search"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
	"github.com/stretchr/testify/require"
)

func unitLattice(t *testing.T) xtal.Lattice {
	t.Helper()
	basis, err := matrix.Identity(3)
	require.NoError(t, err)
	l, err := xtal.NewLattice(basis, 1e-10)
	require.NoError(t, err)
	return l
}

func onePrim(t *testing.T) *searchdata.PrimSearchData {
	t.Helper()
	sites := []xtal.Site{{CartesianCoord: xtal.Vec3{0, 0, 0}, AllowedOccupants: []string{"Fe"}}}
	prim, err := xtal.NewBasicStructure(unitLattice(t), sites)
	require.NoError(t, err)
	data, err := searchdata.NewPrimSearchData(prim, nil)
	require.NoError(t, err)
	return data
}

func identicalStructure(t *testing.T) *searchdata.StructureSearchData {
	t.Helper()
	data, err := searchdata.NewStructureSearchData(unitLattice(t), []xtal.Vec3{{0, 0, 0}}, []string{"Fe"}, nil)
	require.NoError(t, err)
	return data
}

func TestMapStructuresIdentityFindsZeroCostMapping(t *testing.T) {
	prim := onePrim(t)
	structure := identicalStructure(t)

	result, err := search.MapStructures(prim, structure,
		search.WithKBest(3),
		search.WithVolumeRange(1, 1),
		search.WithReorientationBound(1),
	)
	require.NoError(t, err)
	require.NotEmpty(t, result.Mappings)
	require.InDelta(t, 0.0, result.Mappings[0].Score, 1e-9)
	require.InDelta(t, 0.0, result.Mappings[0].LatticeCost, 1e-9)
	require.InDelta(t, 0.0, result.Mappings[0].AtomCost, 1e-9)
}

func TestMapStructuresRejectsInvalidOptions(t *testing.T) {
	prim := onePrim(t)
	structure := identicalStructure(t)

	_, err := search.MapStructures(prim, structure, search.WithKBest(0))
	require.ErrorIs(t, err, search.ErrInvalidInput)
}

func TestMapStructuresResultsAscendingByScore(t *testing.T) {
	prim := onePrim(t)
	structure := identicalStructure(t)

	result, err := search.MapStructures(prim, structure,
		search.WithKBest(5),
		search.WithVolumeRange(1, 2),
		search.WithReorientationBound(1),
	)
	require.NoError(t, err)
	for i := 1; i < len(result.Mappings); i++ {
		require.LessOrEqual(t, result.Mappings[i-1].Score, result.Mappings[i].Score)
	}
}

func TestMapLatticesIdentityYieldsZeroCost(t *testing.T) {
	prim := onePrim(t)
	structure := identicalStructure(t)

	candidates, _, err := search.MapLattices(prim, structure,
		search.WithKBest(1),
		search.WithVolumeRange(1, 1),
		search.WithReorientationBound(1),
	)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.InDelta(t, 0.0, candidates[0].Cost, 1e-9)
}

// cubicPointGroupRotations returns the 48 signed-permutation rotations of
// the cubic point group as bare 3x3 matrices: the members of
// EnumerateUnimodular(1) with exactly three nonzero entries, which for
// determinant +-1 means one nonzero entry per row and per column.
func cubicPointGroupRotations(t *testing.T) []*matrix.Dense {
	t.Helper()
	ms, err := xtal.EnumerateUnimodular(1)
	require.NoError(t, err)
	out := make([]*matrix.Dense, 0, 48)
	for _, m := range ms {
		nonzero := 0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if m[i][j] != 0 {
					nonzero++
				}
			}
		}
		if nonzero == 3 {
			out = append(out, m.ToDense())
		}
	}
	return out
}

// twoSiteSwapFactorGroup builds the factor group of a two-site structure
// with sites at (0,0,0) and (0.5,0.5,0.5): the full 48-element cubic point
// group (which fixes both sites individually, since permuting or negating
// three equal 0.5 components lands on (0.5,0.5,0.5) again modulo the
// lattice) plus the body-diagonal translation that swaps the two sites.
func twoSiteSwapFactorGroup(t *testing.T) xtal.FactorGroup {
	t.Helper()
	fg := make(xtal.FactorGroup, 0, 49)
	for _, r := range cubicPointGroupRotations(t) {
		fg = append(fg, xtal.SymOp{Rotation: r, SitePerm: []int{0, 1}})
	}
	fg = append(fg, xtal.SymOp{Rotation: mustIdentityDense(t), Translation: xtal.Vec3{0.5, 0.5, 0.5}, SitePerm: []int{1, 0}})
	return fg
}

func mustIdentityDense(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(3)
	require.NoError(t, err)
	return m
}

func twoSitePrim(t *testing.T, fg xtal.FactorGroup) *searchdata.PrimSearchData {
	t.Helper()
	sites := []xtal.Site{
		{CartesianCoord: xtal.Vec3{0, 0, 0}, AllowedOccupants: []string{"Fe"}},
		{CartesianCoord: xtal.Vec3{0.5, 0.5, 0.5}, AllowedOccupants: []string{"Fe"}},
	}
	prim, err := xtal.NewBasicStructure(unitLattice(t), sites)
	require.NoError(t, err)
	data, err := searchdata.NewPrimSearchData(prim, fg)
	require.NoError(t, err)
	return data
}

func twoAtomStructure(t *testing.T, fg xtal.FactorGroup) *searchdata.StructureSearchData {
	t.Helper()
	data, err := searchdata.NewStructureSearchData(unitLattice(t),
		[]xtal.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}, []string{"Fe", "Fe"}, fg)
	require.NoError(t, err)
	return data
}

// TestMapStructuresCollapsesSymmetryEquivalentMappingsToOne exercises
// scenario 6 (symmetry deduplication) end to end: two raw candidates —
// translation (0,0,0) with the identity site permutation, and translation
// (0.5,0.5,0.5) with the swapped permutation — are both physically the same
// mapping under the structure's own factor group, and both score zero, so
// without correct (g,h) canonicalization both would survive as separate
// results. The only other result is the swapped assignment at translation
// (0,0,0), which moves each atom by half the body diagonal (score
// 2 x 0.75 = 1.5) and is not equivalent to the zero-cost mapping.
func TestMapStructuresCollapsesSymmetryEquivalentMappingsToOne(t *testing.T) {
	fg := twoSiteSwapFactorGroup(t)
	prim := twoSitePrim(t, fg)
	structure := twoAtomStructure(t, fg)

	result, err := search.MapStructures(prim, structure,
		search.WithKBest(10),
		search.WithVolumeRange(1, 1),
		search.WithReorientationBound(1),
	)
	require.NoError(t, err)
	require.Len(t, result.Mappings, 2)
	require.InDelta(t, 0.0, result.Mappings[0].Score, 1e-9)
	require.InDelta(t, 1.5, result.Mappings[1].Score, 1e-9)
}

func TestMapAtomsIdentityYieldsZeroCost(t *testing.T) {
	prim := onePrim(t)
	structure := identicalStructure(t)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	m, err := lattice.NewMapping(id, xtal.IdentityMat3Int(), xtal.IdentityMat3Int())
	require.NoError(t, err)

	lmData, err := searchdata.NewLatticeMappingSearchData(prim, structure, m)
	require.NoError(t, err)

	results, _, err := search.MapAtoms(lmData, search.WithKBest(2))
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.InDelta(t, 0.0, results[0].AtomCost, 1e-9)
}
