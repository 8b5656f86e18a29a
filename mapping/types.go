package mapping

import (
	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/xtal"
)

// AtomMapping is the assignment result for one lattice mapping and trial
// translation: which site received which atom (or synthetic vacancy) and
// by what minimum-image displacement.
type AtomMapping struct {
	// Displacement[l] is the minimum-image vector from supercell site l to
	// its assigned atom.
	Displacement []xtal.Vec3
	// Permutation[l] is the atom-or-vacancy index assigned to site l; a
	// bijection on [0, len(Permutation)).
	Permutation []int
	Translation xtal.Vec3
}

// NewAtomMapping validates that permutation is a bijection on
// [0, len(permutation)) before constructing the mapping.
func NewAtomMapping(displacement []xtal.Vec3, permutation []int, translation xtal.Vec3) (AtomMapping, error) {
	if len(displacement) != len(permutation) {
		return AtomMapping{}, ErrInvalidPermutation
	}
	if !isBijection(permutation) {
		return AtomMapping{}, ErrInvalidPermutation
	}
	return AtomMapping{
		Displacement: append([]xtal.Vec3(nil), displacement...),
		Permutation:  append([]int(nil), permutation...),
		Translation:  translation,
	}, nil
}

func isBijection(perm []int) bool {
	n := len(perm)
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// ScoredAtomMapping adds the assignment's total cost to an AtomMapping.
type ScoredAtomMapping struct {
	AtomMapping AtomMapping
	AtomCost    float64
}

// StructureMapping bundles a lattice mapping and an atom mapping.
type StructureMapping struct {
	LatticeMapping lattice.Mapping
	AtomMapping    AtomMapping
}

// ScoredStructureMapping adds the combined score S = alpha*C_lattice +
// beta*C_atom used by the search orchestrator's priority queue.
type ScoredStructureMapping struct {
	StructureMapping StructureMapping
	LatticeCost      float64
	AtomCost         float64
	Score            float64
}
