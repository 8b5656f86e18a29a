// Package atommap: trial translation enumeration, grounded on
// SearchData.cc's make_trial_translations and is_new_unique_translation.

package atommap

import "github.com/katalvlaran/xtalmap/xtal"

// TrialTranslations chooses the atom with the fewest allowed prim sites
// (ties broken by lowest index), generates one candidate translation per
// allowed site for that atom, and deduplicates the candidates modulo the
// prim's internal (pure-translation) symmetry operations and its lattice
// vectors: two translations that differ by an internal translation plus a
// prim lattice vector reach the same set of assignments, so only one
// representative of each class is kept.
//
// Returns ErrInvalidInput if atomCoords/atomTypes lengths differ, the
// slices are empty, or tol is not positive.
func TrialTranslations(
	primSites []xtal.Site,
	primLattice xtal.Lattice,
	internalTranslations []xtal.Vec3,
	atomCoords []xtal.Vec3,
	atomTypes []string,
	tol float64,
) ([]xtal.Vec3, error) {
	if len(atomCoords) != len(atomTypes) || len(atomCoords) == 0 || len(primSites) == 0 || tol <= 0 {
		return nil, ErrInvalidInput
	}

	best := -1
	bestCount := -1
	for a, species := range atomTypes {
		count := 0
		for _, s := range primSites {
			if s.AllowsSpecies(species) {
				count++
			}
		}
		if best == -1 || count < bestCount {
			best, bestCount = a, count
		}
	}
	if bestCount == 0 {
		return nil, ErrAtomRowAllForbidden
	}

	candidates := make([]xtal.Vec3, 0, bestCount)
	for _, s := range primSites {
		if s.AllowsSpecies(atomTypes[best]) {
			candidates = append(candidates, s.CartesianCoord.Sub(atomCoords[best]))
		}
	}

	shifts := make([]xtal.Vec3, 0, len(internalTranslations)+1)
	shifts = append(shifts, xtal.Vec3{})
	shifts = append(shifts, internalTranslations...)

	var accepted []xtal.Vec3
	for _, cand := range candidates {
		if !isNewUniqueTranslation(cand, accepted, shifts, primLattice, tol) {
			continue
		}
		accepted = append(accepted, cand)
	}
	return accepted, nil
}

func isNewUniqueTranslation(cand xtal.Vec3, accepted, shifts []xtal.Vec3, primLattice xtal.Lattice, tol float64) bool {
	for _, u := range shifts {
		shifted := cand.Add(u)
		for _, prior := range accepted {
			diff := shifted.Sub(prior)
			frac := primLattice.FractionalFromCartesian(diff)
			if frac.IsInteger(tol) {
				return false
			}
		}
	}
	return true
}
