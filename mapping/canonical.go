// Package mapping: symmetry canonicalization (component H), grounded on
// the module's own equivalence rule: two structure mappings are equivalent
// if some (g, h) in the combined prim x structure factor group carries one
// onto the other up to a prim lattice translation. Canonicalize searches
// every (g, h) image and keeps the lexicographically smallest
// (transform, permutation, translation) triple as the fingerprint.

package mapping

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/xtal"
)

// Fingerprint is the canonical (T*N, permutation, translation-mod-lattice)
// triple used to deduplicate structure mappings.
type Fingerprint struct {
	Transform       xtal.Mat3Int
	Permutation     []int
	TranslationFrac xtal.Vec3
}

// Less gives Fingerprint a fixed total order: transform first, then
// permutation lexicographically, then fractional translation
// lexicographically.
func (f Fingerprint) Less(other Fingerprint) bool {
	if !f.Transform.Equal(other.Transform) {
		return f.Transform.Less(other.Transform)
	}
	for i := range f.Permutation {
		if i >= len(other.Permutation) {
			return false
		}
		if f.Permutation[i] != other.Permutation[i] {
			return f.Permutation[i] < other.Permutation[i]
		}
	}
	for i := 0; i < 3; i++ {
		if f.TranslationFrac[i] != other.TranslationFrac[i] {
			return f.TranslationFrac[i] < other.TranslationFrac[i]
		}
	}
	return false
}

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if !f.Transform.Equal(other.Transform) || len(f.Permutation) != len(other.Permutation) {
		return false
	}
	for i := range f.Permutation {
		if f.Permutation[i] != other.Permutation[i] {
			return false
		}
	}
	return f.TranslationFrac == other.TranslationFrac
}

// Key returns a comparable representation of the fingerprint suitable for
// use as a map key, since Permutation's slice field makes Fingerprint
// itself non-comparable.
func (f Fingerprint) Key() string {
	return fmt.Sprintf("%v|%v|%v", f.Transform, f.Permutation, f.TranslationFrac)
}

// Canonicalize computes sm's fingerprint by minimizing over every (g, h)
// image under the prim and structure factor groups. tol governs the
// fractional-coordinate wrap into [0,1).
func Canonicalize(sm StructureMapping, primLattice xtal.Lattice, primFG, structureFG xtal.FactorGroup, tol float64) Fingerprint {
	best := fingerprintFor(sm, xtal.IdentityOp(len(sm.AtomMapping.Permutation)), xtal.IdentityOp(len(sm.AtomMapping.Permutation)), primLattice, tol)

	gs := primFG
	if len(gs) == 0 {
		gs = xtal.FactorGroup{xtal.IdentityOp(len(sm.AtomMapping.Permutation))}
	}
	hs := structureFG
	if len(hs) == 0 {
		hs = xtal.FactorGroup{xtal.IdentityOp(len(sm.AtomMapping.Permutation))}
	}

	for _, g := range gs {
		for _, h := range hs {
			candidate := fingerprintFor(sm, g, h, primLattice, tol)
			if candidate.Less(best) {
				best = candidate
			}
		}
	}
	return best
}

func fingerprintFor(sm StructureMapping, g, h xtal.SymOp, primLattice xtal.Lattice, tol float64) Fingerprint {
	combined := sm.LatticeMapping.CombinedTransform()
	transform, err := g.ApplyToMat3Int(combined)
	if err != nil {
		transform = combined
	}

	n := len(sm.AtomMapping.Permutation)
	perm := make([]int, n)
	for l, a := range sm.AtomMapping.Permutation {
		newSite := l
		if l < len(g.SitePerm) {
			newSite = g.SitePerm[l]
		}
		newAtom := a
		if a < len(h.SitePerm) {
			newAtom = h.SitePerm[a]
		}
		perm[newSite] = newAtom
	}

	rotated := g.ApplyToLatticeVector(sm.AtomMapping.Translation)
	adjusted := rotated.Add(g.Translation).Sub(h.Translation)
	frac := primLattice.FractionalFromCartesian(adjusted).WrapToUnitCell(tol)
	return Fingerprint{Transform: transform, Permutation: perm, TranslationFrac: frac}
}
