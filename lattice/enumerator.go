// Package lattice: candidate lattice mapping enumeration (component D).
// Enumerates HNF superlattices of the prim over a requested determinant
// range, searches a bounded set of unimodular reorientations for the
// best-fit deformation gradient against the child lattice, prunes
// symmetry-equivalent candidates under the prim factor group, and serves
// the survivors through a Next() method in ascending strain-cost order.
//
// The full candidate set is finite (a bounded determinant range times a
// bounded reorientation search), so this builds and sorts it eagerly at
// construction rather than truly interleaving HNF and reorientation search
// lazily — the Next()-driven contract is preserved for the orchestrator,
// only the internal production strategy differs. This module's own choice,
// since no example in the corpus performs an analogous enumeration.
package lattice

import (
	"math"
	"sort"

	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// EnumeratorOptions configures the lattice mapping enumerator.
//
// Pruning here uses only the prim factor group: canonicalTransform
// conjugates each candidate (T,N) purely in the prim's integer-transform
// space, before the deformation gradient or superlattice choice is
// finalized, so the child (structure) factor group has no integer
// representation available yet to fold into the same equivalence check.
// This pruning is an optimization, not a correctness requirement — any
// (T,N) pairs it fails to collapse still get deduplicated downstream by
// mapping.Canonicalize (component H), which applies both the prim and
// structure factor groups together against the finished mapping.
type EnumeratorOptions struct {
	MinVolume          int // minimum superlattice determinant, inclusive
	MaxVolume          int // maximum superlattice determinant, inclusive
	MaxCost            float64
	ReorientationBound int // bound passed to xtal.EnumerateProperUnimodular
	PrimFactorGroup    xtal.FactorGroup
	Tol                float64
	MaxEigenIter       int
}

// Option mutates an EnumeratorOptions; the functional-options pattern this
// module uses throughout for public constructors.
type Option func(*EnumeratorOptions)

func WithVolumeRange(min, max int) Option {
	return func(o *EnumeratorOptions) { o.MinVolume, o.MaxVolume = min, max }
}
func WithMaxCost(cost float64) Option { return func(o *EnumeratorOptions) { o.MaxCost = cost } }
func WithReorientationBound(bound int) Option {
	return func(o *EnumeratorOptions) { o.ReorientationBound = bound }
}
func WithPrimFactorGroup(fg xtal.FactorGroup) Option {
	return func(o *EnumeratorOptions) { o.PrimFactorGroup = fg }
}
func WithTol(tol float64) Option { return func(o *EnumeratorOptions) { o.Tol = tol } }

func defaultOptions() EnumeratorOptions {
	return EnumeratorOptions{
		MinVolume:          1,
		MaxVolume:          1,
		MaxCost:            math.Inf(1),
		ReorientationBound: 1,
		Tol:                1e-8,
		MaxEigenIter:       200,
	}
}

// Enumerator serves candidate lattice mappings in ascending strain-cost
// order.
type Enumerator struct {
	candidates []ScoredMapping
	pos        int
}

// NewEnumerator builds the candidate set for mapping prim lattice l1 onto
// superlattices matching child lattice l2.
func NewEnumerator(l1, l2 xtal.Lattice, opts ...Option) (*Enumerator, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.MinVolume <= 0 || o.MaxVolume < o.MinVolume || o.Tol <= 0 {
		return nil, ErrInvalidInput
	}

	reorientations, err := xtal.EnumerateProperUnimodular(o.ReorientationBound)
	if err != nil {
		return nil, err
	}

	var all []ScoredMapping
	seen := make(map[xtal.Mat3Int]bool)

	for d := o.MinVolume; d <= o.MaxVolume; d++ {
		hnfs, err := xtal.EnumerateHNF(d)
		if err != nil {
			return nil, err
		}
		for _, t := range hnfs {
			sup, err := l1.Superlattice(t)
			if err != nil {
				continue
			}

			// Per section 4.D step 2: for this HNF, keep only the
			// best-fit reorientation N, not every N that survives.
			var best *ScoredMapping
			var bestCombined xtal.Mat3Int
			for _, n := range reorientations {
				reoriented, err := sup.Reoriented(n)
				if err != nil {
					continue
				}
				f, err := deformationGradient(reoriented, l2)
				if err != nil {
					continue
				}
				m, err := NewMapping(f, t, n)
				if err != nil {
					continue
				}
				cost, err := StrainCost(m, o.Tol, o.MaxEigenIter)
				if err != nil {
					continue
				}
				if best == nil || cost < best.Cost {
					best = &ScoredMapping{Mapping: m, Cost: cost}
					bestCombined = t.Mul(n)
				}
			}
			if best == nil || best.Cost > o.MaxCost {
				continue
			}

			canonical := canonicalTransform(bestCombined, o.PrimFactorGroup)
			if seen[canonical] {
				continue
			}
			seen[canonical] = true
			all = append(all, *best)
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Cost < all[j].Cost })
	return &Enumerator{candidates: all}, nil
}

// Next returns the next-cheapest lattice mapping, or ErrExhausted once every
// candidate has been served.
func (e *Enumerator) Next() (ScoredMapping, error) {
	if e.pos >= len(e.candidates) {
		return ScoredMapping{}, ErrExhausted
	}
	c := e.candidates[e.pos]
	e.pos++
	return c, nil
}

// canonicalTransform picks the lexicographically smallest image of combined
// under the prim factor group's conjugation action, used to dedupe
// symmetry-equivalent (T,N) pairs to a single representative.
func canonicalTransform(combined xtal.Mat3Int, fg xtal.FactorGroup) xtal.Mat3Int {
	best := combined
	for _, op := range fg {
		img, err := op.ApplyToMat3Int(combined)
		if err != nil {
			continue
		}
		if img.Less(best) {
			best = img
		}
	}
	return best
}

// deformationGradient computes F = L2 * (reoriented)^-1.
func deformationGradient(reoriented xtal.Lattice, l2 xtal.Lattice) (*matrix.Dense, error) {
	inv, err := matrix.Inverse(reoriented.Basis())
	if err != nil {
		return nil, err
	}
	return matrix.Mul(l2.Basis(), inv)
}
