package search

import (
	"container/heap"

	"github.com/katalvlaran/xtalmap/assign"
	"github.com/katalvlaran/xtalmap/atommap"
	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/mapping"
	"github.com/katalvlaran/xtalmap/searchdata"
)

// MapLattices runs only the lattice mapping enumerator (component D) and
// drains it into an ascending-cost slice, honoring MaxLatticeCost and
// KBest. Truncated reports whether the enumerator still had unserved
// candidates when a ceiling was hit.
func MapLattices(prim *searchdata.PrimSearchData, structure *searchdata.StructureSearchData, opts ...Option) ([]lattice.ScoredMapping, bool, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := o.validate(); err != nil {
		return nil, false, err
	}

	enum, err := lattice.NewEnumerator(prim.PrimLattice, structure.Lattice,
		lattice.WithVolumeRange(o.MinVolume, o.MaxVolume),
		lattice.WithMaxCost(o.MaxLatticeCost),
		lattice.WithReorientationBound(o.ReorientationBound),
		lattice.WithPrimFactorGroup(prim.PrimFactorGroup),
		lattice.WithTol(o.Tol),
	)
	if err != nil {
		return nil, false, err
	}

	var out []lattice.ScoredMapping
	for len(out) < o.KBest {
		c, err := enum.Next()
		if err != nil {
			return out, false, nil
		}
		out = append(out, c)
	}
	_, err = enum.Next()
	return out, err == nil, nil
}

// atomPending is one entry of MapAtoms' merge heap: the next unserved
// assignment from one trial translation's Murty enumerator.
type atomPending struct {
	assignment assign.Assignment
	murty      *assign.Enumerator
	amData     *searchdata.AtomMappingSearchData
	seq        int
}

type atomPendingHeap []atomPending

func (h atomPendingHeap) Len() int { return len(h) }
func (h atomPendingHeap) Less(i, j int) bool {
	if h[i].assignment.Cost != h[j].assignment.Cost {
		return h[i].assignment.Cost < h[j].assignment.Cost
	}
	return h[i].seq < h[j].seq
}
func (h atomPendingHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *atomPendingHeap) Push(x interface{}) { *h = append(*h, x.(atomPending)) }
func (h *atomPendingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MapAtoms runs only the atom assignment search (components A/B/E) for a
// fixed lattice mapping, exploring every trial translation and merging
// their Murty streams by ascending assignment cost. Honors MaxAtomCost and
// KBest.
func MapAtoms(lmData *searchdata.LatticeMappingSearchData, opts ...Option) ([]mapping.ScoredAtomMapping, bool, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := o.validate(); err != nil {
		return nil, false, err
	}
	if lmData == nil {
		return nil, false, ErrInvalidInput
	}

	translations, err := atommap.TrialTranslations(
		lmData.SupercellSites(),
		lmData.SupercellLattice,
		nil,
		lmData.AtomCoordinateCartInSupercell,
		lmData.Structure.AtomType,
		o.Tol,
	)
	if err != nil {
		return nil, false, err
	}

	h := make(atomPendingHeap, 0, len(translations))
	seq := 0
	for _, tau := range translations {
		amData, err := searchdata.NewAtomMappingSearchData(lmData, tau, o.Robust, o.MaxVoronoiIter)
		if err != nil {
			continue
		}
		murty, err := assign.NewEnumerator(amData.CostMatrix)
		if err != nil {
			continue
		}
		first, err := murty.NextUnderBound(o.MaxAtomCost)
		if err != nil {
			continue
		}
		h = append(h, atomPending{assignment: first, murty: murty, amData: amData, seq: seq})
		seq++
	}
	heap.Init(&h)

	var out []mapping.ScoredAtomMapping
	for h.Len() > 0 && len(out) < o.KBest {
		item := heap.Pop(&h).(atomPending)
		am, err := atomMappingFromAssignment(item.assignment, item.amData)
		if err == nil {
			out = append(out, mapping.ScoredAtomMapping{AtomMapping: am, AtomCost: item.assignment.Cost})
		}
		next, err := item.murty.NextUnderBound(o.MaxAtomCost)
		if err == nil {
			item.assignment = next
			item.seq = seq
			seq++
			heap.Push(&h, item)
		}
	}
	return out, h.Len() > 0, nil
}
