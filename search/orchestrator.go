package search

import (
	"container/heap"

	"github.com/katalvlaran/xtalmap/assign"
	"github.com/katalvlaran/xtalmap/atommap"
	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/mapping"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
)

// pendingKind distinguishes an unexpanded lattice-only candidate from a
// fully assigned candidate ready to be scored and, if it survives
// deduplication, recorded.
type pendingKind int

const (
	pendingLattice pendingKind = iota
	pendingFull
)

// pendingItem is one entry of the orchestrator's priority queue.
type pendingItem struct {
	kind  pendingKind
	score float64
	seq   int // insertion order, deterministic tie-break

	// pendingLattice fields
	latticeCandidate lattice.ScoredMapping

	// pendingFull fields
	lmData      *searchdata.LatticeMappingSearchData
	amData      *searchdata.AtomMappingSearchData
	murty       *assign.Enumerator
	assignment  assign.Assignment
	latticeCost float64
}

type pendingHeap []pendingItem

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h pendingHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pendingHeap) Push(x interface{}) { *h = append(*h, x.(pendingItem)) }
func (h *pendingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// engine holds all orchestrator state, mirroring this pack's own
// branch-and-bound engine convention of one explicit struct rather than
// closures over shared state.
type engine struct {
	opts      Options
	prim      *searchdata.PrimSearchData
	structure *searchdata.StructureSearchData

	latticeEnum *lattice.Enumerator
	heap        pendingHeap
	nextSeq     int

	results []mapping.ScoredStructureMapping
	seen    map[string]bool
}

// MapStructures runs the search orchestrator over a prim and a structure,
// returning up to KBest canonical structure mappings in ascending score
// order plus a flag indicating whether a cost ceiling or KBest truncated
// the enumeration.
func MapStructures(prim *searchdata.PrimSearchData, structure *searchdata.StructureSearchData, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	latticeEnum, err := lattice.NewEnumerator(prim.PrimLattice, structure.Lattice,
		lattice.WithVolumeRange(o.MinVolume, o.MaxVolume),
		lattice.WithMaxCost(o.MaxLatticeCost),
		lattice.WithReorientationBound(o.ReorientationBound),
		lattice.WithPrimFactorGroup(prim.PrimFactorGroup),
		lattice.WithTol(o.Tol),
	)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		opts:        o,
		prim:        prim,
		structure:   structure,
		latticeEnum: latticeEnum,
		seen:        make(map[string]bool),
	}
	heap.Init(&e.heap)
	e.pullNextLattice()

	truncated := e.run()
	return Result{Mappings: e.results, Truncated: truncated}, nil
}

// pullNextLattice pulls the next candidate from the lattice enumerator and
// pushes it as a lattice-only pending item, preserving the "explicit next()
// object driven from a single heap" design.
func (e *engine) pullNextLattice() {
	c, err := e.latticeEnum.Next()
	if err != nil {
		return
	}
	e.push(pendingItem{
		kind:             pendingLattice,
		score:            e.opts.Alpha * c.Cost,
		latticeCandidate: c,
	})
}

func (e *engine) push(item pendingItem) {
	item.seq = e.nextSeq
	e.nextSeq++
	heap.Push(&e.heap, item)
}

// run drives the main loop and returns whether the search was truncated.
func (e *engine) run() bool {
	for e.heap.Len() > 0 {
		if e.heap[0].score > e.opts.MaxTotalCost {
			return true
		}
		if len(e.results) >= e.opts.KBest {
			lastScore := e.results[len(e.results)-1].Score
			if e.heap[0].score > lastScore+e.opts.Tol {
				return true
			}
		}

		item := heap.Pop(&e.heap).(pendingItem)
		switch item.kind {
		case pendingLattice:
			e.expandLattice(item)
			e.pullNextLattice()
		case pendingFull:
			e.acceptFull(item)
		}
	}
	return false
}

// expandLattice builds the derived supercell record for a lattice
// candidate, enumerates its trial translations, and pushes the first
// Murty emission of each feasible translation as a full candidate.
func (e *engine) expandLattice(item pendingItem) {
	lmData, err := searchdata.NewLatticeMappingSearchData(e.prim, e.structure, item.latticeCandidate.Mapping)
	if err != nil {
		return
	}

	translations, err := atommap.TrialTranslations(
		lmData.SupercellSites(),
		lmData.SupercellLattice,
		nil,
		lmData.AtomCoordinateCartInSupercell,
		e.structure.AtomType,
		e.opts.Tol,
	)
	if err != nil {
		// Recoverable per this module's error handling design: skip this
		// lattice mapping and continue with the rest of the search.
		return
	}

	for _, tau := range translations {
		amData, err := searchdata.NewAtomMappingSearchData(lmData, tau, e.opts.Robust, e.opts.MaxVoronoiIter)
		if err != nil {
			continue // atom row fully forbidden for this translation; skip and continue
		}
		murty, err := assign.NewEnumerator(amData.CostMatrix)
		if err != nil {
			continue // infeasible assignment under this translation; skip and continue
		}
		first, err := murty.NextUnderBound(e.opts.MaxAtomCost)
		if err != nil {
			continue // best assignment exceeds max_atom_cost; skip and continue
		}
		e.push(pendingItem{
			kind:        pendingFull,
			score:       e.opts.Alpha*item.latticeCandidate.Cost + e.opts.Beta*first.Cost,
			lmData:      lmData,
			amData:      amData,
			murty:       murty,
			assignment:  first,
			latticeCost: item.latticeCandidate.Cost,
		})
	}
}

// acceptFull canonicalizes a fully assigned candidate, records it if no
// equivalent representative has already been recorded and fewer than KBest
// results are held, and always pulls the originating Murty enumerator's
// next emission.
func (e *engine) acceptFull(item pendingItem) {
	am, err := atomMappingFromAssignment(item.assignment, item.amData)
	if err == nil {
		sm := mapping.StructureMapping{LatticeMapping: item.lmData.Mapping, AtomMapping: am}
		fp := mapping.Canonicalize(sm, e.prim.PrimLattice, e.prim.PrimFactorGroup, e.structure.StructureFactorGroup, e.opts.Tol)
		key := fp.Key()
		if !e.seen[key] && len(e.results) < e.opts.KBest {
			e.seen[key] = true
			e.results = append(e.results, mapping.ScoredStructureMapping{
				StructureMapping: sm,
				LatticeCost:      item.latticeCost,
				AtomCost:         item.assignment.Cost,
				Score:            item.score,
			})
		}
	}

	next, err := item.murty.NextUnderBound(e.opts.MaxAtomCost)
	if err != nil {
		return
	}
	e.push(pendingItem{
		kind:        pendingFull,
		score:       e.opts.Alpha*item.latticeCost + e.opts.Beta*next.Cost,
		lmData:      item.lmData,
		amData:      item.amData,
		murty:       item.murty,
		assignment:  next,
		latticeCost: item.latticeCost,
	})
}

// atomMappingFromAssignment reconstructs the AtomMapping result from a
// completed assignment's row-to-column vector.
func atomMappingFromAssignment(a assign.Assignment, amData *searchdata.AtomMappingSearchData) (mapping.AtomMapping, error) {
	nSite := len(a.RowToCol)
	nAtom := len(amData.LatticeMappingData.Structure.AtomType)
	disp := make([]xtal.Vec3, nSite)
	for site, atomOrVac := range a.RowToCol {
		if atomOrVac < nAtom {
			disp[site] = amData.Displacements[site][atomOrVac]
		}
	}
	return mapping.NewAtomMapping(disp, a.RowToCol, amData.Translation)
}
