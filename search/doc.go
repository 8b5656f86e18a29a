// Package search implements the mapping search orchestrator (component G):
// a best-first, priority-queued expansion over the product space of
// lattice mapping x trial translation x assignment, fusing the lattice
// package's enumerator, the atommap package's cost matrices, and the
// assign package's Hungarian/Murty solvers into a bounded, deduplicated
// stream of ScoredStructureMapping results.
//
// Grounded on this pack's own tsp.bbEngine style: an explicit engine
// struct holding all search state and policy rather than closures, with
// deterministic tie-breaking, adapted from a depth-first branch-and-bound
// engine into a heap-driven best-first one (the lattice and Murty
// enumerators already do the bounding; the orchestrator here only merges
// their streams). The loop has no iteration cap: it stops only when the
// queue is empty, when KBest results are held and the queue head scores
// more than Tol above the last of them, or when the head exceeds
// MaxTotalCost.
package search
