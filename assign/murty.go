// Package assign: Murty's algorithm for ranked enumeration of assignments,
// grounded on the branch-and-bound partitioning style of this pack's
// travelling-salesman engine (bbEngine's admissible-lower-bound expansion
// and deterministic ordering), adapted here from a single-best search into
// a lazily-expanded min-heap of assignment subproblems.

package assign

import (
	"container/heap"

	"github.com/katalvlaran/xtalmap/matrix"
)

// node is one Murty subproblem: a set of forced/forbidden pair constraints
// plus the optimal assignment and cost of the cost matrix restricted by
// those constraints.
type node struct {
	constraints []pairConstraint
	assignment  Assignment
}

type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].assignment.Cost != h[j].assignment.Cost {
		return h[i].assignment.Cost < h[j].assignment.Cost
	}
	// Deterministic tie-break: lowest row-to-column assignment vector wins,
	// compared lexicographically.
	a, b := h[i].assignment.RowToCol, h[j].assignment.RowToCol
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Enumerator emits assignments over a fixed cost matrix in non-decreasing
// cost order, one at a time, via Murty's partitioning scheme.
type Enumerator struct {
	cost *matrix.Dense
	heap nodeHeap
	done bool
}

// NewEnumerator constructs an Enumerator over cost. Returns
// ErrEmptyCostMatrix or ErrInfeasibleAssignment if no assignment exists at
// all.
func NewEnumerator(cost *matrix.Dense) (*Enumerator, error) {
	root, err := hungarianWithConstraints(cost, nil)
	if err != nil {
		return nil, err
	}
	e := &Enumerator{cost: cost}
	heap.Init(&e.heap)
	heap.Push(&e.heap, node{assignment: root})
	return e, nil
}

// Next returns the next-cheapest assignment. Returns ErrExhausted once
// every feasible assignment has been emitted.
func (e *Enumerator) Next() (Assignment, error) {
	if e.done || e.heap.Len() == 0 {
		e.done = true
		return Assignment{}, ErrExhausted
	}
	best := heap.Pop(&e.heap).(node)
	e.expand(best)
	return best.assignment.Clone(), nil
}

// NextUnderBound is Next, but returns ErrNoAssignmentsUnderBound instead of
// the assignment when its cost exceeds bound (the heap ordering guarantees
// every subsequent candidate is at least as expensive, so this is safe to
// call repeatedly to drain assignments up to a cost ceiling).
func (e *Enumerator) NextUnderBound(bound float64) (Assignment, error) {
	a, err := e.Next()
	if err != nil {
		return Assignment{}, err
	}
	if a.Cost > bound {
		return Assignment{}, ErrNoAssignmentsUnderBound
	}
	return a, nil
}

// expand partitions parent's assignment into the standard Murty subproblem
// set: for each row position i in the assignment (in row order), a child
// subproblem forbids row i from mapping to its assigned column while
// forcing every row before i to keep its assigned column. This partitions
// the remaining search space without overlap or omission.
func (e *Enumerator) expand(parent node) {
	n := len(parent.assignment.RowToCol)
	for i := 0; i < n; i++ {
		childConstraints := make([]pairConstraint, 0, len(parent.constraints)+i+1)
		childConstraints = append(childConstraints, parent.constraints...)
		for k := 0; k < i; k++ {
			childConstraints = append(childConstraints, pairConstraint{row: k, col: parent.assignment.RowToCol[k], forced: true})
		}
		childConstraints = append(childConstraints, pairConstraint{row: i, col: parent.assignment.RowToCol[i], forced: false})

		childAssignment, err := hungarianWithConstraints(e.cost, childConstraints)
		if err != nil {
			continue // infeasible subproblem, prune
		}
		heap.Push(&e.heap, node{constraints: childConstraints, assignment: childAssignment})
	}
}
