package assign

import "math"

// Forbidden is the sentinel cost marking a disallowed row/column pairing.
// Matches matrix.Dense's allow-Inf cost-matrix convention.
var Forbidden = math.Inf(1)

// Assignment is one complete row-to-column assignment over a square cost
// matrix.
type Assignment struct {
	// RowToCol[i] is the column assigned to row i.
	RowToCol []int
	// Cost is the sum of cost[i][RowToCol[i]] over all rows.
	Cost float64
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := Assignment{RowToCol: make([]int, len(a.RowToCol)), Cost: a.Cost}
	copy(out.RowToCol, a.RowToCol)
	return out
}

// pairConstraint fixes or forbids one row/column pair within a Murty
// subproblem.
type pairConstraint struct {
	row, col int
	forced   bool // true: row must map to col; false: row must not map to col
}
