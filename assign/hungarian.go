// Package assign: Jonker-Volgenant Hungarian solver, adapted from the
// squared-cost cluster-to-track assignment routine used elsewhere in this
// pack, generalized from float32 slices to matrix.Dense and from a fixed
// +Inf gate to caller-supplied forbidden pairs plus Murty's forced/forbidden
// pair constraints.

package assign

import (
	"math"

	"github.com/katalvlaran/xtalmap/matrix"
)

const bigCost = 1e18 // internal stand-in for +Inf, avoids NaN arithmetic in the potential updates

// Hungarian solves the linear assignment problem on cost, an n x m dense
// matrix with n <= m: every row gets a distinct column and m-n columns stay
// unassigned. With n > m not every row can be assigned, and the result is
// ErrInfeasibleAssignment. Entries equal to +Inf mark forbidden
// pairs. Returns ErrEmptyCostMatrix if cost has zero rows or columns, and
// ErrInfeasibleAssignment if some row cannot be assigned to any column
// without using a forbidden pair.
func Hungarian(cost *matrix.Dense) (Assignment, error) {
	return hungarianWithConstraints(cost, nil)
}

func hungarianWithConstraints(cost *matrix.Dense, constraints []pairConstraint) (Assignment, error) {
	if cost == nil || cost.Rows() == 0 || cost.Cols() == 0 {
		return Assignment{}, ErrEmptyCostMatrix
	}
	n, m := cost.Rows(), cost.Cols()
	dim := n
	if m > dim {
		dim = m
	}

	c := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		c[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			if i < n && j < m {
				v, _ := cost.At(i, j)
				if math.IsInf(v, 1) {
					v = bigCost
				}
				c[i][j] = v
			} else {
				c[i][j] = bigCost
			}
		}
	}
	for _, pc := range constraints {
		if pc.row >= dim || pc.col >= dim {
			continue
		}
		if pc.forced {
			for j := 0; j < dim; j++ {
				if j != pc.col {
					c[pc.row][j] = bigCost
				}
			}
			for i := 0; i < dim; i++ {
				if i != pc.row {
					c[i][pc.col] = bigCost
				}
			}
		} else {
			c[pc.row][pc.col] = bigCost
		}
	}

	rowAssign, err := solveJV(c, dim)
	if err != nil {
		return Assignment{}, err
	}

	result := Assignment{RowToCol: make([]int, n)}
	for i := 0; i < n; i++ {
		col := rowAssign[i]
		if col < 0 || col >= m || c[i][col] >= bigCost {
			return Assignment{}, ErrInfeasibleAssignment
		}
		result.RowToCol[i] = col
		result.Cost += c[i][col]
	}
	return result, nil
}

// solveJV is the Kuhn-Munkres algorithm with Jonker-Volgenant potentials,
// on a pre-padded dim x dim cost matrix. Uses 1-indexed internal arrays,
// matching the classical formulation.
func solveJV(cost [][]float64, dim int) ([]int, error) {
	const inf = math.MaxFloat64 / 2

	rowPotential := make([]float64, dim+1)
	colPotential := make([]float64, dim+1)
	colToRow := make([]int, dim+1)
	parentCol := make([]int, dim+1)
	minSlack := make([]float64, dim+1)
	inTree := make([]bool, dim+1)

	for row := 1; row <= dim; row++ {
		colToRow[0] = row
		curCol := 0

		for col := 1; col <= dim; col++ {
			minSlack[col] = inf
			inTree[col] = false
		}

		for {
			inTree[curCol] = true
			curRow := colToRow[curCol]
			delta := inf
			nextCol := -1

			for col := 1; col <= dim; col++ {
				if inTree[col] {
					continue
				}
				slack := cost[curRow-1][col-1] - rowPotential[curRow] - colPotential[col]
				if slack < minSlack[col] {
					minSlack[col] = slack
					parentCol[col] = curCol
				}
				if minSlack[col] < delta {
					delta = minSlack[col]
					nextCol = col
				}
			}

			if nextCol < 0 {
				return nil, ErrInfeasibleAssignment
			}

			for col := 0; col <= dim; col++ {
				if inTree[col] {
					rowPotential[colToRow[col]] += delta
					colPotential[col] -= delta
				} else {
					minSlack[col] -= delta
				}
			}

			curCol = nextCol
			if colToRow[curCol] == 0 {
				break
			}
		}

		for curCol != 0 {
			colToRow[curCol] = colToRow[parentCol[curCol]]
			curCol = parentCol[curCol]
		}
	}

	rowAssign := make([]int, dim)
	for i := range rowAssign {
		rowAssign[i] = -1
	}
	for col := 1; col <= dim; col++ {
		if colToRow[col] > 0 && colToRow[col] <= dim {
			rowAssign[colToRow[col]-1] = col - 1
		}
	}
	return rowAssign, nil
}
