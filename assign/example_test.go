package assign_test

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/assign"
	"github.com/katalvlaran/xtalmap/matrix"
)

// ExampleHungarian solves the textbook 3x3 assignment problem.
func ExampleHungarian() {
	cost, _ := matrix.NewDense(3, 3)
	rows := [][]float64{{9, 1, 9}, {2, 9, 9}, {9, 9, 3}}
	for i, row := range rows {
		for j, v := range row {
			cost.MustSet(i, j, v)
		}
	}

	result, err := assign.Hungarian(cost)
	if err != nil {
		fmt.Println("failed:", err)
		return
	}
	fmt.Println(result.RowToCol, result.Cost)
	// Output:
	// [1 0 2] 6
}
