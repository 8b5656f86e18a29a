package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/matrix"
)

// ExampleRightStretch shows that a uniform 2% dilation has right-stretch
// tensor 1.02*I, matching the isotropic strain scenario used across the
// lattice cost tests.
func ExampleRightStretch() {
	f, _ := matrix.Identity(3)
	f, _ = matrix.Scale(f, 1.02)

	u, err := matrix.RightStretch(f, 1e-12, 200)
	if err != nil {
		fmt.Println("failed:", err)
		return
	}
	v, _ := u.At(0, 0)
	fmt.Printf("%.2f\n", v)
	// Output:
	// 1.02
}
