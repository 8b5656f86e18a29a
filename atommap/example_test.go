package atommap_test

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/atommap"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// ExampleCost shows the single-swap-under-perturbation scenario: two atoms
// each displaced 0.05 Angstrom from their assigned site contribute
// 2*(0.05)^2 = 5e-3 total when both are optimally assigned.
func ExampleCost() {
	site := xtal.Site{AllowedOccupants: []string{"Fe"}}
	d := xtal.Vec3{0.05, 0, 0}
	total := atommap.Cost(d, false, "Fe", site) + atommap.Cost(d, false, "Fe", site)
	fmt.Printf("%.1e\n", total)
	// Output:
	// 5.0e-03
}

// ExampleCostMatrix builds a 1x1 cost matrix for a single site and atom
// exactly in registry.
func ExampleCostMatrix() {
	sites := []xtal.Site{{CartesianCoord: xtal.Vec3{0, 0, 0}, AllowedOccupants: []string{"Fe"}}}
	basis, _ := matrix.Identity(3)
	lattice, _ := xtal.NewLattice(basis, 1e-8)

	cost, _, err := atommap.CostMatrix(sites, lattice, []xtal.Vec3{{0, 0, 0}}, []string{"Fe"}, xtal.Vec3{}, atommap.CostMatrixOptions{})
	if err != nil {
		fmt.Println("failed:", err)
		return
	}
	v, _ := cost.At(0, 0)
	fmt.Println(v)
	// Output:
	// 0
}
