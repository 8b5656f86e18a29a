// Package atommap: cost matrix construction with synthetic vacancy
// padding, grounded on SearchData.cc's make_cost_matrix and
// make_site_displacements.

package atommap

import (
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// Displacements is the dense N_site x N_atom tensor of minimum-image
// displacement vectors between every site and every real (non-vacancy)
// atom, prior to assignment.
type Displacements [][]xtal.Vec3

// CostMatrixOptions configures minimum-image reduction and iteration
// bounds for CostMatrix.
type CostMatrixOptions struct {
	Robust  bool // use the iterative Wigner-Seitz reduction instead of the fast rounding form
	MaxIter int
}

// CostMatrix builds the N_site x N_site assignment cost matrix for one
// trial translation: columns 0..len(atomTypes)-1 are real atoms, the
// remaining columns are synthetic vacancies. Returns ErrInvalidInput if
// there are more atoms than sites, or ErrAtomRowAllForbidden if some atom
// has no allowed site anywhere among sites.
func CostMatrix(
	sites []xtal.Site,
	lattice xtal.Lattice,
	atomCoords []xtal.Vec3,
	atomTypes []string,
	translation xtal.Vec3,
	opts CostMatrixOptions,
) (*matrix.Dense, Displacements, error) {
	nSite := len(sites)
	nAtom := len(atomTypes)
	if nAtom > nSite || nSite == 0 {
		return nil, nil, ErrInvalidInput
	}
	if len(atomCoords) != nAtom {
		return nil, nil, ErrInvalidInput
	}

	for _, species := range atomTypes {
		allowed := false
		for _, s := range sites {
			if s.AllowsSpecies(species) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, nil, ErrAtomRowAllForbidden
		}
	}

	cost, err := matrix.NewDenseWithInf(nSite, nSite)
	if err != nil {
		return nil, nil, err
	}
	disp := make(Displacements, nSite)

	for i, site := range sites {
		disp[i] = make([]xtal.Vec3, nAtom)
		for j := 0; j < nAtom; j++ {
			raw := atomCoords[j].Add(translation).Sub(site.CartesianCoord)
			d, err := minimumImage(raw, lattice, opts)
			if err != nil {
				return nil, nil, err
			}
			disp[i][j] = d
			if err := cost.Set(i, j, Cost(d, false, atomTypes[j], site)); err != nil {
				return nil, nil, err
			}
		}
		for j := nAtom; j < nSite; j++ {
			if err := cost.Set(i, j, Cost(xtal.Vec3{}, true, "", site)); err != nil {
				return nil, nil, err
			}
		}
	}
	return cost, disp, nil
}

func minimumImage(d xtal.Vec3, lattice xtal.Lattice, opts CostMatrixOptions) (xtal.Vec3, error) {
	fast := lattice.FastMinimumImage(d)
	if !opts.Robust {
		return fast, nil
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 50
	}
	return lattice.ReduceToVoronoiCell(fast, maxIter)
}
