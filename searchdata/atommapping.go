package searchdata

import (
	"github.com/katalvlaran/xtalmap/atommap"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// AtomMappingSearchData derives the site-to-atom displacement tensor and
// cost matrix for one trial translation under a fixed lattice mapping.
type AtomMappingSearchData struct {
	LatticeMappingData *LatticeMappingSearchData
	Translation        xtal.Vec3
	Displacements      atommap.Displacements
	CostMatrix         *matrix.Dense
}

// NewAtomMappingSearchData builds the derived per-translation record.
// Robust selects Wigner-Seitz minimum-image reduction over the cheaper
// rounding form.
func NewAtomMappingSearchData(lmData *LatticeMappingSearchData, translation xtal.Vec3, robust bool, maxIter int) (*AtomMappingSearchData, error) {
	if lmData == nil {
		return nil, ErrInvalidInput
	}
	cost, disp, err := atommap.CostMatrix(
		lmData.SupercellSites(),
		lmData.SupercellLattice,
		lmData.AtomCoordinateCartInSupercell,
		lmData.Structure.AtomType,
		translation,
		atommap.CostMatrixOptions{Robust: robust, MaxIter: maxIter},
	)
	if err != nil {
		return nil, err
	}
	return &AtomMappingSearchData{
		LatticeMappingData: lmData,
		Translation:        translation,
		Displacements:      disp,
		CostMatrix:         cost,
	}, nil
}
