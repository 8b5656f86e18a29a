package searchdata

import (
	"github.com/katalvlaran/xtalmap/lattice"
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// LatticeMappingSearchData derives the supercell geometry a fixed lattice
// mapping induces from a prim and a child, shared by every trial
// translation and assignment explored under that mapping.
type LatticeMappingSearchData struct {
	Prim      *PrimSearchData
	Structure *StructureSearchData
	Mapping   lattice.Mapping

	CombinedTransform          xtal.Mat3Int
	SupercellLattice           xtal.Lattice
	IndexConverter             *xtal.IndexConverter
	AtomCoordinateCartInSupercell []xtal.Vec3
	SupercellSiteCoordinateCart   []xtal.Vec3
	SupercellAllowedAtomTypes     [][]string
}

// NewLatticeMappingSearchData builds the derived supercell record for a
// fixed lattice mapping between prim and structure.
func NewLatticeMappingSearchData(prim *PrimSearchData, structure *StructureSearchData, mapping lattice.Mapping) (*LatticeMappingSearchData, error) {
	if prim == nil || structure == nil {
		return nil, ErrInvalidInput
	}
	combined := mapping.CombinedTransform()

	supLattice, err := prim.PrimLattice.Superlattice(combined)
	if err != nil {
		return nil, err
	}

	converter, err := xtal.NewIndexConverter(prim.NPrimSite, combined)
	if err != nil {
		return nil, err
	}

	fInv, err := matrix.Inverse(mapping.F)
	if err != nil {
		return nil, err
	}
	atomInSupercell := make([]xtal.Vec3, structure.NAtom)
	for i, c := range structure.AtomCoordinateCart {
		atomInSupercell[i] = matVec(fInv, c)
	}

	nSuperSite := converter.NumSites()
	siteCoords := make([]xtal.Vec3, nSuperSite)
	allowed := make([][]string, nSuperSite)
	for l := 0; l < nSuperSite; l++ {
		uc, err := converter.FromLinearIndex(l)
		if err != nil {
			return nil, err
		}
		cellVec := prim.PrimLattice.CartesianFromFractional(xtal.Vec3{
			float64(uc.Cell[0]), float64(uc.Cell[1]), float64(uc.Cell[2]),
		})
		siteCoords[l] = prim.PrimSiteCoordinateCart[uc.Sublattice].Add(cellVec)
		allowed[l] = prim.PrimAllowedAtomTypes[uc.Sublattice]
	}

	return &LatticeMappingSearchData{
		Prim:                          prim,
		Structure:                     structure,
		Mapping:                       mapping,
		CombinedTransform:             combined,
		SupercellLattice:              supLattice,
		IndexConverter:                converter,
		AtomCoordinateCartInSupercell: atomInSupercell,
		SupercellSiteCoordinateCart:   siteCoords,
		SupercellAllowedAtomTypes:     allowed,
	}, nil
}

// SupercellSites returns the derived supercell sites as xtal.Site values,
// the shape atommap's cost-matrix and translation functions consume.
func (d *LatticeMappingSearchData) SupercellSites() []xtal.Site {
	out := make([]xtal.Site, len(d.SupercellSiteCoordinateCart))
	for i := range out {
		out[i] = xtal.Site{
			CartesianCoord:   d.SupercellSiteCoordinateCart[i],
			AllowedOccupants: d.SupercellAllowedAtomTypes[i],
		}
	}
	return out
}

func matVec(m *matrix.Dense, v xtal.Vec3) xtal.Vec3 {
	var out xtal.Vec3
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += m.MustAt(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}
