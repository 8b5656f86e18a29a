package searchdata

import "github.com/katalvlaran/xtalmap/xtal"

// PrimSearchData is the immutable, once-per-query record describing the
// idealized reference crystal. Grounded on SearchData.cc's PrimSearchData
// constructor, which rejects molecular (non-atomic) occupants before the
// search can begin.
type PrimSearchData struct {
	SharedPrim              xtal.BasicStructure
	PrimLattice             xtal.Lattice
	NPrimSite               int
	PrimSiteCoordinateCart  []xtal.Vec3
	PrimAllowedAtomTypes    [][]string
	VacanciesAllowed        bool
	PrimFactorGroup         xtal.FactorGroup
}

// NewPrimSearchData validates prim and derives the fields the search needs.
// Returns ErrInvalidInput if prim contains a non-atomic occupant.
func NewPrimSearchData(prim xtal.BasicStructure, factorGroup xtal.FactorGroup) (*PrimSearchData, error) {
	if !prim.IsAtomicOnly() {
		return nil, ErrInvalidInput
	}
	coords := make([]xtal.Vec3, len(prim.Sites))
	allowed := make([][]string, len(prim.Sites))
	for i, s := range prim.Sites {
		coords[i] = s.CartesianCoord
		allowed[i] = append([]string(nil), s.AllowedOccupants...)
	}
	return &PrimSearchData{
		SharedPrim:             prim,
		PrimLattice:            prim.Lattice,
		NPrimSite:              len(prim.Sites),
		PrimSiteCoordinateCart: coords,
		PrimAllowedAtomTypes:   allowed,
		VacanciesAllowed:       prim.VacanciesAllowed(),
		PrimFactorGroup:        factorGroup,
	}, nil
}
