package searchdata

import "github.com/katalvlaran/xtalmap/xtal"

// StructureSearchData is the immutable, once-per-query record describing
// the candidate child structure. StructureFactorGroup defaults to the
// identity operation when the caller supplies none, matching
// SearchData.cc's default for a structure without known symmetry.
type StructureSearchData struct {
	Lattice              xtal.Lattice
	NAtom                int
	AtomCoordinateCart   []xtal.Vec3
	AtomType             []string
	StructureFactorGroup xtal.FactorGroup
}

// NewStructureSearchData validates and constructs a StructureSearchData.
// Returns ErrAtomTypeCountMismatch if coords and types disagree in length.
func NewStructureSearchData(lattice xtal.Lattice, coords []xtal.Vec3, types []string, factorGroup xtal.FactorGroup) (*StructureSearchData, error) {
	if len(coords) != len(types) {
		return nil, ErrAtomTypeCountMismatch
	}
	if factorGroup == nil {
		factorGroup = xtal.FactorGroup{xtal.IdentityOp(len(coords))}
	}
	return &StructureSearchData{
		Lattice:              lattice,
		NAtom:                len(coords),
		AtomCoordinateCart:   append([]xtal.Vec3(nil), coords...),
		AtomType:             append([]string(nil), types...),
		StructureFactorGroup: factorGroup,
	}, nil
}
