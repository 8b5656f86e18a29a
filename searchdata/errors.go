package searchdata

import "errors"

var (
	// ErrInvalidInput flags non-atomic occupants in the prim, or a nil
	// prim, structure or lattice-mapping record.
	ErrInvalidInput = errors.New("searchdata: invalid input")

	// ErrAtomTypeCountMismatch flags a StructureSearchData whose
	// atom-coordinate and atom-type slices disagree in length.
	ErrAtomTypeCountMismatch = errors.New("searchdata: atom coordinate and atom type counts differ")
)
