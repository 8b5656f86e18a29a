package lattice

import "errors"

var (
	// ErrInvalidInput flags a non-positive determinant, a negative
	// tolerance, or an empty search range.
	ErrInvalidInput = errors.New("lattice: invalid input")

	// ErrNoCandidatesUnderBound names the case of no lattice mapping under
	// the requested cost ceiling. No function in this package returns it:
	// an Enumerator with nothing under MaxCost returns ErrExhausted from
	// its first Next call.
	ErrNoCandidatesUnderBound = errors.New("lattice: no lattice mapping under cost bound")

	// ErrExhausted is returned by the enumerator once its determinant range
	// and reorientation search have been fully explored.
	ErrExhausted = errors.New("lattice: enumeration exhausted")
)
