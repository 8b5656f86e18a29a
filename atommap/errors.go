package atommap

import "errors"

var (
	// ErrInvalidInput flags mismatched slice lengths, more atoms than
	// sites, or a non-positive tolerance.
	ErrInvalidInput = errors.New("atommap: invalid input")

	// ErrAtomRowAllForbidden is returned when some atom has no allowed
	// site anywhere in the prim, so no assignment can ever place it.
	ErrAtomRowAllForbidden = errors.New("atommap: atom has no allowed site in the prim")
)
