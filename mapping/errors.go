package mapping

import "errors"

// ErrInvalidPermutation is returned when a permutation supplied to
// NewAtomMapping is not a bijection on [0, N).
var ErrInvalidPermutation = errors.New("mapping: permutation is not a bijection")
