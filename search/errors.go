package search

import "errors"

var (
	// ErrInvalidInput flags a negative tolerance, a non-positive k_best,
	// or negative score weights.
	ErrInvalidInput = errors.New("search: invalid input")
)
