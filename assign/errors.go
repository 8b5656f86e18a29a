package assign

import "errors"

var (
	// ErrEmptyCostMatrix is returned when the cost matrix has zero rows or
	// columns.
	ErrEmptyCostMatrix = errors.New("assign: empty cost matrix")

	// ErrInfeasibleAssignment is returned when no complete assignment
	// avoids every forbidden (+Inf) pairing.
	ErrInfeasibleAssignment = errors.New("assign: no feasible assignment exists")

	// ErrNoAssignmentsUnderBound is returned by the enumerator when the
	// next-cheapest assignment would exceed the configured cost ceiling.
	ErrNoAssignmentsUnderBound = errors.New("assign: no further assignments under cost bound")

	// ErrExhausted is returned by the enumerator once every feasible
	// assignment has already been emitted.
	ErrExhausted = errors.New("assign: assignment space exhausted")
)
