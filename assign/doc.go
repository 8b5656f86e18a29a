// Package assign solves the linear assignment problem on a dense cost
// matrix, and enumerates the k best assignments in non-decreasing cost
// order via Murty's algorithm.
//
// Hungarian finds the single minimum-cost assignment in O(n^3) using the
// Jonker-Volgenant potential formulation. Murty wraps it in a branch-and-
// bound partitioning scheme: each emitted assignment spawns a set of
// subproblems (one per position along the emitted permutation, forcing a
// distinct row/column pair to be forbidden) that a min-heap keeps ordered
// by their own optimal cost, so the next call to the enumerator's Next
// method always returns the next-cheapest assignment overall.
//
// A cost matrix entry of +Inf marks a forbidden row/column pairing (used by
// the mapping search to encode disallowed occupant/site combinations).
// Both solvers treat an all-Inf row or column as an infeasibility, not a
// silent skip.
package assign
