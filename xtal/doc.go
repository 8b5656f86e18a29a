// SPDX-License-Identifier: MIT

// Package xtal provides the crystallography primitives the mapping search
// treats as external collaborators: lattices, symmetry operations (factor
// groups), basis structures, unit-cell-coordinate indexing, and Hermite
// Normal Form superlattice enumeration.
//
// Nothing here knows about assignment, cost matrices, or search — those
// live in assign, lattice, atommap, searchdata, mapping, and search. This
// package is the shared vocabulary all of them build on, the same role
// lvlath/core and lvlath/matrix play for lvlath's traversal and TSP
// packages.
package xtal
