// Package xtalmap enumerates low-cost mappings of a candidate atomic
// structure onto superlattices of an idealized reference crystal (a
// "prim"), ranking each mapping by a weighted combination of lattice
// strain and atomic displacement cost.
//
// A mapping decomposes into two parts, solved in sequence and merged by a
// best-first search:
//
//   - A lattice mapping F*L1*T*N = L2, where T is an integer Hermite
//     Normal Form superlattice transform, N a unimodular reorientation,
//     and F the deformation gradient scored by right-stretch strain.
//   - An atom mapping: a linear assignment of child atoms (plus synthetic
//     vacancies) onto the supercell's sites under periodic boundary
//     conditions, solved by the Hungarian algorithm and enumerated in
//     ascending-cost order by Murty's algorithm.
//
// Package layout mirrors this decomposition:
//
//	xtal/      — lattice, structure, symmetry and index-conversion primitives
//	matrix/    — dense matrix storage and linear algebra (eigendecomposition, inverse)
//	assign/    — Hungarian optimal assignment and Murty k-best enumeration
//	lattice/   — lattice mapping enumeration and strain cost
//	atommap/   — atomic cost matrices, trial translations, minimum-image displacement
//	searchdata/ — immutable shared records threading a search through prim, structure,
//	              lattice mapping and atom mapping stages
//	mapping/   — result types and symmetry-orbit canonicalization
//	search/    — the best-first orchestrator (MapLattices, MapAtoms, MapStructures)
//
// Callers typically build a PrimSearchData and a StructureSearchData and
// call search.MapStructures; the lower-level MapLattices and MapAtoms
// entry points expose the lattice and atom stages independently for
// callers that already have a fixed lattice mapping in hand.
//
// cmd/xtalmap wraps the same three entry points in a YAML-configured CLI.
package xtalmap
