// Package lattice computes strain cost between two lattices and enumerates
// candidate lattice mappings of a prim onto superlattices matching a child.
//
// A LatticeMapping relates a prim lattice L1 and a child lattice L2 by
// F*L1*T*N = L2, where F is a real deformation gradient, T is an integer
// transformation to a superlattice of positive determinant, and N is a
// unimodular integer reorientation. StrainCost and SymmetryBreakingCost
// score a mapping's deformation gradient; Enumerator builds its whole
// candidate set at construction and serves it through Next in ascending
// cost order, deduplicated by symmetry.
package lattice
