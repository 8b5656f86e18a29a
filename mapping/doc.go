// Package mapping defines the result types the search orchestrator emits
// (AtomMapping, ScoredAtomMapping, StructureMapping, ScoredStructureMapping)
// and the symmetry canonicalization used to deduplicate mappings that are
// equivalent under the combined prim x structure factor group.
//
// Grounded on CASM's AtomMapping.hh result types, adapted from Eigen
// matrices to this module's Vec3/matrix.Dense types.
package mapping
