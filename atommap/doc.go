// Package atommap computes periodic-boundary atom displacements, the
// per-pair atom mapping cost, trial translations that bring a child
// structure's atoms into registry with a prim's sites, and the resulting
// site-by-atom cost matrices (padded with synthetic vacancy columns) that
// feed the assign package's Hungarian and Murty solvers.
//
// Grounded directly on CASM's SearchData.cc: make_site_displacements,
// make_atom_mapping_cost, make_trial_translations, and make_cost_matrix.
package atommap
