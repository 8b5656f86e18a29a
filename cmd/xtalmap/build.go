// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/search"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/katalvlaran/xtalmap/xtal"
)

func denseFromRows(rows [3][3]float64) (*matrix.Dense, error) {
	d, err := matrix.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if err := d.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func buildLattice(cfg LatticeConfig) (xtal.Lattice, error) {
	tol := cfg.Tol
	if tol == 0 {
		tol = 1e-8
	}
	basis, err := denseFromRows(cfg.Basis)
	if err != nil {
		return xtal.Lattice{}, err
	}
	return xtal.NewLattice(basis, tol)
}

func buildPrim(cfg PrimConfig) (*searchdata.PrimSearchData, error) {
	lattice, err := buildLattice(cfg.Lattice)
	if err != nil {
		return nil, err
	}
	sites := make([]xtal.Site, len(cfg.Sites))
	for i, s := range cfg.Sites {
		sites[i] = xtal.Site{
			CartesianCoord:   xtal.Vec3{s.Coord[0], s.Coord[1], s.Coord[2]},
			AllowedOccupants: s.Species,
		}
	}
	prim, err := xtal.NewBasicStructure(lattice, sites)
	if err != nil {
		return nil, err
	}
	return searchdata.NewPrimSearchData(prim, nil)
}

func buildStructure(cfg StructureConfig) (*searchdata.StructureSearchData, error) {
	lattice, err := buildLattice(cfg.Lattice)
	if err != nil {
		return nil, err
	}
	coords := make([]xtal.Vec3, len(cfg.Atoms))
	types := make([]string, len(cfg.Atoms))
	for i, a := range cfg.Atoms {
		coords[i] = xtal.Vec3{a.Coord[0], a.Coord[1], a.Coord[2]}
		types[i] = a.Species
	}
	return searchdata.NewStructureSearchData(lattice, coords, types, nil)
}

// buildSearchOptions turns the config's options block into search.Option
// values, skipping fields left at their YAML zero value so search's own
// defaults apply.
func buildSearchOptions(cfg SearchOptionsConfig) []search.Option {
	var opts []search.Option
	if cfg.Alpha != 0 || cfg.Beta != 0 {
		alpha, beta := cfg.Alpha, cfg.Beta
		if alpha == 0 {
			alpha = 1
		}
		if beta == 0 {
			beta = 1
		}
		opts = append(opts, search.WithWeights(alpha, beta))
	}
	if cfg.MaxLatticeCost > 0 {
		opts = append(opts, search.WithMaxLatticeCost(cfg.MaxLatticeCost))
	}
	if cfg.MaxAtomCost > 0 {
		opts = append(opts, search.WithMaxAtomCost(cfg.MaxAtomCost))
	}
	if cfg.MaxTotalCost > 0 {
		opts = append(opts, search.WithMaxTotalCost(cfg.MaxTotalCost))
	}
	if cfg.KBest > 0 {
		opts = append(opts, search.WithKBest(cfg.KBest))
	}
	if cfg.MinVolume > 0 && cfg.MaxVolume > 0 {
		opts = append(opts, search.WithVolumeRange(cfg.MinVolume, cfg.MaxVolume))
	}
	if cfg.ReorientationBound > 0 {
		opts = append(opts, search.WithReorientationBound(cfg.ReorientationBound))
	}
	if cfg.Robust {
		opts = append(opts, search.WithRobustPBC(true))
	}
	if cfg.Tol > 0 {
		opts = append(opts, search.WithTol(cfg.Tol))
	}
	return opts
}
