// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/search"
	"github.com/spf13/cobra"
)

var mapStructuresCmd = &cobra.Command{
	Use:   "map-structures",
	Short: "Enumerate combined lattice+atom mappings of the child onto the prim",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		prim, err := buildPrim(cfg.Prim)
		if err != nil {
			return err
		}
		structure, err := buildStructure(cfg.Structure)
		if err != nil {
			return err
		}

		logger.Info("starting structure search",
			"prim_sites", prim.NPrimSite, "atoms", structure.NAtom)

		result, err := search.MapStructures(prim, structure, buildSearchOptions(cfg.Options)...)
		if err != nil {
			return err
		}
		for i, m := range result.Mappings {
			fmt.Printf("%d: score=%.6f lattice_cost=%.6f atom_cost=%.6f permutation=%v\n",
				i, m.Score, m.LatticeCost, m.AtomCost, m.StructureMapping.AtomMapping.Permutation)
		}
		if result.Truncated {
			logger.Warn("search truncated by cost ceiling or k_best cap")
		}
		return nil
	},
}
