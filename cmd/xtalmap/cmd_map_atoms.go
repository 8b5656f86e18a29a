// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/search"
	"github.com/katalvlaran/xtalmap/searchdata"
	"github.com/spf13/cobra"
)

var mapAtomsCmd = &cobra.Command{
	Use:   "map-atoms",
	Short: "Enumerate atom assignments under the best lattice mapping found",
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

		lattices, _, err := search.MapLattices(prim, structure, buildSearchOptions(cfg.Options)...)
		if err != nil {
			return err
		}
		if len(lattices) == 0 {
			return fmt.Errorf("no lattice mapping found to assign atoms under")
		}

		lmData, err := searchdata.NewLatticeMappingSearchData(prim, structure, lattices[0].Mapping)
		if err != nil {
			return err
		}

		assignments, truncated, err := search.MapAtoms(lmData, buildSearchOptions(cfg.Options)...)
		if err != nil {
			return err
		}
		for i, a := range assignments {
			fmt.Printf("%d: cost=%.6f permutation=%v\n", i, a.AtomCost, a.AtomMapping.Permutation)
		}
		if truncated {
			logger.Warn("atom assignment enumeration truncated by k_best cap")
		}
		return nil
	},
}
