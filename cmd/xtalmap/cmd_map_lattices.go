// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/xtalmap/search"
	"github.com/spf13/cobra"
)

var mapLatticesCmd = &cobra.Command{
	Use:   "map-lattices",
	Short: "Enumerate lattice mappings of the child lattice onto prim superlattices",
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

		candidates, truncated, err := search.MapLattices(prim, structure, buildSearchOptions(cfg.Options)...)
		if err != nil {
			return err
		}
		for i, c := range candidates {
			fmt.Printf("%d: cost=%.6f transform=%v\n", i, c.Cost, c.Mapping.CombinedTransform())
		}
		if truncated {
			logger.Warn("lattice enumeration truncated by k_best cap")
		}
		return nil
	},
}
