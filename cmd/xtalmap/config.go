// SPDX-License-Identifier: MIT
// Package main: the xtalmap CLI, grounded on this pack's own cmd/aleutian
// convention of a YAML-driven config struct loaded once per invocation.

package main

// LatticeConfig is a 3x3 basis given row by row.
type LatticeConfig struct {
	Basis [3][3]float64 `yaml:"basis"`
	Tol   float64       `yaml:"tol"`
}

// SiteConfig is one prim basis site.
type SiteConfig struct {
	Coord   [3]float64 `yaml:"coord"`
	Species []string   `yaml:"species"`
}

// AtomConfig is one child atom.
type AtomConfig struct {
	Coord   [3]float64 `yaml:"coord"`
	Species string     `yaml:"species"`
}

// PrimConfig describes the idealized reference crystal.
type PrimConfig struct {
	Lattice LatticeConfig `yaml:"lattice"`
	Sites   []SiteConfig  `yaml:"sites"`
}

// StructureConfig describes the candidate child structure.
type StructureConfig struct {
	Lattice LatticeConfig `yaml:"lattice"`
	Atoms   []AtomConfig  `yaml:"atoms"`
}

// SearchOptionsConfig mirrors search.Options, with zero values replaced by
// search's own defaults where the field is left unset.
type SearchOptionsConfig struct {
	Alpha              float64 `yaml:"alpha"`
	Beta               float64 `yaml:"beta"`
	MaxLatticeCost     float64 `yaml:"max_lattice_cost"`
	MaxAtomCost        float64 `yaml:"max_atom_cost"`
	MaxTotalCost       float64 `yaml:"max_total_cost"`
	KBest              int     `yaml:"k_best"`
	MinVolume          int     `yaml:"min_volume"`
	MaxVolume          int     `yaml:"max_volume"`
	ReorientationBound int     `yaml:"reorientation_bound"`
	Robust             bool    `yaml:"robust"`
	Tol                float64 `yaml:"tol"`
}

// Config is the top-level document read from a --config YAML file.
type Config struct {
	Prim      PrimConfig          `yaml:"prim"`
	Structure StructureConfig     `yaml:"structure"`
	Options   SearchOptionsConfig `yaml:"options"`
}
