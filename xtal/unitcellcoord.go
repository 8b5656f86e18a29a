// SPDX-License-Identifier: MIT
// Package xtal: unit-cell-coordinate indexing, the bijection between a
// linear site index into a superlattice and a (sublattice, integer unit
// cell) pair. CASM represents this the same way (UnitCellCoord); no example
// in this pack indexes periodic supercells, so the enumeration order below
// is this module's own Open Question resolution (see the module's design
// notes): bounding-box enumeration of integer cell points, filtered by
// fractional-coordinate membership in [0,1), then sorted lexicographically
// by (i,j,k) for a reproducible, corner-independent ordering.

package xtal

import "sort"

// UnitCellCoord names one site of a superlattice: which prim sublattice b it
// descends from, and which prim unit cell (integer triple) it sits in.
type UnitCellCoord struct {
	Sublattice int
	Cell       [3]int
}

// IndexConverter is a bijection between linear supercell site indices and
// UnitCellCoord values, for a fixed number of prim sublattices and a fixed
// integer transformation matrix T (superlattice = prim lattice * T).
type IndexConverter struct {
	nSublattice int
	t           Mat3Int
	cells       [][3]int // cells[cellIndex] = integer unit cell, in canonical order
}

// NewIndexConverter enumerates the det(T) representative unit cells of the
// superlattice defined by t over a prim with nSublattice basis sites.
// Returns ErrNonPositiveDeterminant if det(T) <= 0, ErrInvalidInput if
// nSublattice <= 0.
func NewIndexConverter(nSublattice int, t Mat3Int) (*IndexConverter, error) {
	if nSublattice <= 0 {
		return nil, ErrInvalidInput
	}
	det := t.Det()
	if det <= 0 {
		return nil, ErrNonPositiveDeterminant
	}
	tinv, ok := inverse3x3Rational(t)
	if !ok {
		return nil, ErrNonPositiveDeterminant
	}

	// Bound the search box generously: any representative cell's
	// coordinates are bounded by the sum of |T| column entries.
	bound := 1
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a := absInt(t[i][j]); a > bound {
				bound = a
			}
		}
	}
	bound = bound*3 + 1

	const tol = 1e-9
	var cells [][3]int
	for i := -bound; i <= bound; i++ {
		for j := -bound; j <= bound; j++ {
			for k := -bound; k <= bound; k++ {
				frac := tinv.apply(i, j, k)
				if inHalfOpenUnitCell(frac, tol) {
					cells = append(cells, [3]int{i, j, k})
				}
			}
		}
	}
	sort.Slice(cells, func(a, b int) bool {
		ca, cb := cells[a], cells[b]
		for d := 0; d < 3; d++ {
			if ca[d] != cb[d] {
				return ca[d] < cb[d]
			}
		}
		return false
	})
	if len(cells) != det {
		return nil, ErrNumericalTolerance
	}
	return &IndexConverter{nSublattice: nSublattice, t: t, cells: cells}, nil
}

// NumSites returns the total number of supercell sites: nSublattice * det(T).
func (c *IndexConverter) NumSites() int { return c.nSublattice * len(c.cells) }

// ToLinearIndex maps a UnitCellCoord to its linear site index, or
// ErrInvalidInput if the sublattice or cell is not part of this converter's
// representative set.
func (c *IndexConverter) ToLinearIndex(u UnitCellCoord) (int, error) {
	if u.Sublattice < 0 || u.Sublattice >= c.nSublattice {
		return 0, ErrInvalidInput
	}
	for cellIdx, cell := range c.cells {
		if cell == u.Cell {
			return cellIdx*c.nSublattice + u.Sublattice, nil
		}
	}
	return 0, ErrInvalidInput
}

// FromLinearIndex maps a linear site index back to its UnitCellCoord.
func (c *IndexConverter) FromLinearIndex(l int) (UnitCellCoord, error) {
	if l < 0 || l >= c.NumSites() {
		return UnitCellCoord{}, ErrInvalidInput
	}
	cellIdx := l / c.nSublattice
	b := l % c.nSublattice
	return UnitCellCoord{Sublattice: b, Cell: c.cells[cellIdx]}, nil
}

// rational3x3 is an integer-numerator, common-denominator inverse of a
// Mat3Int, kept exact so unit-cell membership tests never suffer
// floating-point drift near cell boundaries.
type rational3x3 struct {
	numerator [3][3]int
	denom     int
}

func (r rational3x3) apply(i, j, k int) [3]float64 {
	var out [3]float64
	v := [3]int{i, j, k}
	for row := 0; row < 3; row++ {
		sum := 0
		for col := 0; col < 3; col++ {
			sum += r.numerator[row][col] * v[col]
		}
		out[row] = float64(sum) / float64(r.denom)
	}
	return out
}

func inverse3x3Rational(m Mat3Int) (rational3x3, bool) {
	det := m.Det()
	if det == 0 {
		return rational3x3{}, false
	}
	var adj [3][3]int
	adj[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	adj[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1])
	adj[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	adj[1][0] = -(m[1][0]*m[2][2] - m[1][2]*m[2][0])
	adj[1][1] = m[0][0]*m[2][2] - m[0][2]*m[2][0]
	adj[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0])
	adj[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	adj[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0])
	adj[2][2] = m[0][0]*m[1][1] - m[0][1]*m[1][0]

	// adjugate transpose gives inverse numerator: inv = adj^T / det
	var numT [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			numT[i][j] = adj[j][i]
		}
	}
	return rational3x3{numerator: numT, denom: det}, true
}

func inHalfOpenUnitCell(frac [3]float64, tol float64) bool {
	for _, f := range frac {
		if f < -tol || f >= 1-tol {
			return false
		}
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
