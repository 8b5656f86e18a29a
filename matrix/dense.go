// SPDX-License-Identifier: MIT
// Package matrix: dense row-major storage with bounds-checked accessors.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a two-dimensional row-major array of float64 values.
//
// Complexity: At/Set are O(1); Clone is O(rows*cols).
type Dense struct {
	rows, cols int
	data       []float64
	allowInf   bool // when true, +Inf/-Inf entries pass validation (cost-matrix sentinels)
}

// NewDense allocates a zero-initialized rows x cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseWithInf allocates a zero matrix that additionally accepts +/-Inf
// entries via Set — used for assignment cost matrices with a forbidden-pair
// sentinel.
func NewDenseWithInf(rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.allowInf = true
	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	return i*m.cols + j, nil
}

// At retrieves the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// MustAt is a panic-on-error convenience for call sites that already
// validated shape (hot loops in lattice/assignment code).
func (m *Dense) MustAt(i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}
	return v
}

// Set assigns v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || (math.IsInf(v, 0) && !m.allowInf) {
		return ErrNaNInf
	}
	m.data[idx] = v
	return nil
}

// MustSet is the panic-on-error counterpart of Set.
func (m *Dense) MustSet(i, j int, v float64) {
	if err := m.Set(i, j, v); err != nil {
		panic(err)
	}
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, allowInf: m.allowInf, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// String renders the matrix row by row, primarily for test failure output.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%.6g", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
