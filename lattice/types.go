package lattice

import (
	"github.com/katalvlaran/xtalmap/matrix"
	"github.com/katalvlaran/xtalmap/xtal"
)

// Mapping relates a prim lattice L1 and a child lattice L2 by
// F*L1*T*N = L2. T must have positive determinant; N must be unimodular.
type Mapping struct {
	F *matrix.Dense // 3x3 deformation gradient
	T xtal.Mat3Int  // transformation to superlattice, det(T) > 0
	N xtal.Mat3Int  // reorientation, unimodular
}

// NewMapping validates and constructs a Mapping.
func NewMapping(f *matrix.Dense, t, n xtal.Mat3Int) (Mapping, error) {
	if f == nil || f.Rows() != 3 || f.Cols() != 3 {
		return Mapping{}, ErrInvalidInput
	}
	if t.Det() <= 0 {
		return Mapping{}, ErrInvalidInput
	}
	if !n.IsUnimodular() {
		return Mapping{}, ErrInvalidInput
	}
	det, err := matrix.Det(f)
	if err != nil {
		return Mapping{}, err
	}
	if det == 0 {
		return Mapping{}, ErrInvalidInput
	}
	return Mapping{F: f.Clone(), T: t, N: n}, nil
}

// CombinedTransform returns T*N, the single integer transform from the prim
// lattice directly to the reoriented superlattice.
func (m Mapping) CombinedTransform() xtal.Mat3Int {
	return m.T.Mul(m.N)
}

// ScoredMapping pairs a lattice mapping with its strain cost.
type ScoredMapping struct {
	Mapping Mapping
	Cost    float64
}
