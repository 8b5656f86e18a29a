// SPDX-License-Identifier: MIT
// Package xtal: symmetry operations and factor groups, used to canonicalize
// mapping results by collapsing symmetry-equivalent candidates to one
// representative (spec section 4.H).

package xtal

import "github.com/katalvlaran/xtalmap/matrix"

// SymOp is a crystallographic symmetry operation: a Cartesian rotation
// (proper or improper), a Cartesian translation, and the permutation of
// prim basis sites it induces (nil when the op is not being applied to a
// structure with fixed site ordering).
type SymOp struct {
	Rotation    *matrix.Dense // 3x3
	Translation Vec3
	SitePerm    []int // SitePerm[i] = j means op maps site i to site j
}

// FactorGroup is the finite set of symmetry operations that leave a prim
// structure invariant (as a set of occupied sites, up to lattice
// translation).
type FactorGroup []SymOp

// IdentityOp returns the trivial symmetry operation over n sites.
func IdentityOp(n int) SymOp {
	id, _ := matrix.Identity(3)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return SymOp{Rotation: id, Translation: Vec3{}, SitePerm: perm}
}

// ApplyToLatticeVector applies the rotation part of op to a Cartesian
// lattice vector (translation does not act on vectors, only points).
func (op SymOp) ApplyToLatticeVector(v Vec3) Vec3 {
	return matVec(op.Rotation, v)
}

// ApplyToPoint applies the full affine operation (rotation then
// translation) to a Cartesian point.
func (op SymOp) ApplyToPoint(p Vec3) Vec3 {
	return matVec(op.Rotation, p).Add(op.Translation)
}

// ApplyToMat3Int conjugates an integer transformation matrix by op's
// rotation, used when checking whether two superlattice transformations T1,
// T2 are related by a factor-group operation.
func (op SymOp) ApplyToMat3Int(t Mat3Int) (Mat3Int, error) {
	td := t.ToDense()
	rt, err := matrix.Mul(op.Rotation, td)
	if err != nil {
		return Mat3Int{}, err
	}
	rInv, err := matrix.Inverse(op.Rotation)
	if err != nil {
		return Mat3Int{}, err
	}
	out, err := matrix.Mul(rt, rInv)
	if err != nil {
		return Mat3Int{}, err
	}
	var m Mat3Int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := out.MustAt(i, j)
			m[i][j] = int(v + signOf(v)*0.5) // round to nearest int
		}
	}
	return m, nil
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// InternalTranslations extracts the Cartesian translation vectors of the
// pure-translation operations in a factor group (rotation == identity and
// SitePerm == identity), used by trial-translation deduplication. Grounded
// on SearchData.cc's is_new_unique_translation, which checks a candidate
// translation against exactly this set plus the prim lattice vectors.
func (fg FactorGroup) InternalTranslations() []Vec3 {
	out := make([]Vec3, 0, len(fg))
	for _, op := range fg {
		if !isIdentityRotation(op.Rotation) || !isIdentityPerm(op.SitePerm) {
			continue
		}
		out = append(out, op.Translation)
	}
	return out
}

func isIdentityRotation(m *matrix.Dense) bool {
	if m == nil || m.Rows() != 3 || m.Cols() != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if v := m.MustAt(i, j); abs(v-want) > 1e-9 {
				return false
			}
		}
	}
	return true
}

func isIdentityPerm(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
