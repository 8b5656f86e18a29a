// SPDX-License-Identifier: MIT

// Package matrix provides a small dense-matrix type and the linear-algebra
// kernels the mapping search needs: multiplication, inversion, transpose,
// and a symmetric eigendecomposition used to take matrix square roots of
// strain tensors.
//
// Matrix is intentionally narrow. It is not a general numerical library —
// it covers exactly the operations exercised by lattice deformation
// gradients (3x3) and assignment cost matrices (N x N).
package matrix
