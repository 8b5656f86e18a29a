// SPDX-License-Identifier: MIT
// Package xtal: fixed-size 3-vector arithmetic. A dedicated type (rather
// than routing every displacement through matrix.Dense) keeps the hot
// per-site-per-atom displacement loop in atommap allocation-free.

package xtal

import "math"

// Vec3 is a Cartesian or fractional 3-vector, column convention.
type Vec3 [3]float64

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns a scaled by alpha.
func (a Vec3) Scale(alpha float64) Vec3 { return Vec3{a[0] * alpha, a[1] * alpha, a[2] * alpha} }

// Dot returns the standard inner product a.b.
func (a Vec3) Dot(b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// NormSquared returns a.a.
func (a Vec3) NormSquared() float64 { return a.Dot(a) }

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 { return math.Sqrt(a.NormSquared()) }

// Round returns the componentwise nearest-integer vector.
func (a Vec3) Round() Vec3 {
	return Vec3{math.Round(a[0]), math.Round(a[1]), math.Round(a[2])}
}

// IsInteger reports whether every component of a is within tol of an
// integer.
func (a Vec3) IsInteger(tol float64) bool {
	for _, x := range a {
		if math.Abs(x-math.Round(x)) > tol {
			return false
		}
	}
	return true
}

// WrapToUnitCell returns a componentwise reduced into [0,1) modulo 1, within tol.
func (a Vec3) WrapToUnitCell(tol float64) Vec3 {
	out := Vec3{}
	for i, x := range a {
		f := x - math.Floor(x)
		if f > 1-tol {
			f = 0
		}
		out[i] = f
	}
	return out
}
