// SPDX-License-Identifier: MIT
// Package geom: Mat3 operations.
// Mat3 deliberately stays a plain [3][3]float64: the inversion hot loops
// multiply thousands of 3×3 matrices per trial, and a fixed-size array
// keeps them free of bounds checks and heap traffic. The gonum matrix
// types are used only at the generic decomposition boundary (see the
// stress package), never here.

package geom

import "math"

// Identity returns the 3×3 identity matrix.
//
// Complexity: O(1).
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromRows assembles a matrix whose rows are r0, r1, r2.
// The principal stress frames in this module are stored exactly this way:
// row 0 = σ1, row 1 = σ3, row 2 = σ2.
//
// Complexity: O(1).
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// Outer returns the outer product u⊗w (u·wᵗ as a matrix).
//
// Complexity: O(1).
func Outer(u, w Vec3) Mat3 {
	return Mat3{
		{u.X * w.X, u.X * w.Y, u.X * w.Z},
		{u.Y * w.X, u.Y * w.Y, u.Y * w.Z},
		{u.Z * w.X, u.Z * w.Y, u.Z * w.Z},
	}
}

// Row returns row i as a vector. i must be 0, 1 or 2; other values are a
// programmer error and panic via the array bounds check.
//
// Complexity: O(1).
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i][0], m[i][1], m[i][2]}
}

// Add returns m + b element-wise.
//
// Complexity: O(1).
func (m Mat3) Add(b Mat3) Mat3 {
	var (
		out  Mat3
		i, j int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = m[i][j] + b[i][j]
		}
	}
	return out
}

// Scale returns s·m element-wise.
//
// Complexity: O(1).
func (m Mat3) Scale(s float64) Mat3 {
	var (
		out  Mat3
		i, j int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = s * m[i][j]
		}
	}
	return out
}

// Mul returns the matrix product m·b.
//
// Complexity: O(1) (27 multiply-adds).
func (m Mat3) Mul(b Mat3) Mat3 {
	var (
		out     Mat3
		i, j, k int
		s       float64
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			s = 0
			for k = 0; k < 3; k++ {
				s += m[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v.
//
// Complexity: O(1).
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns mᵗ. For a proper rotation this is the inverse.
//
// Complexity: O(1).
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Trace returns m00 + m11 + m22.
//
// Complexity: O(1).
func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Det returns the determinant by cofactor expansion along the first row.
//
// Complexity: O(1).
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsRotation reports whether m is a proper rotation within eps:
// rows orthonormal and det(m) = +1.
//
// Complexity: O(1).
func (m Mat3) IsRotation(eps float64) bool {
	var (
		r0 = m.Row(0)
		r1 = m.Row(1)
		r2 = m.Row(2)
	)
	if !r0.IsUnit(eps) || !r1.IsUnit(eps) || !r2.IsUnit(eps) {
		return false
	}
	if math.Abs(r0.Dot(r1)) > eps || math.Abs(r0.Dot(r2)) > eps || math.Abs(r1.Dot(r2)) > eps {
		return false
	}
	return math.Abs(m.Det()-1) <= eps
}

// IsSymmetric reports whether m equals its transpose within eps.
//
// Complexity: O(1).
func (m Mat3) IsSymmetric(eps float64) bool {
	return math.Abs(m[0][1]-m[1][0]) <= eps &&
		math.Abs(m[0][2]-m[2][0]) <= eps &&
		math.Abs(m[1][2]-m[2][1]) <= eps
}
