// SPDX-License-Identifier: MIT
// Package geom: Vec3 operations.
// All methods are side-effect free and allocation free; Vec3 is a value
// type small enough to pass and return by value in hot loops.

package geom

import "math"

// Add returns v + w.
//
// Complexity: O(1).
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v − w.
//
// Complexity: O(1).
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s·v.
//
// Complexity: O(1).
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// Neg returns −v.
//
// Complexity: O(1).
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v·w.
//
// Complexity: O(1).
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed vector product v×w.
//
// Complexity: O(1).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length ‖v‖.
//
// Complexity: O(1).
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v/‖v‖.
// When ‖v‖ < Eps it returns ErrDegenerateVector; the caller decides whether
// degeneracy is fatal (construction time) or a misfit-policy case
// (evaluation time).
//
// Complexity: O(1).
func (v Vec3) Normalize() (Vec3, error) {
	var n = v.Norm()
	if n < Eps {
		return Vec3{}, ErrDegenerateVector
	}
	return v.Scale(1 / n), nil
}

// IsUnit reports whether ‖v‖ is within eps of 1.
//
// Complexity: O(1).
func (v Vec3) IsUnit(eps float64) bool {
	return math.Abs(v.Norm()-1) <= eps
}
