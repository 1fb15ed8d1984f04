// SPDX-License-Identifier: MIT
// Package geom: proper rotation construction and the minimum-rotation metric.
//
// The inversion engine perturbs candidate stress orientations by composing
// proper rotations (NewRotation) and scores frame agreement through the
// minimum rotation angle (MinRotationAngle). Both live here because every
// other package needs them and neither depends on stress semantics.

package geom

import "math"

// NewRotation returns the proper rotation tensor turning vectors by angle
// (radians, right-hand rule) about axis.
//
// Contracts:
//   - axis need not be unit length; it is normalized internally.
//   - The result R satisfies R·axis = axis, Rᵗ·R = I and det(R) = +1.
//
// Errors:
//   - ErrDegenerateAxis when ‖axis‖ < Eps.
//
// Rodrigues form: R = cosθ·I + sinθ·[k]× + (1−cosθ)·k⊗k.
//
// Complexity: O(1).
func NewRotation(axis Vec3, angle float64) (Mat3, error) {
	var k, err = axis.Normalize()
	if err != nil {
		return Mat3{}, ErrDegenerateAxis
	}

	var (
		c = math.Cos(angle)
		s = math.Sin(angle)
		t = 1 - c
	)
	return Mat3{
		{c + t*k.X*k.X, t*k.X*k.Y - s*k.Z, t*k.X*k.Z + s*k.Y},
		{t*k.Y*k.X + s*k.Z, c + t*k.Y*k.Y, t*k.Y*k.Z - s*k.X},
		{t*k.Z*k.X - s*k.Y, t*k.Z*k.Y + s*k.X, c + t*k.Z*k.Z},
	}, nil
}

// MinRotationAngle returns the minimum rotation angle (radians) carried by
// r, minimized over the sign changes that leave a right-handed principal
// stress frame physically equivalent (flipping any two of the three axes).
//
// A stress tensor does not distinguish an axis from its opposite, so the
// frames F and D·F with D ∈ {I, diag(1,−1,−1), diag(−1,1,−1), diag(−1,−1,1)}
// represent the same state. For each variant the rotation angle is
// acos((tr−1)/2); the minimum angle corresponds to the maximum of
//
//	tr(r),  r00−r11−r22,  −r00+r11−r22,  −r00−r11+r22.
//
// Contracts:
//   - r is assumed to be a rotation composed as Crot·Hrotᵗ between two
//     right-handed frames; no validation is performed here (hot path).
//   - Result ∈ [0, 2π/3]; the acos argument is clamped, so near-rotation
//     inputs with FP drift never produce NaN.
//
// Complexity: O(1).
func MinRotationAngle(r Mat3) float64 {
	var (
		t0 = r[0][0] + r[1][1] + r[2][2]
		t1 = r[0][0] - r[1][1] - r[2][2]
		t2 = -r[0][0] + r[1][1] - r[2][2]
		t3 = -r[0][0] - r[1][1] + r[2][2]
	)

	var t = t0
	if t1 > t {
		t = t1
	}
	if t2 > t {
		t = t2
	}
	if t3 > t {
		t = t3
	}
	return AcosClamped((t - 1) / 2)
}
