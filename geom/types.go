// SPDX-License-Identifier: MIT
// Package geom: core value types, numeric policy and sentinel errors.
// This file defines ONLY the shared types, the package tolerance and the
// package-level sentinel errors. All geom functions return these sentinels
// and callers match them via errors.Is; nothing in this package panics on
// user-triggered conditions.

package geom

import "errors"

// Eps is the shared numeric tolerance of the paleostress packages:
// zero-length detection, perpendicularity tests, vanishing shear magnitudes.
// Value chosen so that degraded field measurements (degrees with ~1e-5
// precision) never trip it, while true degeneracies always do.
const Eps = 1e-7

var (
	// ErrDegenerateVector is returned when a zero-length vector (‖v‖ < Eps)
	// is normalized or converted to spherical coordinates.
	ErrDegenerateVector = errors.New("geom: cannot normalize a zero-length vector")

	// ErrDegenerateAxis is returned by NewRotation when the rotation axis
	// has zero length within Eps.
	ErrDegenerateAxis = errors.New("geom: rotation axis has zero length")
)

// Vec3 is a 3-component vector in the East-North-Up frame
// (X=East, Y=North, Z=Up). Value type: methods return new values and never
// mutate the receiver.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a row-major 3×3 matrix. Depending on context it carries a proper
// rotation (orthonormal rows, det=+1) or a symmetric stress tensor.
// Value type, like Vec3.
type Mat3 [3][3]float64

// SphericalCoords locates a unit direction on the sphere:
// Phi ∈ [0,2π) is the trigonometric azimuth (anticlockwise from +X/East),
// Theta ∈ [0,π] the colatitude measured from +Z (zenith).
type SphericalCoords struct {
	Phi   float64
	Theta float64
}
