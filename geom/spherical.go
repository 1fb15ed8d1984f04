// SPDX-License-Identifier: MIT
// Package geom: angle conventions and spherical conversions.
//
// Two azimuth conventions meet in this module. Field measurements use
// compass azimuths (clockwise from North); the math uses trigonometric
// azimuths φ (anticlockwise from East). The bridge is φ = π/2 − azimuth,
// which happens to be its own inverse modulo 2π.

package geom

import "math"

// Clamp returns x limited to [lo, hi].
//
// Complexity: O(1).
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// AcosClamped returns acos of x clamped to [−1,1].
// Dot products of unit vectors drift past ±1 by a few ULPs; clamping keeps
// every angle finite without masking real errors (degeneracies are caught
// by Eps checks before angles are taken).
//
// Complexity: O(1).
func AcosClamped(x float64) float64 {
	return math.Acos(Clamp(x, -1, 1))
}

// AsinClamped returns asin of x clamped to [−1,1].
//
// Complexity: O(1).
func AsinClamped(x float64) float64 {
	return math.Asin(Clamp(x, -1, 1))
}

// NormalizeAngle maps any angle (radians) into [0, 2π).
//
// Complexity: O(1).
func NormalizeAngle(x float64) float64 {
	var r = math.Mod(x, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// Radians converts degrees to radians.
//
// Complexity: O(1).
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
//
// Complexity: O(1).
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// CompassToPhi converts a compass azimuth (radians, clockwise from North)
// to the trigonometric azimuth φ (anticlockwise from East), normalized to
// [0, 2π). The mapping φ = π/2 − azimuth is an involution modulo 2π.
//
// Complexity: O(1).
func CompassToPhi(azimuth float64) float64 {
	return NormalizeAngle(math.Pi/2 - azimuth)
}

// PhiToCompass converts a trigonometric azimuth back to a compass azimuth
// in [0, 2π). Provided for readable call sites; it is the same mapping as
// CompassToPhi.
//
// Complexity: O(1).
func PhiToCompass(phi float64) float64 {
	return CompassToPhi(phi)
}

// Vec returns the unit vector of the spherical direction:
// (sinθ·cosφ, sinθ·sinφ, cosθ).
//
// Complexity: O(1).
func (s SphericalCoords) Vec() Vec3 {
	var st = math.Sin(s.Theta)
	return Vec3{
		st * math.Cos(s.Phi),
		st * math.Sin(s.Phi),
		math.Cos(s.Theta),
	}
}

// SphericalOf returns the spherical coordinates of direction v.
// v need not be unit length; it is normalized internally.
// At the poles (θ = 0 or π) the azimuth is conventionally 0.
//
// Errors:
//   - ErrDegenerateVector when ‖v‖ < Eps.
//
// Complexity: O(1).
func SphericalOf(v Vec3) (SphericalCoords, error) {
	var u, err = v.Normalize()
	if err != nil {
		return SphericalCoords{}, err
	}

	var s SphericalCoords
	s.Theta = AcosClamped(u.Z)
	if math.Abs(u.X) < Eps && math.Abs(u.Y) < Eps {
		s.Phi = 0 // pole: azimuth undefined, fix the representative
		return s, nil
	}
	s.Phi = NormalizeAngle(math.Atan2(u.Y, u.X))
	return s, nil
}

// TrendPlungeVec returns the unit vector of a downward-pointing line given
// its compass trend (radians, clockwise from North) and plunge (radians,
// positive down from horizontal):
// (cos p·sin t, cos p·cos t, −sin p).
//
// Complexity: O(1).
func TrendPlungeVec(trend, plunge float64) Vec3 {
	var cp = math.Cos(plunge)
	return Vec3{
		cp * math.Sin(trend),
		cp * math.Cos(trend),
		-math.Sin(plunge),
	}
}

// TrendPlungeOf returns the compass trend ∈ [0,2π) and plunge ∈ [0,π/2]
// (radians) of the line carried by v, flipping v to the lower hemisphere
// first so that plunge is never negative. Lines are sign-free, so the flip
// loses nothing.
//
// Errors:
//   - ErrDegenerateVector when ‖v‖ < Eps.
//
// Complexity: O(1).
func TrendPlungeOf(v Vec3) (trend, plunge float64, err error) {
	var u Vec3
	u, err = v.Normalize()
	if err != nil {
		return 0, 0, err
	}
	if u.Z > 0 {
		u = u.Neg()
	}

	plunge = AsinClamped(-u.Z)
	if math.Abs(u.X) < Eps && math.Abs(u.Y) < Eps {
		return 0, plunge, nil // vertical line: trend undefined, fix the representative
	}
	trend = NormalizeAngle(math.Atan2(u.X, u.Y))
	return trend, plunge, nil
}
