// Package stress: Andersonian regime parametrization.
//
// One vertical principal axis plus the azimuth of the maximum horizontal
// stress describe the three Andersonian regimes. A single index R′ ∈ [0,3]
// sweeps through them continuously:
//
//	R′ ∈ [0,1]  normal       (σ1 vertical),  R = R′
//	R′ ∈ [1,2]  strike-slip  (σ2 vertical),  R = 2 − R′
//	R′ ∈ [2,3]  reverse      (σ3 vertical),  R = R′ − 2
//
// The assembled tensor is continuous across the regime boundaries, which
// makes (θ, R′) a well-behaved two-parameter misfit landscape.

package stress

import (
	"math"

	"github.com/tectolab/paleostress/geom"
)

// Regime names the Andersonian faulting regime of a regime index.
type Regime int

const (
	// RegimeNormal: σ1 vertical, extensional faulting.
	RegimeNormal Regime = iota

	// RegimeStrikeSlip: σ2 vertical, wrench faulting.
	RegimeStrikeSlip

	// RegimeReverse: σ3 vertical, compressional faulting.
	RegimeReverse
)

// String returns the conventional regime name.
func (r Regime) String() string {
	switch r {
	case RegimeNormal:
		return "normal"
	case RegimeStrikeSlip:
		return "strike-slip"
	case RegimeReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// RegimeOf classifies a regime index. Boundaries belong to the lower
// regime: RegimeOf(1) is still normal, RegimeOf(2) strike-slip.
//
// Errors:
//   - ErrRegimeRange when rb ∉ [0,3].
//
// Complexity: O(1).
func RegimeOf(rb float64) (Regime, error) {
	switch {
	case rb < 0 || rb > 3:
		return 0, ErrRegimeRange
	case rb <= 1:
		return RegimeNormal, nil
	case rb <= 2:
		return RegimeStrikeSlip, nil
	default:
		return RegimeReverse, nil
	}
}

// FromRegime builds the reduced tensor of the Andersonian state with
// maximum-horizontal-stress azimuth theta (radians, compass convention,
// clockwise from North) and regime index rb ∈ [0,3].
//
// Contracts:
//   - The returned frame is right-handed; the vertical axis or the
//     perpendicular horizontal axis is negated where needed to keep
//     det(HRot)=+1. Axis signs are physically irrelevant.
//   - S is continuous in rb across the regime boundaries.
//
// Errors:
//   - ErrRegimeRange when rb ∉ [0,3].
//
// Complexity: O(1).
func FromRegime(theta, rb float64) (*Tensor, error) {
	if rb < 0 || rb > 3 {
		return nil, ErrRegimeRange
	}

	var (
		hmax = geom.Vec3{X: math.Sin(theta), Y: math.Cos(theta)}  // SHmax direction
		perp = geom.Vec3{X: math.Cos(theta), Y: -math.Sin(theta)} // horizontal, ⊥ SHmax
		up   = geom.Vec3{Z: 1}
	)

	var (
		hrot  geom.Mat3
		ratio float64
	)
	switch {
	case rb <= 1: // normal: σ1 vertical, σ2 along SHmax
		ratio = rb
		hrot = geom.FromRows(up, perp, hmax)
	case rb <= 2: // strike-slip: σ1 along SHmax, σ2 vertical
		ratio = 2 - rb
		hrot = geom.FromRows(hmax, perp, up.Neg())
	default: // reverse: σ1 along SHmax, σ3 vertical
		ratio = rb - 2
		hrot = geom.FromRows(hmax, up, perp)
	}

	return NewTensor(hrot, ratio)
}
