package fault

import (
	"fmt"
	"math"

	"github.com/tectolab/paleostress/geom"
)

// Default σ1-to-normal intervals, in degrees.
const (
	// DefaultNeoformedBetaMin and DefaultNeoformedBetaMax bound β for
	// neoformed striated planes: rock friction angles of 5°–45° under
	// β = 45° + φ/2.
	DefaultNeoformedBetaMin = 47.5
	DefaultNeoformedBetaMax = 67.5

	// DefaultShearBandBetaMin and DefaultShearBandBetaMax bound β for
	// striated compactional shear bands, which form below the 45°
	// maximum-shear orientation.
	DefaultShearBandBetaMin = 0
	DefaultShearBandBetaMax = 45
)

// IntervalPlane is a striated plane that formed in the stress state that
// slipped it, so the angle β between σ1 and the plane normal is confined
// to a mechanical interval: neoformed striated planes and striated
// compactional shear bands.
//
// The plane and its oriented striation leave the candidate frame one
// degree of freedom, a rotation of σ1 around σ2 = n×e through β. The cost
// evaluates the frame at the hypothesis's own β clamped into the interval,
// and prices the minimum rotation onto it.
type IntervalPlane struct {
	kind  Kind
	plane planeGeometry
	e     geom.Vec3
	s2    geom.Vec3 // n × e, the candidate σ2 axis

	betaMin float64 // radians
	betaMax float64 // radians
}

// NewNeoformedStriatedPlane builds an interval datum with the neoformed
// default β ∈ [47.5°, 67.5°]; override with WithBetaRange or
// WithFrictionAngleRange.
//
// Contracts:
//   - The striation must carry a sense of movement: the candidate σ2 axis
//     n×e flips with e, so an unoriented line cannot fix the frame
//     (ErrMovementRequired).
//   - The β interval must satisfy 0 ≤ min ≤ max ≤ 90 degrees
//     (ErrBetaInterval).
//
// Errors: construction sentinels per the package doc.
func NewNeoformedStriatedPlane(p Plane, s Striation, opts ...Option) (*IntervalPlane, error) {
	return newIntervalPlane(KindNeoformedStriatedPlane, p, s,
		DefaultNeoformedBetaMin, DefaultNeoformedBetaMax, opts)
}

// NewStriatedCompactionalShearBand builds an interval datum with the
// shear-band default β ∈ [0°, 45°]; contracts as for
// NewNeoformedStriatedPlane.
func NewStriatedCompactionalShearBand(p Plane, s Striation, opts ...Option) (*IntervalPlane, error) {
	return newIntervalPlane(KindStriatedCompactionalShearBand, p, s,
		DefaultShearBandBetaMin, DefaultShearBandBetaMax, opts)
}

func newIntervalPlane(k Kind, p Plane, s Striation, defMin, defMax float64, opts []Option) (*IntervalPlane, error) {
	var o = gatherOptions(opts)
	if o.Strategy != StrategyAngle {
		return nil, ErrBadStrategy
	}
	if o.Friction != nil {
		return nil, fmt.Errorf("%w: friction applies to striated planes only", ErrBadFriction)
	}

	var lo, hi = defMin, defMax
	if o.HasBetaRange {
		lo, hi = o.BetaMin, o.BetaMax
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi > 90 || lo > hi {
		return nil, ErrBetaInterval
	}

	var g, err = derivePlane(p)
	if err != nil {
		return nil, err
	}
	var e geom.Vec3
	var oriented bool
	if e, oriented, err = deriveStriation(g, s); err != nil {
		return nil, err
	}
	if !oriented {
		return nil, ErrMovementRequired
	}

	// e lies in the plane, so n×e is unit up to rounding.
	var s2 geom.Vec3
	if s2, err = g.n.Cross(e).Normalize(); err != nil {
		return nil, ErrStriationDegenerate
	}

	return &IntervalPlane{
		kind:    k,
		plane:   g,
		e:       e,
		s2:      s2,
		betaMin: geom.Radians(lo),
		betaMax: geom.Radians(hi),
	}, nil
}

// Normal returns the upward unit normal of the plane.
func (d *IntervalPlane) Normal() geom.Vec3 { return d.plane.n }

// Striation returns the oriented unit slip line (hanging-wall motion).
func (d *IntervalPlane) Striation() geom.Vec3 { return d.e }

// BetaRange returns the configured σ1-to-normal interval in degrees.
func (d *IntervalPlane) BetaRange() (minDeg, maxDeg float64) {
	return geom.Degrees(d.betaMin), geom.Degrees(d.betaMax)
}

// Kind reports which interval kind this datum is.
func (d *IntervalPlane) Kind() Kind { return d.kind }

// Check reports whether h carries a stress tensor.
func (d *IntervalPlane) Check(h Hypothesis) bool { return h.Stress != nil }

// frameAt assembles the candidate frame whose σ1 sits at angle beta from
// the normal, tilted away from the slip direction: σ1 = cos β·n − sin β·e,
// σ2 = n×e, σ3 completing the right-handed frame.
func (d *IntervalPlane) frameAt(beta float64) geom.Mat3 {
	var c, s = math.Cos(beta), math.Sin(beta)
	var s1 = d.plane.n.Scale(c).Sub(d.e.Scale(s))
	return geom.FromRows(s1, d.s2.Cross(s1), d.s2)
}

// Cost prices h as the minimum rotation, in radians, onto the candidate
// frame evaluated at the hypothesis's own σ1-to-normal angle clamped into
// the kind's interval.
//
// Contracts:
//   - β̂ = clamp(∠(σ1 of h, n), [βmin, βmax]); cost = ω(β̂).
//   - ω(β̂) may not exceed ω at either interval boundary: the clamp is a
//     proxy for minimizing ω over the interval, and a violation surfaces
//     as ErrInvariantViolation instead of a silently wrong cost.
//
// Complexity: O(1).
func (d *IntervalPlane) Cost(h Hypothesis) (float64, error) {
	if !d.Check(h) {
		return 0, ErrHypothesisIncomplete
	}
	var ht = h.Stress.HRot.Transpose()
	var rot = func(beta float64) float64 {
		return geom.MinRotationAngle(d.frameAt(beta).Mul(ht))
	}

	var betaH = geom.AcosClamped(math.Abs(h.Stress.S1.Dot(d.plane.n)))
	var beta = geom.Clamp(betaH, d.betaMin, d.betaMax)

	var cost = rot(beta)
	if cost > math.Min(rot(d.betaMin), rot(d.betaMax))+geom.Eps {
		return 0, ErrInvariantViolation
	}
	return cost, nil
}

func (*IntervalPlane) datum() {}
