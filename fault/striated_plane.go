package fault

import (
	"fmt"
	"math"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// StriatedPlane is a fault surface carrying a slip lineation. Its cost is
// the angle between the measured striation and the shear the hypothetical
// stress drives on the plane: [0, π] radians when the striation is
// oriented by a sense of movement, [0, π/2] when only the line is known.
//
// With WithFriction the datum additionally prices mechanical plausibility:
// hypotheses whose traction plots below the rock friction line pay a
// weighted friction-angle deficit on top of the angular misfit.
type StriatedPlane struct {
	plane    planeGeometry
	e        geom.Vec3
	oriented bool

	friction *Friction
	phiR     float64 // friction angle, radians
	shift    float64 // cohesion / tan(φr), the Mohr abscissa shift
}

// NewStriatedPlane builds a striated-plane datum from field measurements.
//
// Contracts:
//   - p and s obey the Plane and Striation constraints (derivePlane,
//     deriveStriation).
//   - Options: WithFriction is accepted. A non-default strategy and β
//     intervals belong to other kinds and are rejected.
//
// Errors: construction sentinels per the package doc.
func NewStriatedPlane(p Plane, s Striation, opts ...Option) (*StriatedPlane, error) {
	var o = gatherOptions(opts)
	if o.Strategy != StrategyAngle {
		return nil, ErrBadStrategy
	}
	if o.HasBetaRange {
		return nil, fmt.Errorf("%w: β intervals apply to interval kinds only", ErrBetaInterval)
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

	var d = &StriatedPlane{plane: g, e: e, oriented: oriented}
	if o.Friction != nil {
		if err = o.Friction.validate(); err != nil {
			return nil, err
		}
		d.friction = o.Friction
		d.phiR = geom.Radians(o.Friction.Angle)
		d.shift = o.Friction.Cohesion / math.Tan(d.phiR)
	}
	return d, nil
}

// Normal returns the upward unit normal of the plane.
func (d *StriatedPlane) Normal() geom.Vec3 { return d.plane.n }

// Striation returns the unit slip line; when Oriented it points along the
// hanging-wall motion.
func (d *StriatedPlane) Striation() geom.Vec3 { return d.e }

// Oriented reports whether a sense of movement fixed the striation's sign.
func (d *StriatedPlane) Oriented() bool { return d.oriented }

// Kind returns KindStriatedPlane.
func (d *StriatedPlane) Kind() Kind { return KindStriatedPlane }

// Check reports whether h carries a stress tensor.
func (d *StriatedPlane) Check(h Hypothesis) bool { return h.Stress != nil }

// Cost prices h as the striation–shear angle in radians, plus the friction
// deficit when enabled.
//
// Contracts:
//   - Oriented: angle between e and the shear direction, in [0, π].
//   - Unoriented: acute angle of the line with the shear, in [0, π/2].
//   - Vanishing shear on the plane (principal plane of h) prices π: the
//     hypothesis predicts no slip where slip was observed.
//
// Complexity: O(1).
func (d *StriatedPlane) Cost(h Hypothesis) (float64, error) {
	if !d.Check(h) {
		return 0, ErrHypothesisIncomplete
	}
	var tr = stress.PlaneTraction(h.Stress.S, d.plane.n)

	var cost float64
	if tr.ShearMag < geom.Eps {
		cost = math.Pi
	} else {
		var c = d.e.Dot(tr.Shear) / tr.ShearMag
		if d.oriented {
			cost = geom.AcosClamped(c)
		} else {
			cost = geom.AcosClamped(math.Abs(c))
		}
	}

	if d.friction != nil {
		cost += d.frictionDeficit(tr)
	}
	return cost, nil
}

// frictionDeficit measures how far below the friction line the traction
// plots: φr − atan(τ / (|σn| + C/tan φr)), clamped at zero and weighted.
// Tractions on or above the line pay nothing.
func (d *StriatedPlane) frictionDeficit(tr stress.Traction) float64 {
	var phiP = math.Atan2(tr.ShearMag, math.Abs(tr.Normal)+d.shift)
	if phiP >= d.phiR {
		return 0
	}
	return d.friction.Weight * (d.phiR - phiP)
}

func (*StriatedPlane) datum() {}
