package fault

import (
	"fmt"
	"math"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// checkRatio is the stress ratio used when predicting slip senses on
// conjugate planes. Both planes contain the implied σ2 axis, so the shear
// direction on them does not depend on the ratio; 0.5 is arbitrary.
const checkRatio = 0.5

// ConjugatePair is a pair of planes that formed together under one stress
// state: conjugate faults or conjugate dilatant shear bands. The pair
// fixes a full principal frame, σ2 along the intersection, σ1 and σ3
// along the dihedral bisectors, and its cost is the minimum rotation
// (radians) taking the hypothesis frame onto that implied frame.
type ConjugatePair struct {
	kind  Kind
	frame geom.Mat3 // implied principal frame, rows σ1, σ3, σ2
}

// NewConjugateFaults builds a datum from a conjugate fault pair.
//
// Contracts:
//   - The planes must intersect: parallel normals are
//     ErrConjugateDegenerate.
//   - Normals at an oblique angle fix the frame by themselves: the acute
//     bisector carries σ1, the obtuse bisector σ3. Planes at exactly 90°
//     need a recorded sense of movement on either plane to tell the two
//     apart (ErrMovementRequired without one, ErrConjugateAmbiguous when
//     the labels cannot decide).
//   - Recorded movement labels are always cross-checked against the slip
//     the implied frame drives on their plane; a feasible contradiction
//     is ErrMovementInconsistent.
//
// Errors: construction sentinels per the package doc.
func NewConjugateFaults(p1, p2 Plane, m1, m2 Movement, opts ...Option) (*ConjugatePair, error) {
	return newConjugate(KindConjugateFaults, p1, p2, m1, m2, opts)
}

// NewConjugateDilatantShearBands builds the deformation-band analogue of
// NewConjugateFaults; geometry and error behavior are identical.
func NewConjugateDilatantShearBands(p1, p2 Plane, m1, m2 Movement, opts ...Option) (*ConjugatePair, error) {
	return newConjugate(KindConjugateDilatantShearBands, p1, p2, m1, m2, opts)
}

func newConjugate(k Kind, p1, p2 Plane, m1, m2 Movement, opts []Option) (*ConjugatePair, error) {
	var o = gatherOptions(opts)
	if o.Strategy != StrategyAngle {
		return nil, ErrBadStrategy
	}
	if o.Friction != nil {
		return nil, fmt.Errorf("%w: friction applies to striated planes only", ErrBadFriction)
	}
	if o.HasBetaRange {
		return nil, fmt.Errorf("%w: β intervals apply to interval kinds only", ErrBetaInterval)
	}

	var g1, err = derivePlane(p1)
	if err != nil {
		return nil, err
	}
	var g2 planeGeometry
	if g2, err = derivePlane(p2); err != nil {
		return nil, err
	}

	var d = g1.n.Dot(g2.n)
	if math.Abs(d) >= 1-geom.Eps {
		return nil, ErrConjugateDegenerate
	}
	var s2 geom.Vec3
	if s2, err = g1.n.Cross(g2.n).Normalize(); err != nil {
		return nil, ErrConjugateDegenerate
	}

	var frame geom.Mat3
	switch {
	case math.Abs(d) < geom.Eps:
		if frame, err = resolvePerpendicular(g1, g2, s2, m1, m2); err != nil {
			return nil, err
		}
	default:
		var bis geom.Vec3
		if bis, err = g1.n.Add(g2.n).Normalize(); err != nil {
			return nil, ErrConjugateDegenerate
		}
		if d < 0 {
			// Obtuse normals: the normal bisector carries σ3.
			frame = geom.FromRows(bis.Cross(s2), bis, s2)
		} else {
			// Acute normals: the normal bisector carries σ1.
			frame = geom.FromRows(bis, s2.Cross(bis), s2)
		}
	}

	// Labels, when recorded, must agree with the slip the implied frame
	// drives on their plane.
	var t *stress.Tensor
	if t, err = stress.NewTensor(frame, checkRatio); err != nil {
		return nil, err
	}
	if _, contradicted := slipSense(g1, t, m1); contradicted {
		return nil, ErrMovementInconsistent
	}
	if _, contradicted := slipSense(g2, t, m2); contradicted {
		return nil, ErrMovementInconsistent
	}

	return &ConjugatePair{kind: k, frame: frame}, nil
}

// resolvePerpendicular disambiguates the frame of two planes at exactly
// 90°: the bisector geometry alone cannot tell σ1 from σ3, but the slip
// sense recorded on either plane can. Exactly one candidate frame must
// survive the test.
func resolvePerpendicular(g1, g2 planeGeometry, s2 geom.Vec3, m1, m2 Movement) (geom.Mat3, error) {
	var g, m = g1, m1
	if m == MovementUndefined {
		g, m = g2, m2
	}
	if m == MovementUndefined {
		return geom.Mat3{}, ErrMovementRequired
	}

	var bis, err = g1.n.Add(g2.n).Normalize()
	if err != nil {
		return geom.Mat3{}, ErrConjugateDegenerate
	}

	// Candidate frames: the bisector as σ1, and the bisector as σ3.
	var frames = [2]geom.Mat3{
		geom.FromRows(bis, s2.Cross(bis), s2),
		geom.FromRows(bis.Cross(s2), bis, s2),
	}

	var picked = -1
	for i, f := range frames {
		var t *stress.Tensor
		if t, err = stress.NewTensor(f, checkRatio); err != nil {
			return geom.Mat3{}, err
		}
		if confirmed, _ := slipSense(g, t, m); confirmed {
			if picked >= 0 {
				return geom.Mat3{}, ErrConjugateAmbiguous
			}
			picked = i
		}
	}
	if picked < 0 {
		return geom.Mat3{}, ErrConjugateAmbiguous
	}
	return frames[picked], nil
}

// slipSense compares the movement label m against the slip the tensor t
// drives on the plane. confirmed means at least one feasible sense
// component agrees and none disagree; contradicted means some feasible
// component disagrees. Undefined labels, vanishing shear, and labels whose
// every component is infeasible on this geometry report (false, false).
func slipSense(g planeGeometry, t *stress.Tensor, m Movement) (confirmed, contradicted bool) {
	if m == MovementUndefined {
		return false, false
	}
	var tr = stress.PlaneTraction(t.S, g.n)
	if tr.ShearMag < geom.Eps {
		return false, false
	}
	var su = tr.Shear.Scale(1 / tr.ShearMag)

	var components [2]float64
	var feasible [2]bool
	var wants = [2]int{m.vertical(), m.lateral()}

	components[0] = su.Z
	feasible[0] = math.Abs(su.Z) > geom.Eps

	var ss = geom.Vec3{X: g.n.Y, Y: -g.n.X, Z: 0}
	if ssNorm := ss.Norm(); ssNorm > geom.Eps {
		components[1] = su.Dot(ss) / ssNorm
		feasible[1] = math.Abs(components[1]) > geom.Eps
	}

	for i := range wants {
		if wants[i] == 0 || !feasible[i] {
			continue
		}
		if (components[i] > 0) == (wants[i] > 0) {
			confirmed = true
		} else {
			contradicted = true
		}
	}
	if contradicted {
		confirmed = false
	}
	return confirmed, contradicted
}

// Frame returns the implied principal frame, rows σ1, σ3, σ2.
func (d *ConjugatePair) Frame() geom.Mat3 { return d.frame }

// Kind reports which conjugate kind this datum is.
func (d *ConjugatePair) Kind() Kind { return d.kind }

// Check reports whether h carries a stress tensor.
func (d *ConjugatePair) Check(h Hypothesis) bool { return h.Stress != nil }

// Cost prices h as the minimum rotation, in radians, taking its principal
// frame onto the frame the pair implies. Principal axes are sign-free and
// the metric is invariant under the four two-axis sign flips, so the cost
// lies in [0, 2π/3].
//
// Complexity: O(1).
func (d *ConjugatePair) Cost(h Hypothesis) (float64, error) {
	if !d.Check(h) {
		return 0, ErrHypothesisIncomplete
	}
	return geom.MinRotationAngle(d.frame.Mul(h.Stress.HRot.Transpose())), nil
}

func (*ConjugatePair) datum() {}
