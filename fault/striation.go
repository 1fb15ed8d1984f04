package fault

import (
	"math"

	"github.com/tectolab/paleostress/geom"
)

// Striation describes a slip lineation observed on a plane, in one of two
// field forms: a rake measured from a named end of the strike line, or the
// compass trend of the line. Exactly one form must be set.
type Striation struct {
	// Rake is the pitch of the line within the plane, in degrees in
	// [0, 90], measured from the strike end named by StrikeEnd down
	// toward the dip direction. Set HasRake when using this form.
	Rake    float64
	HasRake bool

	// StrikeEnd names the end of the strike line the rake is measured
	// from. Required with the rake form unless Rake == 90, where the
	// line is pure down-dip and the end is immaterial.
	StrikeEnd Octant

	// Trend is the compass azimuth of the line's horizontal projection,
	// in degrees. Set HasTrend when using this form. The line is
	// recovered by projecting the horizontal trend vector onto the
	// plane, which fails on a vertical plane striking along the trend.
	Trend    float64
	HasTrend bool

	// Movement is the recorded sense of movement of the hanging wall.
	// When defined it orients the lineation into a slip vector; when
	// undefined the striation stays an unoriented axis.
	Movement Movement
}

// deriveStriation resolves a field Striation on an already-derived plane
// into a unit slip line e, oriented as the hanging-wall motion when a
// sense of movement is recorded.
//
// Errors:
//   - ErrStriationForm: both or neither of the rake and trend forms set.
//   - ErrRakeRange: rake outside [0, 90].
//   - ErrOctantRequired / ErrOctantInconsistent: strike end missing or
//     uninformative for a rake < 90.
//   - ErrStriationDegenerate: trend projection vanishes on the plane.
//   - ErrMovementInconsistent: the recorded sense cannot hold on this
//     geometry (see orientStriation).
func deriveStriation(g planeGeometry, s Striation) (e geom.Vec3, oriented bool, err error) {
	if s.HasRake == s.HasTrend {
		return geom.Vec3{}, false, ErrStriationForm
	}

	switch {
	case s.HasRake:
		if math.IsNaN(s.Rake) {
			return geom.Vec3{}, false, ErrBadMeasurement
		}
		if s.Rake < 0 || s.Rake > 90 {
			return geom.Vec3{}, false, ErrRakeRange
		}
		var rake = geom.Radians(s.Rake)
		var cr, sr = math.Cos(rake), math.Sin(rake)

		// The strike end matters only while the line keeps a strike
		// component.
		var endAz = g.strike
		if cr > geom.Eps {
			if s.StrikeEnd == OctantUndefined {
				return geom.Vec3{}, false, ErrOctantRequired
			}
			endAz, err = pickAzimuth(g.strike, geom.NormalizeAngle(g.strike+math.Pi), s.StrikeEnd)
			if err != nil {
				return geom.Vec3{}, false, err
			}
		}

		// s0 ⊥ downDip and both are unit, so e is unit by construction.
		var s0 = horizontalVec(endAz)
		e = s0.Scale(cr).Add(g.downDip().Scale(sr))

	case s.HasTrend:
		if math.IsNaN(s.Trend) {
			return geom.Vec3{}, false, ErrBadMeasurement
		}
		var h = horizontalVec(geom.NormalizeAngle(geom.Radians(s.Trend)))
		var raw = h.Sub(g.n.Scale(h.Dot(g.n)))
		if raw.Norm() < geom.Eps {
			return geom.Vec3{}, false, ErrStriationDegenerate
		}
		if e, err = raw.Normalize(); err != nil {
			return geom.Vec3{}, false, ErrStriationDegenerate
		}
	}

	if s.Movement == MovementUndefined {
		return e, false, nil
	}
	if e, err = orientStriation(g, e, s.Movement); err != nil {
		return geom.Vec3{}, false, err
	}
	return e, true, nil
}

// orientStriation flips the lineation e so that the recorded sense of
// movement holds, treating e as the motion of the hanging wall.
//
// A sense component whose geometric reference degenerates on this plane
// (a vertical sense on a horizontal line, a lateral sense on a horizontal
// plane) is infeasible and cannot orient anything. The first feasible
// component fixes the sign of e; every remaining feasible component must
// then agree. No feasible component at all, or a disagreement between
// feasible components, is ErrMovementInconsistent. Infeasible secondary
// components are tolerated: a "normal right-lateral" label on a pure
// dip-slip line still orients by its vertical part.
func orientStriation(g planeGeometry, e geom.Vec3, m Movement) (geom.Vec3, error) {
	// Signed components the two sense parts refer to: vertical motion,
	// and motion along the right-lateral reference n × ẑ.
	var components [2]float64
	var feasible [2]bool
	var wants = [2]int{m.vertical(), m.lateral()}

	components[0] = e.Z
	feasible[0] = math.Abs(e.Z) > geom.Eps

	var ss = geom.Vec3{X: g.n.Y, Y: -g.n.X, Z: 0}
	if ssNorm := ss.Norm(); ssNorm > geom.Eps {
		components[1] = e.Dot(ss) / ssNorm
		feasible[1] = math.Abs(components[1]) > geom.Eps
	}

	var oriented bool
	for i := range wants {
		if wants[i] == 0 || !feasible[i] {
			continue
		}
		var agrees = (components[i] > 0) == (wants[i] > 0)
		switch {
		case !oriented:
			if !agrees {
				e = e.Neg()
				components[0], components[1] = -components[0], -components[1]
			}
			oriented = true
		case !agrees:
			return geom.Vec3{}, ErrMovementInconsistent
		}
	}
	if !oriented {
		return geom.Vec3{}, ErrMovementInconsistent
	}
	return e, nil
}
