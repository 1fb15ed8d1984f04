package fault_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tectolab/paleostress/fault"
	"github.com/tectolab/paleostress/geom"
)

// striationOf builds a plain striated plane and returns it, failing the
// test on any construction error.
func striationOf(t *testing.T, p fault.Plane, s fault.Striation) *fault.StriatedPlane {
	t.Helper()
	d, err := fault.NewStriatedPlane(p, s)
	require.NoError(t, err, "plane %+v striation %+v must derive", p, s)

	return d
}

// TestStriation_RakeZeroAlongStrike verifies the rake frame and the
// orientation flip in one scenario: on an NE-striking plane dipping SE, a
// rake-0 line runs along strike toward NE, and a right-lateral label must
// flip it to point SW (hanging-wall motion).
func TestStriation_RakeZeroAlongStrike(t *testing.T) {
	p := fault.Plane{Strike: 45, Dip: 60, DipOctant: fault.OctantSE}

	// Without a sense of movement the line keeps its raw direction.
	raw := striationOf(t, p, fault.Striation{Rake: 0, HasRake: true, StrikeEnd: fault.OctantNE})
	assertVec(t, geom.Vec3{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2, Z: 0}, raw.Striation(), "raw rake-0 line")
	assert.False(t, raw.Oriented(), "no movement label, no orientation")
	assert.InDelta(t, 0, raw.Normal().Dot(raw.Striation()), tol, "striation must lie in the plane")

	// Right-lateral hanging-wall motion on this geometry points SW.
	rl := striationOf(t, p, fault.Striation{
		Rake: 0, HasRake: true, StrikeEnd: fault.OctantNE,
		Movement: fault.MovementRightLateral,
	})
	assertVec(t, geom.Vec3{X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2, Z: 0}, rl.Striation(), "right-lateral flip")
	assert.True(t, rl.Oriented(), "movement label orients the line")
}

// TestStriation_RakeNinetySkipsStrikeEnd verifies that a pure down-dip
// rake needs no strike-end octant and lands on the down-dip vector.
func TestStriation_RakeNinetySkipsStrikeEnd(t *testing.T) {
	d := striationOf(t,
		fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE},
		fault.Striation{Rake: 90, HasRake: true},
	)
	cos60, sin60 := math.Cos(math.Pi/3), math.Sin(math.Pi/3)
	assertVec(t, geom.Vec3{X: cos60, Y: 0, Z: -sin60}, d.Striation(), "down-dip line")
}

// TestStriation_MovementOrientsDipSlip verifies the vertical sense: normal
// keeps the raw downward line, inverse flips it upward.
func TestStriation_MovementOrientsDipSlip(t *testing.T) {
	p := fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE}

	down := striationOf(t, p, fault.Striation{Rake: 90, HasRake: true, Movement: fault.MovementNormal})
	assert.Less(t, down.Striation().Z, 0.0, "normal slip moves the hanging wall down")

	up := striationOf(t, p, fault.Striation{Rake: 90, HasRake: true, Movement: fault.MovementInverse})
	assert.Greater(t, up.Striation().Z, 0.0, "inverse slip moves the hanging wall up")
}

// TestStriation_TrendProjectsOntoPlane verifies the trend form: a trend
// pointing down the dip azimuth projects onto the down-dip line.
func TestStriation_TrendProjectsOntoPlane(t *testing.T) {
	d := striationOf(t,
		fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE},
		fault.Striation{Trend: 90, HasTrend: true},
	)
	cos60, sin60 := math.Cos(math.Pi/3), math.Sin(math.Pi/3)
	assertVec(t, geom.Vec3{X: cos60, Y: 0, Z: -sin60}, d.Striation(), "projected trend")
}

// TestStriation_TrendOnVerticalPlane verifies trend striations on a
// vertical plane: along-strike trends survive, cross-strike trends project
// to nothing.
func TestStriation_TrendOnVerticalPlane(t *testing.T) {
	p := fault.Plane{Strike: 0, Dip: 90, DipOctant: fault.OctantE}

	d := striationOf(t, p, fault.Striation{
		Trend: 180, HasTrend: true,
		Movement: fault.MovementRightLateral,
	})
	assertVec(t, geom.Vec3{X: 0, Y: -1, Z: 0}, d.Striation(), "southward line is right-lateral here")

	_, err := fault.NewStriatedPlane(p, fault.Striation{Trend: 90, HasTrend: true})
	assert.ErrorIs(t, err, fault.ErrStriationDegenerate, "trend normal to a vertical plane projects to zero")
}

// TestStriation_FormErrors verifies the exactly-one-form contract and the
// rake range.
func TestStriation_FormErrors(t *testing.T) {
	p := fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE}

	_, err := fault.NewStriatedPlane(p, fault.Striation{})
	assert.ErrorIs(t, err, fault.ErrStriationForm, "neither form set")

	_, err = fault.NewStriatedPlane(p, fault.Striation{
		Rake: 10, HasRake: true, StrikeEnd: fault.OctantN,
		Trend: 10, HasTrend: true,
	})
	assert.ErrorIs(t, err, fault.ErrStriationForm, "both forms set")

	for _, rake := range []float64{-5, 95} {
		_, err = fault.NewStriatedPlane(p, fault.Striation{Rake: rake, HasRake: true, StrikeEnd: fault.OctantN})
		assert.ErrorIs(t, err, fault.ErrRakeRange, "rake=%v", rake)
	}
}

// TestStriation_StrikeEndOctant verifies the strike-end resolution: it is
// required below rake 90 and must favour one end of the strike line.
func TestStriation_StrikeEndOctant(t *testing.T) {
	p := fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE}

	_, err := fault.NewStriatedPlane(p, fault.Striation{Rake: 30, HasRake: true})
	assert.ErrorIs(t, err, fault.ErrOctantRequired, "rake 30 needs a strike end")

	_, err = fault.NewStriatedPlane(p, fault.Striation{Rake: 30, HasRake: true, StrikeEnd: fault.OctantE})
	assert.ErrorIs(t, err, fault.ErrOctantInconsistent, "octant E on an N-S strike decides nothing")
}

// TestStriation_MovementConflicts verifies the inconsistency sentinel in
// its three shapes: a contradictory combined label, a vertical sense on a
// horizontal line, and any sense on a horizontal plane.
func TestStriation_MovementConflicts(t *testing.T) {
	p := fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE}

	// Rake 45 from the north end is normal left-lateral on this plane;
	// the combined right-lateral label contradicts its feasible lateral
	// part.
	ok, err := fault.NewStriatedPlane(p, fault.Striation{
		Rake: 45, HasRake: true, StrikeEnd: fault.OctantN,
		Movement: fault.MovementNormalLeftLateral,
	})
	require.NoError(t, err, "consistent combined label")
	assert.True(t, ok.Oriented())

	_, err = fault.NewStriatedPlane(p, fault.Striation{
		Rake: 45, HasRake: true, StrikeEnd: fault.OctantN,
		Movement: fault.MovementNormalRightLateral,
	})
	assert.ErrorIs(t, err, fault.ErrMovementInconsistent, "lateral part contradicts the geometry")

	// A horizontal line cannot carry a vertical sense.
	_, err = fault.NewStriatedPlane(p, fault.Striation{
		Rake: 0, HasRake: true, StrikeEnd: fault.OctantN,
		Movement: fault.MovementNormal,
	})
	assert.ErrorIs(t, err, fault.ErrMovementInconsistent, "normal sense on a strike-slip line")

	// A horizontal plane has neither a vertical nor a lateral reference.
	_, err = fault.NewStriatedPlane(
		fault.Plane{Strike: 0, Dip: 0},
		fault.Striation{Rake: 45, HasRake: true, StrikeEnd: fault.OctantN, Movement: fault.MovementNormal},
	)
	assert.ErrorIs(t, err, fault.ErrMovementInconsistent, "no sense is realizable on a horizontal plane")
}

// TestStriation_CombinedLabelToleratesDegenerateSecondary verifies that an
// infeasible secondary claim does not poison an orientable primary one: a
// "normal right-lateral" label on a pure dip-slip line orients by its
// vertical part alone.
func TestStriation_CombinedLabelToleratesDegenerateSecondary(t *testing.T) {
	d := striationOf(t,
		fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE},
		fault.Striation{Rake: 90, HasRake: true, Movement: fault.MovementNormalRightLateral},
	)
	assert.Less(t, d.Striation().Z, 0.0, "vertical part still orients")
	assert.True(t, d.Oriented())
}
