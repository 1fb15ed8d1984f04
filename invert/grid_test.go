package invert_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/invert"
	"github.com/tectolab/paleostress/stress"
)

// TestNewGridSearch_OptionValidation exercises the constructor sentinels
// for the lattice knobs and the shared sampling window.
func TestNewGridSearch_OptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  invert.Option
		want error
	}{
		{"zero axis count", invert.WithAxisCount(0), invert.ErrBadGridSize},
		{"zero angle steps", invert.WithAngleSteps(0), invert.ErrBadGridSize},
		{"zero ratio steps", invert.WithRatioSteps(0), invert.ErrBadGridSize},
		{"negative axis count", invert.WithAxisCount(-1), invert.ErrBadGridSize},
		{"zero rotation interval", invert.WithRotHalfInterval(0), invert.ErrBadHalfInterval},
		{"ratio interval beyond one", invert.WithRatioHalfInterval(2), invert.ErrBadHalfInterval},
		{"zero cadence", invert.WithCheckEvery(0), invert.ErrBadCadence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs, err := invert.NewGridSearch(tc.opt)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, gs)
		})
	}

	_, err := invert.NewGridSearch()
	assert.NoError(t, err, "defaults must validate")
}

// TestGridSearch_RefinesFromTruthFrame scans a small lattice from the frame
// the synthetic data were built in. The null rotation is scanned first, so
// the incumbent locks onto the zero-misfit frame at the lowest ratio node
// and the strict-improvement rule never replaces it.
//
// Budget check: AxisCount 2 gives 2*2+3 = 7 axes (spiral plus both σ2
// poles), AngleSteps 2 and RatioSteps 2 give 2 angles and 5 ratio nodes,
// plus the identity pass over the 5 nodes: 5 + 7*2*5 = 75 evaluations.
func TestGridSearch_RefinesFromTruthFrame(t *testing.T) {
	im := methodWith(t, axisData(t))
	gs, err := invert.NewGridSearch(
		invert.WithAxisCount(2), invert.WithAngleSteps(2), invert.WithRatioSteps(2))
	require.NoError(t, err)

	truth := tensorAt(t, 0, 0.5)
	sol, err := im.Run(context.Background(), gs, truth)
	require.NoError(t, err)

	assert.Zero(t, sol.Misfit, "the generating frame fits the data exactly")
	assert.Equal(t, truth.HRot, sol.WRot)
	assert.Equal(t, geom.Identity(), sol.DRot)
	assert.Zero(t, sol.StressRatio, "axis data ignore the ratio, so the first node scanned wins")
	assert.Equal(t, 75, sol.Trials)
	assert.Equal(t, 1, sol.Improved)
}

// TestGridSearch_Deterministic verifies two identical scans agree bit for
// bit. The lattice has no random component, so this guards against hidden
// map iteration or accumulation-order drift.
func TestGridSearch_Deterministic(t *testing.T) {
	im := methodWith(t, axisData(t))
	start := tensorAt(t, 0.85, 2.4)

	run := func() invert.Solution {
		gs, err := invert.NewGridSearch(
			invert.WithAxisCount(3), invert.WithAngleSteps(2), invert.WithRatioSteps(2))
		require.NoError(t, err)
		sol, err := im.Run(context.Background(), gs, start)
		require.NoError(t, err)

		return sol
	}

	assert.Equal(t, run(), run())
}

// TestGridSearch_MonotoneAfterMonteCarlo chains the two strategies the way
// a caller would: a Monte Carlo pass followed by a lattice refinement of
// its incumbent. The refinement may not lose ground and accounts for at
// most one full lattice of extra evaluations (ratio nodes at the edge of
// [0,1] collapse, so the exact count depends on where the first pass
// landed).
func TestGridSearch_MonotoneAfterMonteCarlo(t *testing.T) {
	im := methodWith(t, axisData(t))
	mc, err := invert.NewMonteCarlo(invert.WithTrials(200), invert.WithSeed(5))
	require.NoError(t, err)

	coarse, err := im.Run(context.Background(), mc, tensorAt(t, 0.85, 2.4))
	require.NoError(t, err)

	gs, err := invert.NewGridSearch(
		invert.WithAxisCount(2), invert.WithAngleSteps(2), invert.WithRatioSteps(2))
	require.NoError(t, err)

	fine, err := im.Resume(context.Background(), gs, coarse)
	require.NoError(t, err)

	assert.LessOrEqual(t, fine.Misfit, coarse.Misfit)
	assert.Greater(t, fine.Trials, coarse.Trials)
	assert.LessOrEqual(t, fine.Trials, coarse.Trials+75)
}

// TestGridSearch_ContextCancelled verifies a cancelled context returns the
// untouched incumbent together with the context error.
func TestGridSearch_ContextCancelled(t *testing.T) {
	im := methodWith(t, axisData(t))
	gs, err := invert.NewGridSearch()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prev := invert.StartSolution(tensorAt(t, 0, 0.5))
	sol, err := im.Resume(ctx, gs, prev)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, prev, sol)
}

// TestGridSearch_CostErrorAborts drives the strategy directly with a
// failing cost function: the error surfaces unchanged and nothing counts
// as evaluated.
func TestGridSearch_CostErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	failing := func(*stress.Tensor) (float64, error) { return 0, boom }

	gs, err := invert.NewGridSearch()
	require.NoError(t, err)

	prev := invert.StartSolution(tensorAt(t, 0, 0.5))
	sol, err := gs.Run(context.Background(), failing, prev)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, sol.Trials)
	assert.Equal(t, prev.Misfit, sol.Misfit)
}

// TestGridSearch_NilContracts verifies the strategy-level sentinels.
func TestGridSearch_NilContracts(t *testing.T) {
	gs, err := invert.NewGridSearch()
	require.NoError(t, err)

	prev := invert.StartSolution(tensorAt(t, 0, 0.5))
	_, err = gs.Run(context.Background(), nil, prev)
	assert.ErrorIs(t, err, invert.ErrNoCostFunc)

	ok := func(*stress.Tensor) (float64, error) { return 0, nil }
	_, err = gs.Run(context.Background(), ok, invert.Solution{})
	assert.ErrorIs(t, err, invert.ErrNilTensor)
}
