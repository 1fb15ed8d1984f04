// Package invert: Monte Carlo search strategy.
//
// Each trial perturbs the incumbent principal frame by a uniformly drawn
// rotation and redraws the stress ratio inside a clamped window. Trials
// are independent (no random walk): the reference frame stays prev.WRot
// for the whole run, so narrowing the half-intervals focuses the cloud
// without path dependence.

package invert

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// MonteCarlo samples candidate tensors around the incumbent Solution.
//
// Reproducibility: a run is a pure function of (data, options, seed,
// workers). Worker substreams are derived from the base seed, so the same
// seed with a different worker count explores a different (equally valid)
// trial set.
type MonteCarlo struct {
	opts Options
}

// NewMonteCarlo builds the strategy.
//
// Errors: ErrBadTrialBudget, ErrBadWorkers, ErrBadHalfInterval,
// ErrBadCadence.
//
// Complexity: O(1).
func NewMonteCarlo(opts ...Option) (*MonteCarlo, error) {
	var o = gatherOptions(opts)
	if o.Trials < 1 {
		return nil, ErrBadTrialBudget
	}
	if o.Workers < 1 {
		return nil, ErrBadWorkers
	}
	if err := validateSampling(o); err != nil {
		return nil, err
	}

	return &MonteCarlo{opts: o}, nil
}

// Run draws the configured trial budget around prev and folds the results
// into a fresh Solution.
//
// Contracts:
//   - Monotone: the result never has a worse misfit than prev.
//   - Deterministic for fixed options (worker count included); ties
//     between workers resolve to the lowest worker index.
//   - On context cancellation the best Solution found so far returns
//     together with ctx.Err().
//
// Errors: ErrNoCostFunc, ErrNilTensor; cost errors abort the run and pass
// through unchanged.
//
// Complexity: O(Trials) cost evaluations, split across Workers.
func (mc *MonteCarlo) Run(ctx context.Context, cost CostFunc, prev Solution) (Solution, error) {
	if cost == nil {
		return prev, ErrNoCostFunc
	}
	if prev.Tensor == nil {
		return prev, ErrNilTensor
	}

	// Workers fold their counters into prev at the end; locals start
	// from zero so nothing double-counts.
	var start = prev
	start.Trials, start.Improved = 0, 0

	if mc.opts.Workers == 1 {
		var local, err = mc.sample(ctx, cost, start, rngFromSeed(mc.opts.Seed), mc.opts.Trials)

		return foldSolutions(prev, []Solution{local}), err
	}

	var (
		g, gctx = errgroup.WithContext(ctx)
		base    = rngFromSeed(mc.opts.Seed)
		locals  = make([]Solution, mc.opts.Workers)
		share   = mc.opts.Trials / mc.opts.Workers
		extra   = mc.opts.Trials % mc.opts.Workers
	)
	for w := 0; w < mc.opts.Workers; w++ {
		// Substreams must derive sequentially, before the goroutines
		// start, to keep the stream assignment deterministic.
		var (
			rng    = deriveRNG(base, uint64(w))
			budget = share
			slot   = w
		)
		if w < extra {
			budget++
		}
		g.Go(func() error {
			var local, err = mc.sample(gctx, cost, start, rng, budget)
			locals[slot] = local

			return err
		})
	}
	var err = g.Wait()

	return foldSolutions(prev, locals), err
}

// sample draws n candidate tensors around start's frame and returns the
// best found. The per-trial draw order is fixed (axis longitude, axis
// colatitude, magnitude, ratio), which is the determinism contract for a
// given stream.
func (mc *MonteCarlo) sample(ctx context.Context, cost CostFunc, start Solution, rng *rand.Rand, n int) (Solution, error) {
	var (
		best   = start
		ref    = start.WRot
		lo, hi = ratioWindow(start.StressRatio, mc.opts.RatioHalfInterval)
	)
	for trial := 0; trial < n; trial++ {
		if trial%mc.opts.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return best, err
			}
		}

		var (
			axis  = randomAxis(rng)
			angle = rng.Float64() * mc.opts.RotHalfInterval
			ratio = lo + rng.Float64()*(hi-lo)
		)
		var drot, err = geom.NewRotation(axis, angle)
		if err != nil {
			return best, err
		}

		var wrot = drot.Mul(ref)
		ten, err := stress.NewTensor(wrot, ratio)
		if err != nil {
			return best, err
		}

		c, err := cost(ten)
		if err != nil {
			return best, err
		}
		best.Trials++
		if c < best.Misfit {
			best.Misfit = c
			best.WRot = wrot
			best.DRot = drot
			best.StressRatio = ratio
			best.Tensor = ten
			best.Improved++
		}
	}

	return best, nil
}

// randomAxis draws a rotation axis uniformly on the unit sphere:
// longitude φ ~ U[0,2π), colatitude θ = acos(2u−1). Drawing θ uniformly
// instead would pile axes onto the poles.
func randomAxis(rng *rand.Rand) geom.Vec3 {
	var (
		phi      = 2 * math.Pi * rng.Float64()
		cosTheta = 2*rng.Float64() - 1
		sinTheta = math.Sqrt(1 - cosTheta*cosTheta)
	)

	return geom.Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: cosTheta,
	}
}

// ratioWindow clamps the stress-ratio sampling window around the incumbent
// to the admissible [0,1].
func ratioWindow(center, half float64) (lo, hi float64) {
	lo = math.Max(0, center-half)
	hi = math.Min(1, center+half)

	return lo, hi
}
