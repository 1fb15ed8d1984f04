// Package invert: search contract and solution value.

package invert

import (
	"context"
	"math"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// Solution is the outcome of a search: the best hypothesis seen so far and
// how much work went into finding it.
//
// Solutions are plain values. A strategy receives the incumbent, folds its
// trials into a fresh value and returns it; the caller's copy is never
// touched, so runs can be chained (Resume), compared, or discarded freely.
type Solution struct {
	// Misfit is the aggregate cost of Tensor, +Inf until a trial
	// evaluates.
	Misfit float64

	// WRot is the winning principal frame (rows σ1, σ3, σ2), equal to
	// Tensor.HRot.
	WRot geom.Mat3

	// DRot is the rotation taking the reference frame the search started
	// from to the winning frame: WRot = DRot·ref. Identity when no trial
	// improved on the incumbent.
	DRot geom.Mat3

	// StressRatio is the winning ratio (σ2−σ3)/(σ1−σ3) ∈ [0,1].
	StressRatio float64

	// Tensor is the winning reduced stress tensor.
	Tensor *stress.Tensor

	// Trials counts evaluated candidate tensors, accumulated across the
	// runs that produced this value.
	Trials int

	// Improved counts strict improvements of Misfit across those runs.
	Improved int
}

// StartSolution wraps an initial tensor estimate as the incumbent for a
// first Run: infinite misfit, identity delta rotation, zero counters. The
// first evaluated trial always improves on it.
func StartSolution(t *stress.Tensor) Solution {
	var s = Solution{
		Misfit: math.Inf(1),
		DRot:   geom.Identity(),
		Tensor: t,
	}
	if t != nil {
		s.WRot = t.HRot
		s.StressRatio = t.R
	}

	return s
}

// CostFunc prices one candidate tensor. InverseMethod.Run hands its
// aggregate cost to the strategy through this type, so strategies stay
// independent of the data model and the aggregation policy.
type CostFunc func(t *stress.Tensor) (float64, error)

// SearchMethod explores candidate tensors around an incumbent Solution.
//
// Contracts:
//   - Run starts from prev (prev.Tensor non-nil) and returns a Solution at
//     least as good: result.Misfit ≤ prev.Misfit.
//   - prev is taken by value and never mutated.
//   - On context cancellation Run returns the best Solution found so far
//     together with ctx.Err(); partial progress is preserved.
//   - Any error from cost aborts the run the same way.
type SearchMethod interface {
	Run(ctx context.Context, cost CostFunc, prev Solution) (Solution, error)
}

// foldSolutions merges per-worker results into the incumbent. Counters
// add; the best misfit wins, ties resolved in slice order so parallel runs
// stay deterministic for a fixed worker count.
func foldSolutions(prev Solution, locals []Solution) Solution {
	var best = prev
	for _, l := range locals {
		best.Trials += l.Trials
		best.Improved += l.Improved
		if l.Misfit < best.Misfit {
			best.Misfit = l.Misfit
			best.WRot = l.WRot
			best.DRot = l.DRot
			best.StressRatio = l.StressRatio
			best.Tensor = l.Tensor
		}
	}

	return best
}
