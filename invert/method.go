// Package invert: the inverse method driver.
//
// InverseMethod owns the measurement set and defines what "aggregate
// misfit" means; search strategies only ever see the resulting CostFunc.

package invert

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/tectolab/paleostress/fault"
	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// roundScale controls aggregate-misfit stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds x to the nearest 1e-9 so summation-order FP noise cannot
// flip an improvement comparison between runs or platforms.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// InverseMethod aggregates per-datum misfits into the single cost a search
// strategy minimizes.
//
// The zero value is not ready; build with NewInverseMethod so aggregation
// options are validated once. Data are appended with AddData, constructed
// and validated beforehand by package fault, so no re-validation happens
// here.
type InverseMethod struct {
	data          []fault.Data
	maxData       int
	skipInvariant bool
}

// NewInverseMethod builds a driver with the given aggregation options.
//
// Errors: ErrBadMaxData when WithMaxData was given a negative count.
//
// Complexity: O(1).
func NewInverseMethod(opts ...Option) (*InverseMethod, error) {
	var o = gatherOptions(opts)
	if o.MaxData < 0 {
		return nil, ErrBadMaxData
	}

	return &InverseMethod{
		maxData:       o.MaxData,
		skipInvariant: o.SkipInvariantFailures,
	}, nil
}

// AddData appends measurements to the set. Nil entries are ignored; the
// data themselves were validated at construction by package fault.
//
// Complexity: O(len(d)).
func (im *InverseMethod) AddData(d ...fault.Data) {
	for _, datum := range d {
		if datum == nil {
			continue
		}
		im.data = append(im.data, datum)
	}
}

// Len reports the number of data in the set.
func (im *InverseMethod) Len() int {
	return len(im.data)
}

// Data returns a copy of the data set in insertion order. The slice is
// fresh; the data values themselves are immutable and shared.
//
// Complexity: O(n).
func (im *InverseMethod) Data() []fault.Data {
	var out = make([]fault.Data, len(im.data))
	copy(out, im.data)

	return out
}

// Cost prices a hypothesis against the whole set: the arithmetic mean of
// per-datum costs, or the mean of the MaxData smallest ones when trimming
// is enabled. Data whose Check rejects the hypothesis are skipped.
//
// Contracts:
//   - The result is stabilized to 1e-9.
//   - Evaluation never reorders or mutates the set; the trim sorts a
//     scratch slice.
//
// Errors:
//   - ErrNoData when the set is empty.
//   - fault.ErrHypothesisIncomplete when no datum could price h.
//   - A failing datum's error wrapped with its position and kind, unless
//     it is fault.ErrInvariantViolation and WithSkipInvariantFailures was
//     set, in which case the datum is dropped from this evaluation.
//
// Complexity: O(n) per call, O(n log n) when trimming.
func (im *InverseMethod) Cost(h fault.Hypothesis) (float64, error) {
	if len(im.data) == 0 {
		return 0, ErrNoData
	}

	var costs, err = im.perDatumCosts(h)
	if err != nil {
		return 0, err
	}

	// Etchecopar-style trim: keep the best-fitting subset so a few
	// incompatible measurements cannot steer the whole inversion.
	if im.maxData > 0 && im.maxData < len(costs) {
		sort.Float64s(costs)
		costs = costs[:im.maxData]
	}

	return round1e9(floats.Sum(costs) / float64(len(costs))), nil
}

// perDatumCosts evaluates every applicable datum against h, honoring the
// invariant-failure skip policy. Order follows the data set; the returned
// slice is fresh on every call, so callers may sort or truncate it.
func (im *InverseMethod) perDatumCosts(h fault.Hypothesis) ([]float64, error) {
	var costs = make([]float64, 0, len(im.data))
	for i, d := range im.data {
		if !d.Check(h) {
			continue
		}

		var c, err = d.Cost(h)
		if err != nil {
			if im.skipInvariant && errors.Is(err, fault.ErrInvariantViolation) {
				continue
			}

			return nil, fmt.Errorf("invert: datum %d (%s): %w", i, d.Kind(), err)
		}
		costs = append(costs, c)
	}
	if len(costs) == 0 {
		return nil, fault.ErrHypothesisIncomplete
	}

	return costs, nil
}

// costTensor adapts Cost to the CostFunc contract. Each call goes through
// a fresh stress-field engine, so the returned closure is safe for
// concurrent workers and a heterogeneous Field drop-in keeps this the only
// seam to change.
func (im *InverseMethod) costTensor(t *stress.Tensor) (float64, error) {
	var field stress.Homogeneous
	field.SetHypothesis(t)

	return im.Cost(fault.Hypothesis{Stress: field.At(geom.Vec3{})})
}

// Run searches around an initial tensor estimate.
//
// Contracts:
//   - start is the interactive or a-priori estimate; the search explores
//     rotations of its principal frame and ratios around its R.
//   - The returned Solution satisfies Misfit ≤ every evaluated trial.
//
// Errors: ErrNilTensor, ErrNoSearchMethod, ErrNoData; strategy errors
// (context cancellation, datum failures) pass through with the best
// Solution found before the abort.
//
// Complexity: per strategy; the cost of one trial is one Cost call.
func (im *InverseMethod) Run(ctx context.Context, method SearchMethod, start *stress.Tensor) (Solution, error) {
	if start == nil {
		return Solution{}, ErrNilTensor
	}

	return im.Resume(ctx, method, StartSolution(start))
}

// Resume continues a search from a previous Solution: the incumbent misfit
// must be beaten before the result changes, and trial counters keep
// accumulating. Chaining strategies is the intended use: a Monte Carlo
// pass to localize, then a grid pass to refine.
//
// Errors: as Run.
func (im *InverseMethod) Resume(ctx context.Context, method SearchMethod, prev Solution) (Solution, error) {
	if method == nil {
		return prev, ErrNoSearchMethod
	}
	if prev.Tensor == nil {
		return prev, ErrNilTensor
	}
	if len(im.data) == 0 {
		return prev, ErrNoData
	}

	return method.Run(ctx, im.costTensor, prev)
}
