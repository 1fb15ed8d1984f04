// Package invert: misfit diagnostics.
//
// The worked analysis around an inversion needs three views: where the
// aggregate misfit sits across tectonic regimes (Landscape), how the
// misfit distributes over the data for one hypothesis (Summarize), and the
// shape of that distribution (Histogram). All three reuse the aggregation
// walk of InverseMethod, so the numbers match what the search minimized.

package invert

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tectolab/paleostress/fault"
	"github.com/tectolab/paleostress/stress"
)

// Landscape maps the aggregate misfit over a grid of Andersonian regime
// tensors: out[i][j] = Cost of stress.FromRegime(thetas[i], rbs[j]).
//
// Contracts:
//   - thetas are σ-axis azimuths in radians (finite); rbs are regime
//     parameters in [0,3] (0–1 normal, 1–2 strike-slip, 2–3 reverse).
//   - Cells carry the same trimming and skip policy as Cost.
//
// Errors: ErrNoData, ErrBadGridSize (empty axis), ErrBadStressRatio
// (rb out of range), plus anything Cost returns.
//
// Complexity: O(len(thetas)·len(rbs)) Cost calls.
func (im *InverseMethod) Landscape(thetas, rbs []float64) ([][]float64, error) {
	if len(im.data) == 0 {
		return nil, ErrNoData
	}
	if len(thetas) == 0 || len(rbs) == 0 {
		return nil, fmt.Errorf("invert: empty landscape axis: %w", ErrBadGridSize)
	}
	for j, rb := range rbs {
		if math.IsNaN(rb) || rb < 0 || rb > 3 {
			return nil, fmt.Errorf("invert: rb[%d]=%v: %w", j, rb, ErrBadStressRatio)
		}
	}

	var out = make([][]float64, len(thetas))
	for i, theta := range thetas {
		var row = make([]float64, len(rbs))
		for j, rb := range rbs {
			var ten, err = stress.FromRegime(theta, rb)
			if err != nil {
				return nil, err
			}

			c, err := im.costTensor(ten)
			if err != nil {
				return nil, err
			}
			row[j] = c
		}
		out[i] = row
	}

	return out, nil
}

// Summary describes the per-datum misfit distribution of one hypothesis.
type Summary struct {
	// PerDatum holds each evaluated datum's cost in set order. Data whose
	// Check rejected the hypothesis, or whose invariant failure was
	// skipped by policy, are absent.
	PerDatum []float64

	// Mean, Std, Min, Max and Median summarize PerDatum. Std is the
	// population standard deviation; Median the empirical 0.5-quantile.
	Mean, Std, Min, Max, Median float64
}

// Summarize evaluates every datum against h and reports distribution
// statistics. WithMaxData trimming does not apply here: diagnostics always
// see the full set, so an outlier hidden from the aggregate still shows.
//
// Errors: ErrNoData, fault.ErrHypothesisIncomplete, or a failing datum's
// error wrapped with its position and kind.
//
// Complexity: O(n log n).
func (im *InverseMethod) Summarize(h fault.Hypothesis) (Summary, error) {
	if len(im.data) == 0 {
		return Summary{}, ErrNoData
	}

	var costs, err = im.perDatumCosts(h)
	if err != nil {
		return Summary{}, err
	}

	var sorted = make([]float64, len(costs))
	copy(sorted, costs)
	sort.Float64s(sorted)

	return Summary{
		PerDatum: costs,
		Mean:     stat.Mean(costs, nil),
		Std:      stat.PopStdDev(costs, nil),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}, nil
}

// Histogram bins a misfit sample for deviation analysis: equal-width bins
// spanning the sample, each value counting 1. The top divider sits just
// above the maximum because stat.Histogram bins are half-open.
//
// Returns the bin dividers (len bins+1) and counts (len bins).
//
// Errors: ErrBadBins, ErrNoData.
//
// Complexity: O(n log n).
func Histogram(costs []float64, bins int) (dividers, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, ErrBadBins
	}
	if len(costs) == 0 {
		return nil, nil, ErrNoData
	}

	var sorted = make([]float64, len(costs))
	copy(sorted, costs)
	sort.Float64s(sorted)

	var lo, hi = sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		// Degenerate sample: give the single value a bin of the
		// stabilization grain instead of a zero-width span.
		hi = lo + 1.0/roundScale
	} else {
		hi = math.Nextafter(hi, math.Inf(1))
	}

	dividers = make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	counts = stat.Histogram(nil, dividers, sorted, nil)

	return dividers, counts, nil
}
