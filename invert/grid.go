// Package invert: deterministic grid search strategy.
//
// The grid factorizes into rotation axes × rotation magnitudes × stress
// ratios. Axes come from a golden-angle Fibonacci spiral, quasi-uniform
// sphere coverage at any node count, plus the two σ2 poles the spiral
// never reaches. Magnitudes step positively per axis (a negative rotation
// is a positive one about a node near the antipode), and the null rotation
// is handled once, as a pure ratio refinement of the incumbent frame.

package invert

import (
	"context"
	"math"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// goldenRatio spaces the spiral longitudes so consecutive nodes never
// stack on a meridian.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// GridSearch sweeps a deterministic tensor grid around the incumbent
// Solution. No randomness: two runs over the same incumbent and options
// visit identical nodes in identical order, ties resolved to the node
// encountered first.
type GridSearch struct {
	opts Options
}

// NewGridSearch builds the strategy.
//
// Errors: ErrBadGridSize, ErrBadHalfInterval, ErrBadCadence.
//
// Complexity: O(1).
func NewGridSearch(opts ...Option) (*GridSearch, error) {
	var o = gatherOptions(opts)
	if o.AxisCount < 1 || o.AngleSteps < 1 || o.RatioSteps < 1 {
		return nil, ErrBadGridSize
	}
	if err := validateSampling(o); err != nil {
		return nil, err
	}

	return &GridSearch{opts: o}, nil
}

// Run prices every grid node around prev and folds the best into a fresh
// Solution.
//
// Contracts:
//   - Monotone: the result never has a worse misfit than prev.
//   - On context cancellation the best Solution found so far returns
//     together with ctx.Err().
//
// Errors: ErrNoCostFunc, ErrNilTensor; cost errors abort the sweep and
// pass through unchanged.
//
// Complexity: O((2·AxisCount+3)·AngleSteps·R + R) cost evaluations, with
// R the surviving ratio-node count.
func (gs *GridSearch) Run(ctx context.Context, cost CostFunc, prev Solution) (Solution, error) {
	if cost == nil {
		return prev, ErrNoCostFunc
	}
	if prev.Tensor == nil {
		return prev, ErrNilTensor
	}

	var (
		local  = prev
		ref    = prev.WRot
		ratios = gs.ratioNodes(prev.StressRatio)
	)
	local.Trials, local.Improved = 0, 0

	// Null rotation, visited once for the whole sweep.
	var identity = geom.Identity()
	for _, ratio := range ratios {
		if err := gs.evaluate(ctx, cost, &local, identity, ref, ratio); err != nil {
			return foldSolutions(prev, []Solution{local}), err
		}
	}

	var (
		axes  = fibonacciAxes(gs.opts.AxisCount)
		delta = gs.opts.RotHalfInterval / float64(gs.opts.AngleSteps)
	)
	for _, axis := range axes {
		for k := 1; k <= gs.opts.AngleSteps; k++ {
			var drot, err = geom.NewRotation(axis, float64(k)*delta)
			if err != nil {
				return foldSolutions(prev, []Solution{local}), err
			}

			var wrot = drot.Mul(ref)
			for _, ratio := range ratios {
				if err := gs.evaluate(ctx, cost, &local, drot, wrot, ratio); err != nil {
					return foldSolutions(prev, []Solution{local}), err
				}
			}
		}
	}

	return foldSolutions(prev, []Solution{local}), nil
}

// evaluate prices one grid node and folds it into local, polling the
// context on the configured cadence.
func (gs *GridSearch) evaluate(ctx context.Context, cost CostFunc, local *Solution, drot, wrot geom.Mat3, ratio float64) error {
	if local.Trials%gs.opts.CheckEvery == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	var ten, err = stress.NewTensor(wrot, ratio)
	if err != nil {
		return err
	}

	c, err := cost(ten)
	if err != nil {
		return err
	}
	local.Trials++
	if c < local.Misfit {
		local.Misfit = c
		local.WRot = wrot
		local.DRot = drot
		local.StressRatio = ratio
		local.Tensor = ten
		local.Improved++
	}

	return nil
}

// fibonacciAxes builds the rotation-axis lattice: 2n+1 spiral nodes at
// latitudes asin(2i/(2n+1)) with golden-ratio longitudes, plus the two σ2
// poles. Axes are coordinates in the incumbent principal frame, so the
// pole axes spin σ1 and σ3 inside their plane.
func fibonacciAxes(n int) []geom.Vec3 {
	var (
		axes  = make([]geom.Vec3, 0, 2*n+3)
		total = float64(2*n + 1)
	)
	for i := -n; i <= n; i++ {
		var (
			lat = math.Asin(2 * float64(i) / total)
			lon = 2 * math.Pi * float64(i) / goldenRatio
		)
		axes = append(axes, geom.Vec3{
			X: math.Cos(lat) * math.Cos(lon),
			Y: math.Cos(lat) * math.Sin(lon),
			Z: math.Sin(lat),
		})
	}
	// The spiral's latitudes stay strictly inside (−π/2, π/2).
	axes = append(axes, geom.Vec3{Z: 1}, geom.Vec3{Z: -1})

	return axes
}

// ratioNodes steps the stress ratio symmetrically around the incumbent,
// clamped to [0,1]. Steps collapsed by the clamp are dropped, so the node
// list is strictly increasing and always contains the incumbent ratio.
func (gs *GridSearch) ratioNodes(center float64) []float64 {
	var (
		steps = gs.opts.RatioSteps
		delta = gs.opts.RatioHalfInterval / float64(steps)
		nodes = make([]float64, 0, 2*steps+1)
	)
	for l := -steps; l <= steps; l++ {
		var r = geom.Clamp(center+float64(l)*delta, 0, 1)
		if len(nodes) > 0 && r == nodes[len(nodes)-1] {
			continue
		}
		nodes = append(nodes, r)
	}

	return nodes
}
