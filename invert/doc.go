// Package invert estimates the reduced stress tensor that best explains a
// set of structural field measurements.
//
// What:
//
//   - InverseMethod: owns the data set and the misfit aggregation policy.
//     Cost prices a hypothesis as the mean per-datum misfit, optionally
//     the trimmed mean of the k best-fitting data (WithMaxData), with
//     interval-invariant failures either aborting the evaluation or
//     dropped from it (WithSkipInvariantFailures). Run starts a search
//     from a tensor estimate; Resume continues one from a previous
//     Solution.
//   - Solution: one immutable search outcome holding best misfit, the
//     winning principal frame, the rotation that produced it, the ratio,
//     and trial counters. Search strategies take the incumbent as a value
//     and return a new value; nothing is shared or mutated in place.
//   - SearchMethod: the strategy contract (Run(ctx, cost, prev)).
//     MonteCarlo samples seeded uniform rotation/ratio perturbations
//     around the incumbent, optionally across a worker pool with derived
//     random substreams. GridSearch sweeps a deterministic grid: rotation
//     axes on a Fibonacci lattice, stepped rotation magnitudes, stepped
//     stress ratios.
//   - Diagnostics: Landscape maps aggregate misfit over a grid of
//     Andersonian regime parameters, Summarize reports per-datum misfit
//     statistics, Histogram bins a misfit sample for deviation analysis.
//
// Why:
//
//   - Paleostress misfit surfaces are multimodal; the package searches
//     around a caller-supplied estimate instead of promising a global
//     optimum, and keeps every run reproducible: same data, same options,
//     same seed, same Solution, worker count included.
//   - Aggregation lives in InverseMethod and strategies see only a
//     CostFunc, so trimming and failure policy apply identically to every
//     strategy, and a custom strategy needs nothing beyond the contract.
//
// Conventions:
//
//   - Rotation magnitudes and misfits are radians. Stress ratios live in
//     [0,1]. Landscape regime parameters live in [0,3] (stress.FromRegime
//     encoding: normal, strike-slip, reverse).
//   - All randomness flows from explicit int64 seeds (seed 0 selects a
//     fixed default); no time-based sources anywhere.
//   - Aggregate misfits are stabilized to 1e-9 so platform-dependent FP
//     noise cannot flip an improvement decision.
//
// Errors:
//
//   - Data/plumbing: ErrNoData, ErrNoSearchMethod, ErrNoCostFunc,
//     ErrNilTensor.
//   - Option validation: ErrBadTrialBudget, ErrBadHalfInterval,
//     ErrBadCadence, ErrBadWorkers, ErrBadGridSize, ErrBadMaxData,
//     ErrBadBins, ErrBadStressRatio.
//   - Evaluation errors from package fault surface wrapped with the
//     datum's position; fault.ErrHypothesisIncomplete is returned when no
//     datum could price the hypothesis.
package invert
