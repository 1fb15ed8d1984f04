// Package invert: sentinel error register.
//
// Every error produced by this package either is one of the sentinels
// below or wraps one (fmt.Errorf("…: %w", ErrX)), so callers can always
// dispatch with errors.Is. Per-datum evaluation failures from package
// fault pass through wrapped with the datum's position in the set.

package invert

import "errors"

var (
	// ErrNoData is returned when an InverseMethod holds no data.
	ErrNoData = errors.New("invert: no data")

	// ErrNoSearchMethod is returned by Run and Resume when the search
	// method is nil.
	ErrNoSearchMethod = errors.New("invert: nil search method")

	// ErrNoCostFunc is returned by a search strategy handed a nil cost
	// function.
	ErrNoCostFunc = errors.New("invert: nil cost function")

	// ErrNilTensor is returned when a search is started from a nil
	// stress tensor, or resumed from a Solution that lacks one.
	ErrNilTensor = errors.New("invert: nil stress tensor")

	// ErrBadTrialBudget rejects a non-positive Monte Carlo trial count.
	ErrBadTrialBudget = errors.New("invert: trial budget must be positive")

	// ErrBadHalfInterval rejects a rotation half-interval outside (0, π]
	// or a stress-ratio half-interval outside (0, 1].
	ErrBadHalfInterval = errors.New("invert: search half-interval out of range")

	// ErrBadCadence rejects a non-positive context-check cadence.
	ErrBadCadence = errors.New("invert: check cadence must be positive")

	// ErrBadWorkers rejects a non-positive worker count.
	ErrBadWorkers = errors.New("invert: worker count must be positive")

	// ErrBadGridSize rejects a grid axis, angle or ratio step count below
	// one, and an empty Landscape axis.
	ErrBadGridSize = errors.New("invert: grid size must be positive")

	// ErrBadMaxData rejects a negative trimmed-aggregation size.
	ErrBadMaxData = errors.New("invert: max data count must not be negative")

	// ErrBadBins rejects a non-positive histogram bin count.
	ErrBadBins = errors.New("invert: histogram bin count must be positive")

	// ErrBadStressRatio rejects a Landscape regime parameter outside
	// [0, 3] (see stress.FromRegime for the encoding).
	ErrBadStressRatio = errors.New("invert: regime stress-ratio parameter out of range")
)
