// Package invert: functional options shared by the inverse method and the
// search strategies.
//
// One Options bag serves all three consumers; each constructor validates
// only the fields it reads (NewMonteCarlo ignores grid sizes, NewGridSearch
// ignores the trial budget, NewInverseMethod reads only the aggregation
// fields). Defaults live in the Default* constants.

package invert

import "math"

// Default search parameters. Each With* option documents which constant it
// overrides.
const (
	// DefaultTrials is the Monte Carlo trial budget.
	DefaultTrials = 10000

	// DefaultRotHalfInterval spans the full rotation group: perturbation
	// magnitudes are drawn from [0, π).
	DefaultRotHalfInterval = math.Pi

	// DefaultRatioHalfInterval spans every stress ratio reachable from
	// any starting estimate (the window is clamped to [0,1]).
	DefaultRatioHalfInterval = 0.5

	// DefaultCheckEvery is the trial cadence of cooperative context
	// checks. Checking every trial would dominate the loop; every 1024th
	// keeps cancellation latency in the millisecond range.
	DefaultCheckEvery = 1024

	// DefaultWorkers runs Monte Carlo sampling on a single goroutine.
	DefaultWorkers = 1

	// DefaultAxisCount is the number of Fibonacci-lattice nodes per
	// hemisphere; the full grid carries 2·DefaultAxisCount+1 spiral axes
	// plus the two σ2 poles.
	DefaultAxisCount = 100

	// DefaultAngleSteps is the number of rotation magnitudes swept per
	// grid axis.
	DefaultAngleSteps = 8

	// DefaultRatioSteps is the number of stress-ratio steps swept on each
	// side of the incumbent ratio.
	DefaultRatioSteps = 5
)

// Options collects every tunable of the package. Zero values are never
// used directly: DefaultOptions fills the struct and With* closures
// override fields.
type Options struct {
	// Trials is the Monte Carlo trial budget (candidate tensors drawn).
	Trials int

	// RotHalfInterval bounds perturbation rotation magnitudes, radians,
	// in (0, π]. Monte Carlo draws from [0, RotHalfInterval); GridSearch
	// steps up to it inclusive.
	RotHalfInterval float64

	// RatioHalfInterval bounds the stress-ratio window around the
	// incumbent ratio, in (0, 1]. The window is clamped to [0,1].
	RatioHalfInterval float64

	// CheckEvery is the number of evaluations between cooperative
	// context checks.
	CheckEvery int

	// Workers is the Monte Carlo goroutine count. Each worker samples an
	// equal share of Trials from its own derived substream; results merge
	// deterministically for a fixed worker count.
	Workers int

	// Seed feeds every random draw. Seed 0 selects a fixed default, so
	// the zero value is still reproducible; time-based seeding is the
	// caller's explicit decision.
	Seed int64

	// AxisCount is the number of grid rotation axes per hemisphere.
	AxisCount int

	// AngleSteps is the number of rotation magnitudes per grid axis.
	AngleSteps int

	// RatioSteps is the number of stress-ratio steps per side.
	RatioSteps int

	// MaxData, when positive, aggregates only the MaxData smallest
	// per-datum costs (trimmed mean). Zero aggregates everything.
	MaxData int

	// SkipInvariantFailures drops a datum's contribution when its misfit
	// minimality check fails, instead of aborting the evaluation.
	SkipInvariantFailures bool
}

// Option mutates Options before validation.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Trials:            DefaultTrials,
		RotHalfInterval:   DefaultRotHalfInterval,
		RatioHalfInterval: DefaultRatioHalfInterval,
		CheckEvery:        DefaultCheckEvery,
		Workers:           DefaultWorkers,
		AxisCount:         DefaultAxisCount,
		AngleSteps:        DefaultAngleSteps,
		RatioSteps:        DefaultRatioSteps,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) Options {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTrials overrides DefaultTrials.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithRotHalfInterval overrides DefaultRotHalfInterval (radians).
func WithRotHalfInterval(rad float64) Option {
	return func(o *Options) { o.RotHalfInterval = rad }
}

// WithRatioHalfInterval overrides DefaultRatioHalfInterval.
func WithRatioHalfInterval(h float64) Option {
	return func(o *Options) { o.RatioHalfInterval = h }
}

// WithCheckEvery overrides DefaultCheckEvery.
func WithCheckEvery(n int) Option {
	return func(o *Options) { o.CheckEvery = n }
}

// WithWorkers overrides DefaultWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed sets the base seed (0 selects the fixed default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAxisCount overrides DefaultAxisCount.
func WithAxisCount(n int) Option {
	return func(o *Options) { o.AxisCount = n }
}

// WithAngleSteps overrides DefaultAngleSteps.
func WithAngleSteps(n int) Option {
	return func(o *Options) { o.AngleSteps = n }
}

// WithRatioSteps overrides DefaultRatioSteps.
func WithRatioSteps(n int) Option {
	return func(o *Options) { o.RatioSteps = n }
}

// WithMaxData keeps only the k smallest per-datum costs in the aggregate
// (Etchecopar-style trimming of the worst-fitting data). k=0 disables.
func WithMaxData(k int) Option {
	return func(o *Options) { o.MaxData = k }
}

// WithSkipInvariantFailures tolerates per-datum invariant failures by
// dropping the datum from the evaluation instead of failing it.
func WithSkipInvariantFailures() Option {
	return func(o *Options) { o.SkipInvariantFailures = true }
}

// validateSampling checks the fields shared by both search strategies.
func validateSampling(o Options) error {
	if math.IsNaN(o.RotHalfInterval) || o.RotHalfInterval <= 0 || o.RotHalfInterval > math.Pi {
		return ErrBadHalfInterval
	}
	if math.IsNaN(o.RatioHalfInterval) || o.RatioHalfInterval <= 0 || o.RatioHalfInterval > 1 {
		return ErrBadHalfInterval
	}
	if o.CheckEvery < 1 {
		return ErrBadCadence
	}

	return nil
}
