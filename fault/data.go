// Package fault: the datum kind set, pricing options, and the factory that
// turns flat measurement records into Data values.

package fault

import (
	"fmt"
	"math"
	"strings"
)

// Kind enumerates the measurement kinds this package can price. The set is
// closed: every Data value reports exactly one of these.
type Kind int

const (
	// KindUnknown is the zero value; no datum carries it.
	KindUnknown Kind = iota

	// KindStriatedPlane is a fault surface with a slip lineation.
	KindStriatedPlane

	// KindNeoformedStriatedPlane is a striated plane formed by the same
	// stress state that slipped it, which pins the σ1-to-normal angle
	// into a friction-controlled interval.
	KindNeoformedStriatedPlane

	// KindStriatedCompactionalShearBand is a striated deformation band
	// accommodating shear plus compaction; its σ1-to-normal angle stays
	// below 45°.
	KindStriatedCompactionalShearBand

	// KindExtensionFracture is an opening-mode fracture; its normal
	// tracks σ3.
	KindExtensionFracture

	// KindDilationBand is a dilatant deformation band; its normal tracks
	// σ3.
	KindDilationBand

	// KindCompactionBand is a compactional deformation band; its normal
	// tracks σ1.
	KindCompactionBand

	// KindCrystalFibersInVein is a fiber lineation inside a vein; the
	// fiber axis tracks σ3.
	KindCrystalFibersInVein

	// KindStyloliteTeeth is a stylolite peak lineation; the teeth axis
	// tracks σ1.
	KindStyloliteTeeth

	// KindConjugateFaults is a pair of conjugate fault planes, priced by
	// the rotation from the hypothesis frame to the frame the pair
	// implies.
	KindConjugateFaults

	// KindConjugateDilatantShearBands is the deformation-band analogue
	// of conjugate faults.
	KindConjugateDilatantShearBands
)

var kindNames = [...]string{
	KindUnknown:                       "Unknown",
	KindStriatedPlane:                 "StriatedPlane",
	KindNeoformedStriatedPlane:        "NeoformedStriatedPlane",
	KindStriatedCompactionalShearBand: "StriatedCompactionalShearBand",
	KindExtensionFracture:             "ExtensionFracture",
	KindDilationBand:                  "DilationBand",
	KindCompactionBand:                "CompactionBand",
	KindCrystalFibersInVein:           "CrystalFibersInVein",
	KindStyloliteTeeth:                "StyloliteTeeth",
	KindConjugateFaults:               "ConjugateFaults",
	KindConjugateDilatantShearBands:   "ConjugateDilatantShearBands",
}

// String returns the canonical kind name, e.g. "StriatedPlane".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// normalizeKindKey lowercases a kind name and strips the separators field
// tables tend to use, so "Striated Plane", "striated_plane" and
// "StriatedPlane" all key the same kind.
func normalizeKindKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// ParseKind resolves a structure-type name to its Kind, ignoring case and
// separators. Unrecognized names yield ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	var key = normalizeKindKey(s)
	for k := KindStriatedPlane; int(k) < len(kindNames); k++ {
		if normalizeKindKey(kindNames[k]) == key {
			return k, nil
		}
	}
	return KindUnknown, ErrUnknownKind
}

// CostStrategy selects how axis-alignment kinds turn the mismatch between
// a measured axis and its target principal axis into a cost. Only the axis
// kinds accept a strategy; the striated, conjugate and interval kinds each
// have a single fixed formula.
type CostStrategy int

const (
	// StrategyAngle prices the acute angle between the axes, divided by
	// π. The default.
	StrategyAngle CostStrategy = iota

	// StrategyDot prices 1 − |cos| of that angle. No inverse
	// trigonometry, same minimizer.
	StrategyDot
)

// String returns "angle" or "dot".
func (s CostStrategy) String() string {
	switch s {
	case StrategyAngle:
		return "angle"
	case StrategyDot:
		return "dot"
	default:
		return "invalid"
	}
}

// Friction parameterizes the optional Coulomb term on a striated plane:
// hypotheses whose traction falls below the friction line pay a weighted
// deficit on top of the angular misfit.
type Friction struct {
	// Cohesion is the rock cohesion, in the same arbitrary unit as the
	// reduced stress magnitudes. Non-negative.
	Cohesion float64

	// Angle is the rock friction angle in degrees, within (0, 90).
	Angle float64

	// Weight scales the friction-angle deficit (radians) before it is
	// added to the angular misfit. Positive.
	Weight float64
}

// validate rejects non-physical friction parameters with ErrBadFriction.
func (f Friction) validate() error {
	if math.IsNaN(f.Cohesion) || math.IsNaN(f.Angle) || math.IsNaN(f.Weight) {
		return ErrBadFriction
	}
	if f.Cohesion < 0 || f.Angle <= 0 || f.Angle >= 90 || f.Weight <= 0 {
		return ErrBadFriction
	}
	return nil
}

// Options configures how a datum prices hypotheses. The zero value selects
// the defaults; constructors reject options their kind does not support.
type Options struct {
	// Strategy selects the axis-alignment cost formula (axis kinds only).
	Strategy CostStrategy

	// Friction enables the Coulomb deficit term (plain striated planes
	// only).
	Friction *Friction

	// BetaMin and BetaMax bound the σ1-to-normal angle of the interval
	// kinds, in degrees with 0 ≤ BetaMin ≤ BetaMax ≤ 90. HasBetaRange
	// marks them set; otherwise the kind's default interval applies.
	BetaMin, BetaMax float64
	HasBetaRange     bool
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// DefaultOptions returns the documented defaults: StrategyAngle, no
// friction term, per-kind β intervals.
func DefaultOptions() Options {
	return Options{Strategy: StrategyAngle}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrategy selects the axis-alignment cost formula.
func WithStrategy(s CostStrategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithFriction enables the Coulomb deficit term with the given parameters.
func WithFriction(f Friction) Option {
	return func(o *Options) { o.Friction = &f }
}

// WithBetaRange bounds the σ1-to-normal angle β of an interval kind to
// [minDeg, maxDeg] degrees.
func WithBetaRange(minDeg, maxDeg float64) Option {
	return func(o *Options) {
		o.BetaMin, o.BetaMax, o.HasBetaRange = minDeg, maxDeg, true
	}
}

// WithFrictionAngleRange bounds β through a rock friction angle interval
// [minDeg, maxDeg]: a plane failing at friction angle φ forms with
// β = 45° + φ/2, so the interval maps accordingly.
func WithFrictionAngleRange(minDeg, maxDeg float64) Option {
	return func(o *Options) {
		o.BetaMin, o.BetaMax, o.HasBetaRange = 45+minDeg/2, 45+maxDeg/2, true
	}
}

// Data is one structural measurement, priced against hypothetical
// deformation states. The implementation set is closed (StriatedPlane,
// AxisDatum, ConjugatePair and IntervalPlane), so drivers can rely on
// every cost being one of four audited formulas.
type Data interface {
	// Kind reports which measurement kind this datum is.
	Kind() Kind

	// Check reports whether the hypothesis carries the fields this
	// datum prices. Cost on a hypothesis that fails Check returns
	// ErrHypothesisIncomplete.
	Check(h Hypothesis) bool

	// Cost prices the hypothesis against the measurement. Striated,
	// conjugate and interval kinds return radians; axis kinds return a
	// dimensionless value in [0, 1].
	Cost(h Hypothesis) (float64, error)

	// datum restricts implementations to this package, keeping the
	// kind set closed.
	datum()
}

// Record is the flat, loader-friendly form of one measurement row. The
// factory reads the fields its kind needs and ignores the rest; a missing
// required field is ErrBadMeasurement.
type Record struct {
	// Index identifies the row in the source data set. It is carried
	// into *ConstructionError for error reports.
	Index int

	// Plane is the primary plane, used by every planar kind.
	Plane Plane

	// Plane2 is the second plane of a conjugate pair. HasPlane2 marks
	// it set.
	Plane2    Plane
	HasPlane2 bool

	// Rake/StrikeEnd and Trend are the two striation forms; see
	// Striation. At most one form may be set.
	Rake      float64
	HasRake   bool
	StrikeEnd Octant
	Trend     float64
	HasTrend  bool

	// LineTrend and LinePlunge record a lineation axis in degrees, for
	// the fiber and stylolite kinds. HasLine marks them set.
	LineTrend  float64
	LinePlunge float64
	HasLine    bool

	// Movement is the sense of movement on the primary plane; Movement2
	// the one on the second conjugate plane.
	Movement  Movement
	Movement2 Movement
}

// striation assembles the Striation value embedded in the record.
func (r Record) striation() Striation {
	return Striation{
		Rake:      r.Rake,
		HasRake:   r.HasRake,
		StrikeEnd: r.StrikeEnd,
		Trend:     r.Trend,
		HasTrend:  r.HasTrend,
		Movement:  r.Movement,
	}
}

// New builds a datum of the named kind from a flat record. The name is
// matched case- and separator-insensitively against the Kind names, so
// tabular loaders can pass structure-type cells straight through.
//
// Every failure (unknown name, missing measurement, or a constructor
// error) comes back as a *ConstructionError wrapping the underlying
// sentinel and carrying rec.Index.
func New(kind string, rec Record, opts ...Option) (Data, error) {
	var k, err = ParseKind(kind)
	if err != nil {
		return nil, &ConstructionError{Kind: KindUnknown, Index: rec.Index, Err: err}
	}

	var d Data
	switch k {
	case KindStriatedPlane:
		d, err = NewStriatedPlane(rec.Plane, rec.striation(), opts...)
	case KindNeoformedStriatedPlane:
		d, err = NewNeoformedStriatedPlane(rec.Plane, rec.striation(), opts...)
	case KindStriatedCompactionalShearBand:
		d, err = NewStriatedCompactionalShearBand(rec.Plane, rec.striation(), opts...)
	case KindExtensionFracture:
		d, err = NewExtensionFracture(rec.Plane, opts...)
	case KindDilationBand:
		d, err = NewDilationBand(rec.Plane, opts...)
	case KindCompactionBand:
		d, err = NewCompactionBand(rec.Plane, opts...)
	case KindCrystalFibersInVein:
		if !rec.HasLine {
			err = fmt.Errorf("%w: line trend/plunge not set", ErrBadMeasurement)
			break
		}
		d, err = NewCrystalFibersInVein(rec.LineTrend, rec.LinePlunge, opts...)
	case KindStyloliteTeeth:
		if !rec.HasLine {
			err = fmt.Errorf("%w: line trend/plunge not set", ErrBadMeasurement)
			break
		}
		d, err = NewStyloliteTeeth(rec.LineTrend, rec.LinePlunge, opts...)
	case KindConjugateFaults:
		if !rec.HasPlane2 {
			err = fmt.Errorf("%w: second conjugate plane not set", ErrBadMeasurement)
			break
		}
		d, err = NewConjugateFaults(rec.Plane, rec.Plane2, rec.Movement, rec.Movement2, opts...)
	case KindConjugateDilatantShearBands:
		if !rec.HasPlane2 {
			err = fmt.Errorf("%w: second conjugate plane not set", ErrBadMeasurement)
			break
		}
		d, err = NewConjugateDilatantShearBands(rec.Plane, rec.Plane2, rec.Movement, rec.Movement2, opts...)
	}

	if err != nil {
		return nil, &ConstructionError{Kind: k, Index: rec.Index, Err: err}
	}
	return d, nil
}
