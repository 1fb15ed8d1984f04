// Package fault: sentinel error set and the construction error wrapper.
// Constructors return sentinels (or sentinels wrapped with context); the
// factory additionally wraps them in *ConstructionError so batch loaders
// can report the offending datum. Tests match via errors.Is / errors.As.

package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrDipRange is returned when a dip lies outside [0°, 90°].
	ErrDipRange = errors.New("fault: dip must lie in [0°, 90°]")

	// ErrRakeRange is returned when a rake lies outside [0°, 90°].
	ErrRakeRange = errors.New("fault: rake must lie in [0°, 90°]")

	// ErrPlungeRange is returned when a plunge lies outside [0°, 90°].
	ErrPlungeRange = errors.New("fault: plunge must lie in [0°, 90°]")

	// ErrOctantRequired is returned when a dipping plane is missing its
	// dip-direction octant, or a rake striation its strike-direction octant.
	ErrOctantRequired = errors.New("fault: direction octant required")

	// ErrOctantInconsistent is returned when the declared octant sits at 90°
	// from both admissible directions, so it cannot disambiguate them.
	ErrOctantInconsistent = errors.New("fault: octant inconsistent with the measured azimuth")

	// ErrStriationForm is returned when a striation defines both rake and
	// trend forms, or neither.
	ErrStriationForm = errors.New("fault: striation needs exactly one of rake or trend")

	// ErrStriationDegenerate is returned when the trend direction projects
	// to a zero-length vector on the plane.
	ErrStriationDegenerate = errors.New("fault: trend projects to nothing on this plane")

	// ErrMovementInconsistent is returned when a sense-of-movement label
	// cannot be realized by the measured geometry, or contradicts itself.
	ErrMovementInconsistent = errors.New("fault: movement sense inconsistent with geometry")

	// ErrMovementRequired is returned by kinds that cannot work with an
	// unoriented striation (the interval kinds and perpendicular conjugates).
	ErrMovementRequired = errors.New("fault: sense of movement required for this kind")

	// ErrConjugateDegenerate is returned when conjugate plane normals are
	// parallel or anti-parallel: no unique σ2 axis exists.
	ErrConjugateDegenerate = errors.New("fault: conjugate planes are parallel")

	// ErrConjugateAmbiguous is returned when perpendicular conjugate planes
	// cannot be resolved into a unique frame from the movement data.
	ErrConjugateAmbiguous = errors.New("fault: perpendicular conjugate planes are ambiguous")

	// ErrBetaInterval is returned when a σ1-to-normal interval is empty or
	// leaves [0°, 90°].
	ErrBetaInterval = errors.New("fault: invalid σ1-to-normal angle interval")

	// ErrBadStrategy is returned when a cost strategy is applied to a kind
	// that does not support it.
	ErrBadStrategy = errors.New("fault: cost strategy not supported by this kind")

	// ErrBadFriction is returned for non-physical friction parameters.
	ErrBadFriction = errors.New("fault: invalid friction parameters")

	// ErrBadMeasurement is returned when a measurement is NaN or ±Inf, or a
	// kind-required measurement is missing from the record.
	ErrBadMeasurement = errors.New("fault: measurement missing or not finite")

	// ErrUnknownKind is returned by the factory for an unrecognized
	// structure-type name.
	ErrUnknownKind = errors.New("fault: unknown structure type")

	// ErrHypothesisIncomplete is returned by Cost when the hypothesis lacks
	// the field the datum needs (Check reports this without the error).
	ErrHypothesisIncomplete = errors.New("fault: hypothesis lacks the required stress tensor")

	// ErrInvariantViolation is returned when an interval kind finds its
	// clamped misfit above both interval boundaries, violating the
	// minimality invariant the interval construction relies on.
	ErrInvariantViolation = errors.New("fault: interval misfit not minimal at the clamped angle")
)

// ConstructionError reports a datum the factory could not build. It wraps
// the underlying sentinel, so errors.Is still matches, and carries enough
// context to point back into the source table.
type ConstructionError struct {
	Kind  Kind  // datum kind being built
	Index int   // datum index in the source data set
	Err   error // underlying sentinel, possibly with context
}

// Error formats as "fault: datum 3 (ConjugateFaults): ...".
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("fault: datum %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}
