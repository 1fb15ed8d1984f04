// Package fault models the structural field measurements that drive a
// paleostress inversion and prices each of them against a hypothetical
// stress state.
//
// What:
//
//   - Plane, Striation, Octant, Movement: the raw field vocabulary of
//     strike/dip with a dip-direction octant, rake or trend striations,
//     and sense-of-movement labels.
//   - Data: the closed set of datum kinds. Ten kinds ship, realized by
//     four concrete types:
//     StriatedPlane (striated fault surfaces, optional friction term),
//     AxisDatum (extension fractures, dilation and compaction bands,
//     crystal fibers, stylolite teeth, anything reduced to "this
//     direction should match that principal axis"),
//     ConjugatePair (conjugate fault sets and dilatant shear bands,
//     scored by the minimum rotation to the derived principal frame),
//     IntervalPlane (neoformed striated planes and striated compactional
//     shear bands, whose σ1-to-normal angle is bound to a friction
//     interval).
//   - New: a name-keyed factory so tabular loaders construct data by
//     structure-type name; failures come back as *ConstructionError
//     carrying the datum index and kind.
//   - Hypothesis: the record a datum is priced against (stress today;
//     displacement and strain slots reserved).
//
// Why:
//
//   - Every datum converts its measurements to unit vectors once, at
//     construction, then prices hypotheses with a handful of dot and
//     cross products: constructors validate, Cost stays allocation-free.
//   - A closed tagged set instead of an open hierarchy: the inversion can
//     rely on every kind's cost being one of four audited formulas.
//
// Conventions:
//
//   - Field angles arrive in degrees (strike, dip, rake, trend, plunge),
//     compass azimuths clockwise from North; everything derived is stored
//     in radians and ENU unit vectors (see package geom).
//   - Plane normals point upward (n.Z ≥ 0); a vertical plane's normal
//     points toward the declared dip-direction octant.
//   - Striations record hanging-wall motion: e.Z < 0 is normal slip,
//     e·(n×ẑ) > 0 right-lateral.
//   - Costs: striation and rotation misfits are radians; axis misfits are
//     normalized to [0,1] ranges. The aggregation layer documents the mix.
//
// Errors:
//
//   - Construction: ErrDipRange, ErrRakeRange, ErrPlungeRange,
//     ErrOctantRequired, ErrOctantInconsistent, ErrStriationForm,
//     ErrStriationDegenerate, ErrMovementInconsistent, ErrMovementRequired,
//     ErrConjugateDegenerate, ErrConjugateAmbiguous, ErrBetaInterval,
//     ErrBadStrategy, ErrBadFriction, ErrBadMeasurement, ErrUnknownKind,
//     all wrapped in *ConstructionError by the factory.
//   - Evaluation: ErrHypothesisIncomplete (missing stress),
//     ErrInvariantViolation (interval misfit failed its minimality check).
//
// Construction is strict and evaluation is total: once a datum exists, the
// only evaluation-time errors are the two listed above; geometric
// degeneracies that depend on the hypothesis (a striated plane carrying no
// shear) are priced by policy (π) instead of failing the run.
package fault
