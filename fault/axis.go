package fault

import (
	"fmt"
	"math"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// AxisDatum covers every kind that reduces to "this measured axis should
// align with that principal stress axis": opening-mode structures whose
// normal or fiber tracks σ3, compactional structures whose normal or teeth
// track σ1. Axes are sign-free lines, so the cost uses |cos|.
type AxisDatum struct {
	kind     Kind
	axis     geom.Vec3
	strategy CostStrategy
}

// axisOptions validates the gathered options for an axis kind.
func axisOptions(o Options) error {
	if o.Strategy < StrategyAngle || o.Strategy > StrategyDot {
		return ErrBadStrategy
	}
	if o.Friction != nil {
		return fmt.Errorf("%w: friction applies to striated planes only", ErrBadFriction)
	}
	if o.HasBetaRange {
		return fmt.Errorf("%w: β intervals apply to interval kinds only", ErrBetaInterval)
	}
	return nil
}

// newPlaneAxis builds an axis datum whose measured axis is a plane normal.
func newPlaneAxis(k Kind, p Plane, opts []Option) (*AxisDatum, error) {
	var o = gatherOptions(opts)
	if err := axisOptions(o); err != nil {
		return nil, err
	}
	var g, err = derivePlane(p)
	if err != nil {
		return nil, err
	}
	return &AxisDatum{kind: k, axis: g.n, strategy: o.Strategy}, nil
}

// newLineAxis builds an axis datum whose measured axis is a trend/plunge
// lineation (degrees; plunge positive down, within [0, 90]).
func newLineAxis(k Kind, trendDeg, plungeDeg float64, opts []Option) (*AxisDatum, error) {
	var o = gatherOptions(opts)
	if err := axisOptions(o); err != nil {
		return nil, err
	}
	if math.IsNaN(trendDeg) || math.IsNaN(plungeDeg) {
		return nil, ErrBadMeasurement
	}
	if plungeDeg < 0 || plungeDeg > 90 {
		return nil, ErrPlungeRange
	}
	var axis = geom.TrendPlungeVec(
		geom.NormalizeAngle(geom.Radians(trendDeg)),
		geom.Radians(plungeDeg),
	)
	return &AxisDatum{kind: k, axis: axis, strategy: o.Strategy}, nil
}

// NewExtensionFracture builds a datum for an opening-mode fracture: its
// normal tracks σ3.
func NewExtensionFracture(p Plane, opts ...Option) (*AxisDatum, error) {
	return newPlaneAxis(KindExtensionFracture, p, opts)
}

// NewDilationBand builds a datum for a dilatant deformation band: its
// normal tracks σ3.
func NewDilationBand(p Plane, opts ...Option) (*AxisDatum, error) {
	return newPlaneAxis(KindDilationBand, p, opts)
}

// NewCompactionBand builds a datum for a compactional deformation band:
// its normal tracks σ1.
func NewCompactionBand(p Plane, opts ...Option) (*AxisDatum, error) {
	return newPlaneAxis(KindCompactionBand, p, opts)
}

// NewCrystalFibersInVein builds a datum for a fiber lineation inside a
// vein: the fiber axis tracks σ3.
func NewCrystalFibersInVein(trendDeg, plungeDeg float64, opts ...Option) (*AxisDatum, error) {
	return newLineAxis(KindCrystalFibersInVein, trendDeg, plungeDeg, opts)
}

// NewStyloliteTeeth builds a datum for a stylolite peak lineation: the
// teeth axis tracks σ1.
func NewStyloliteTeeth(trendDeg, plungeDeg float64, opts ...Option) (*AxisDatum, error) {
	return newLineAxis(KindStyloliteTeeth, trendDeg, plungeDeg, opts)
}

// Axis returns the measured unit axis (plane normal or lineation).
func (d *AxisDatum) Axis() geom.Vec3 { return d.axis }

// Kind reports which axis kind this datum is.
func (d *AxisDatum) Kind() Kind { return d.kind }

// Check reports whether h carries a stress tensor.
func (d *AxisDatum) Check(h Hypothesis) bool { return h.Stress != nil }

// target returns the principal axis the measured axis should align with.
func (d *AxisDatum) target(t *stress.Tensor) geom.Vec3 {
	switch d.kind {
	case KindCompactionBand, KindStyloliteTeeth:
		return t.S1
	default:
		return t.S3
	}
}

// Cost prices h by the alignment of the measured axis with its target
// principal axis. Both axes are sign-free.
//
// Contracts:
//   - StrategyAngle: acute angle / π, in [0, 0.5].
//   - StrategyDot: 1 − |cos|, in [0, 1].
//
// Complexity: O(1).
func (d *AxisDatum) Cost(h Hypothesis) (float64, error) {
	if !d.Check(h) {
		return 0, ErrHypothesisIncomplete
	}
	var a = math.Abs(d.axis.Dot(d.target(h.Stress)))
	if d.strategy == StrategyDot {
		return 1 - math.Min(a, 1), nil
	}
	return geom.AcosClamped(a) / math.Pi, nil
}

func (*AxisDatum) datum() {}
