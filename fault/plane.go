package fault

import (
	"math"

	"github.com/tectolab/paleostress/geom"
)

// Plane is a planar fabric element as measured in the field: the compass
// azimuth of its strike line, its dip angle, and the octant it dips toward.
//
// Strike alone leaves two admissible dip directions (90° to either side),
// so DipOctant is required whenever Dip > 0. A horizontal plane has no dip
// direction and its octant may be left undefined.
type Plane struct {
	// Strike is the compass azimuth of the strike line, in degrees.
	// Any value is accepted and reduced modulo 360.
	Strike float64

	// Dip is the dip angle in degrees, within [0, 90].
	Dip float64

	// DipOctant names the compass octant the plane dips toward.
	DipOctant Octant
}

// planeGeometry is a Plane resolved into the East-North-Up frame.
type planeGeometry struct {
	n      geom.Vec3 // unit normal, upward (n.Z ≥ 0)
	strike float64   // strike azimuth, radians clockwise from North
	dipAz  float64   // dip azimuth, radians clockwise from North
	dip    float64   // dip angle, radians
}

// downDip returns the unit vector pointing down the dip of the plane.
// For a horizontal plane it degenerates to the horizontal unit vector
// toward the resolved dip azimuth.
func (g planeGeometry) downDip() geom.Vec3 {
	var c, s = math.Cos(g.dip), math.Sin(g.dip)
	return geom.Vec3{X: c * math.Sin(g.dipAz), Y: c * math.Cos(g.dipAz), Z: -s}
}

// horizontalVec returns the horizontal unit vector pointing toward the
// compass azimuth az (radians clockwise from North).
func horizontalVec(az float64) geom.Vec3 {
	return geom.Vec3{X: math.Sin(az), Y: math.Cos(az), Z: 0}
}

// azimuthDistance returns the absolute angular separation of two compass
// azimuths, folded into [0, π].
func azimuthDistance(a, b float64) float64 {
	var d = math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// pickAzimuth resolves a two-valued azimuth using a compass octant: of the
// two candidates it returns the one nearer the octant's center azimuth.
// Candidates exactly equidistant from the center carry no information and
// yield ErrOctantInconsistent.
func pickAzimuth(cand0, cand1 float64, oct Octant) (float64, error) {
	var center = oct.azimuth()
	var d0 = azimuthDistance(cand0, center)
	var d1 = azimuthDistance(cand1, center)
	switch {
	case math.Abs(d0-d1) <= geom.Eps:
		return 0, ErrOctantInconsistent
	case d0 < d1:
		return cand0, nil
	default:
		return cand1, nil
	}
}

// derivePlane validates a field Plane and resolves it into ENU geometry.
//
// Contracts:
//   - Dip must lie in [0, 90]; otherwise ErrDipRange.
//   - Dip > 0 requires a defined DipOctant (ErrOctantRequired), and the
//     octant must favour one of the two candidate dip azimuths
//     (ErrOctantInconsistent when it sits exactly between them).
//   - Dip == 0 yields n = ẑ; an undefined octant then defaults the dip
//     azimuth to strike+90°.
//
// The returned normal is the upward unit normal; for a vertical plane it is
// horizontal and points toward the declared octant.
func derivePlane(p Plane) (planeGeometry, error) {
	if math.IsNaN(p.Strike) || math.IsNaN(p.Dip) {
		return planeGeometry{}, ErrBadMeasurement
	}
	if p.Dip < 0 || p.Dip > 90 {
		return planeGeometry{}, ErrDipRange
	}

	var g = planeGeometry{
		strike: geom.NormalizeAngle(geom.Radians(p.Strike)),
		dip:    geom.Radians(p.Dip),
	}

	// Resolve the dip azimuth from the two candidates 90° off strike.
	var cand0 = geom.NormalizeAngle(g.strike + math.Pi/2)
	var cand1 = geom.NormalizeAngle(g.strike - math.Pi/2)
	switch {
	case p.DipOctant != OctantUndefined:
		var az, err = pickAzimuth(cand0, cand1, p.DipOctant)
		if err != nil {
			return planeGeometry{}, err
		}
		g.dipAz = az
	case g.dip <= geom.Eps:
		// Horizontal: the dip direction is immaterial, pick one.
		g.dipAz = cand0
	default:
		return planeGeometry{}, ErrOctantRequired
	}

	var sd, cd = math.Sin(g.dip), math.Cos(g.dip)
	g.n = geom.Vec3{
		X: sd * math.Sin(g.dipAz),
		Y: sd * math.Cos(g.dipAz),
		Z: cd,
	}
	return g, nil
}
