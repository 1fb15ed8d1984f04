// Package stress: traction on a plane.

package stress

import "github.com/tectolab/paleostress/geom"

// Traction is the stress vector acting on a plane, split into its normal
// and shear parts. With compression negative, Normal < 0 on a compressed
// plane.
type Traction struct {
	Vector   geom.Vec3 // t = S·n
	Normal   float64   // σn = n·t
	Shear    geom.Vec3 // t − σn·n (lies in the plane)
	ShearMag float64   // ‖Shear‖
}

// PlaneTraction resolves the stress tensor s on the plane with unit normal
// n. The shear part points in the direction a hanging wall would slip under
// s, which is what the striation misfits compare against.
//
// Contracts:
//   - n is assumed unit length (data-model constructors guarantee it).
//   - ShearMag may legitimately vanish (principal plane); callers apply
//     their own degeneracy policy, this function never errors.
//
// Complexity: O(1).
func PlaneTraction(s geom.Mat3, n geom.Vec3) Traction {
	var t = s.MulVec(n)
	var sn = n.Dot(t)
	var shear = t.Sub(n.Scale(sn))

	return Traction{
		Vector:   t,
		Normal:   sn,
		Shear:    shear,
		ShearMag: shear.Norm(),
	}
}
