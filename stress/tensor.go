// Package stress: reduced tensor construction.

package stress

import "github.com/tectolab/paleostress/geom"

// rotTol is the orthonormality tolerance applied to orientation matrices at
// construction. Candidate frames arrive as products of exact Rodrigues
// rotations, so drift stays orders of magnitude below this.
const rotTol = 1e-6

// Tensor is a reduced stress state.
//
// The principal frame is stored as the rows of HRot:
//
//	row 0 = σ1 (most compressive, principal value −1)
//	row 1 = σ3 (least compressive, principal value 0)
//	row 2 = σ2 (intermediate,      principal value −R)
//
// HRot maps geographic coordinates to the principal frame; S is the full
// tensor back in geographic coordinates. Compression is negative.
//
// Tensors are immutable after construction: every search trial builds a
// fresh value instead of editing the previous one, so solutions can hold
// references without deep copies going stale.
type Tensor struct {
	S    geom.Mat3 // stress tensor, geographic coordinates
	HRot geom.Mat3 // rows: σ1, σ3, σ2

	S1 geom.Vec3 // σ1 direction (unit)
	S3 geom.Vec3 // σ3 direction (unit)
	S2 geom.Vec3 // σ2 direction (unit)

	Sigma1 float64 // principal value along S1: −1
	Sigma3 float64 // principal value along S3: 0
	Sigma2 float64 // principal value along S2: −R

	R float64 // stress ratio (σ2−σ3)/(σ1−σ3) ∈ [0,1]
}

// NewTensor builds the reduced tensor for the principal frame hrot
// (rows σ1, σ3, σ2) and stress ratio ratio.
//
// Contracts:
//   - hrot must be a proper rotation within tolerance; or ErrNotRotation.
//   - ratio ∈ [0,1]; or ErrStressRatioRange.
//   - S = hrotᵗ·diag(−1, 0, −ratio)·hrot, assembled from the scaled outer
//     products of the rows so no temporary matrices are allocated.
//
// Complexity: O(1).
func NewTensor(hrot geom.Mat3, ratio float64) (*Tensor, error) {
	if ratio < 0 || ratio > 1 {
		return nil, ErrStressRatioRange
	}
	if !hrot.IsRotation(rotTol) {
		return nil, ErrNotRotation
	}

	var (
		s1 = hrot.Row(0)
		s3 = hrot.Row(1)
		s2 = hrot.Row(2)
	)
	// S = −1·σ1⊗σ1 + 0·σ3⊗σ3 − R·σ2⊗σ2.
	var s = geom.Outer(s1, s1).Scale(-1).Add(geom.Outer(s2, s2).Scale(-ratio))

	return &Tensor{
		S:      s,
		HRot:   hrot,
		S1:     s1,
		S3:     s3,
		S2:     s2,
		Sigma1: -1,
		Sigma3: 0,
		Sigma2: -ratio,
		R:      ratio,
	}, nil
}
