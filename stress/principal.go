// Package stress: principal decomposition of measured tensors.
//
// This is the one spot where the generic numeric stack earns its keep: the
// fixed-size kernels elsewhere never need an eigensolver, but decomposing a
// user-supplied tensor does, and gonum's symmetric eigen routine is both
// robust and ordering-stable.

package stress

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tectolab/paleostress/geom"
)

// Principal decomposes a measured symmetric stress tensor into the reduced
// form used throughout this module: principal directions (σ1, σ3, σ2) and
// stress ratio R = (σ2−σ3)/(σ1−σ3), with compression negative.
//
// The returned Tensor is rebuilt in reduced scale (principal values
// −1, 0, −R): the isotropic and magnitude components of the input are
// discarded, because orientation and shape are all the inversion resolves.
//
// Contracts:
//   - s must be symmetric within tolerance; or ErrNotSymmetric.
//   - The frame is re-orthogonalized right-handed: σ2 := σ1×σ3, so
//     det(HRot)=+1 regardless of the eigensolver's sign choices.
//
// Errors:
//   - ErrNotSymmetric, ErrEigenFailed, ErrIsotropic.
//
// Complexity: O(1) (fixed 3×3 decomposition).
func Principal(s geom.Mat3) (*Tensor, error) {
	if !s.IsSymmetric(geom.Eps) {
		return nil, ErrNotSymmetric
	}

	var sym = mat.NewSymDense(3, []float64{
		s[0][0], s[0][1], s[0][2],
		s[1][0], s[1][1], s[1][2],
		s[2][0], s[2][1], s[2][2],
	})

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, ErrEigenFailed
	}

	// Eigenvalues ascend; with compression negative the most compressive
	// axis (σ1) carries the smallest eigenvalue.
	var vals = eig.Values(nil)
	var denom = vals[2] - vals[0]
	if denom < geom.Eps || math.IsNaN(denom) {
		return nil, ErrIsotropic
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var (
		s1 = geom.Vec3{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}
		s3 = geom.Vec3{X: vecs.At(0, 2), Y: vecs.At(1, 2), Z: vecs.At(2, 2)}
	)
	// Right-handed (σ1, σ3, σ2) frame independent of eigenvector signs.
	var s2 = s1.Cross(s3)

	var ratio = geom.Clamp((vals[2]-vals[1])/denom, 0, 1)

	return NewTensor(geom.FromRows(s1, s3, s2), ratio)
}
