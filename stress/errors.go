// Package stress: sentinel error set.
// All constructors return these sentinels and tests match them via
// errors.Is. Messages are prefixed "stress: ..." for grep-ability.

package stress

import "errors"

var (
	// ErrStressRatioRange is returned when a stress ratio R lies outside [0,1].
	ErrStressRatioRange = errors.New("stress: stress ratio must lie in [0,1]")

	// ErrNotRotation is returned when an orientation matrix fails the
	// proper-rotation check (orthonormal rows, det=+1) within tolerance.
	ErrNotRotation = errors.New("stress: orientation matrix is not a proper rotation")

	// ErrRegimeRange is returned by FromRegime when the regime index lies
	// outside [0,3].
	ErrRegimeRange = errors.New("stress: regime index must lie in [0,3]")

	// ErrNotSymmetric is returned by Principal when the input tensor is not
	// symmetric within tolerance.
	ErrNotSymmetric = errors.New("stress: tensor is not symmetric")

	// ErrEigenFailed is returned when the eigen decomposition does not
	// converge. With symmetric 3×3 input this indicates NaN/Inf entries.
	ErrEigenFailed = errors.New("stress: eigen decomposition failed")

	// ErrIsotropic is returned by Principal when σ1 ≈ σ3: the principal
	// directions of an isotropic tensor are undefined.
	ErrIsotropic = errors.New("stress: tensor is isotropic; principal directions undefined")
)
