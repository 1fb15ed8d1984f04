// Package stress builds and decomposes reduced stress tensors.
//
// What:
//
//   - Tensor: a reduced stress state holding principal directions (σ1, σ3,
//     σ2 as the rows of a proper rotation HRot), fixed principal values
//     (−1, 0, −R) and the assembled geographic tensor S = HRotᵗ·Λ·HRot.
//   - Homogeneous: the hypothetical stress engine. It holds the tensor
//     under test and answers stress queries at a position; the position is
//     part of the contract so heterogeneous fields can slot in later, but
//     the shipped engine ignores it.
//   - PlaneTraction: traction vector on a plane split into normal and
//     shear parts, the kernel behind every striation misfit.
//   - FromRegime: Andersonian parametrization (θ, R′) covering normal,
//     strike-slip and reverse regimes with a single continuous index
//     R′ ∈ [0,3].
//   - Principal: eigen decomposition of a measured symmetric tensor into
//     the same reduced form (gonum).
//
// Why:
//
//   - Inversion only resolves the orientation of the principal frame and
//     the shape ratio R = (σ2−σ3)/(σ1−σ3); the reduced form (−1, 0, −R)
//     fixes scale and isotropic components once and for all.
//   - Compression is negative throughout, matching the (−1, 0, −R)
//     convention: σ1 carries −1, σ3 carries 0, σ2 carries −R.
//
// Errors:
//
//   - ErrStressRatioRange, ErrNotRotation: Tensor construction.
//   - ErrRegimeRange: FromRegime.
//   - ErrNotSymmetric, ErrEigenFailed, ErrIsotropic: Principal.
//
// Tensor values are immutable after construction; the engine swaps whole
// tensors, never edits one in place.
package stress
