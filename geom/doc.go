// Package geom provides the small fixed-size linear algebra shared by the
// paleostress packages: 3-component vectors, 3×3 tensors, proper rotations
// and spherical-coordinate conversions in the East-North-Up (ENU) frame.
//
// What:
//
//   - Vec3: value-type 3D vector (X=East, Y=North, Z=Up) with the usual
//     dot/cross/normalize operations.
//   - Mat3: row-major 3×3 matrix, used both as a proper rotation
//     (orthonormal rows, det=+1) and as a symmetric stress tensor.
//   - NewRotation: proper rotation tensor from an axis and an angle
//     (Rodrigues form, right-hand rule).
//   - MinRotationAngle: minimum rotation angle between two right-handed
//     principal frames, minimized over the admissible axis sign changes.
//   - SphericalCoords plus the compass/trend/plunge helpers shared by the
//     field-data and reporting layers.
//
// Why:
//
//   - Stress inversion spends nearly all of its time in tiny 3×3 and
//     3-vector kernels; fixed-size value types keep those loops
//     allocation-free.
//   - A single home for the angle conventions (φ anticlockwise from East,
//     θ from zenith, compass azimuth clockwise from North) prevents sign
//     mistakes at package boundaries.
//
// Conventions:
//
//   - Geographic frame is ENU: X=East, Y=North, Z=Up.
//   - φ (phi) ∈ [0,2π), anticlockwise from +X in the horizontal plane;
//     θ (theta) ∈ [0,π], from +Z (zenith). Unit direction:
//     (sinθ·cosφ, sinθ·sinφ, cosθ).
//   - Compass azimuths are clockwise from North: φ = π/2 − azimuth.
//   - Every acos/asin argument is clamped to [−1,1] (AcosClamped,
//     AsinClamped); NaN never escapes this package.
//
// Errors:
//
//   - ErrDegenerateVector: normalization of a zero-length vector.
//   - ErrDegenerateAxis: rotation axis with zero length.
//
// All operations are O(1) time and O(1) space.
package geom
