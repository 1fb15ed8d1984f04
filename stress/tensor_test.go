package stress_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

const tol = 1e-9

// TestNewTensor_CanonicalFrame builds the tensor in its own principal frame
// (HRot = I) and checks every field against the reduced-form definition.
func TestNewTensor_CanonicalFrame(t *testing.T) {
	ten, err := stress.NewTensor(geom.Identity(), 0.5)
	require.NoError(t, err, "identity frame with R=0.5 is valid")

	assert.Equal(t, geom.Vec3{X: 1}, ten.S1, "row 0 of HRot is σ1")
	assert.Equal(t, geom.Vec3{Y: 1}, ten.S3, "row 1 of HRot is σ3")
	assert.Equal(t, geom.Vec3{Z: 1}, ten.S2, "row 2 of HRot is σ2")
	assert.Equal(t, -1.0, ten.Sigma1, "σ1 carries −1")
	assert.Equal(t, 0.0, ten.Sigma3, "σ3 carries 0")
	assert.Equal(t, -0.5, ten.Sigma2, "σ2 carries −R")
	assert.Equal(t, 0.5, ten.R)

	want := geom.Mat3{
		{-1, 0, 0},
		{0, 0, 0},
		{0, 0, -0.5},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], ten.S[i][j], tol, "S entry (%d,%d)", i, j)
		}
	}
}

// TestNewTensor_EigenConsistency verifies that for a skewed frame the
// assembled S maps each principal direction onto itself scaled by its
// principal value.
func TestNewTensor_EigenConsistency(t *testing.T) {
	rot, err := geom.NewRotation(geom.Vec3{X: 1, Y: -2, Z: 0.5}, 1.1)
	require.NoError(t, err)

	ten, err := stress.NewTensor(rot, 0.3)
	require.NoError(t, err)

	cases := []struct {
		name string
		dir  geom.Vec3
		want float64
	}{
		{"sigma1", ten.S1, -1},
		{"sigma3", ten.S3, 0},
		{"sigma2", ten.S2, -0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ten.S.MulVec(tc.dir)
			want := tc.dir.Scale(tc.want)
			assert.InDelta(t, want.X, got.X, tol, "S·dir X component")
			assert.InDelta(t, want.Y, got.Y, tol, "S·dir Y component")
			assert.InDelta(t, want.Z, got.Z, tol, "S·dir Z component")
		})
	}

	assert.True(t, ten.S.IsSymmetric(tol), "assembled stress tensor must be symmetric")
}

// TestNewTensor_RatioRange verifies the stress ratio domain check.
func TestNewTensor_RatioRange(t *testing.T) {
	_, err := stress.NewTensor(geom.Identity(), -0.01)
	assert.ErrorIs(t, err, stress.ErrStressRatioRange, "negative ratio must be rejected")

	_, err = stress.NewTensor(geom.Identity(), 1.01)
	assert.ErrorIs(t, err, stress.ErrStressRatioRange, "ratio above 1 must be rejected")

	_, err = stress.NewTensor(geom.Identity(), 0)
	assert.NoError(t, err, "R=0 is a valid boundary")
	_, err = stress.NewTensor(geom.Identity(), 1)
	assert.NoError(t, err, "R=1 is a valid boundary")
}

// TestNewTensor_NotRotation verifies rejection of a non-orthonormal frame.
func TestNewTensor_NotRotation(t *testing.T) {
	bad := geom.Mat3{
		{1, 0, 0},
		{0.5, 1, 0},
		{0, 0, 1},
	}
	_, err := stress.NewTensor(bad, 0.5)
	assert.ErrorIs(t, err, stress.ErrNotRotation, "skewed frame must be rejected")

	reflect := geom.Mat3{
		{1, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	}
	_, err = stress.NewTensor(reflect, 0.5)
	assert.ErrorIs(t, err, stress.ErrNotRotation, "det=−1 frame must be rejected")
}

// TestHomogeneous_Engine verifies the set/query contract of the engine,
// including the nil state before any hypothesis.
func TestHomogeneous_Engine(t *testing.T) {
	var eng stress.Homogeneous
	assert.Nil(t, eng.At(geom.Vec3{}), "engine must answer nil before a hypothesis is set")

	ten, err := stress.NewTensor(geom.Identity(), 0.2)
	require.NoError(t, err)
	eng.SetHypothesis(ten)

	assert.Same(t, ten, eng.At(geom.Vec3{}), "engine must return the installed tensor")
	assert.Same(t, ten, eng.At(geom.Vec3{X: 12, Y: -7, Z: 3}),
		"homogeneous field must ignore the query position")

	eng.SetHypothesis(nil)
	assert.Nil(t, eng.At(geom.Vec3{}), "clearing must drop the tensor")
}

// TestPlaneTraction_UniaxialCompression resolves vertical uniaxial
// compression on a 45°-dipping plane: σn = −0.5, shear magnitude 0.5, and
// the shear points down-dip (normal-faulting sense).
func TestPlaneTraction_UniaxialCompression(t *testing.T) {
	// σ1 vertical, R=0: S = −ẑ⊗ẑ.
	ten, err := stress.NewTensor(geom.FromRows(
		geom.Vec3{Z: 1},
		geom.Vec3{X: 1},
		geom.Vec3{Y: 1},
	), 0)
	require.NoError(t, err)

	n := geom.Vec3{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2} // plane dipping 45° east
	tr := stress.PlaneTraction(ten.S, n)

	assert.InDelta(t, -0.5, tr.Normal, tol, "normal stress must be compressive −0.5")
	assert.InDelta(t, 0.5, tr.ShearMag, tol, "shear magnitude must be 0.5")
	assert.Less(t, tr.Shear.Z, 0.0, "shear must point down-dip under vertical σ1")
	assert.InDelta(t, 0, tr.Shear.Dot(n), tol, "shear must lie in the plane")
}

// TestPlaneTraction_PrincipalPlane verifies the zero-shear degeneracy on a
// plane normal to a principal axis.
func TestPlaneTraction_PrincipalPlane(t *testing.T) {
	ten, err := stress.NewTensor(geom.Identity(), 0.5)
	require.NoError(t, err)

	tr := stress.PlaneTraction(ten.S, geom.Vec3{X: 1}) // normal along σ1
	assert.InDelta(t, -1, tr.Normal, tol, "full compression across the σ1-normal plane")
	assert.InDelta(t, 0, tr.ShearMag, tol, "principal plane carries no shear")
}
