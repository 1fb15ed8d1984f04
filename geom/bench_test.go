package geom_test

import (
	"testing"

	"github.com/tectolab/paleostress/geom"
)

// BenchmarkNewRotation measures the Rodrigues construction, the innermost
// allocation-free kernel of every search trial.
func BenchmarkNewRotation(b *testing.B) {
	axis := geom.Vec3{X: 0.3, Y: -0.6, Z: 0.74}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := geom.NewRotation(axis, 0.42); err != nil {
			b.Fatalf("NewRotation failed: %v", err)
		}
	}
}

// BenchmarkMinRotationAngle measures the frame-distance metric applied to a
// fixed rotation product.
func BenchmarkMinRotationAngle(b *testing.B) {
	r, err := geom.NewRotation(geom.Vec3{X: 1, Y: 1, Z: 1}, 1.1)
	if err != nil {
		b.Fatalf("setup rotation failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geom.MinRotationAngle(r)
	}
}

// BenchmarkMat3_Mul measures the 3×3 product used to compose candidate
// rotations with the reference frame.
func BenchmarkMat3_Mul(b *testing.B) {
	m, err := geom.NewRotation(geom.Vec3{Z: 1}, 0.2)
	if err != nil {
		b.Fatalf("setup rotation failed: %v", err)
	}
	n, err := geom.NewRotation(geom.Vec3{X: 1}, -0.4)
	if err != nil {
		b.Fatalf("setup rotation failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Mul(n)
	}
}
