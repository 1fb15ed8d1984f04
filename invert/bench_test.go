package invert_test

import (
	"context"
	"testing"

	"github.com/tectolab/paleostress/fault"
	"github.com/tectolab/paleostress/invert"
	"github.com/tectolab/paleostress/stress"
)

// benchMethod builds a driver with a small mixed data set, the shape of a
// typical outcrop station.
func benchMethod(b *testing.B) *invert.InverseMethod {
	b.Helper()

	im, err := invert.NewInverseMethod()
	if err != nil {
		b.Fatalf("setup method failed: %v", err)
	}

	sp, err := fault.NewStriatedPlane(
		fault.Plane{Strike: 40, Dip: 55, DipOctant: fault.OctantSE},
		fault.Striation{Rake: 70, HasRake: true, StrikeEnd: fault.OctantNE, Movement: fault.MovementNormal},
	)
	if err != nil {
		b.Fatalf("setup striated plane failed: %v", err)
	}
	pair, err := fault.NewConjugateFaults(
		fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantE},
		fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantW},
		fault.MovementNormal, fault.MovementNormal,
	)
	if err != nil {
		b.Fatalf("setup conjugate pair failed: %v", err)
	}
	ext, err := fault.NewExtensionFracture(fault.Plane{Strike: 10, Dip: 80, DipOctant: fault.OctantE})
	if err != nil {
		b.Fatalf("setup extension fracture failed: %v", err)
	}
	im.AddData(sp, pair, ext)

	return im
}

// BenchmarkInverseMethodCost measures one aggregate evaluation, the unit
// every search trial pays.
func BenchmarkInverseMethodCost(b *testing.B) {
	im := benchMethod(b)
	ten, err := stress.FromRegime(0.4, 1.3)
	if err != nil {
		b.Fatalf("setup tensor failed: %v", err)
	}
	h := fault.Hypothesis{Stress: ten}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = im.Cost(h); err != nil {
			b.Fatalf("cost failed: %v", err)
		}
	}
}

// BenchmarkMonteCarloRun measures a small sampling run end to end: RNG
// draws, rotation composition, tensor construction and aggregate costs.
func BenchmarkMonteCarloRun(b *testing.B) {
	im := benchMethod(b)
	mc, err := invert.NewMonteCarlo(invert.WithTrials(256), invert.WithSeed(1))
	if err != nil {
		b.Fatalf("setup strategy failed: %v", err)
	}
	start, err := stress.FromRegime(0.4, 1.3)
	if err != nil {
		b.Fatalf("setup tensor failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = im.Run(context.Background(), mc, start); err != nil {
			b.Fatalf("run failed: %v", err)
		}
	}
}

// BenchmarkGridSearchRun measures a small lattice sweep end to end.
func BenchmarkGridSearchRun(b *testing.B) {
	im := benchMethod(b)
	gs, err := invert.NewGridSearch(
		invert.WithAxisCount(4), invert.WithAngleSteps(2), invert.WithRatioSteps(2))
	if err != nil {
		b.Fatalf("setup strategy failed: %v", err)
	}
	start, err := stress.FromRegime(0.4, 1.3)
	if err != nil {
		b.Fatalf("setup tensor failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = im.Run(context.Background(), gs, start); err != nil {
			b.Fatalf("run failed: %v", err)
		}
	}
}
