package invert_test

import (
	"context"
	"fmt"

	"github.com/tectolab/paleostress/fault"
	"github.com/tectolab/paleostress/invert"
	"github.com/tectolab/paleostress/stress"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverseMethod_Run
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two microstructures from an extensional site: a N-S vertical extension
//	fracture (σ3 points East) and vertical stylolite teeth (σ1 vertical).
//	Starting from the Andersonian normal-regime hypothesis that generated
//	them, a small grid sweep confirms the fit is already exact: the first
//	node scanned is the null rotation, and the strict-improvement rule
//	keeps it for the rest of the sweep.
//
// Complexity: O(grid nodes) cost evaluations.
func ExampleInverseMethod_Run() {
	im, err := invert.NewInverseMethod()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ext, err := fault.NewExtensionFracture(fault.Plane{Strike: 0, Dip: 90, DipOctant: fault.OctantE})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	teeth, err := fault.NewStyloliteTeeth(0, 90)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	im.AddData(ext, teeth)

	start, err := stress.FromRegime(0, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	gs, err := invert.NewGridSearch(
		invert.WithAxisCount(2), invert.WithAngleSteps(2), invert.WithRatioSteps(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol, err := im.Run(context.Background(), gs, start)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("misfit=%.3f trials=%d improved=%d\n", sol.Misfit, sol.Trials, sol.Improved)
	// Output:
	// misfit=0.000 trials=75 improved=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMonteCarlo
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same extensional site, but the field hypothesis is badly wrong: a
//	reverse regime striking 0.6 rad. A seeded Monte Carlo cloud explores
//	the full rotation space around it. The run is reproducible (same
//	data, seed and worker count give the same Solution), and the first
//	evaluated trial always improves on an empty incumbent.
//
// Complexity: O(Trials) cost evaluations.
func ExampleMonteCarlo() {
	im, err := invert.NewInverseMethod()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ext, err := fault.NewExtensionFracture(fault.Plane{Strike: 0, Dip: 90, DipOctant: fault.OctantE})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	teeth, err := fault.NewStyloliteTeeth(0, 90)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	im.AddData(ext, teeth)

	start, err := stress.FromRegime(0.6, 2.2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mc, err := invert.NewMonteCarlo(invert.WithTrials(2000), invert.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol, err := im.Run(context.Background(), mc, start)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("trials=%d improved=%v\n", sol.Trials, sol.Improved > 0)
	// Output:
	// trials=2000 improved=true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverseMethod_Landscape
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A conjugate pair of N-S striking normal faults dipping 30° east and
//	west. Mapped over two regime nodes at the generating azimuth, the
//	normal-regime cell fits exactly while the reverse-regime cell pays
//	the σ1/σ3 flip, a 2π/3 principal-frame rotation.
//
// Complexity: O(cells) cost evaluations.
func ExampleInverseMethod_Landscape() {
	im, err := invert.NewInverseMethod()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	east := fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantE}
	west := fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantW}
	pair, err := fault.NewConjugateFaults(east, west, fault.MovementNormal, fault.MovementNormal)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	im.AddData(pair)

	out, err := im.Landscape([]float64{0}, []float64{0.5, 2.5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.3f %.3f\n", out[0][0], out[0][1])
	// Output:
	// 0.000 2.094
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInverseMethod_Summarize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two conjugate pairs against one hypothesis: one generated by it, one
//	requiring a quarter-turn of the principal frame. The summary exposes
//	the outlier the aggregate mean would dilute.
//
// Complexity: O(n log n).
func ExampleInverseMethod_Summarize() {
	im, err := invert.NewInverseMethod()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fits, err := fault.NewConjugateFaults(
		fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantE},
		fault.Plane{Strike: 0, Dip: 30, DipOctant: fault.OctantW},
		fault.MovementNormal, fault.MovementNormal)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	outlier, err := fault.NewConjugateFaults(
		fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantE},
		fault.Plane{Strike: 0, Dip: 60, DipOctant: fault.OctantW},
		fault.MovementInverse, fault.MovementInverse)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	im.AddData(fits, outlier)

	hyp, err := stress.FromRegime(0, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s, err := im.Summarize(fault.Hypothesis{Stress: hyp})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("mean=%.3f max=%.3f\n", s.Mean, s.Max)
	// Output:
	// mean=0.785 max=1.571
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHistogram
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Binning a small per-datum misfit sample for deviation analysis. Two
//	equal-width bins span the sample; the top divider sits just above the
//	maximum, so the worst datum still counts.
//
// Complexity: O(n log n).
func ExampleHistogram() {
	_, counts, err := invert.Histogram([]float64{0.1, 0.2, 0.2, 0.4}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(counts)
	// Output:
	// [3 1]
}
