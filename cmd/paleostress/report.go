package main

import (
	"fmt"
	"io"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/invert"
	"github.com/tectolab/paleostress/stress"
)

// writeAxes prints a trend/plunge line per principal axis, in the σ1, σ2,
// σ3 order a structural report uses.
func writeAxes(w io.Writer, ten *stress.Tensor) error {
	var axes = []struct {
		name string
		v    geom.Vec3
	}{
		{"sigma1", ten.S1},
		{"sigma2", ten.S2},
		{"sigma3", ten.S3},
	}
	for _, a := range axes {
		trend, plunge, err := geom.TrendPlungeOf(a.v)
		if err != nil {
			return fmt.Errorf("axis %s: %w", a.name, err)
		}
		if _, err := fmt.Fprintf(w, "%s  trend %6.1f  plunge %4.1f\n",
			a.name, geom.Degrees(trend), geom.Degrees(plunge)); err != nil {
			return err
		}
	}
	return nil
}

// writeSolution prints the inversion report: aggregate misfit, tensor
// shape, and how far the search moved from the starting frame.
func writeSolution(w io.Writer, sol invert.Solution) error {
	if _, err := fmt.Fprintf(w, "misfit        %.6f\n", sol.Misfit); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "stress ratio  %.3f\n", sol.StressRatio); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "rotation from start  %.1f deg\n",
		geom.Degrees(geom.MinRotationAngle(sol.DRot))); err != nil {
		return err
	}
	return writeAxes(w, sol.Tensor)
}
