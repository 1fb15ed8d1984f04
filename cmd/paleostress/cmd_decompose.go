package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/stress"
)

// runDecompose reduces a measured tensor to principal orientations and the
// stress ratio.
func runDecompose(cmd *cobra.Command, _ []string) error {
	var s = geom.FromRows(
		geom.Vec3{X: cXX, Y: cXY, Z: cXZ},
		geom.Vec3{X: cXY, Y: cYY, Z: cYZ},
		geom.Vec3{X: cXZ, Y: cYZ, Z: cZZ},
	)

	ten, err := stress.Principal(s)
	if err != nil {
		return err
	}

	var w = cmd.OutOrStdout()
	if _, err := fmt.Fprintf(w, "stress ratio  %.3f\n", ten.R); err != nil {
		return err
	}
	return writeAxes(w, ten)
}
