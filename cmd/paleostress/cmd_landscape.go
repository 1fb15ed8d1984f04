package main

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/invert"
)

// runLandscape maps the regime misfit grid to CSV rows on stdout.
func runLandscape(cmd *cobra.Command, _ []string) error {
	if thetaStepsFlag < 1 || rbStepsFlag < 1 {
		return errors.New("theta-steps and rb-steps must be positive")
	}

	data, err := loadFaultData(dataPath)
	if err != nil {
		return err
	}
	slog.Info("data loaded", slog.String("file", dataPath), slog.Int("count", len(data)))

	im, err := invert.NewInverseMethod()
	if err != nil {
		return err
	}
	im.AddData(data...)

	// Azimuth axis over [0°,180°): principal axes are sign-free, so the
	// upper half-circle repeats the lower one.
	var thetas = make([]float64, thetaStepsFlag)
	for i := range thetas {
		thetas[i] = float64(i) * math.Pi / float64(thetaStepsFlag)
	}
	var rbs = make([]float64, rbStepsFlag+1)
	floats.Span(rbs, 0, 3)

	out, err := im.Landscape(thetas, rbs)
	if err != nil {
		return err
	}

	var w = csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"theta_deg", "rb", "cost"}); err != nil {
		return err
	}
	for i, row := range out {
		for j, cost := range row {
			var rec = []string{
				strconv.FormatFloat(geom.Degrees(thetas[i]), 'f', 2, 64),
				strconv.FormatFloat(rbs[j], 'f', 3, 64),
				strconv.FormatFloat(cost, 'f', 9, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	w.Flush()

	return w.Error()
}
