// Command paleostress inverts brittle-structure field data (striated
// faults, fracture and band poles, lineations, conjugate systems) for the
// reduced stress tensor that best explains them.
//
// Usage:
//
//	paleostress invert --data faults.csv --config run.yaml
//	paleostress invert --data faults.csv --seed 42 --workers 4
//	paleostress landscape --data faults.csv --theta-steps 36 --rb-steps 30 > grid.csv
//	paleostress decompose --xx -1 --yy -0.25 --zz 0
//
// Data and progress go through distinct channels: results print to stdout
// (the landscape as CSV), logs to stderr.
package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
