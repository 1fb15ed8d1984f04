package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tectolab/paleostress/geom"
	"github.com/tectolab/paleostress/invert"
	"github.com/tectolab/paleostress/stress"
)

// RunConfig mirrors the YAML run file of the invert command. Zero
// values mean "use the default", so a partial file works; see
// defaultRunConfig for the fallbacks.
type RunConfig struct {
	// Theta is the starting SHmax azimuth, degrees clockwise from North.
	Theta float64 `yaml:"theta"`
	// Rb is the starting regime parameter R' in [0,3]: 0-1 normal, 1-2
	// strike-slip, 2-3 reverse faulting.
	Rb float64 `yaml:"rb"`

	// RotAngleHalfIntervalDeg bounds the rotation magnitude sampled
	// around the starting frame, degrees in (0, 180].
	RotAngleHalfIntervalDeg float64 `yaml:"rotAngleHalfIntervalDeg"`
	// StressRatioHalfInterval bounds the ratio window around the
	// starting R, in (0, 1].
	StressRatioHalfInterval float64 `yaml:"stressRatioHalfInterval"`

	Trials  int   `yaml:"trials"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	MaxData int   `yaml:"maxData"`

	// Search picks the strategy: "montecarlo" (default) or "grid".
	Search string `yaml:"search"`

	// Grid deltas, used when Search is "grid".
	AxisCount  int `yaml:"axisCount"`
	AngleSteps int `yaml:"angleSteps"`
	RatioSteps int `yaml:"ratioSteps"`
}

// defaultRunConfig starts from the library defaults and a mid-range
// normal-regime hypothesis.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Theta:                   0,
		Rb:                      0.5,
		RotAngleHalfIntervalDeg: 180,
		StressRatioHalfInterval: invert.DefaultRatioHalfInterval,
		Trials:                  invert.DefaultTrials,
		Workers:                 invert.DefaultWorkers,
		Search:                  "montecarlo",
		AxisCount:               invert.DefaultAxisCount,
		AngleSteps:              invert.DefaultAngleSteps,
		RatioSteps:              invert.DefaultRatioSteps,
	}
}

// loadRunConfig reads the YAML run file over the defaults. An empty path
// returns the defaults unchanged.
func loadRunConfig(path string) (RunConfig, error) {
	var cfg = defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read run config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse run config %s: %w", path, err)
	}
	return cfg, nil
}

// startTensor builds the starting hypothesis from the configured regime.
func (cfg RunConfig) startTensor() (*stress.Tensor, error) {
	return stress.FromRegime(geom.Radians(cfg.Theta), cfg.Rb)
}

// searchMethod builds the configured strategy. Budget and window
// validation happens in the constructors.
func (cfg RunConfig) searchMethod() (invert.SearchMethod, error) {
	var common = []invert.Option{
		invert.WithRotHalfInterval(geom.Radians(cfg.RotAngleHalfIntervalDeg)),
		invert.WithRatioHalfInterval(cfg.StressRatioHalfInterval),
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Search)) {
	case "", "montecarlo":
		return invert.NewMonteCarlo(append(common,
			invert.WithTrials(cfg.Trials),
			invert.WithSeed(cfg.Seed),
			invert.WithWorkers(cfg.Workers),
		)...)
	case "grid":
		return invert.NewGridSearch(append(common,
			invert.WithAxisCount(cfg.AxisCount),
			invert.WithAngleSteps(cfg.AngleSteps),
			invert.WithRatioSteps(cfg.RatioSteps),
		)...)
	default:
		return nil, fmt.Errorf("unknown search method %q (want montecarlo or grid)", cfg.Search)
	}
}

// methodOptions maps the aggregation fields onto inverse-method options.
func (cfg RunConfig) methodOptions(skipInvariant bool) []invert.Option {
	var opts []invert.Option
	if cfg.MaxData != 0 {
		opts = append(opts, invert.WithMaxData(cfg.MaxData))
	}
	if skipInvariant {
		opts = append(opts, invert.WithSkipInvariantFailures())
	}
	return opts
}
