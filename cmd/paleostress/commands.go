package main

import (
	"github.com/spf13/cobra"
)

var (
	dataPath    string
	configPath  string
	workersFlag int
	seedFlag    int64
	skipInvFlag bool

	thetaStepsFlag int
	rbStepsFlag    int

	cXX, cXY, cXZ, cYY, cYZ, cZZ float64

	rootCmd = &cobra.Command{
		Use:   "paleostress",
		Short: "Invert fault-slip and microstructure data for a reduced stress tensor",
		Long: `paleostress estimates the reduced stress tensor, principal directions
plus the stress ratio R=(σ2−σ3)/(σ1−σ3), that best explains a set of
brittle structures measured in the field. Compression is negative; all
azimuths are compass degrees clockwise from North.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	invertCmd = &cobra.Command{
		Use:   "invert",
		Short: "Run a stress inversion over a CSV fault data set",
		Long: `Load fault data from CSV, search for the reduced stress tensor that
minimizes the mean per-datum misfit, and print the solution.

The data file needs a header row; column names are case-insensitive and
empty cells mean "not measured":

  kind                          structure type, e.g. StriatedPlane,
                                ExtensionFracture, DilationBand,
                                CompactionBand, CrystalFibersInVein,
                                StyloliteTeeth, ConjugateFaults,
                                ConjugateDilatantShearBands,
                                NeoformedStriatedPlane,
                                StriatedCompactionalShearBand
  strike,dip,dip_octant         primary plane: compass strike and dip in
                                degrees, dip direction octant (N,NE,...,NW)
  rake,strike_end               striation by rake (degrees) from the given
                                strike end
  trend                         striation by compass trend instead of rake
  movement                      sense of movement: N, I, RL, LL or a
                                combination such as N_RL
  line_trend,line_plunge        lineation axis in degrees (crystal fibers,
                                stylolite teeth)
  strike2,dip2,dip_octant2,movement2
                                second plane of a conjugate pair

The YAML run file sets the starting hypothesis and the search budget:

  theta: 30          # initial SHmax azimuth, degrees CW from North
  rb: 0.5            # initial regime parameter R' in [0,3]
  rotAngleHalfIntervalDeg: 180
  stressRatioHalfInterval: 0.5
  trials: 10000
  seed: 0            # 0 seeds from the clock
  workers: 1
  maxData: 0         # >0 keeps only the n best data per evaluation
  search: montecarlo # or grid
  axisCount: 100     # grid: Fibonacci axis count parameter
  angleSteps: 8      # grid: rotation magnitude steps per axis
  ratioSteps: 5      # grid: stress ratio steps each side

Any field left out keeps its default.`,
		RunE: runInvert,
	}

	landscapeCmd = &cobra.Command{
		Use:   "landscape",
		Short: "Map the misfit over the Andersonian regime grid to CSV",
		Long: `Evaluate the aggregate misfit of the data set on a grid of Andersonian
regime tensors, SHmax azimuth θ against the regime parameter R' in
[0,3], and write "theta_deg,rb,cost" rows to stdout. Plotting the grid
shows how well-constrained (or multimodal) the inversion problem is
before any search runs.`,
		RunE: runLandscape,
	}

	decomposeCmd = &cobra.Command{
		Use:   "decompose",
		Short: "Print principal axes and stress ratio of a stress tensor",
		Long: `Decompose a symmetric stress tensor, given by its six independent
components, into principal axis orientations (trend/plunge, degrees) and
the stress ratio R=(σ2−σ3)/(σ1−σ3). Compression is negative; the unit
does not matter, only orientation and shape survive the reduction.`,
		RunE: runDecompose,
	}
)

func init() {
	invertCmd.Flags().StringVar(&dataPath, "data", "", "CSV fault data file (required)")
	invertCmd.Flags().StringVar(&configPath, "config", "", "YAML run file; built-in defaults apply when omitted")
	invertCmd.Flags().IntVar(&workersFlag, "workers", 0, "override the run file's worker count")
	invertCmd.Flags().Int64Var(&seedFlag, "seed", 0, "override the run file's random seed")
	invertCmd.Flags().BoolVar(&skipInvFlag, "skip-invariant-failures", false,
		"drop data whose invariants fail under a trial tensor instead of aborting")
	_ = invertCmd.MarkFlagRequired("data")

	landscapeCmd.Flags().StringVar(&dataPath, "data", "", "CSV fault data file (required)")
	landscapeCmd.Flags().IntVar(&thetaStepsFlag, "theta-steps", 36, "azimuth nodes over [0°,180°)")
	landscapeCmd.Flags().IntVar(&rbStepsFlag, "rb-steps", 30, "regime parameter steps over [0,3]")
	_ = landscapeCmd.MarkFlagRequired("data")

	decomposeCmd.Flags().Float64Var(&cXX, "xx", 0, "σxx component")
	decomposeCmd.Flags().Float64Var(&cXY, "xy", 0, "σxy component")
	decomposeCmd.Flags().Float64Var(&cXZ, "xz", 0, "σxz component")
	decomposeCmd.Flags().Float64Var(&cYY, "yy", 0, "σyy component")
	decomposeCmd.Flags().Float64Var(&cYZ, "yz", 0, "σyz component")
	decomposeCmd.Flags().Float64Var(&cZZ, "zz", 0, "σzz component")

	rootCmd.AddCommand(invertCmd, landscapeCmd, decomposeCmd)
}
