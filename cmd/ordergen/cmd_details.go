package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ordergen/internal/fixture"
	"ordergen/internal/measure"
)

// Details flags
var (
	detIterations     int
	detOrderID        int
	detFinalMass      float64
	detStartMass      float64
	detTempThreshold  float64
	detOutput         string
	detFormat         string
	detProbBadCaudal  float64
	detProbBadMass    float64
	detProbBadDensity float64
	detProbHighTemp   float64
	detSeed           int64
	detStats          bool
)

// detailsCmd generates the loading-detail sequence fixture
var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Generate a sequence of loading readings for an order",
	Long: `Synthesizes N readings that accumulate mass from the start value to the
final target, each reading carrying density, temperature and flow. The four
probability flags independently inject out-of-range values per field for
negative testing; the probabilities are not range-checked, values outside
[0,1] are the caller's problem.

The last record always reports the final mass regardless of corruption, so
the generated load terminates at its declared target.

Example:
  ordergen details -n 200 --order-id 42 --final-mass 1200 --temp-threshold 45 -o detalles.json`,
	RunE: runDetails,
}

func init() {
	f := detailsCmd.Flags()
	f.IntVarP(&detIterations, "iterations", "n", 100, "Number of readings to generate")
	f.IntVar(&detOrderID, "order-id", 25, "Order ID stamped on every reading")
	f.Float64Var(&detFinalMass, "final-mass", 2500, "Accumulated mass target at the last reading (kg)")
	f.Float64Var(&detStartMass, "start-mass", 0, "Initial mass (kg)")
	f.Float64Var(&detTempThreshold, "temp-threshold", 30, "Temperature alarm threshold (°C)")
	f.StringVarP(&detOutput, "output", "o", "detalles.json", "Output file path")
	f.StringVar(&detFormat, "format", "json", "Output format: json (array) or ndjson (one object per line)")
	f.Float64Var(&detProbBadCaudal, "prob-bad-caudal", 0.03, "Per-reading probability of flow <= 0")
	f.Float64Var(&detProbBadMass, "prob-bad-mass", 0.02, "Per-reading probability of an invalid (<=0 or decreasing) mass")
	f.Float64Var(&detProbBadDensity, "prob-bad-density", 0.02, "Per-reading probability of density outside [0,1]")
	f.Float64Var(&detProbHighTemp, "prob-high-temp", 0.05, "Per-reading probability of exceeding the temperature threshold")
	f.Int64Var(&detSeed, "seed", 0, "Random seed; default entropy when unset")
	f.BoolVar(&detStats, "stats", false, "Print summary statistics after generation")
}

func runDetails(cmd *cobra.Command, args []string) error {
	// Configured defaults, overridden by whichever flags were set.
	d := defaults.Details
	f := cmd.Flags()
	if f.Changed("iterations") {
		d.Iterations = detIterations
	}
	if f.Changed("order-id") {
		d.OrderID = detOrderID
	}
	if f.Changed("final-mass") {
		d.FinalMass = detFinalMass
	}
	if f.Changed("start-mass") {
		d.StartMass = detStartMass
	}
	if f.Changed("temp-threshold") {
		d.TempThreshold = detTempThreshold
	}
	if f.Changed("output") {
		d.Output = detOutput
	}
	if f.Changed("format") {
		d.Format = detFormat
	}
	if f.Changed("prob-bad-caudal") {
		d.ProbBadCaudal = detProbBadCaudal
	}
	if f.Changed("prob-bad-mass") {
		d.ProbBadMass = detProbBadMass
	}
	if f.Changed("prob-bad-density") {
		d.ProbBadDensity = detProbBadDensity
	}
	if f.Changed("prob-high-temp") {
		d.ProbHighTemp = detProbHighTemp
	}

	p := measure.Params{
		Iterations:     d.Iterations,
		OrderID:        d.OrderID,
		StartMass:      d.StartMass,
		FinalMass:      d.FinalMass,
		TempThreshold:  d.TempThreshold,
		ProbBadFlow:    d.ProbBadCaudal,
		ProbBadMass:    d.ProbBadMass,
		ProbBadDensity: d.ProbBadDensity,
		ProbHighTemp:   d.ProbHighTemp,
	}

	logger.Debug("generating readings",
		zap.Int("iterations", p.Iterations),
		zap.Int("order_id", p.OrderID),
		zap.Float64("start_mass", p.StartMass),
		zap.Float64("final_mass", p.FinalMass),
		zap.String("format", d.Format))

	readings := measure.NewGenerator(p, newRNG(cmd, detSeed)).Build()

	switch d.Format {
	case "json":
		if err := fixture.WriteIndented(d.Output, readings, 2); err != nil {
			return err
		}
	case "ndjson":
		if err := fixture.WriteLines(d.Output, readings); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json or ndjson)", d.Format)
	}

	s := measure.Summarize(readings)
	logger.Info("readings generated",
		zap.Int("records", s.Records),
		zap.String("path", d.Output),
		zap.Float64("final_mass", s.FinalMass),
		zap.Float64("mean_flow", s.MeanFlow))

	if detStats {
		fmt.Printf("flow kg/h: mean %.3f, stddev %.3f, min %.3f, max %.3f\n",
			s.MeanFlow, s.StdDevFlow, s.MinFlow, s.MaxFlow)
		fmt.Printf("density: mean %.6f; temperature °C: mean %.3f, max %.3f\n",
			s.MeanDensity, s.MeanTemperature, s.MaxTemperature)
	}

	fmt.Printf("Generated %d records in %s\n", len(readings), d.Output)
	return nil
}
