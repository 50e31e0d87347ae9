// Command ordergen generates synthetic JSON fixtures for exercising the
// order-management API with an HTTP test runner.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ordergen/internal/config"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Shared state built in PersistentPreRunE
	logger   *zap.Logger
	defaults *config.Defaults
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ordergen",
	Short: "Synthetic JSON fixtures for the order-management API",
	Long: `ordergen produces test fixtures for the order-management API.

Two independent generators are available:

  details  Synthesizes a sequence of loading readings (mass, density,
           temperature, flow) accumulating toward a target mass, with
           configurable injection of out-of-range values for negative tests.
  order    Builds a single SAP-style order document with randomly generated
           business identifiers, every field overridable by flag.

Output files are plain JSON (or NDJSON) meant to be used as data files by an
HTTP test runner; ordergen never talks to the API itself.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))

		defaults = config.Default()
		if cfgPath != "" {
			d, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			defaults = d
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newRNG returns the random source for one run: the explicit seed when the
// flag was set, default entropy otherwise.
func newRNG(cmd *cobra.Command, seed int64) *rand.Rand {
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Defaults file (YAML); built-in defaults when unset")

	// Add commands to root
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(orderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
