package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/adapters/export"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/adapters/rng"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/app"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/config"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/scoring"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "sfh-cli",
		Short: "Coherence/fertility analysis over a sampled constant space",
	}
	rootCmd.AddCommand(newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		samples   int
		seed      int64
		tuning    string
		sweepPts  int
		threshold float64
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full Monte Carlo analysis and export the results",
		Long: `Sample the five-constant space, score coherence and fertility per draw,
extract the Pareto frontier, compute Spearman/PRCC sensitivities and trace
the weight-sweep trade-off, then export tables and reports.

Example: sfh-cli run --samples 8000 --seed 3031 --tuning upgraded --out out/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags override environment configuration when set.
			if cmd.Flags().Changed("samples") {
				cfg.Analysis.Samples = samples
			}
			if cmd.Flags().Changed("seed") {
				cfg.Analysis.Seed = seed
			}
			if cmd.Flags().Changed("tuning") {
				cfg.Analysis.Tuning = tuning
			}
			if cmd.Flags().Changed("sweep-points") {
				cfg.Analysis.SweepPoints = sweepPts
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Analysis.CoherenceThreshold = threshold
			}
			if cmd.Flags().Changed("out") {
				cfg.Export.OutDir = outDir
			}
			return runAnalysis(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 6000, "Monte Carlo sample count")
	cmd.Flags().Int64Var(&seed, "seed", 2025, "Random seed for deterministic sampling")
	cmd.Flags().StringVar(&tuning, "tuning", "option-a", "Scoring tuning preset (option-a or upgraded)")
	cmd.Flags().IntVar(&sweepPts, "sweep-points", 41, "Number of weight-sweep grid points")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.8, "Coherence threshold for the minimum-weight search")
	cmd.Flags().StringVar(&outDir, "out", "out", "Output directory for tables and reports")

	return cmd
}

func runAnalysis(ctx context.Context, cfg *config.Config) error {
	logger := internal.NewDefaultLogger()

	tuning, err := scoring.PresetByName(cfg.Analysis.Tuning)
	if err != nil {
		return err
	}
	space := spaceForTuning(tuning)

	service := app.NewAnalysisService(rng.NewDeterministicRNG(), logger)
	result, err := service.Run(ctx, app.RunRequest{
		Samples:            cfg.Analysis.Samples,
		Seed:               cfg.Analysis.Seed,
		Tuning:             tuning,
		Space:              space,
		SweepPoints:        cfg.Analysis.SweepPoints,
		ThresholdPoints:    cfg.Analysis.ThresholdPoints,
		CoherenceThreshold: cfg.Analysis.CoherenceThreshold,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Export.OutDir, 0o755); err != nil {
		return err
	}

	tables := export.NewTableWriter(cfg.Export.OutDir, logger)
	if err := tables.WriteSamples(result.Table, "samples.csv"); err != nil {
		return err
	}
	if err := tables.WritePareto(result.Pareto, "pareto.csv"); err != nil {
		return err
	}
	if err := tables.WriteSweep(result.SweepRows, "weight_sweep.csv"); err != nil {
		return err
	}

	reports := export.NewReportWriter(cfg.Export.OutDir, logger)
	if err := reports.WriteSensitivity(result.Sensitivity, "sensitivity_report.json"); err != nil {
		return err
	}
	if err := reports.WriteThreshold(result.Threshold, "wmin_result.json"); err != nil {
		return err
	}
	if cfg.Export.WriteSummary {
		if err := reports.WriteSummary(result, "summary.md", "summary.html"); err != nil {
			return err
		}
	}

	if cfg.Export.WriteWorkbook {
		workbook := export.NewWorkbookWriter(cfg.Export.OutDir, logger)
		if err := workbook.Write(result.Table, result.Pareto, result.SweepRows, "analysis.xlsx"); err != nil {
			return err
		}
	}

	logger.Info("run %s complete: results written to %s", result.RunID, cfg.Export.OutDir)
	return nil
}

// spaceForTuning pairs each coefficient preset with its historical
// sampling ranges.
func spaceForTuning(tuning scoring.Tuning) universe.Space {
	if tuning.Name == "upgraded" {
		return universe.SpaceUpgraded()
	}
	return universe.SpaceOptionA()
}
