package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/pareto"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sampler"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/scoring"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sensitivity"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sweep"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/ports"
)

// samplingStream names the single RNG stream owned by the sampling step
const samplingStream = "constant-space-mc"

// AnalysisService orchestrates one batch run: sample the constant space,
// then hand the completed read-only table to its three independent
// consumers (Pareto filter, sensitivity engine, weight sweep).
type AnalysisService struct {
	rngPort ports.RNGPort
	logger  *internal.Logger
}

// RunRequest defines the inputs for one deterministic analysis run
type RunRequest struct {
	Samples            int
	Seed               int64
	Tuning             scoring.Tuning
	Space              universe.Space
	SweepPoints        int
	ThresholdPoints    int
	CoherenceThreshold float64
	RunID              core.RunID // optional, generated if empty
}

// RunResult contains the complete output of one analysis run
type RunResult struct {
	RunID            core.RunID            `json:"run_id"`
	Tuning           string                `json:"tuning"`
	Seed             int64                 `json:"seed"`
	Table            *universe.SampleTable `json:"-"`
	Pareto           []universe.Sample     `json:"-"`
	Sensitivity      *sensitivity.Report   `json:"sensitivity"`
	SweepRows        []sweep.Row           `json:"-"`
	Threshold        sweep.ThresholdResult `json:"threshold"`
	CoherenceSummary ScoreSummary          `json:"coherence_summary"`
	FertilitySummary ScoreSummary          `json:"fertility_summary"`
	Fingerprint      core.TableHash        `json:"fingerprint"`
	RuntimeMs        int64                 `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(rngPort ports.RNGPort, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{rngPort: rngPort, logger: logger}
}

// Run executes the full batch: sample, score, filter, analyze, sweep.
// The sample table is built once; the three consumers run concurrently
// against it, which is safe because nothing mutates the table after the
// sampling step finishes.
func (s *AnalysisService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	engine, err := scoring.NewEngine(req.Tuning)
	if err != nil {
		return nil, err
	}
	mc, err := sampler.NewSampler(engine, req.Space, s.logger)
	if err != nil {
		return nil, err
	}

	rng, err := s.rngPort.SeededStream(ctx, samplingStream, req.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sampling RNG stream")
	}

	s.logger.Info("run %s: sampling %d tuples, tuning=%s seed=%d", runID, req.Samples, req.Tuning.Name, req.Seed)
	table, err := mc.Draw(rng, req.Samples)
	if err != nil {
		return nil, errors.Wrap(err, "monte carlo sampling failed")
	}

	result := &RunResult{
		RunID:       runID,
		Tuning:      req.Tuning.Name,
		Seed:        req.Seed,
		Table:       table,
		Fingerprint: table.Fingerprint(),
	}

	sweepPoints := req.SweepPoints
	if sweepPoints <= 0 {
		sweepPoints = sweep.DefaultSweepPoints
	}

	// The consumers share the completed table read-only, so they can run
	// in parallel without any locking discipline.
	var g errgroup.Group
	g.Go(func() error {
		frontier, err := pareto.Frontier(table)
		if err != nil {
			return err
		}
		result.Pareto = frontier
		return nil
	})
	g.Go(func() error {
		report, err := sensitivity.NewEngine(s.logger).Analyze(table)
		if err != nil {
			return err
		}
		result.Sensitivity = report
		return nil
	})
	g.Go(func() error {
		rows, err := sweep.Sweep(table, sweep.Weights(sweepPoints))
		if err != nil {
			return err
		}
		threshold, err := sweep.FindMinWeightForCoherence(table, req.CoherenceThreshold, req.ThresholdPoints)
		if err != nil {
			return err
		}
		result.SweepRows = rows
		result.Threshold = threshold
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "analysis consumers failed")
	}

	result.CoherenceSummary, err = Summarize(table.CoherenceColumn())
	if err != nil {
		return nil, errors.Wrap(err, "coherence summary failed")
	}
	result.FertilitySummary, err = Summarize(table.FertilityColumn())
	if err != nil {
		return nil, errors.Wrap(err, "fertility summary failed")
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("run %s: %d samples, %d on frontier, %d sweep rows in %dms",
		runID, table.Len(), len(result.Pareto), len(result.SweepRows), result.RuntimeMs)
	return result, nil
}
