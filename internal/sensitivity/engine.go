// Package sensitivity quantifies which constants drive which composite score,
// via Spearman rank correlation and partial rank correlation coefficients
// (PRCC). Unlike raw Spearman, PRCC removes the portion of the association
// explainable by the remaining constants, so it is not confounded by the
// composite-score construction.
package sensitivity

import (
	"fmt"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// Score column names accepted as PRCC/Spearman targets
const (
	TargetCoherence = "coherence"
	TargetFertility = "fertility"
)

// SpearmanEntry holds both composite correlations for one constant
type SpearmanEntry struct {
	CoherenceRho float64 `json:"coherence_rho"`
	CoherenceP   float64 `json:"coherence_p"`
	FertilityRho float64 `json:"fertility_rho"`
	FertilityP   float64 `json:"fertility_p"`
}

// Report is the structured sensitivity report handed to export collaborators
type Report struct {
	Spearman      map[string]SpearmanEntry `json:"spearman"`
	PRCCCoherence map[string]float64       `json:"prcc_coherence"`
	PRCCFertility map[string]float64       `json:"prcc_fertility"`
}

// Engine computes sensitivity reports from completed sample tables.
// Stateless apart from its logger; safe for concurrent use.
type Engine struct {
	logger *internal.Logger
}

// NewEngine creates a sensitivity engine
func NewEngine(logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Engine{logger: logger}
}

// Analyze computes Spearman and PRCC for every constant against both
// composite scores.
func (e *Engine) Analyze(table *universe.SampleTable) (*Report, error) {
	keys := universe.ConstantKeys()

	prccCoh, err := e.PRCC(table, TargetCoherence, keys)
	if err != nil {
		return nil, err
	}
	prccFert, err := e.PRCC(table, TargetFertility, keys)
	if err != nil {
		return nil, err
	}

	coherence := table.CoherenceColumn()
	fertility := table.FertilityColumn()

	spearman := make(map[string]SpearmanEntry, len(keys))
	for _, key := range keys {
		col, err := table.ConstantColumn(key)
		if err != nil {
			return nil, err
		}
		rhoC, pC, err := Spearman(col, coherence)
		if err != nil {
			return nil, errors.Wrapf(err, "spearman %s vs coherence", key)
		}
		rhoF, pF, err := Spearman(col, fertility)
		if err != nil {
			return nil, errors.Wrapf(err, "spearman %s vs fertility", key)
		}
		spearman[key.String()] = SpearmanEntry{
			CoherenceRho: rhoC,
			CoherenceP:   pC,
			FertilityRho: rhoF,
			FertilityP:   pF,
		}
	}

	return &Report{
		Spearman:      spearman,
		PRCCCoherence: prccCoh,
		PRCCFertility: prccFert,
	}, nil
}

// PRCC computes the partial rank correlation of each listed constant against
// one target score column. Every constant column and the target are ranked
// independently (average ranks for ties) before residualization.
func (e *Engine) PRCC(table *universe.SampleTable, target string, keys []core.ConstantKey) (map[string]float64, error) {
	if table == nil || table.IsEmpty() {
		return nil, core.NewEmptyInputError("sensitivity engine")
	}
	if table.Len() < 3 {
		return nil, errors.Wrap(core.ErrInsufficientData, "sensitivity analysis needs at least 3 samples")
	}

	y, err := scoreColumn(table, target)
	if err != nil {
		return nil, err
	}

	rankedX := make([][]float64, len(keys))
	for i, key := range keys {
		col, err := table.ConstantColumn(key)
		if err != nil {
			return nil, err
		}
		rankedX[i] = ranks(col)
	}

	values, degenerate := prccFromRanks(rankedX, ranks(y))
	if degenerate > 0 {
		e.logger.Warn("prcc(%s): %d of %d residual regressions were degenerate, used mean-centered fallback", target, degenerate, len(keys))
	}

	out := make(map[string]float64, len(keys))
	for i, key := range keys {
		out[key.String()] = values[i]
	}
	return out, nil
}

// scoreColumn resolves a target score column by name
func scoreColumn(table *universe.SampleTable, target string) ([]float64, error) {
	switch target {
	case TargetCoherence:
		return table.CoherenceColumn(), nil
	case TargetFertility:
		return table.FertilityColumn(), nil
	default:
		return nil, errors.InvalidParameter(fmt.Sprintf("unknown target score column: %q", target))
	}
}
