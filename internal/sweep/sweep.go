// Package sweep traces the coherence/fertility trade-off frontier by
// scanning a scalarization weight over [0,1] and picking, per weight, the
// sample that maximizes the weighted combination of the two scores.
package sweep

import (
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// Preset grid sizes for the sweep and the threshold scan
const (
	DefaultSweepPoints     = 41
	CoarseSweepPoints      = 21
	DefaultThresholdPoints = 101
)

// Row is one record of the weight sweep: the table sample that maximizes
// w*coherence + (1-w)*fertility, tagged with w and the combined value.
type Row struct {
	WCoh float64 `json:"w_coh"`
	universe.Sample
	Combined float64 `json:"combined"`
}

// ThresholdResult reports the smallest scanned weight whose optimum meets a
// coherence threshold. Both fields are nil when no scanned weight qualifies;
// that is an explicit not-found outcome, not a failure.
type ThresholdResult struct {
	WMin      *float64         `json:"w_min"`
	RowAtWMin *universe.Sample `json:"row_at_w_min"`
}

// Found reports whether any scanned weight met the threshold
func (r ThresholdResult) Found() bool {
	return r.WMin != nil
}

// Weights returns count equally spaced weights spanning [0,1] inclusive
func Weights(count int) []float64 {
	if count <= 1 {
		return []float64{0.0}
	}
	out := make([]float64, count)
	step := 1.0 / float64(count-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[count-1] = 1.0
	return out
}

// Sweep emits one Row per weight, in the given (ascending) weight order.
// Ties at a weight break toward the first occurrence in table order.
// Per-constant trajectories along the sweep are not pointwise monotone:
// different samples win at different weights.
func Sweep(table *universe.SampleTable, weights []float64) ([]Row, error) {
	if table == nil || table.IsEmpty() {
		return nil, core.NewEmptyInputError("weight sweep")
	}
	if len(weights) == 0 {
		return nil, errors.InvalidParameter("weight sweep requires at least one weight")
	}
	for _, w := range weights {
		if w < 0 || w > 1 {
			return nil, errors.InvalidParameter("sweep weights must lie in [0,1]")
		}
	}

	rows := make([]Row, 0, len(weights))
	for _, w := range weights {
		best, combined := argmaxCombined(table.Samples, w)
		rows = append(rows, Row{WCoh: w, Sample: best, Combined: combined})
	}
	return rows, nil
}

// FindMinWeightForCoherence scans points equally spaced weights and returns
// the smallest one whose weight-optimal sample reaches the coherence
// threshold. Grid points are never interpolated; an unreachable threshold
// yields the explicit not-found result.
func FindMinWeightForCoherence(table *universe.SampleTable, threshold float64, points int) (ThresholdResult, error) {
	if table == nil || table.IsEmpty() {
		return ThresholdResult{}, core.NewEmptyInputError("threshold search")
	}
	if points <= 0 {
		points = DefaultThresholdPoints
	}

	for _, w := range Weights(points) {
		best, _ := argmaxCombined(table.Samples, w)
		if best.Coherence >= threshold {
			w := w
			best := best
			return ThresholdResult{WMin: &w, RowAtWMin: &best}, nil
		}
	}
	return ThresholdResult{}, nil
}

// argmaxCombined selects the sample maximizing the scalarized objective
func argmaxCombined(samples []universe.Sample, w float64) (universe.Sample, float64) {
	best := samples[0]
	bestVal := w*best.Coherence + (1-w)*best.Fertility
	for _, s := range samples[1:] {
		v := w*s.Coherence + (1-w)*s.Fertility
		if v > bestVal {
			best = s
			bestVal = v
		}
	}
	return best, bestVal
}
