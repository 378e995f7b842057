package app

import (
	"github.com/montanaflynn/stats"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// ScoreSummary holds descriptive statistics for one score column
type ScoreSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes descriptive statistics over a score column
func Summarize(data []float64) (ScoreSummary, error) {
	if len(data) == 0 {
		return ScoreSummary{}, errors.EmptyInput("cannot summarize an empty column")
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return ScoreSummary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return ScoreSummary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return ScoreSummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return ScoreSummary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return ScoreSummary{}, err
	}

	return ScoreSummary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}, nil
}
