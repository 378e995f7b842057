// Package pareto extracts the non-dominated subset of a sample table under
// "higher is better" on both composite scores.
package pareto

import (
	"sort"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
)

// Frontier returns the Pareto-optimal samples, sorted by descending
// coherence (stable order, so equal-coherence samples keep table order).
// A zero-sample table is an explicit empty-input error, not an empty set.
//
// O(n^2) pairwise dominance check — fine at the 5000-8000 sample counts
// these runs use.
func Frontier(table *universe.SampleTable) ([]universe.Sample, error) {
	if table == nil || table.IsEmpty() {
		return nil, core.NewEmptyInputError("pareto filter")
	}

	samples := table.Samples
	frontier := make([]universe.Sample, 0)
	for i := range samples {
		dominated := false
		for j := range samples {
			if i == j {
				continue
			}
			if dominates(samples[j], samples[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, samples[i])
		}
	}

	sort.SliceStable(frontier, func(a, b int) bool {
		return frontier[a].Coherence > frontier[b].Coherence
	})
	return frontier, nil
}

// dominates returns true if a dominates b: a is >= b on both scores and
// strictly better on at least one. Exact ties on both axes dominate in
// neither direction, so tied samples all stay on the frontier.
func dominates(a, b universe.Sample) bool {
	if a.Coherence < b.Coherence || a.Fertility < b.Fertility {
		return false
	}
	return a.Coherence > b.Coherence || a.Fertility > b.Fertility
}
