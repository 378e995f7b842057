// Package testkit provides fixtures shared by the package-level tests:
// deterministic random sources and synthetic sample tables with known
// structure.
package testkit

import (
	"math/rand"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
)

// NewRand returns a deterministic random source for tests
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TableWithScores builds a table of baseline tuples carrying the given
// (coherence, fertility) pairs. Useful for Pareto and sweep tests where
// only the scores matter.
func TableWithScores(scores [][2]float64) *universe.SampleTable {
	samples := make([]universe.Sample, len(scores))
	for i, pair := range scores {
		samples[i] = universe.Sample{
			Constants: universe.Baseline(),
			Coherence: pair[0],
			Fertility: pair[1],
		}
	}
	return &universe.SampleTable{Samples: samples}
}

// SyntheticDependencyTable builds a table whose coherence depends linearly
// on alpha alone while fertility is independent noise. PRCC for alpha vs
// coherence should approach 1 on such a table; the other constants should
// stay near 0.
func SyntheticDependencyTable(n int, seed int64) *universe.SampleTable {
	rng := NewRand(seed)
	space := universe.SpaceOptionA()

	samples := make([]universe.Sample, n)
	for i := range samples {
		c := universe.Constants{
			Alpha:  uniform(rng, space.Alpha),
			Mu:     uniform(rng, space.Mu),
			AlphaS: uniform(rng, space.AlphaS),
			G:      uniform(rng, space.G),
			GF:     uniform(rng, space.GF),
		}
		coherence := (c.Alpha - space.Alpha.Low) / (space.Alpha.High - space.Alpha.Low)
		samples[i] = universe.Sample{
			Constants: c,
			Coherence: coherence,
			Fertility: rng.Float64(),
		}
	}
	return &universe.SampleTable{Samples: samples}
}

func uniform(rng *rand.Rand, r universe.Range) float64 {
	return r.Low + rng.Float64()*(r.High-r.Low)
}
