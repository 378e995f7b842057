// Package sampler draws the Monte Carlo sample table: N independent uniform
// draws per constant from the configured space, each scored on the spot.
package sampler

import (
	"math/rand"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/scoring"
)

// Sampler evaluates the scoring engine over uniform draws from one space
type Sampler struct {
	engine *scoring.Engine
	space  universe.Space
	logger *internal.Logger
}

// NewSampler creates a sampler over a validated constant space
func NewSampler(engine *scoring.Engine, space universe.Space, logger *internal.Logger) (*Sampler, error) {
	if err := space.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid constant space")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Sampler{engine: engine, space: space, logger: logger}, nil
}

// Draw produces a table of n scored samples. The random source must be
// exclusively owned by this call; for a fixed seed the draw sequence, and
// hence the table, is bit-identical across runs.
//
// A sample whose tuple falls outside the valid scoring domain is logged and
// skipped; the draw fails only if every sample does.
func (s *Sampler) Draw(rng *rand.Rand, n int) (*universe.SampleTable, error) {
	if n <= 0 {
		return nil, errors.InvalidParameter("sample count must be positive")
	}
	if rng == nil {
		return nil, errors.InvalidParameter("sampler requires a seeded random source")
	}

	samples := make([]universe.Sample, 0, n)
	failed := 0
	for i := 0; i < n; i++ {
		c := universe.Constants{
			Alpha:  uniform(rng, s.space.Alpha),
			Mu:     uniform(rng, s.space.Mu),
			AlphaS: uniform(rng, s.space.AlphaS),
			G:      uniform(rng, s.space.G),
			GF:     uniform(rng, s.space.GF),
		}
		sample, err := s.engine.Score(c)
		if err != nil {
			// Local to this draw: the batch keeps going.
			s.logger.Warn("sample %d skipped: %v", i, err)
			failed++
			continue
		}
		samples = append(samples, sample)
	}

	if len(samples) == 0 {
		return nil, errors.Wrapf(core.ErrAllSamplesFailed, "all %d draws failed scoring", n)
	}
	if failed > 0 {
		s.logger.Warn("%d of %d draws failed scoring and were skipped", failed, n)
	}
	return &universe.SampleTable{Samples: samples}, nil
}

// uniform draws one value from a closed interval
func uniform(rng *rand.Rand, r universe.Range) float64 {
	return r.Low + rng.Float64()*(r.High-r.Low)
}
