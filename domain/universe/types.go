package universe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
)

// Constant keys, in the canonical column order used by every consumer
const (
	KeyAlpha  core.ConstantKey = "alpha"
	KeyMu     core.ConstantKey = "mu"
	KeyAlphaS core.ConstantKey = "alpha_s"
	KeyG      core.ConstantKey = "G"
	KeyGF     core.ConstantKey = "G_F"
)

// ConstantKeys returns the five constant keys in canonical order
func ConstantKeys() []core.ConstantKey {
	return []core.ConstantKey{KeyAlpha, KeyMu, KeyAlphaS, KeyG, KeyGF}
}

// Constants is an immutable tuple of the five sampled physical constants
type Constants struct {
	Alpha  float64 `json:"alpha"`   // fine-structure constant
	Mu     float64 `json:"mu"`      // proton/electron mass ratio
	AlphaS float64 `json:"alpha_s"` // strong coupling
	G      float64 `json:"G"`       // gravitational constant
	GF     float64 `json:"G_F"`     // Fermi constant
}

// Value returns the constant addressed by key
func (c Constants) Value(key core.ConstantKey) (float64, error) {
	switch key {
	case KeyAlpha:
		return c.Alpha, nil
	case KeyMu:
		return c.Mu, nil
	case KeyAlphaS:
		return c.AlphaS, nil
	case KeyG:
		return c.G, nil
	case KeyGF:
		return c.GF, nil
	default:
		return 0, fmt.Errorf("unknown constant key: %s", key)
	}
}

// Validate ensures the tuple is inside the mathematically valid domain.
// Alpha and mu feed log and sqrt terms, so non-positive values are rejected
// here rather than surfacing as NaN scores downstream.
func (c Constants) Validate() error {
	if c.Alpha <= 0 {
		return core.NewInvalidParameterError(KeyAlpha, c.Alpha)
	}
	if c.Mu <= 0 {
		return core.NewInvalidParameterError(KeyMu, c.Mu)
	}
	return nil
}

// Sample couples one constant tuple with its two composite scores.
// Samples are immutable once created; both scores are clamped to [0,1].
type Sample struct {
	Constants
	Coherence float64 `json:"coherence"`
	Fertility float64 `json:"fertility"`
}

// SampleTable is the flat result table of one Monte Carlo run.
// It is built once by the sampler and read-only thereafter, so the
// downstream consumers may share it without locking.
type SampleTable struct {
	Samples []Sample
}

// Len returns the number of samples in the table
func (t *SampleTable) Len() int {
	return len(t.Samples)
}

// IsEmpty checks whether the table holds no samples
func (t *SampleTable) IsEmpty() bool {
	return len(t.Samples) == 0
}

// ConstantColumn extracts the raw values of one constant across all samples
func (t *SampleTable) ConstantColumn(key core.ConstantKey) ([]float64, error) {
	col := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		v, err := s.Value(key)
		if err != nil {
			return nil, err
		}
		col[i] = v
	}
	return col, nil
}

// CoherenceColumn extracts the coherence score column
func (t *SampleTable) CoherenceColumn() []float64 {
	col := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		col[i] = s.Coherence
	}
	return col
}

// FertilityColumn extracts the fertility score column
func (t *SampleTable) FertilityColumn() []float64 {
	col := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		col[i] = s.Fertility
	}
	return col
}

// Fingerprint computes a determinism fingerprint over every row.
// Two runs with the same seed and sample count must produce equal fingerprints.
func (t *SampleTable) Fingerprint() core.TableHash {
	var b strings.Builder
	for _, s := range t.Samples {
		for _, v := range []float64{s.Alpha, s.Mu, s.AlphaS, s.G, s.GF, s.Coherence, s.Fertility} {
			b.WriteString(strconv.FormatFloat(v, 'x', -1, 64))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	return core.NewTableHash([]byte(b.String()))
}
