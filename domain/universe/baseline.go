package universe

import (
	"fmt"
	"math"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
)

// Baseline values for our universe. CODATA-adjacent figures; scoring the
// baseline tuple must reproduce 1.0 on every sub-score.
const (
	BaselineAlpha  = 1.0 / 137.035999084
	BaselineAlphaS = 0.1181
	BaselineG      = 6.67430e-11
	BaselineGF     = 1.1663787e-5

	electronMassKg = 9.1093837015e-31
	protonMassKg   = 1.67262192369e-27

	// BaselineMu is the proton/electron mass ratio
	BaselineMu = protonMassKg / electronMassKg
)

// Baseline returns the constant tuple of our universe
func Baseline() Constants {
	return Constants{
		Alpha:  BaselineAlpha,
		Mu:     BaselineMu,
		AlphaS: BaselineAlphaS,
		G:      BaselineG,
		GF:     BaselineGF,
	}
}

// Range is a closed sampling interval for one constant
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains checks membership, inclusive on both ends
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Validate checks the interval is finite and ordered
func (r Range) Validate() error {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || math.IsInf(r.Low, 0) || math.IsInf(r.High, 0) {
		return fmt.Errorf("range bounds must be finite, got [%g, %g]", r.Low, r.High)
	}
	if r.Low > r.High {
		return fmt.Errorf("range low %g exceeds high %g", r.Low, r.High)
	}
	return nil
}

// scaled builds a range as multiples of a baseline value
func scaled(baseline, lowFactor, highFactor float64) Range {
	return Range{Low: baseline * lowFactor, High: baseline * highFactor}
}

// Space defines the permitted sampling range per constant
type Space struct {
	Alpha  Range `json:"alpha"`
	Mu     Range `json:"mu"`
	AlphaS Range `json:"alpha_s"`
	G      Range `json:"G"`
	GF     Range `json:"G_F"`
}

// Range returns the interval for the constant addressed by key
func (s Space) Range(key core.ConstantKey) (Range, error) {
	switch key {
	case KeyAlpha:
		return s.Alpha, nil
	case KeyMu:
		return s.Mu, nil
	case KeyAlphaS:
		return s.AlphaS, nil
	case KeyG:
		return s.G, nil
	case KeyGF:
		return s.GF, nil
	default:
		return Range{}, fmt.Errorf("unknown constant key: %s", key)
	}
}

// Contains checks that every field of the tuple lies inside its interval
func (s Space) Contains(c Constants) bool {
	return s.Alpha.Contains(c.Alpha) &&
		s.Mu.Contains(c.Mu) &&
		s.AlphaS.Contains(c.AlphaS) &&
		s.G.Contains(c.G) &&
		s.GF.Contains(c.GF)
}

// Validate checks every interval
func (s Space) Validate() error {
	for _, key := range ConstantKeys() {
		r, err := s.Range(key)
		if err != nil {
			return err
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("constant %s: %w", key, err)
		}
	}
	return nil
}

// SpaceOptionA returns the sampling ranges of the option-A analysis:
// modest excursions in the couplings, a wide gravitational band.
func SpaceOptionA() Space {
	return Space{
		Alpha:  scaled(BaselineAlpha, 0.85, 1.15),
		Mu:     scaled(BaselineMu, 0.85, 1.15),
		AlphaS: scaled(BaselineAlphaS, 0.8, 1.2),
		G:      scaled(BaselineG, 0.1, 10.0),
		GF:     scaled(BaselineGF, 0.5, 1.5),
	}
}

// SpaceUpgraded returns the sampling ranges of the upgraded-proxies analysis
func SpaceUpgraded() Space {
	return Space{
		Alpha:  scaled(BaselineAlpha, 0.8, 1.2),
		Mu:     scaled(BaselineMu, 0.85, 1.15),
		AlphaS: scaled(BaselineAlphaS, 0.8, 1.2),
		G:      scaled(BaselineG, 0.2, 5.0),
		GF:     scaled(BaselineGF, 0.6, 1.4),
	}
}
