package scoring

import (
	"fmt"
	"math"
)

// CoherenceWeights defines the convex combination behind the coherence score.
// All weights must sum to 1.0 (±0.001 tolerance).
type CoherenceWeights struct {
	Atomic        float64 `json:"atomic"`
	Gravitational float64 `json:"gravitational"`
	TripleAlpha   float64 `json:"triple_alpha"`
}

// Sum returns the total of all weights
func (w CoherenceWeights) Sum() float64 {
	return w.Atomic + w.Gravitational + w.TripleAlpha
}

// Validate checks that weights sum to 1.0 and none are negative
func (w CoherenceWeights) Validate() error {
	return validateWeights(w.Sum(), []float64{w.Atomic, w.Gravitational, w.TripleAlpha})
}

// FertilityWeights defines the convex combination behind the fertility score.
// All weights must sum to 1.0 (±0.001 tolerance).
type FertilityWeights struct {
	TripleAlpha float64 `json:"triple_alpha"`
	Deuteron    float64 `json:"deuteron"`
	PPFusion    float64 `json:"pp_fusion"`
	BBN         float64 `json:"bbn"`
}

// Sum returns the total of all weights
func (w FertilityWeights) Sum() float64 {
	return w.TripleAlpha + w.Deuteron + w.PPFusion + w.BBN
}

// Validate checks that weights sum to 1.0 and none are negative
func (w FertilityWeights) Validate() error {
	return validateWeights(w.Sum(), []float64{w.TripleAlpha, w.Deuteron, w.PPFusion, w.BBN})
}

func validateWeights(sum float64, weights []float64) error {
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", sum)
	}
	for _, v := range weights {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// Tuning is the configuration record that parameterizes the scoring engine:
// sensitivity coefficients, Gaussian window widths and composite weights.
// Two named presets carry the coefficient sets of the two historical analyses.
type Tuning struct {
	Name string `json:"name"`

	// Atomic coherence. With AtomicLogRatio the penalty acts on the log of
	// the binding-energy and Bohr-radius ratios (two-term form); without it,
	// a single Gaussian on the plain binding-energy ratio deviation.
	AtomicLogRatio     bool    `json:"atomic_log_ratio"`
	AtomicBindingSigma float64 `json:"atomic_binding_sigma"`
	AtomicRadiusSigma  float64 `json:"atomic_radius_sigma"`
	AtomicBindingW     float64 `json:"atomic_binding_weight"`
	AtomicRadiusW      float64 `json:"atomic_radius_weight"`

	// Triple-alpha resonance: linearized sensitivity to alpha and alpha_s
	TripleAlphaCoefAlpha  float64 `json:"triple_alpha_coef_alpha"`
	TripleAlphaCoefStrong float64 `json:"triple_alpha_coef_strong"`
	TripleAlphaSigma      float64 `json:"triple_alpha_sigma"`

	// Deuteron binding: linearized sensitivity to alpha_s and mu
	DeuteronCoefStrong float64 `json:"deuteron_coef_strong"`
	DeuteronCoefMass   float64 `json:"deuteron_coef_mass"`
	DeuteronSigma      float64 `json:"deuteron_sigma"`

	// pp fusion: log-Gaussian width on the alpha*sqrt(mu) tunneling proxy
	PPFusionSigma float64 `json:"pp_fusion_sigma"`

	// BBN yield: per-parameter tolerances for G and G_F
	BBNGravTol  float64 `json:"bbn_grav_tol"`
	BBNFermiTol float64 `json:"bbn_fermi_tol"`

	// Gravitational coherence tolerance on the fractional G deviation
	GravTol float64 `json:"grav_tol"`

	Coherence CoherenceWeights `json:"coherence_weights"`
	Fertility FertilityWeights `json:"fertility_weights"`
}

// Validate checks widths, tolerances and composite weights
func (t Tuning) Validate() error {
	widths := map[string]float64{
		"atomic_binding_sigma": t.AtomicBindingSigma,
		"triple_alpha_sigma":   t.TripleAlphaSigma,
		"deuteron_sigma":       t.DeuteronSigma,
		"pp_fusion_sigma":      t.PPFusionSigma,
		"bbn_grav_tol":         t.BBNGravTol,
		"bbn_fermi_tol":        t.BBNFermiTol,
		"grav_tol":             t.GravTol,
	}
	for name, w := range widths {
		if w <= 0 {
			return fmt.Errorf("tuning %q: %s must be positive, got %g", t.Name, name, w)
		}
	}
	if t.AtomicLogRatio && t.AtomicRadiusSigma <= 0 {
		return fmt.Errorf("tuning %q: atomic_radius_sigma must be positive for the two-term atomic form", t.Name)
	}
	if err := validateWeights(t.AtomicBindingW+t.AtomicRadiusW, []float64{t.AtomicBindingW, t.AtomicRadiusW}); err != nil {
		return fmt.Errorf("tuning %q atomic weights: %w", t.Name, err)
	}
	if err := t.Coherence.Validate(); err != nil {
		return fmt.Errorf("tuning %q coherence weights: %w", t.Name, err)
	}
	if err := t.Fertility.Validate(); err != nil {
		return fmt.Errorf("tuning %q fertility weights: %w", t.Name, err)
	}
	return nil
}

// PresetOptionA returns the option-A coefficient set
func PresetOptionA() Tuning {
	return Tuning{
		Name:                  "option-a",
		AtomicLogRatio:        false,
		AtomicBindingSigma:    0.15,
		AtomicBindingW:        1.0,
		AtomicRadiusW:         0.0,
		TripleAlphaCoefAlpha:  2.0,
		TripleAlphaCoefStrong: 1.0,
		TripleAlphaSigma:      0.02,
		DeuteronCoefStrong:    1.5,
		DeuteronCoefMass:      2.0,
		DeuteronSigma:         0.05,
		PPFusionSigma:         0.10,
		BBNGravTol:            0.2,
		BBNFermiTol:           0.1,
		GravTol:               0.25,
		Coherence:             CoherenceWeights{Atomic: 0.6, Gravitational: 0.3, TripleAlpha: 0.1},
		Fertility:             FertilityWeights{TripleAlpha: 0.45, Deuteron: 0.25, PPFusion: 0.2, BBN: 0.1},
	}
}

// PresetUpgraded returns the upgraded-proxies coefficient set: two-term
// log-Gaussian atomic score, tighter pp and BBN windows, wider grav band.
func PresetUpgraded() Tuning {
	return Tuning{
		Name:                  "upgraded",
		AtomicLogRatio:        true,
		AtomicBindingSigma:    0.15,
		AtomicRadiusSigma:     0.20,
		AtomicBindingW:        0.6,
		AtomicRadiusW:         0.4,
		TripleAlphaCoefAlpha:  2.0,
		TripleAlphaCoefStrong: 1.0,
		TripleAlphaSigma:      0.02,
		DeuteronCoefStrong:    1.5,
		DeuteronCoefMass:      2.0,
		DeuteronSigma:         0.05,
		PPFusionSigma:         0.08,
		BBNGravTol:            0.15,
		BBNFermiTol:           0.08,
		GravTol:               0.5,
		Coherence:             CoherenceWeights{Atomic: 0.65, Gravitational: 0.25, TripleAlpha: 0.10},
		Fertility:             FertilityWeights{TripleAlpha: 0.50, Deuteron: 0.20, PPFusion: 0.20, BBN: 0.10},
	}
}

// PresetByName resolves a tuning preset from its configured name
func PresetByName(name string) (Tuning, error) {
	switch name {
	case "option-a", "":
		return PresetOptionA(), nil
	case "upgraded":
		return PresetUpgraded(), nil
	default:
		return Tuning{}, fmt.Errorf("unknown tuning preset: %q (want option-a or upgraded)", name)
	}
}
