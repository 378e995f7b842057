// Package scoring maps a constant tuple to two bounded composite scores:
// coherence (stability of atomic and stellar structure) and fertility
// (efficiency of nucleosynthesis pathways). Every sub-score is a Gaussian or
// log-Gaussian penalty of a deviation from baseline, clamped to [0,1].
package scoring

import (
	"math"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// SubScores holds the five physical-process sub-scores plus the
// gravitational term, each already clamped to [0,1].
type SubScores struct {
	Atomic        float64 `json:"atomic"`
	TripleAlpha   float64 `json:"triple_alpha"`
	Deuteron      float64 `json:"deuteron"`
	PPFusion      float64 `json:"pp_fusion"`
	BBN           float64 `json:"bbn"`
	Gravitational float64 `json:"gravitational"`
}

// Engine evaluates the composite scores for one constant tuple.
// Pure and deterministic; safe for concurrent use.
type Engine struct {
	tuning   Tuning
	baseline universe.Constants
}

// NewEngine creates a scoring engine from a validated tuning
func NewEngine(tuning Tuning) (*Engine, error) {
	if err := tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scoring tuning")
	}
	return &Engine{tuning: tuning, baseline: universe.Baseline()}, nil
}

// Tuning returns the engine's configuration record
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Score evaluates both composites for one tuple. A tuple with non-positive
// alpha or mu fails with an invalid-parameter error instead of producing NaN.
func (e *Engine) Score(c universe.Constants) (universe.Sample, error) {
	sub, err := e.SubScores(c)
	if err != nil {
		return universe.Sample{}, err
	}

	w := e.tuning.Coherence
	v := e.tuning.Fertility

	// The final clamp enforces the [0,1] invariant even if a future tuning
	// relaxes the convex-weight constraint.
	coherence := clamp01(w.Atomic*sub.Atomic + w.Gravitational*sub.Gravitational + w.TripleAlpha*sub.TripleAlpha)
	fertility := clamp01(v.TripleAlpha*sub.TripleAlpha + v.Deuteron*sub.Deuteron + v.PPFusion*sub.PPFusion + v.BBN*sub.BBN)

	return universe.Sample{Constants: c, Coherence: coherence, Fertility: fertility}, nil
}

// SubScores evaluates the individual process scores for one tuple
func (e *Engine) SubScores(c universe.Constants) (SubScores, error) {
	if err := c.Validate(); err != nil {
		return SubScores{}, err
	}
	return SubScores{
		Atomic:        e.atomicScore(c),
		TripleAlpha:   e.tripleAlphaScore(c),
		Deuteron:      e.deuteronScore(c),
		PPFusion:      e.ppFusionScore(c),
		BBN:           e.bbnScore(c),
		Gravitational: e.gravScore(c),
	}, nil
}

// atomicScore penalizes deviation of the hydrogen binding energy
// (proportional to alpha^2) from baseline. The two-term form adds a
// Bohr-radius ratio penalty in log space.
func (e *Engine) atomicScore(c universe.Constants) float64 {
	t := e.tuning
	bindRatio := (c.Alpha / e.baseline.Alpha) * (c.Alpha / e.baseline.Alpha)

	if !t.AtomicLogRatio {
		x := (bindRatio - 1.0) / t.AtomicBindingSigma
		return clamp01(math.Exp(-x * x))
	}

	// Bohr radius a0 ~ 1/alpha at fixed electron mass
	radiusRatio := e.baseline.Alpha / c.Alpha
	sE := math.Exp(-0.5 * sq(math.Log(bindRatio)/t.AtomicBindingSigma))
	sA := math.Exp(-0.5 * sq(math.Log(radiusRatio)/t.AtomicRadiusSigma))
	return clamp01(t.AtomicBindingW*sE + t.AtomicRadiusW*sA)
}

// tripleAlphaScore penalizes the linearized Hoyle-state resonance shift.
// Yield drops rapidly once the shift exceeds a few percent.
func (e *Engine) tripleAlphaScore(c universe.Constants) float64 {
	t := e.tuning
	da := (c.Alpha - e.baseline.Alpha) / e.baseline.Alpha
	das := (c.AlphaS - e.baseline.AlphaS) / e.baseline.AlphaS
	shift := t.TripleAlphaCoefAlpha*da + t.TripleAlphaCoefStrong*das
	return clamp01(math.Exp(-0.5 * sq(shift/t.TripleAlphaSigma)))
}

// deuteronScore penalizes the linearized deuteron binding-energy shift
// driven by the strong coupling and the mass ratio (quark-mass proxy).
func (e *Engine) deuteronScore(c universe.Constants) float64 {
	t := e.tuning
	das := (c.AlphaS - e.baseline.AlphaS) / e.baseline.AlphaS
	dmu := (c.Mu - e.baseline.Mu) / e.baseline.Mu
	frac := t.DeuteronCoefStrong*das + t.DeuteronCoefMass*dmu
	return clamp01(math.Exp(-0.5 * sq(frac/t.DeuteronSigma)))
}

// ppFusionScore penalizes the log-ratio of the Gamow tunneling proxy
// alpha*sqrt(mu) from baseline.
func (e *Engine) ppFusionScore(c universe.Constants) float64 {
	t := e.tuning
	proxy := c.Alpha * math.Sqrt(c.Mu)
	proxy0 := e.baseline.Alpha * math.Sqrt(e.baseline.Mu)
	return clamp01(math.Exp(-0.5 * sq(math.Log(proxy/proxy0)/t.PPFusionSigma)))
}

// bbnScore penalizes the combined deviation of G and G_F, in units of their
// per-parameter tolerances. Both shift expansion rate and weak freeze-out.
func (e *Engine) bbnScore(c universe.Constants) float64 {
	t := e.tuning
	devG := (c.G - e.baseline.G) / e.baseline.G / t.BBNGravTol
	devGF := (c.GF - e.baseline.GF) / e.baseline.GF / t.BBNFermiTol
	dev2 := devG*devG + devGF*devGF
	return clamp01(math.Exp(-0.5 * dev2))
}

// gravScore penalizes the fractional G deviation through a wide Gaussian:
// large G changes rescale stellar masses and lifetimes.
func (e *Engine) gravScore(c universe.Constants) float64 {
	rel := (c.G - e.baseline.G) / e.baseline.G
	x := rel / e.tuning.GravTol
	return clamp01(math.Exp(-x * x))
}

func sq(x float64) float64 { return x * x }

// clamp01 bounds a score to [0,1]. Gaussian kernels cannot exceed 1 on
// their own, but weighted sums are clamped as the invariant-enforcing step.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
