package sensitivity

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// Spearman computes the rank correlation between x and y plus a two-tailed
// p-value from the t-distribution with n-2 degrees of freedom. Pearson on the
// average-tie ranks is used rather than the 6*sum(d^2) shortcut, which is
// biased under ties.
func Spearman(x, y []float64) (rho, pValue float64, err error) {
	if len(x) != len(y) {
		return 0, 0, errors.InvalidParameter("spearman inputs must have equal length")
	}
	if len(x) < 3 {
		return 0, 0, errors.Wrap(core.ErrInsufficientData, "spearman needs at least 3 observations")
	}

	rho = stat.Correlation(ranks(x), ranks(y), nil)
	if math.IsNaN(rho) {
		// Zero-variance column: no monotonic association measurable.
		return 0, 1.0, nil
	}
	if rho > 1.0 {
		rho = 1.0
	} else if rho < -1.0 {
		rho = -1.0
	}

	return rho, spearmanPValue(rho, len(x)), nil
}

// spearmanPValue converts rho to a two-tailed p-value via the exact
// t-statistic t = rho*sqrt((n-2)/(1-rho^2)).
func spearmanPValue(rho float64, n int) float64 {
	if rho == 1.0 || rho == -1.0 {
		return 0.0
	}
	df := float64(n - 2)
	t := rho * math.Sqrt(df/(1.0-rho*rho))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2.0 * (1.0 - dist.CDF(math.Abs(t)))
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
