package sensitivity

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// prccFromRanks computes the partial rank correlation coefficient of every
// column of X against y. All inputs are already rank-transformed.
//
// For column i: regress (OLS with intercept) X_i on the ranks of the other
// columns and y on the same design matrix, then correlate the two residual
// vectors. With no other columns the residuals reduce to mean-centered
// ranks, i.e. plain Spearman.
//
// The second return value counts columns whose residual regression was
// degenerate (rank-deficient or non-finite solve) and fell back to the
// mean-centered form.
func prccFromRanks(X [][]float64, y []float64) ([]float64, int) {
	k := len(X)
	out := make([]float64, k)
	degenerate := 0

	for i := 0; i < k; i++ {
		others := make([][]float64, 0, k-1)
		for j := 0; j < k; j++ {
			if j != i {
				others = append(others, X[j])
			}
		}

		var rx, ry []float64
		if len(others) == 0 {
			rx = centered(X[i])
			ry = centered(y)
		} else {
			design := designMatrix(len(y), others)
			var okX, okY bool
			rx, okX = olsResiduals(design, X[i])
			ry, okY = olsResiduals(design, y)
			if !okX || !okY {
				// Rank-deficient design: fall back to the single-variable
				// residual form instead of failing the whole run.
				rx = centered(X[i])
				ry = centered(y)
				degenerate++
			}
		}

		r := stat.Correlation(rx, ry, nil)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			r = 0
		}
		out[i] = r
	}
	return out, degenerate
}

// designMatrix assembles [1 | cols...] as an n x (1+len(cols)) dense matrix
func designMatrix(n int, cols [][]float64) *mat.Dense {
	m := mat.NewDense(n, 1+len(cols), nil)
	for r := 0; r < n; r++ {
		m.Set(r, 0, 1.0)
		for c, col := range cols {
			m.Set(r, c+1, col[r])
		}
	}
	return m
}

// olsResiduals solves the least-squares problem design*beta ~= b by QR and
// returns b - design*beta. Reports false when the solve fails or produces
// non-finite residuals.
func olsResiduals(design *mat.Dense, b []float64) ([]float64, bool) {
	n, p := design.Dims()
	if n < p {
		return nil, false
	}

	var qr mat.QR
	qr.Factorize(design)

	beta := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(beta, false, mat.NewVecDense(n, b)); err != nil {
		return nil, false
	}

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(design, beta)

	res := make([]float64, n)
	for i := 0; i < n; i++ {
		res[i] = b[i] - fitted.AtVec(i)
		if math.IsNaN(res[i]) || math.IsInf(res[i], 0) {
			return nil, false
		}
	}
	return res, true
}
