package sweep

import (
	"testing"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/testkit"
)

func tradeoffTable() *universe.SampleTable {
	// Distinct maxima per axis so the sweep endpoints are unambiguous.
	return testkit.TableWithScores([][2]float64{
		{0.95, 0.10}, // coherence champion
		{0.15, 0.90}, // fertility champion
		{0.60, 0.60},
		{0.40, 0.55},
		{0.70, 0.30},
	})
}

// TestSweep_BoundaryWeights checks w=0 selects the fertility maximum and
// w=1 the coherence maximum.
func TestSweep_BoundaryWeights(t *testing.T) {
	table := tradeoffTable()

	rows, err := Sweep(table, Weights(21))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 21 {
		t.Fatalf("expected 21 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.WCoh != 0.0 || first.Fertility != 0.90 {
		t.Errorf("at w=0 expected the max-fertility sample, got %+v", first)
	}
	last := rows[len(rows)-1]
	if last.WCoh != 1.0 || last.Coherence != 0.95 {
		t.Errorf("at w=1 expected the max-coherence sample, got %+v", last)
	}
}

func TestSweep_RowsAscendInWeight(t *testing.T) {
	rows, err := Sweep(tradeoffTable(), Weights(41))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].WCoh <= rows[i-1].WCoh {
			t.Fatalf("weights not strictly ascending at row %d", i)
		}
	}
}

// TestSweep_FirstOccurrenceTieBreak duplicates the top sample; the winner
// must be the first occurrence in table order.
func TestSweep_FirstOccurrenceTieBreak(t *testing.T) {
	table := testkit.TableWithScores([][2]float64{
		{0.5, 0.5},
		{0.9, 0.9},
		{0.9, 0.9},
	})
	rows, err := Sweep(table, []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Sample != table.Samples[1] {
		t.Errorf("tie should break to the first occurrence in table order")
	}
}

func TestSweep_InputValidation(t *testing.T) {
	if _, err := Sweep(&universe.SampleTable{}, Weights(5)); !core.IsEmptyInputError(err) {
		t.Errorf("expected empty-input error, got %v", err)
	}
	if _, err := Sweep(tradeoffTable(), nil); err == nil {
		t.Error("expected error for empty weight grid")
	}
	if _, err := Sweep(tradeoffTable(), []float64{-0.1}); err == nil {
		t.Error("expected error for out-of-range weight")
	}
}

func TestWeights_Spacing(t *testing.T) {
	w := Weights(101)
	if len(w) != 101 || w[0] != 0.0 || w[100] != 1.0 {
		t.Fatalf("unexpected grid: len=%d first=%v last=%v", len(w), w[0], w[len(w)-1])
	}

	single := Weights(1)
	if len(single) != 1 || single[0] != 0.0 {
		t.Fatalf("degenerate grid should be [0], got %v", single)
	}
}

// TestThreshold_ZeroAlwaysSatisfied checks threshold 0 resolves at the very
// first grid point.
func TestThreshold_ZeroAlwaysSatisfied(t *testing.T) {
	result, err := FindMinWeightForCoherence(tradeoffTable(), 0.0, DefaultThresholdPoints)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found() {
		t.Fatal("threshold 0 must always be reachable")
	}
	if *result.WMin != 0.0 {
		t.Errorf("w_min = %v, want 0.0 for threshold 0", *result.WMin)
	}
	if result.RowAtWMin == nil {
		t.Error("row_at_w_min must accompany a found weight")
	}
}

// TestThreshold_Unreachable checks a threshold above the best achievable
// coherence reports the explicit not-found result rather than an error.
func TestThreshold_Unreachable(t *testing.T) {
	result, err := FindMinWeightForCoherence(tradeoffTable(), 0.99, DefaultThresholdPoints)
	if err != nil {
		t.Fatal(err)
	}
	if result.Found() {
		t.Errorf("threshold above max coherence must be unreachable, got w_min=%v", *result.WMin)
	}
	if result.WMin != nil || result.RowAtWMin != nil {
		t.Error("not-found result must carry nil fields")
	}
}

func TestThreshold_MinimalWeightIsReturned(t *testing.T) {
	table := tradeoffTable()
	result, err := FindMinWeightForCoherence(table, 0.95, DefaultThresholdPoints)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found() {
		t.Fatal("0.95 is achievable by the coherence champion")
	}

	// Every smaller grid weight must fail the threshold.
	for _, w := range Weights(DefaultThresholdPoints) {
		if w >= *result.WMin {
			break
		}
		best := table.Samples[0]
		bestVal := w*best.Coherence + (1-w)*best.Fertility
		for _, s := range table.Samples[1:] {
			if v := w*s.Coherence + (1-w)*s.Fertility; v > bestVal {
				best, bestVal = s, v
			}
		}
		if best.Coherence >= 0.95 {
			t.Fatalf("weight %v below w_min already satisfied the threshold", w)
		}
	}
}

func TestThreshold_EmptyInput(t *testing.T) {
	if _, err := FindMinWeightForCoherence(&universe.SampleTable{}, 0.5, 11); !core.IsEmptyInputError(err) {
		t.Errorf("expected empty-input error, got %v", err)
	}
}
