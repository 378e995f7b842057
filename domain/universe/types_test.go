package universe

import (
	"testing"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/core"
)

func TestConstants_Value(t *testing.T) {
	c := Constants{Alpha: 1, Mu: 2, AlphaS: 3, G: 4, GF: 5}
	want := map[core.ConstantKey]float64{
		KeyAlpha: 1, KeyMu: 2, KeyAlphaS: 3, KeyG: 4, KeyGF: 5,
	}
	for key, expected := range want {
		v, err := c.Value(key)
		if err != nil {
			t.Fatalf("Value(%s): %v", key, err)
		}
		if v != expected {
			t.Errorf("Value(%s) = %v, want %v", key, v, expected)
		}
	}
	if _, err := c.Value("hbar"); err == nil {
		t.Error("unknown key should error")
	}
}

func TestConstants_Validate(t *testing.T) {
	if err := Baseline().Validate(); err != nil {
		t.Errorf("baseline tuple must validate: %v", err)
	}

	bad := Baseline()
	bad.Alpha = 0
	if err := bad.Validate(); !core.IsInvalidParameterError(err) {
		t.Errorf("alpha=0 should be an invalid-parameter error, got %v", err)
	}

	bad = Baseline()
	bad.Mu = -1
	if err := bad.Validate(); !core.IsInvalidParameterError(err) {
		t.Errorf("mu<0 should be an invalid-parameter error, got %v", err)
	}
}

func TestSampleTable_Columns(t *testing.T) {
	table := &SampleTable{Samples: []Sample{
		{Constants: Constants{Alpha: 0.1, Mu: 10, AlphaS: 0.2, G: 1, GF: 2}, Coherence: 0.7, Fertility: 0.3},
		{Constants: Constants{Alpha: 0.2, Mu: 20, AlphaS: 0.3, G: 2, GF: 3}, Coherence: 0.9, Fertility: 0.1},
	}}

	alpha, err := table.ConstantColumn(KeyAlpha)
	if err != nil {
		t.Fatal(err)
	}
	if alpha[0] != 0.1 || alpha[1] != 0.2 {
		t.Errorf("alpha column = %v", alpha)
	}

	coh := table.CoherenceColumn()
	fert := table.FertilityColumn()
	if coh[0] != 0.7 || coh[1] != 0.9 || fert[0] != 0.3 || fert[1] != 0.1 {
		t.Errorf("score columns coh=%v fert=%v", coh, fert)
	}

	if _, err := table.ConstantColumn("hbar"); err == nil {
		t.Error("unknown column key should error")
	}
}

func TestSampleTable_Fingerprint(t *testing.T) {
	base := []Sample{
		{Constants: Baseline(), Coherence: 1, Fertility: 1},
		{Constants: Baseline(), Coherence: 0.5, Fertility: 0.4},
	}
	a := &SampleTable{Samples: base}
	b := &SampleTable{Samples: append([]Sample(nil), base...)}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical tables must share a fingerprint")
	}

	b.Samples[1].Fertility += 1e-15
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("fingerprint must react to the smallest value change")
	}

	empty := &SampleTable{}
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Error("empty table bookkeeping broken")
	}
}

func TestRange_ContainsAndValidate(t *testing.T) {
	r := Range{Low: 1, High: 2}
	for v, want := range map[float64]bool{0.99: false, 1: true, 1.5: true, 2: true, 2.01: false} {
		if r.Contains(v) != want {
			t.Errorf("Contains(%v) = %v, want %v", v, !want, want)
		}
	}
	if err := (Range{Low: 2, High: 1}).Validate(); err == nil {
		t.Error("inverted range should not validate")
	}
}

func TestSpace_ContainsBaseline(t *testing.T) {
	for name, space := range map[string]Space{"option-a": SpaceOptionA(), "upgraded": SpaceUpgraded()} {
		if err := space.Validate(); err != nil {
			t.Errorf("%s space must validate: %v", name, err)
		}
		if !space.Contains(Baseline()) {
			t.Errorf("%s space must contain the baseline tuple", name)
		}
	}

	outside := Baseline()
	outside.G = BaselineG * 100
	if SpaceOptionA().Contains(outside) {
		t.Error("tuple outside the G band must be rejected")
	}
}
