package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/app"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sensitivity"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sweep"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/testkit"
)

func fixtureTable() *universe.SampleTable {
	return testkit.TableWithScores([][2]float64{
		{0.9, 0.2},
		{0.4, 0.8},
		{0.6, 0.6},
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestTableWriter_WriteSamples(t *testing.T) {
	dir := t.TempDir()
	table := fixtureTable()

	require.NoError(t, NewTableWriter(dir, nil).WriteSamples(table, "samples.csv"))

	records := readCSV(t, filepath.Join(dir, "samples.csv"))
	require.Len(t, records, table.Len()+1)
	assert.Equal(t, []string{"alpha", "mu", "alpha_s", "G", "G_F", "coherence", "fertility"}, records[0])
	assert.Equal(t, "0.9", records[1][5])
	assert.Equal(t, "0.2", records[1][6])
}

func TestTableWriter_WriteSweep(t *testing.T) {
	dir := t.TempDir()
	rows, err := sweep.Sweep(fixtureTable(), sweep.Weights(5))
	require.NoError(t, err)

	require.NoError(t, NewTableWriter(dir, nil).WriteSweep(rows, "sweep.csv"))

	records := readCSV(t, filepath.Join(dir, "sweep.csv"))
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, "w_coh", records[0][0])
	assert.Equal(t, "combined", records[0][8])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "1", records[len(records)-1][0])
}

func TestTableWriter_BadDirectory(t *testing.T) {
	w := NewTableWriter("/nonexistent/dir", nil)
	assert.Error(t, w.WriteSamples(fixtureTable(), "samples.csv"))
}

func TestReportWriter_ThresholdSerialization(t *testing.T) {
	dir := t.TempDir()
	w := NewReportWriter(dir, nil)

	// Not-found result must serialize as explicit nulls.
	require.NoError(t, w.WriteThreshold(sweep.ThresholdResult{}, "threshold.json"))
	data, err := os.ReadFile(filepath.Join(dir, "threshold.json"))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "null", string(decoded["w_min"]))
	assert.Equal(t, "null", string(decoded["row_at_w_min"]))

	// Found result carries the weight and the winning sample.
	wMin := 0.35
	row := fixtureTable().Samples[0]
	found := sweep.ThresholdResult{WMin: &wMin, RowAtWMin: &row}
	require.NoError(t, w.WriteThreshold(found, "threshold_found.json"))
	data, err = os.ReadFile(filepath.Join(dir, "threshold_found.json"))
	require.NoError(t, err)

	var roundTrip sweep.ThresholdResult
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	require.True(t, roundTrip.Found())
	assert.InDelta(t, wMin, *roundTrip.WMin, 1e-12)
	assert.InDelta(t, row.Coherence, roundTrip.RowAtWMin.Coherence, 1e-12)
}

func TestReportWriter_Sensitivity(t *testing.T) {
	dir := t.TempDir()
	report := &sensitivity.Report{
		Spearman: map[string]sensitivity.SpearmanEntry{
			"alpha": {CoherenceRho: 0.8, CoherenceP: 0.001, FertilityRho: -0.2, FertilityP: 0.4},
		},
		PRCCCoherence: map[string]float64{"alpha": 0.85},
		PRCCFertility: map[string]float64{"alpha": -0.1},
	}

	require.NoError(t, NewReportWriter(dir, nil).WriteSensitivity(report, "sensitivity.json"))

	data, err := os.ReadFile(filepath.Join(dir, "sensitivity.json"))
	require.NoError(t, err)
	var decoded sensitivity.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Spearman, decoded.Spearman)
	assert.Equal(t, report.PRCCCoherence, decoded.PRCCCoherence)
}

func TestReportWriter_Summary(t *testing.T) {
	dir := t.TempDir()
	table := fixtureTable()
	rows, err := sweep.Sweep(table, sweep.Weights(5))
	require.NoError(t, err)
	wMin := 0.25

	result := &app.RunResult{
		RunID:  "run-test",
		Tuning: "option-a",
		Seed:   42,
		Table:  table,
		Pareto: table.Samples[:2],
		Sensitivity: &sensitivity.Report{
			Spearman:      map[string]sensitivity.SpearmanEntry{"alpha": {CoherenceRho: 0.9}},
			PRCCCoherence: map[string]float64{"alpha": 0.9, "G": -0.3},
			PRCCFertility: map[string]float64{"alpha": 0.1, "G": 0.05},
		},
		SweepRows:   rows,
		Threshold:   sweep.ThresholdResult{WMin: &wMin, RowAtWMin: &table.Samples[0]},
		Fingerprint: table.Fingerprint(),
	}
	result.CoherenceSummary, err = app.Summarize(table.CoherenceColumn())
	require.NoError(t, err)
	result.FertilitySummary, err = app.Summarize(table.FertilityColumn())
	require.NoError(t, err)

	require.NoError(t, NewReportWriter(dir, nil).WriteSummary(result, "summary.md", "summary.html"))

	md, err := os.ReadFile(filepath.Join(dir, "summary.md"))
	require.NoError(t, err)
	text := string(md)
	assert.Contains(t, text, "run-test")
	assert.Contains(t, text, "option-a")
	assert.Contains(t, text, "w_coh = 0.250")
	// PRCC headline sorts by magnitude, so alpha leads G.
	assert.Less(t, strings.Index(text, "alpha=0.900"), strings.Index(text, "G=-0.300"))

	html, err := os.ReadFile(filepath.Join(dir, "summary.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<table")
}

func TestWorkbookWriter_Write(t *testing.T) {
	dir := t.TempDir()
	table := fixtureTable()
	rows, err := sweep.Sweep(table, sweep.Weights(5))
	require.NoError(t, err)

	path := filepath.Join(dir, "run.xlsx")
	require.NoError(t, NewWorkbookWriter(dir, nil).Write(table, table.Samples[:1], rows, "run.xlsx"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Samples", "Pareto", "WeightSweep"}, f.GetSheetList())

	cell, err := f.GetCellValue("Samples", "F1")
	require.NoError(t, err)
	assert.Equal(t, "coherence", cell)

	sweepRows, err := f.GetRows("WeightSweep")
	require.NoError(t, err)
	assert.Len(t, sweepRows, len(rows)+1)
}
