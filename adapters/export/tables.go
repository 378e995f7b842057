// Package export contains the tabular and report collaborators that consume
// a finished analysis run: CSV tables, a workbook, JSON reports and a
// rendered summary. The computational core never writes files itself.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sweep"
)

// Column headers shared by the sample and Pareto tables
var sampleHeader = []string{"alpha", "mu", "alpha_s", "G", "G_F", "coherence", "fertility"}

// sweepHeader prefixes the weight and appends the combined value
var sweepHeader = []string{"w_coh", "alpha", "mu", "alpha_s", "G", "G_F", "coherence", "fertility", "combined"}

// TableWriter writes result tables as CSV files under one output directory
type TableWriter struct {
	outDir string
	logger *internal.Logger
}

// NewTableWriter creates a CSV table writer rooted at outDir
func NewTableWriter(outDir string, logger *internal.Logger) *TableWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &TableWriter{outDir: outDir, logger: logger}
}

// WriteSamples exports the full sample table, one row per draw
func (w *TableWriter) WriteSamples(table *universe.SampleTable, filename string) error {
	rows := make([][]string, 0, table.Len())
	for _, s := range table.Samples {
		rows = append(rows, sampleRow(s))
	}
	return w.writeCSV(filename, sampleHeader, rows)
}

// WritePareto exports the frontier, already sorted by descending coherence
func (w *TableWriter) WritePareto(frontier []universe.Sample, filename string) error {
	rows := make([][]string, 0, len(frontier))
	for _, s := range frontier {
		rows = append(rows, sampleRow(s))
	}
	return w.writeCSV(filename, sampleHeader, rows)
}

// WriteSweep exports the weight-sweep rows in ascending weight order
func (w *TableWriter) WriteSweep(rows []sweep.Row, filename string) error {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		record := append([]string{formatFloat(r.WCoh)}, sampleRow(r.Sample)...)
		record = append(record, formatFloat(r.Combined))
		out = append(out, record)
	}
	return w.writeCSV(filename, sweepHeader, out)
}

func (w *TableWriter) writeCSV(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.outDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportError(path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return errors.ExportError(path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return errors.ExportError(path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.ExportError(path, err)
	}

	w.logger.Debug("wrote %s (%d rows)", path, len(rows))
	return nil
}

func sampleRow(s universe.Sample) []string {
	return []string{
		formatFloat(s.Alpha),
		formatFloat(s.Mu),
		formatFloat(s.AlphaS),
		formatFloat(s.G),
		formatFloat(s.GF),
		formatFloat(s.Coherence),
		formatFloat(s.Fertility),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
