package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/domain/universe"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sweep"
)

// WorkbookWriter bundles all result tables into a single .xlsx workbook,
// one sheet per table, for spreadsheet-based inspection.
type WorkbookWriter struct {
	outDir string
	logger *internal.Logger
}

// NewWorkbookWriter creates a workbook writer rooted at outDir
func NewWorkbookWriter(outDir string, logger *internal.Logger) *WorkbookWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &WorkbookWriter{outDir: outDir, logger: logger}
}

// Write creates the workbook with Samples, Pareto and WeightSweep sheets
func (w *WorkbookWriter) Write(table *universe.SampleTable, frontier []universe.Sample, rows []sweep.Row, filename string) error {
	path := filepath.Join(w.outDir, filename)
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSampleSheet(f, "Samples", table.Samples); err != nil {
		return errors.ExportError(path, err)
	}
	if err := w.writeSampleSheet(f, "Pareto", frontier); err != nil {
		return errors.ExportError(path, err)
	}
	if err := w.writeSweepSheet(f, "WeightSweep", rows); err != nil {
		return errors.ExportError(path, err)
	}

	// Drop excelize's default sheet so the workbook opens on Samples.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.ExportError(path, err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(path, err)
	}
	w.logger.Debug("wrote %s (%d samples, %d frontier, %d sweep rows)", path, table.Len(), len(frontier), len(rows))
	return nil
}

func (w *WorkbookWriter) writeSampleSheet(f *excelize.File, sheet string, samples []universe.Sample) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"alpha", "mu", "alpha_s", "G", "G_F", "coherence", "fertility"}); err != nil {
		return err
	}
	for i, s := range samples {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{s.Alpha, s.Mu, s.AlphaS, s.G, s.GF, s.Coherence, s.Fertility}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *WorkbookWriter) writeSweepSheet(f *excelize.File, sheet string, rows []sweep.Row) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"w_coh", "alpha", "mu", "alpha_s", "G", "G_F", "coherence", "fertility", "combined"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{r.WCoh, r.Alpha, r.Mu, r.AlphaS, r.G, r.GF, r.Coherence, r.Fertility, r.Combined}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
