package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/app"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sensitivity"
	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/sweep"
)

// ReportWriter writes the JSON reports and the rendered run summary
type ReportWriter struct {
	outDir string
	logger *internal.Logger
}

// NewReportWriter creates a report writer rooted at outDir
func NewReportWriter(outDir string, logger *internal.Logger) *ReportWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportWriter{outDir: outDir, logger: logger}
}

// WriteSensitivity exports the structured sensitivity report as JSON
func (w *ReportWriter) WriteSensitivity(report *sensitivity.Report, filename string) error {
	return w.writeJSON(filename, report)
}

// WriteThreshold exports the threshold-search result as JSON. An unreachable
// threshold serializes as explicit nulls, distinct from a failed run.
func (w *ReportWriter) WriteThreshold(result sweep.ThresholdResult, filename string) error {
	return w.writeJSON(filename, result)
}

// WriteSummary renders a human-readable run summary as Markdown and HTML
func (w *ReportWriter) WriteSummary(result *app.RunResult, mdFilename, htmlFilename string) error {
	md := summaryMarkdown(result)

	mdPath := filepath.Join(w.outDir, mdFilename)
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return errors.ExportError(mdPath, err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	html := markdown.ToHTML([]byte(md), p, renderer)

	htmlPath := filepath.Join(w.outDir, htmlFilename)
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return errors.ExportError(htmlPath, err)
	}

	w.logger.Debug("wrote %s and %s", mdPath, htmlPath)
	return nil
}

func (w *ReportWriter) writeJSON(filename string, v interface{}) error {
	path := filepath.Join(w.outDir, filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.ExportError(path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.ExportError(path, err)
	}
	w.logger.Debug("wrote %s", path)
	return nil
}

func summaryMarkdown(result *app.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Constant-space analysis run %s\n\n", result.RunID)
	fmt.Fprintf(&b, "- Tuning: `%s`\n", result.Tuning)
	fmt.Fprintf(&b, "- Seed: `%d`\n", result.Seed)
	fmt.Fprintf(&b, "- Samples: %d (frontier: %d)\n", result.Table.Len(), len(result.Pareto))
	fmt.Fprintf(&b, "- Fingerprint: `%s`\n", result.Fingerprint)
	fmt.Fprintf(&b, "- Runtime: %dms\n\n", result.RuntimeMs)

	b.WriteString("## Score distributions\n\n")
	b.WriteString("| score | mean | std | min | max | median |\n")
	b.WriteString("|-------|------|-----|-----|-----|--------|\n")
	writeSummaryRow(&b, "coherence", result.CoherenceSummary)
	writeSummaryRow(&b, "fertility", result.FertilitySummary)
	b.WriteString("\n")

	b.WriteString("## Top sensitivities (PRCC magnitude)\n\n")
	fmt.Fprintf(&b, "- coherence: %s\n", topPRCC(result.Sensitivity.PRCCCoherence))
	fmt.Fprintf(&b, "- fertility: %s\n\n", topPRCC(result.Sensitivity.PRCCFertility))

	b.WriteString("## Coherence threshold search\n\n")
	if result.Threshold.Found() {
		fmt.Fprintf(&b, "Smallest weight meeting the threshold: w_coh = %.3f (coherence %.4f, fertility %.4f)\n",
			*result.Threshold.WMin, result.Threshold.RowAtWMin.Coherence, result.Threshold.RowAtWMin.Fertility)
	} else {
		b.WriteString("No scanned weight reached the coherence threshold.\n")
	}

	return b.String()
}

func writeSummaryRow(b *strings.Builder, name string, s app.ScoreSummary) {
	fmt.Fprintf(b, "| %s | %.4f | %.4f | %.4f | %.4f | %.4f |\n", name, s.Mean, s.StdDev, s.Min, s.Max, s.Median)
}

// topPRCC lists constants by descending |PRCC|, ties broken by name
func topPRCC(prcc map[string]float64) string {
	type entry struct {
		name  string
		value float64
	}
	entries := make([]entry, 0, len(prcc))
	for name, value := range prcc {
		entries = append(entries, entry{name, value})
	}
	sort.Slice(entries, func(i, j int) bool {
		ai, aj := abs(entries[i].value), abs(entries[j].value)
		if ai != aj {
			return ai > aj
		}
		return entries[i].name < entries[j].name
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s=%.3f", e.name, e.value)
	}
	return strings.Join(parts, ", ")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
