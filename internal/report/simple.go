package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/truthcast/truthcast/internal/labels"
	"github.com/truthcast/truthcast/internal/model"
	"golang.org/x/text/width"
)

// SimpleWriter outputs a compact human-readable text summary of a
// snapshot for terminal display: what the export would contain, not the
// full document.
//
// Design decision: We use plain text with ASCII framing rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. The document formats carry the full rendering anyway
type SimpleWriter struct {
	baseWriter

	// tr translates internal codes to display strings.
	tr labels.Translator
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSimpleTranslator replaces the default Chinese label translator.
func WithSimpleTranslator(tr labels.Translator) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.tr = tr
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		tr:         labels.NewChinese(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the snapshot summary.
func (w *SimpleWriter) Write(snapshot *model.AnalysisSnapshot) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                  TRUTHCAST EXPORT SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	writeRow(&sb, "导出时间", orDash(snapshot.ExportedAt))

	if snapshot.Detection != nil {
		writeRow(&sb, "风险标签", w.tr.RiskLabel(snapshot.Detection.Label))
		writeRow(&sb, "风险分数", formatNumber(snapshot.Detection.Score))
	}
	if snapshot.Report != nil {
		writeRow(&sb, "风险评级", w.tr.RiskLabel(snapshot.Report.RiskLabel)+
			"（"+w.tr.RiskLevel(snapshot.Report.RiskLevel)+"风险）")
	}

	writeRow(&sb, "主张数", fmt.Sprintf("%d", len(snapshot.Claims)))
	writeRow(&sb, "原始证据数", fmt.Sprintf("%d", len(snapshot.Evidences)))
	if snapshot.Report != nil {
		writeRow(&sb, "主张级结论数", fmt.Sprintf("%d", len(snapshot.Report.ClaimReports)))
	}
	if snapshot.Simulation != nil {
		writeRow(&sb, "叙事分支数", fmt.Sprintf("%d", len(snapshot.Simulation.Narratives)))
	}
	if snapshot.Content != nil {
		writeRow(&sb, "澄清稿版本数", fmt.Sprintf("%d", len(snapshot.Content.Clarifications)))
	}

	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// labelColumnWidth is the display width the label column is padded to.
// Chinese labels occupy two cells per rune, so padding must count
// display cells rather than runes.
const labelColumnWidth = 16

// writeRow writes one aligned "label: value" row.
func writeRow(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(label)
	sb.WriteString(":")
	pad := labelColumnWidth - displayWidth(label)
	if pad < 1 {
		pad = 1
	}
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(value)
	sb.WriteString("\n")
}

// displayWidth returns the terminal cell width of s, counting East
// Asian wide and fullwidth runes as two cells.
func displayWidth(s string) int {
	var total int
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}
