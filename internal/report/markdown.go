package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/truthcast/truthcast/internal/labels"
	"github.com/truthcast/truthcast/internal/model"
)

// documentTitle is the H1 heading of every exported document.
const documentTitle = "TruthCast 智能研判报告"

// documentFooter is the fixed disclaimer closing every document.
const documentFooter = "本报告由 TruthCast 智能研判台自动生成，仅供辅助决策参考。"

// MarkdownWriter outputs the human-readable document form of a
// snapshot. Sections render in a fixed order; a section whose data is
// absent is skipped entirely, heading included, without shifting the
// order of the sections that do render.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and blockquotes
// 3. Output identical for identical input, which the export contract requires
type MarkdownWriter struct {
	baseWriter

	// tr translates internal codes to display strings.
	tr labels.Translator
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithTranslator replaces the default Chinese label translator.
func WithTranslator(tr labels.Translator) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.tr = tr
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		tr:         labels.NewChinese(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the snapshot as a formatted document.
func (w *MarkdownWriter) Write(snapshot *model.AnalysisSnapshot) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, snapshot)
	w.writeRiskSnapshot(md, snapshot.Detection)
	w.writeClaimTable(md, snapshot.Claims)
	w.writeEvidenceChain(md, snapshot)
	w.writeReportSummary(md, snapshot.Report)
	w.writeSimulation(md, snapshot.Simulation)
	w.writeResponseContent(md, snapshot.Content)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title, export timestamp, and quoted input.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, snapshot *model.AnalysisSnapshot) {
	md.H1(documentTitle)
	md.PlainText("")
	md.PlainTextf("**导出时间：**%s", orDash(snapshot.ExportedAt))
	md.PlainText("")

	md.H2("原始输入")
	md.PlainText("")
	w.writeBlockquote(md, snapshot.InputText)
	md.PlainText("")
}

// writeBlockquote quotes text line by line so multi-line input stays
// inside one blockquote.
func (w *MarkdownWriter) writeBlockquote(md *markdown.Markdown, text string) {
	for _, line := range strings.Split(text, "\n") {
		md.PlainText("> " + line)
	}
}

// writeRiskSnapshot writes the detection section.
// Omitted entirely when no detection result exists.
func (w *MarkdownWriter) writeRiskSnapshot(md *markdown.Markdown, detection *model.DetectionResult) {
	if detection == nil {
		return
	}

	md.H2("风险快照")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"项目", "值"},
		Rows: [][]string{
			{"风险标签", w.tr.RiskLabel(detection.Label)},
			{"风险分数", formatNumber(detection.Score)},
			{"置信度", formatNumber(detection.Confidence)},
		},
	})
	md.PlainText("")

	if len(detection.Reasons) > 0 {
		md.PlainText("### 风险理由")
		md.PlainText("")
		md.BulletList(detection.Reasons...)
		md.PlainText("")
	}
}

// writeClaimTable writes the extracted claims section.
// Omitted entirely when no claims were extracted.
func (w *MarkdownWriter) writeClaimTable(md *markdown.Markdown, claims []model.Claim) {
	if len(claims) == 0 {
		return
	}

	rows := make([][]string, len(claims))
	for i, c := range claims {
		rows[i] = []string{c.ClaimID, c.ClaimText}
	}

	md.H2("主张抽取")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"ID", "主张内容"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeEvidenceChain writes the evidence section using the aligned or
// the raw fallback strategy. Omitted when neither strategy applies.
func (w *MarkdownWriter) writeEvidenceChain(md *markdown.Markdown, snapshot *model.AnalysisSnapshot) {
	groups, aligned := buildEvidenceGroups(snapshot.Report, snapshot.Evidences, snapshot.Claims)
	if len(groups) == 0 {
		return
	}

	md.H2("证据链")
	md.PlainText("")

	for _, group := range groups {
		md.PlainTextf("### %s: %s", group.claimID, group.claimText)
		md.PlainText("")
		if aligned {
			md.PlainTextf("**最终立场：**%s", w.tr.Stance(group.finalStance))
			md.PlainText("")
		}

		if len(group.evidences) == 0 {
			md.PlainText("暂无对齐证据")
			md.PlainText("")
			continue
		}

		for i := range group.evidences {
			w.writeEvidence(md, &group.evidences[i], i+1, aligned)
		}
	}
}

// writeEvidence writes one evidence subsection.
// Raw fallback groups omit the alignment fields: that evidence was
// never aligned, so the fields are meaningless there.
func (w *MarkdownWriter) writeEvidence(md *markdown.Markdown, e *model.Evidence, index int, aligned bool) {
	title := e.DisplayTitle()
	if e.IsAggregated() {
		title += "（聚合）"
	}
	md.PlainTextf("#### 证据 %d: %s", index, title)
	md.PlainText("")

	rows := [][]string{
		{"立场", w.tr.Stance(e.Stance)},
		{"来源", orDash(e.Source)},
		{"来源类型", w.tr.SourceType(e.SourceType)},
		{"权重", formatWeight(e.SourceWeight)},
	}
	if e.Domain != "" {
		rows = append(rows, []string{"领域", w.tr.Domain(e.Domain)})
	}
	if e.Authoritative {
		rows = append(rows, []string{"权威来源", "是"})
	}
	if aligned && e.AlignmentConfidence != nil {
		rows = append(rows, []string{"对齐置信度", formatWeight(*e.AlignmentConfidence)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"属性", "值"},
		Rows:   rows,
	})
	md.PlainText("")

	// The aggregated shape already used Summary as its title; repeating
	// it as a body block would duplicate the heading.
	if !e.IsAggregated() && e.Summary != "" {
		md.PlainTextf("**摘要：**%s", e.Summary)
		md.PlainText("")
	}

	if aligned && e.AlignmentRationale != "" {
		md.PlainTextf("**对齐理由：**%s", e.AlignmentRationale)
		md.PlainText("")
	}

	if e.IsAggregated() {
		md.PlainTextf("**来源链接（%d条）**", len(e.SourceURLs))
		md.PlainText("")
		for i, url := range e.SourceURLs {
			md.PlainTextf("%d. <%s>", i+1, url)
		}
		md.PlainText("")
	} else {
		md.PlainTextf("**链接：**<%s>", orDash(e.URL))
		md.PlainText("")
	}
}

// writeReportSummary writes the aggregated report section, including
// the per-claim conclusions. Omitted entirely when no report exists.
func (w *MarkdownWriter) writeReportSummary(md *markdown.Markdown, rep *model.Report) {
	if rep == nil {
		return
	}

	domains := "-"
	if len(rep.EvidenceDomains) > 0 {
		translated := make([]string, len(rep.EvidenceDomains))
		for i, d := range rep.EvidenceDomains {
			translated[i] = w.tr.Domain(d)
		}
		domains = strings.Join(translated, "、")
	}

	md.H2("综合报告")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"项目", "值"},
		Rows: [][]string{
			{"风险评级", w.tr.RiskLabel(rep.RiskLabel) + "（" + w.tr.RiskLevel(rep.RiskLevel) + "风险）"},
			{"风险分数", formatNumber(rep.RiskScore)},
			{"识别场景", w.tr.Scenario(rep.DetectedScenario)},
			{"证据覆盖域", domains},
		},
	})
	md.PlainText("")
	md.PlainTextf("**摘要：**%s", rep.Summary)
	md.PlainText("")

	if len(rep.SuspiciousPoints) > 0 {
		md.PlainText("### 可疑点")
		md.PlainText("")
		md.BulletList(rep.SuspiciousPoints...)
		md.PlainText("")
	}

	if len(rep.ClaimReports) > 0 {
		md.PlainText("### 主张级结论")
		md.PlainText("")
		for _, cr := range rep.ClaimReports {
			md.PlainTextf("#### %s", cr.Claim.ClaimID)
			md.PlainText("")
			md.PlainTextf("**主张：**%s", cr.Claim.ClaimText)
			md.PlainText("")
			md.PlainTextf("**最终立场：**%s", w.tr.Stance(cr.FinalStance))
			md.PlainText("")
			if len(cr.Notes) > 0 {
				md.BulletList(cr.Notes...)
				md.PlainText("")
			}
		}
	}
}

// writeSimulation writes the social-reaction simulation section.
// Omitted entirely when no simulation exists.
func (w *MarkdownWriter) writeSimulation(md *markdown.Markdown, sim *model.Simulation) {
	if sim == nil {
		return
	}

	md.H2("舆情预演")
	md.PlainText("")

	w.writeDistribution(md, "情绪分布", "情绪", sim.EmotionDistribution, w.tr.Emotion)
	w.writeDistribution(md, "立场分布", "立场", sim.StanceDistribution, w.tr.SimulationStance)

	if len(sim.Narratives) > 0 {
		md.PlainText("### 叙事分支")
		md.PlainText("")
		for i, n := range sim.Narratives {
			md.PlainTextf("#### %d. %s", i+1, n.Title)
			md.PlainText("")
			md.PlainTextf("**概率：**%s", formatProbability(n.Probability))
			md.PlainText("")
			md.PlainTextf("**立场：**%s", w.tr.SimulationStance(n.Stance))
			md.PlainText("")
			keywords := "-"
			if len(n.TriggerKeywords) > 0 {
				keywords = strings.Join(n.TriggerKeywords, ", ")
			}
			md.PlainTextf("**触发词：**%s", keywords)
			md.PlainText("")
			md.PlainTextf("**代表言论：**%s", n.SampleMessage)
			md.PlainText("")
		}
	}

	if len(sim.Timeline) > 0 {
		rows := make([][]string, len(sim.Timeline))
		for i, entry := range sim.Timeline {
			rows[i] = []string{formatNumber(float64(entry.Hour)), entry.Event, orDash(entry.ExpectedReach)}
		}
		md.PlainText("### 时间线")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"小时", "事件", "预估触达"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(sim.Flashpoints) > 0 {
		marked := make([]string, len(sim.Flashpoints))
		for i, fp := range sim.Flashpoints {
			marked[i] = "⚠️ " + fp
		}
		md.PlainText("### 引爆点")
		md.PlainText("")
		md.BulletList(marked...)
		md.PlainText("")
	}

	if sim.Suggestion.Summary != "" || len(sim.Suggestion.Actions) > 0 {
		md.PlainText("### 应对建议")
		md.PlainText("")
		if sim.Suggestion.Summary != "" {
			md.PlainTextf("**%s**", sim.Suggestion.Summary)
			md.PlainText("")
		}
		if len(sim.Suggestion.Actions) > 0 {
			rows := make([][]string, len(sim.Suggestion.Actions))
			for i, a := range sim.Suggestion.Actions {
				rows[i] = []string{
					w.tr.Priority(a.Priority),
					w.tr.Category(a.Category),
					a.Action,
					orDash(a.Timeline),
					orDash(a.Responsible),
				}
			}
			md.Table(markdown.TableSet{
				Header: []string{"优先级", "类别", "行动", "时间", "责任方"},
				Rows:   rows,
			})
			md.PlainText("")
		}
	}
}

// writeDistribution writes one distribution as a 2-column table.
// Empty distributions render nothing. Rows sort by fraction descending
// so the document stays byte-identical across exports.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, heading, column string, dist map[string]float64, translate func(string) string) {
	if len(dist) == 0 {
		return
	}

	entries := sortDistribution(dist)
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{translate(entry.code), formatFraction(entry.fraction)}
	}

	md.PlainText("### " + heading)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{column, "占比"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeResponseContent writes the response-content section.
// Omitted entirely when no content draft exists.
func (w *MarkdownWriter) writeResponseContent(md *markdown.Markdown, content *model.ContentDraft) {
	if content == nil {
		return
	}

	md.H2("应对内容")
	md.PlainText("")

	if primary := content.PrimaryClarification(); primary != nil {
		md.PlainTextf("### 澄清稿（主稿：%s）", orDash(primary.Style))
		md.PlainText("")
		md.PlainTextf("**短版：**%s", primary.Content.Short)
		md.PlainText("")
		md.PlainTextf("**中版：**%s", primary.Content.Medium)
		md.PlainText("")
		md.PlainTextf("**长版：**%s", primary.Content.Long)
		md.PlainText("")

		if others := content.SecondaryClarifications(); len(others) > 0 {
			md.PlainText("### 其他版本")
			md.PlainText("")
			for i, v := range others {
				md.PlainTextf("%d. （%s）%s", i+1, orDash(v.Style), v.Content.Medium)
			}
			md.PlainText("")
		}
	}

	if len(content.FAQ) > 0 {
		md.PlainText("### FAQ")
		md.PlainText("")
		for i, item := range content.FAQ {
			md.PlainTextf("%d. **Q：**%s", i+1, item.Question)
			md.PlainTextf("   **A：**%s", item.Answer)
		}
		md.PlainText("")
	}

	if len(content.PlatformScripts) > 0 {
		md.PlainText("### 多平台话术")
		md.PlainText("")
		for _, script := range content.PlatformScripts {
			md.PlainTextf("#### %s", script.Platform)
			md.PlainText("")
			md.PlainText(script.Content)
			md.PlainText("")
		}
	}
}

// writeFooter writes the fixed disclaimer footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*" + documentFooter + "*")
}
