package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/truthcast/truthcast/internal/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// converter renders GitHub Flavored Markdown: the document's attribute
// tables are pipe tables, which plain CommonMark would pass through as
// text.
var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// htmlPrologue opens the standalone HTML document. The stylesheet keeps
// the A4-friendly layout and CJK font stack of the original report
// surface so the file prints acceptably without further tooling.
const htmlPrologue = `<!doctype html>
<html lang="zh-CN">
<head>
  <meta charset="utf-8" />
  <title>` + documentTitle + `</title>
  <style>
    @page { size: A4; margin: 18mm; }
    body { font-family: 'Noto Sans CJK SC', 'Microsoft YaHei', 'PingFang SC', sans-serif; font-size: 12px; line-height: 1.6; color: #1f2937; }
    h1 { font-size: 24px; margin: 0 0 12px; }
    h2 { font-size: 18px; margin: 20px 0 8px; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; }
    h3 { font-size: 14px; margin: 14px 0 6px; }
    h4 { font-size: 12px; margin: 10px 0 4px; }
    p, li { white-space: pre-wrap; word-break: break-word; }
    table { width: 100%; border-collapse: collapse; margin: 8px 0 12px; }
    th, td { border: 1px solid #d1d5db; text-align: left; vertical-align: top; padding: 6px; }
    blockquote { background: #f9fafb; border-left: 4px solid #93c5fd; padding: 8px 10px; margin: 8px 0; }
  </style>
</head>
<body>
`

const htmlEpilogue = `</body>
</html>
`

// HTMLWriter outputs a standalone HTML document. It composes the
// markdown form first and converts it with goldmark, so the HTML is
// always a faithful rendering of the exact same document the
// MarkdownWriter produces.
type HTMLWriter struct {
	baseWriter

	// markdownOpts are forwarded to the underlying MarkdownWriter.
	markdownOpts []MarkdownWriterOption
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
// The options configure the underlying markdown composition.
func NewHTMLWriter(output io.Writer, opts ...MarkdownWriterOption) *HTMLWriter {
	return &HTMLWriter{
		baseWriter:   newBaseWriter(output),
		markdownOpts: opts,
	}
}

// Write composes the document and outputs it as HTML.
func (w *HTMLWriter) Write(snapshot *model.AnalysisSnapshot) (int, error) {
	var md bytes.Buffer
	if _, err := NewMarkdownWriter(&md, w.markdownOpts...).Write(snapshot); err != nil {
		return 0, fmt.Errorf("failed to compose document: %w", err)
	}

	var body bytes.Buffer
	if err := converter.Convert(md.Bytes(), &body); err != nil {
		return 0, fmt.Errorf("failed to convert document to HTML: %w", err)
	}

	var out bytes.Buffer
	out.WriteString(htmlPrologue)
	out.Write(body.Bytes())
	out.WriteString(htmlEpilogue)

	return w.output.Write(out.Bytes())
}
