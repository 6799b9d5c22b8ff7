package report

import (
	"encoding/json"
	"io"

	"github.com/truthcast/truthcast/internal/model"
)

// JSONWriter outputs snapshots in JSON format.
// The output is a syntactic mirror of the snapshot: no field renaming,
// no omission, no derived fields. Parsing the output reproduces a value
// deep-equal to the input, which makes this the lossless interchange
// form of an export.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with the interchange
// format's canonical 2-space indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the snapshot in JSON format.
// Encoding failure on non-serializable input is the only error mode;
// it is fatal and propagated to the caller.
func (w *JSONWriter) Write(snapshot *model.AnalysisSnapshot) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(snapshot, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(snapshot)
	}

	if err != nil {
		return 0, err
	}

	// The output is exactly the encoded snapshot: no trailing newline,
	// so the dispatched bytes are the mirror and nothing else.
	return w.output.Write(data)
}
