package report

import (
	"io"

	"github.com/truthcast/truthcast/internal/model"
)

// Writer defines the interface for snapshot output.
// Implementations serialize an analysis snapshot in various formats.
//
// Design decision: We use an interface to allow different output
// formats and destinations. This enables writing to files, stdout, or
// in-memory buffers with the same API.
type Writer interface {
	// Write serializes the snapshot to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(snapshot *model.AnalysisSnapshot) (int, error)
}

// MultiWriter writes a snapshot to multiple Writers simultaneously.
// This is useful for exporting the structured and the document form
// in one pass.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different from
// io.Writer - we write snapshots, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write serializes the snapshot to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(snapshot *model.AnalysisSnapshot) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(snapshot)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for snapshot writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
