package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MIME types for the supported export formats.
const (
	MIMEJSON     = "application/json"
	MIMEMarkdown = "text/markdown"
	MIMEHTML     = "text/html"
)

// File extensions for the supported export formats.
const (
	ExtJSON     = "json"
	ExtMarkdown = "md"
	ExtHTML     = "html"
)

// Filename builds the download filename for an exported report.
// The name embeds the product slug and the current date:
// "truthcast-report-2026-08-29.md". A non-empty stem is appended before
// the extension so that several reports exported on the same day resolve
// to distinct names: "truthcast-report-2026-08-29-run1.md".
func Filename(product, stem, ext string) string {
	date := time.Now().Format("2006-01-02")
	if stem == "" {
		return fmt.Sprintf("%s-report-%s.%s", product, date, ext)
	}
	return fmt.Sprintf("%s-report-%s-%s.%s", product, date, stem, ext)
}

// Stems derives one filename stem per snapshot file path.
//
// A single path yields an empty stem, keeping the canonical download
// name for the common one-report export. Multiple paths yield the
// sanitized base name of each file so their documents never resolve to
// the same filename; paths sharing a base name get a numeric suffix.
func Stems(paths []string) []string {
	stems := make([]string, len(paths))
	if len(paths) < 2 {
		return stems
	}

	seen := make(map[string]int, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		stem := sanitizeStem(strings.TrimSuffix(base, filepath.Ext(base)))
		seen[stem]++
		if n := seen[stem]; n > 1 {
			stem = fmt.Sprintf("%s-%d", stem, n)
		}
		stems[i] = stem
	}
	return stems
}

// sanitizeStem keeps a stem safe to embed in a filename. Anything
// outside letters, digits, dot, underscore, and hyphen becomes a hyphen.
func sanitizeStem(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}

// Dispatcher delivers a finished document to its destination.
//
// Implementations receive the complete document bytes, the MIME type of the
// rendering, and the filename the document should be stored or served under.
type Dispatcher interface {
	Dispatch(data []byte, mimeType, filename string) error
}

// FileDispatcher writes exported documents into a directory on disk.
//
// Design decision: The document is first written to a temporary file in the
// target directory and then renamed into place. This keeps a partially
// written report from ever appearing under the final name, and the rename
// is atomic on the same filesystem. The temporary file is removed on every
// failure path.
type FileDispatcher struct {
	// dir is the directory exported documents are written into.
	dir string
}

// NewFileDispatcher creates a FileDispatcher writing into dir.
// The directory is created if it does not exist.
func NewFileDispatcher(dir string) (*FileDispatcher, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileDispatcher{dir: dir}, nil
}

// Dispatch writes data to dir/filename. The mimeType is not needed for
// filesystem delivery and is ignored.
func (d *FileDispatcher) Dispatch(data []byte, _ string, filename string) error {
	tmp, err := os.CreateTemp(d.dir, "."+filename+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	dest := filepath.Join(d.dir, filename)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move document into place: %w", err)
	}

	return nil
}

// Path returns the full path a document with the given filename would be
// written to.
func (d *FileDispatcher) Path(filename string) string {
	return filepath.Join(d.dir, filename)
}
