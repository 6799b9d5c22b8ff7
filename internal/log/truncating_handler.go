package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxAttrLen is the default rune budget for string attribute values.
// Snapshot input texts and rendered documents routinely run to tens of
// kilobytes; logging them whole would drown every other line.
const DefaultMaxAttrLen = 256

// Ellipsis is appended to truncated attribute values.
const Ellipsis = "…"

// TruncatingHandler wraps an slog.Handler to clamp oversized string
// attribute values. It intercepts log records and truncates string values
// longer than the configured rune budget before passing them to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of manual truncation boilerplate
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives clamped records.
	handler slog.Handler

	// maxLen is the rune budget for string attribute values.
	maxLen int
}

// NewTruncatingHandler creates a new TruncatingHandler wrapping the given
// handler. String attribute values longer than maxLen runes are truncated
// and suffixed with an ellipsis. A maxLen of 0 or less uses DefaultMaxAttrLen.
// If handler is nil, the returned TruncatingHandler wraps slog.Default().Handler().
func NewTruncatingHandler(handler slog.Handler, maxLen int) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxAttrLen
	}
	return &TruncatingHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clamps the record's attributes and passes it to the underlying handler.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	clamped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		clamped.AddAttrs(h.clampAttr(a))
		return true
	})

	return h.handler.Handle(ctx, clamped)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are clamped before being added.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clampedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clampedAttrs[i] = h.clampAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(clampedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// clampAttr clamps a single attribute, recursively handling groups.
func (h *TruncatingHandler) clampAttr(a slog.Attr) slog.Attr {
	// Handle groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clampedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clampedAttrs[i] = h.clampAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clampedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if utf8.RuneCountInString(strVal) > h.maxLen {
			return slog.String(a.Key, truncate(strVal, h.maxLen))
		}
	}

	return a
}

// truncate cuts s to maxLen runes and appends an ellipsis.
// Truncation counts runes rather than bytes so multi-byte CJK text is
// never cut mid-character.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	return string(runes[:maxLen]) + Ellipsis
}

// NewLogger creates a new slog.Logger with attribute truncation.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	truncatingHandler := NewTruncatingHandler(textHandler, DefaultMaxAttrLen)

	return slog.New(truncatingHandler)
}

// NewJSONLogger creates a new slog.Logger with attribute truncation
// that outputs JSON format. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	truncatingHandler := NewTruncatingHandler(jsonHandler, DefaultMaxAttrLen)

	return slog.New(truncatingHandler)
}
