package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncatingHandler tests attribute truncation.
func TestTruncatingHandler(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer, maxLen int) *slog.Logger {
		h := NewTruncatingHandler(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}), maxLen)
		return slog.New(h)
	}

	t.Run("short values pass through unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 10)

		logger.Info("export", "format", "markdown")

		if !strings.Contains(buf.String(), "format=markdown") {
			t.Errorf("expected unmodified attribute, got %q", buf.String())
		}
	})

	t.Run("long values are clamped with ellipsis", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 5)

		logger.Info("export", "input", "abcdefghij")

		out := buf.String()
		if !strings.Contains(out, "abcde"+Ellipsis) {
			t.Errorf("expected clamped value, got %q", out)
		}
		if strings.Contains(out, "abcdefghij") {
			t.Errorf("expected full value to be absent, got %q", out)
		}
	})

	t.Run("truncation is rune-aware for CJK text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 3)

		logger.Info("export", "input", "某地发生重大事故")

		if !strings.Contains(buf.String(), "某地发"+Ellipsis) {
			t.Errorf("expected rune-aware truncation, got %q", buf.String())
		}
	})

	t.Run("non-string attributes pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 5)

		logger.Info("export", "count", 1234567890)

		if !strings.Contains(buf.String(), "count=1234567890") {
			t.Errorf("expected numeric attribute to pass through, got %q", buf.String())
		}
	})

	t.Run("group attributes are clamped recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 4)

		logger.Info("export", slog.Group("snapshot", slog.String("input", "abcdefgh")))

		if !strings.Contains(buf.String(), "abcd"+Ellipsis) {
			t.Errorf("expected clamped group attribute, got %q", buf.String())
		}
	})

	t.Run("WithAttrs clamps pre-bound attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 4).With("input", "abcdefgh")

		logger.Info("export")

		if !strings.Contains(buf.String(), "abcd"+Ellipsis) {
			t.Errorf("expected clamped bound attribute, got %q", buf.String())
		}
	})

	t.Run("WithGroup preserves truncation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newLogger(&buf, 4).WithGroup("export")

		logger.Info("start", "input", "abcdefgh")

		if !strings.Contains(buf.String(), "abcd"+Ellipsis) {
			t.Errorf("expected truncation inside group, got %q", buf.String())
		}
	})

	t.Run("non-positive budget uses the default", func(t *testing.T) {
		t.Parallel()

		h := NewTruncatingHandler(slog.NewTextHandler(&bytes.Buffer{}, nil), 0)
		if h.maxLen != DefaultMaxAttrLen {
			t.Errorf("expected default budget %d, got %d", DefaultMaxAttrLen, h.maxLen)
		}
	})
}

// TestNewLogger tests logger construction and level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose logger emits debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Error("expected debug message in verbose mode")
		}
	})

	t.Run("quiet logger suppresses info records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("JSON logger emits JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, true)

		logger.Warn("warn message")

		if !strings.Contains(buf.String(), `"msg":"warn message"`) {
			t.Errorf("expected JSON output, got %q", buf.String())
		}
	})
}
