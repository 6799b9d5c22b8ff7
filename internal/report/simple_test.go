package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/truthcast/truthcast/internal/model"
)

// TestSimpleWriter tests the terminal summary writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes banner and counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createTestSnapshot()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "TRUTHCAST EXPORT SUMMARY") {
			t.Error("expected banner")
		}
		if !strings.Contains(output, "高风险") {
			t.Error("expected translated risk label")
		}
		if !strings.Contains(output, "主张数") {
			t.Error("expected claim count row")
		}
	})

	t.Run("omits rows for absent stages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		snapshot := &model.AnalysisSnapshot{InputText: "文本", ExportedAt: "2026-02-28T00:00:00Z"}
		if _, err := NewSimpleWriter(&buf).Write(snapshot); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "风险评级") {
			t.Error("expected report row to be omitted without a report")
		}
		if strings.Contains(output, "叙事分支数") {
			t.Error("expected simulation row to be omitted without a simulation")
		}
	})
}

// TestDisplayWidth tests CJK-aware width counting.
func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"风险", 4},
		{"风险x", 5},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := displayWidth(tt.input); got != tt.want {
				t.Errorf("displayWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
