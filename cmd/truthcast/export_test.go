package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/truthcast/truthcast/internal/config"
	"github.com/truthcast/truthcast/internal/export"
	"github.com/truthcast/truthcast/internal/model"
)

// writeTestSnapshot writes a minimal snapshot JSON file and returns its path.
func writeTestSnapshot(t *testing.T, dir string) string {
	t.Helper()

	snapshot := &model.AnalysisSnapshot{
		InputText: "某地水库疑似溃坝，大量居民撤离。",
		Detection: &model.DetectionResult{
			Label:      "suspicious",
			Score:      71.2,
			Confidence: 0.78,
			Reasons:    []string{"缺乏权威信源"},
		},
		Report: &model.Report{
			RiskLabel: "high_risk",
			RiskLevel: "high",
			RiskScore: 82.0,
			Summary:   "多项主张未获证实。",
		},
		ExportedAt: "2026-08-29T09:00:00+08:00",
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}

	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

// TestNewExportCmd tests the export command creation.
func TestNewExportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewExportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "export [snapshot.json...]" {
			t.Errorf("unexpected use %q", cmd.Use)
		}
	})

	t.Run("has format flags", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("json") == nil {
			t.Error("expected json flag")
		}
		if cmd.Flags().Lookup("html") == nil {
			t.Error("expected html flag")
		}
	})

	t.Run("has output flag with default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.DefValue != config.DefaultOutputDir {
			t.Errorf("expected default %q, got %q", config.DefaultOutputDir, flag.DefValue)
		}
	})

	t.Run("has batch flag with default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.DefValue != "4" {
			t.Errorf("expected default '4', got %q", flag.DefValue)
		}
	})
}

// TestBuildConfig tests config construction from flags.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults with positional args", func(t *testing.T) {
		t.Parallel()

		cmd := NewExportCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.json", "b.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.InputFiles) != 2 {
			t.Errorf("expected 2 input files, got %d", len(cfg.InputFiles))
		}
		if cfg.Format() != config.FormatMarkdown {
			t.Errorf("expected markdown default, got %q", cfg.Format())
		}
		if !cfg.Archive {
			t.Error("expected archive to default to true")
		}
	})

	t.Run("json flag selects JSON format", func(t *testing.T) {
		t.Parallel()

		cmd := NewExportCmd()
		if err := cmd.ParseFlags([]string{"--json"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format() != config.FormatJSON {
			t.Errorf("expected json format, got %q", cfg.Format())
		}
	})

	t.Run("no-archive flag disables archiving", func(t *testing.T) {
		t.Parallel()

		cmd := NewExportCmd()
		if err := cmd.ParseFlags([]string{"--no-archive"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Archive {
			t.Error("expected archive to be disabled")
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewExportCmd()
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		if err := cmd.ParseFlags([]string{"-c", missing}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd, []string{"a.json"}); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("config file fills unset flags", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".truthcast")
		content := []byte("defaults:\n  outputDir: /var/reports\n  product: factdesk\n")
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewExportCmd()
		if err := cmd.ParseFlags([]string{"-c", path}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputDir != "/var/reports" {
			t.Errorf("expected config file output dir, got %q", cfg.OutputDir)
		}
		if cfg.Product != "factdesk" {
			t.Errorf("expected config file product, got %q", cfg.Product)
		}
	})

	t.Run("explicit flags beat config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".truthcast")
		content := []byte("defaults:\n  outputDir: /var/reports\n")
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewExportCmd()
		if err := cmd.ParseFlags([]string{"-c", path, "-o", "/tmp/exports"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputDir != "/tmp/exports" {
			t.Errorf("expected flag to win, got %q", cfg.OutputDir)
		}
	})
}

// TestLoadSnapshot tests snapshot file loading.
func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid snapshot", func(t *testing.T) {
		t.Parallel()

		path := writeTestSnapshot(t, t.TempDir())

		snapshot, err := loadSnapshot(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snapshot.InputText == "" {
			t.Error("expected input text to survive loading")
		}
		if snapshot.ExportedAt != "2026-08-29T09:00:00+08:00" {
			t.Errorf("expected timestamp to be preserved, got %q", snapshot.ExportedAt)
		}
	})

	t.Run("fills missing export timestamp", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bare.json")
		if err := os.WriteFile(path, []byte(`{"inputText":"文本"}`), 0o600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		snapshot, err := loadSnapshot(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snapshot.ExportedAt == "" {
			t.Error("expected export timestamp to be filled")
		}
		if _, err := time.Parse(time.RFC3339, snapshot.ExportedAt); err != nil {
			t.Errorf("expected RFC3339 timestamp, got %q", snapshot.ExportedAt)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := loadSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		if _, err := loadSnapshot(path); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})
}

// TestRenderSnapshot tests format selection during rendering.
func TestRenderSnapshot(t *testing.T) {
	t.Parallel()

	snapshot := &model.AnalysisSnapshot{
		InputText:  "测试输入",
		ExportedAt: "2026-08-29T09:00:00+08:00",
	}

	t.Run("markdown by default", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		data, mimeType, ext, err := renderSnapshot(cfg, snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mimeType != export.MIMEMarkdown || ext != export.ExtMarkdown {
			t.Errorf("expected markdown mime/ext, got %q/%q", mimeType, ext)
		}
		if !strings.Contains(string(data), "# TruthCast 智能研判报告") {
			t.Error("expected markdown document title")
		}
	})

	t.Run("json mirror", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.JSONExport = true
		data, mimeType, ext, err := renderSnapshot(cfg, snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mimeType != export.MIMEJSON || ext != export.ExtJSON {
			t.Errorf("expected json mime/ext, got %q/%q", mimeType, ext)
		}

		var decoded model.AnalysisSnapshot
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("expected valid JSON: %v", err)
		}
		if decoded.InputText != snapshot.InputText {
			t.Error("expected lossless JSON mirror")
		}
	})

	t.Run("html page", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.HTMLExport = true
		data, mimeType, ext, err := renderSnapshot(cfg, snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mimeType != export.MIMEHTML || ext != export.ExtHTML {
			t.Errorf("expected html mime/ext, got %q/%q", mimeType, ext)
		}
		if !strings.Contains(string(data), "<!doctype html>") {
			t.Error("expected standalone HTML page")
		}
	})
}

// TestRunExportCmd tests end-to-end export execution.
func TestRunExportCmd(t *testing.T) {
	t.Run("exports a snapshot to the output directory", func(t *testing.T) {
		inputDir := t.TempDir()
		outputDir := t.TempDir()
		path := writeTestSnapshot(t, inputDir)

		var buf bytes.Buffer
		cmd := NewExportCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", outputDir, "--no-archive", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := filepath.Join(outputDir, export.Filename(config.DefaultProduct, "", export.ExtMarkdown))
		if _, err := os.Stat(want); err != nil {
			t.Fatalf("expected exported document at %s: %v", want, err)
		}

		content, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("failed to read document: %v", err)
		}
		if !strings.Contains(string(content), "风险快照") {
			t.Error("expected risk snapshot section in exported document")
		}
		if !strings.Contains(buf.String(), "Exported") {
			t.Errorf("expected progress output, got %q", buf.String())
		}
	})

	t.Run("fails without input files", func(t *testing.T) {
		cmd := NewExportCmd()
		cmd.SetArgs([]string{"--no-archive"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error without input files")
		}
	})

	t.Run("exports multiple snapshots concurrently", func(t *testing.T) {
		inputDir := t.TempDir()
		outputDir := t.TempDir()
		first := writeTestSnapshot(t, inputDir)

		second := filepath.Join(inputDir, "second.json")
		if err := os.WriteFile(second, []byte(`{"inputText":"另一段文本"}`), 0o600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		var buf bytes.Buffer
		cmd := NewExportCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", outputDir, "--no-archive", "--json", first, second})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Batch export completed") {
			t.Errorf("expected batch completion message, got %q", buf.String())
		}

		// Each snapshot dispatches under its own filename; neither
		// document may overwrite the other.
		firstDoc := filepath.Join(outputDir, export.Filename(config.DefaultProduct, "snapshot", export.ExtJSON))
		secondDoc := filepath.Join(outputDir, export.Filename(config.DefaultProduct, "second", export.ExtJSON))

		content, err := os.ReadFile(firstDoc)
		if err != nil {
			t.Fatalf("expected first document at %s: %v", firstDoc, err)
		}
		if !strings.Contains(string(content), "某地水库疑似溃坝") {
			t.Error("expected first document to hold the first snapshot")
		}

		content, err = os.ReadFile(secondDoc)
		if err != nil {
			t.Fatalf("expected second document at %s: %v", secondDoc, err)
		}
		if !strings.Contains(string(content), "另一段文本") {
			t.Error("expected second document to hold the second snapshot")
		}
	})

	t.Run("sequential multi-export keeps every document", func(t *testing.T) {
		inputDir := t.TempDir()
		outputDir := t.TempDir()
		first := writeTestSnapshot(t, inputDir)

		second := filepath.Join(inputDir, "second.json")
		if err := os.WriteFile(second, []byte(`{"inputText":"另一段文本"}`), 0o600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		var buf bytes.Buffer
		cmd := NewExportCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"-o", outputDir, "--no-archive", "-b", "1", first, second})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, stem := range []string{"snapshot", "second"} {
			doc := filepath.Join(outputDir, export.Filename(config.DefaultProduct, stem, export.ExtMarkdown))
			if _, err := os.Stat(doc); err != nil {
				t.Errorf("expected document at %s: %v", doc, err)
			}
		}
	})
}
