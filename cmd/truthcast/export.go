package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthcast/truthcast/internal/config"
	"github.com/truthcast/truthcast/internal/database"
	"github.com/truthcast/truthcast/internal/export"
	"github.com/truthcast/truthcast/internal/log"
	"github.com/truthcast/truthcast/internal/model"
	"github.com/truthcast/truthcast/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [snapshot.json...]",
		Short: "Export analysis snapshots as shareable reports",
		Long: `Export renders analysis snapshots as shareable report documents.

Each snapshot JSON file is rendered in the selected format:
- Markdown (default): a human-readable document with risk snapshot,
  claims, evidence chains, simulation, and response content sections
- JSON (--json): a lossless pretty-printed mirror of the snapshot
- HTML (--html): a standalone page rendered from the markdown document

Examples:
  # Export a snapshot as markdown
  truthcast export analysis.json

  # Export the lossless JSON mirror
  truthcast export --json analysis.json

  # Export several snapshots concurrently into a directory
  truthcast export -o reports/ run1.json run2.json run3.json

  # Use a custom configuration file
  truthcast export -c myconfig.yaml analysis.json

Configuration file (.truthcast) example:
  defaults:
    outputDir: /var/reports
  formats:
    html:
      outputDir: /var/www/reports`,
		Args: cobra.ArbitraryArgs,
		RunE: runExportCmd,
	}

	// Format flags
	cmd.Flags().BoolP("json", "j", false,
		"Export the lossless JSON mirror (mutually exclusive with --html)")
	cmd.Flags().Bool("html", false,
		"Export a standalone HTML page (mutually exclusive with --json)")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Directory to write exported documents into")
	cmd.Flags().String("product", config.DefaultProduct,
		"Slug embedded in download filenames")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent exports")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .truthcast in current or home directory)")

	// Archive flags
	cmd.Flags().Bool("no-archive", false,
		"Skip recording exports in the archive database")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExport(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.JSONExport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.HTMLExport, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Product, err = cmd.Flags().GetString("product")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noArchive, err := cmd.Flags().GetBool("no-archive")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load exporter settings from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfig, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.FileConfig = &config.File{
			Formats: make(map[string]config.FormatConfig),
		}
	}

	// Archive by default using the XDG data directory
	cfg.Archive = !noArchive
	cfg.DBDir = config.XDGDataDir()

	// File config fills in settings not overridden on the command line
	fc := cfg.FileConfig.GetFormatConfig(cfg.Format())
	if fc.OutputDir != "" && !cmd.Flags().Changed("output") {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Product != "" && !cmd.Flags().Changed("product") {
		cfg.Product = fc.Product
	}
	if fc.Archive != nil && !cmd.Flags().Changed("no-archive") {
		cfg.Archive = *fc.Archive
	}

	// Get positional arguments (snapshot files)
	cfg.InputFiles = args

	return cfg, nil
}

// runExport executes the export.
func runExport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting export",
		"inputs", len(cfg.InputFiles),
		"format", cfg.Format(),
		"outputDir", cfg.OutputDir,
		"archive", cfg.Archive,
	)

	// Open archive database if enabled
	var db *database.ExportDB
	if cfg.Archive {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open archive database: %w", err)
		}
		defer db.Close()
		logger.Info("archive database opened", "dir", cfg.DBDir)
	}

	dispatcher, err := export.NewFileDispatcher(cfg.OutputDir)
	if err != nil {
		return err
	}

	// Use batch exporter for parallel rendering if multiple inputs
	if len(cfg.InputFiles) > 1 && cfg.BatchSize > 1 {
		return runBatchExport(ctx, cmd, cfg, dispatcher, db, logger)
	}

	// Single input or sequential export
	return runSequentialExport(ctx, cmd, cfg, dispatcher, db, logger)
}

// runSequentialExport exports snapshots one at a time.
func runSequentialExport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dispatcher export.Dispatcher, db *database.ExportDB, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	stems := export.Stems(cfg.InputFiles)

	for i, path := range cfg.InputFiles {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		snapshot, err := loadSnapshot(path)
		if err != nil {
			logger.Error("failed to load snapshot", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Load error for %s: %v\n", path, err)
			continue
		}

		filename, err := exportSnapshot(ctx, cfg, snapshot, stems[i], dispatcher, db, logger)
		if err != nil {
			logger.Error("export failed", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Export error for %s: %v\n", path, err)
			continue
		}

		fmt.Fprintf(out, "Exported %s -> %s\n\n", path, filename)

		// Print a terminal summary of what was exported
		writer := report.NewSimpleWriter(out)
		if _, err := writer.Write(snapshot); err != nil {
			logger.Error("summary failed", "path", path, "error", err)
		}
	}

	return nil
}

// runBatchExport exports multiple snapshots concurrently using BatchExporter.
func runBatchExport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dispatcher export.Dispatcher, db *database.ExportDB, logger *slog.Logger) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting batch export of %d snapshots (concurrency: %d)...\n\n",
		len(cfg.InputFiles), cfg.BatchSize)

	startTime := time.Now()

	// Load all snapshots up front so the batch only renders valid input
	snapshots := make([]*model.AnalysisSnapshot, 0, len(cfg.InputFiles))
	paths := make([]string, 0, len(cfg.InputFiles))
	for _, path := range cfg.InputFiles {
		snapshot, err := loadSnapshot(path)
		if err != nil {
			logger.Error("failed to load snapshot", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Load error for %s: %v\n", path, err)
			continue
		}
		snapshots = append(snapshots, snapshot)
		paths = append(paths, path)
	}

	// Stems come from the loaded paths so each document in the batch
	// dispatches under its own filename.
	stems := export.Stems(paths)
	exportFn := func(ctx context.Context, i int, snapshot *model.AnalysisSnapshot) (string, error) {
		return exportSnapshot(ctx, cfg, snapshot, stems[i], dispatcher, db, logger)
	}

	b := export.NewBatchExporter(exportFn,
		export.WithConcurrency(cfg.BatchSize),
		export.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := b.ProcessBatchWithCallback(ctx, snapshots, func(r export.Result) {
		mu.Lock()
		defer mu.Unlock()

		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] Export failed: %s: %v\n", r.Index+1, len(snapshots), paths[r.Index], r.Err)
			return
		}
		fmt.Fprintf(out, "[%d/%d] Exported %s -> %s\n", r.Index+1, len(snapshots), paths[r.Index], r.Filename)
	})

	elapsed := time.Since(startTime)
	fmt.Fprintf(out, "\nBatch export completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// exportSnapshot renders one snapshot, dispatches the document, and
// records it in the archive. It returns the dispatched filename. The
// stem disambiguates the filename when one run exports several
// snapshots; it is empty for single exports.
func exportSnapshot(ctx context.Context, cfg *config.Config, snapshot *model.AnalysisSnapshot, stem string, dispatcher export.Dispatcher, db *database.ExportDB, logger *slog.Logger) (string, error) {
	data, mimeType, ext, err := renderSnapshot(cfg, snapshot)
	if err != nil {
		return "", err
	}

	filename := export.Filename(cfg.Product, stem, ext)
	if err := dispatcher.Dispatch(data, mimeType, filename); err != nil {
		return "", err
	}

	if db != nil {
		if _, err := db.SaveExport(ctx, snapshot, cfg.Format(), filename); err != nil {
			// An archive failure shouldn't fail the export; the document
			// is already on disk.
			logger.Error("failed to archive export", "filename", filename, "error", err)
		}
	}

	return filename, nil
}

// renderSnapshot renders the snapshot in the configured format.
// It returns the document bytes, MIME type, and file extension.
func renderSnapshot(cfg *config.Config, snapshot *model.AnalysisSnapshot) ([]byte, string, string, error) {
	var buf bytes.Buffer

	switch cfg.Format() {
	case config.FormatJSON:
		writer := report.NewJSONWriter(&buf, report.WithPrettyPrint())
		if _, err := writer.Write(snapshot); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), export.MIMEJSON, export.ExtJSON, nil

	case config.FormatHTML:
		writer := report.NewHTMLWriter(&buf)
		if _, err := writer.Write(snapshot); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), export.MIMEHTML, export.ExtHTML, nil

	default:
		writer := report.NewMarkdownWriter(&buf)
		if _, err := writer.Write(snapshot); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), export.MIMEMarkdown, export.ExtMarkdown, nil
	}
}

// loadSnapshot reads and parses a snapshot JSON file.
// A missing export timestamp is filled with the current time here, at the
// boundary, so every writer sees the same value.
func loadSnapshot(path string) (*model.AnalysisSnapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot model.AnalysisSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if snapshot.ExportedAt == "" {
		snapshot.ExportedAt = time.Now().Format(time.RFC3339)
	}

	return &snapshot, nil
}
