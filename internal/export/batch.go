package export

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/truthcast/truthcast/internal/model"
	"golang.org/x/sync/errgroup"
)

// ExportFunc renders and dispatches a single snapshot. It returns the
// filename the document was delivered under. The index is the snapshot's
// position in the batch so implementations can derive per-snapshot
// output names and never dispatch two snapshots under one filename.
type ExportFunc func(ctx context.Context, index int, snapshot *model.AnalysisSnapshot) (string, error)

// Result records the outcome of one snapshot in a batch export.
// Err is non-nil when that snapshot failed; the rest of the batch is
// unaffected.
type Result struct {
	// Index is the position of the snapshot in the input slice.
	Index int

	// Filename is the name the document was dispatched under.
	// Empty when the export failed.
	Filename string

	// Err holds the export error, if any.
	Err error
}

// BatchExporter exports multiple snapshots concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchExporter rather than adding batch
// functionality to the writers because:
// 1. It keeps each writer focused on rendering a single document
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchExporter struct {
	// exportFn renders and dispatches one snapshot.
	exportFn ExportFunc

	// concurrency is the maximum number of concurrent exports.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores per-snapshot outcomes.
	// Access is synchronized via mutex.
	results []Result
	mu      sync.Mutex
}

// BatchOption configures a BatchExporter.
type BatchOption func(*BatchExporter)

// WithBatchLogger sets a custom logger for batch exports.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchExporter) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent exports.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchExporter) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchExporter creates a new BatchExporter.
//
// The exportFn is called once per snapshot and must be safe for concurrent
// use; each call renders into its own buffer, so writers built per call
// satisfy this naturally.
func NewBatchExporter(exportFn ExportFunc, opts ...BatchOption) *BatchExporter {
	b := &BatchExporter{
		exportFn:    exportFn,
		concurrency: 4,
		results:     make([]Result, 0),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// ProcessBatch exports multiple snapshots concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each snapshot gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Per-snapshot failures are recorded in the returned results and do not
// stop the rest of the batch. The error return indicates cancellation.
func (b *BatchExporter) ProcessBatch(ctx context.Context, snapshots []*model.AnalysisSnapshot) ([]Result, error) {
	b.logger.Info("starting batch export",
		"total_snapshots", len(snapshots),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	b.results = make([]Result, len(snapshots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, snapshot := range snapshots {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			filename, err := b.exportFn(ctx, i, snapshot)

			// Store result regardless of error so callers can report
			// exactly which snapshots failed.
			b.mu.Lock()
			b.results[i] = Result{Index: i, Filename: filename, Err: err}
			b.mu.Unlock()

			if err != nil {
				b.logger.Warn("export failed",
					"index", i,
					"error", err,
				)
				// Don't return the error to errgroup - we want to
				// continue exporting the remaining snapshots.
				return nil
			}

			b.logger.Info("export completed",
				"index", i,
				"filename", filename,
			)

			return nil
		})
	}

	err := g.Wait()

	elapsed := time.Since(startTime)
	b.logger.Info("batch export complete",
		"total_snapshots", len(snapshots),
		"elapsed", elapsed,
	)

	return b.results, err
}

// ProcessBatchWithCallback exports multiple snapshots and calls a callback
// for each completed export. This is useful for streaming progress.
//
// The callback is called from the goroutine that completed the export, so
// it should be thread-safe if it accesses shared state.
func (b *BatchExporter) ProcessBatchWithCallback(
	ctx context.Context,
	snapshots []*model.AnalysisSnapshot,
	callback func(result Result),
) error {
	b.logger.Info("starting batch export with callback",
		"total_snapshots", len(snapshots),
		"concurrency", b.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, snapshot := range snapshots {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			filename, err := b.exportFn(ctx, i, snapshot)
			callback(Result{Index: i, Filename: filename, Err: err})

			return nil
		})
	}

	return g.Wait()
}
