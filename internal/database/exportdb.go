package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/truthcast/truthcast/internal/model"
)

// ExportDB provides SQLite-based storage for the export archive.
// Every dispatched report can be recorded here together with the full
// snapshot it was rendered from, so past exports can be listed and
// re-inspected without the original input files.
//
// Design decision: We use a single database file for all exports rather
// than one file per report. This keeps history queries trivial and makes
// backup/restore a single-file operation.
type ExportDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ExportDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an ExportDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ExportDB, error) {
	dbPath := filepath.Join(dbDir, "truthcast.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer, so a single connection avoids
	// lock contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	edb := &ExportDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := edb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return edb, nil
}

// Close closes the database connection.
func (edb *ExportDB) Close() error {
	return edb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (edb *ExportDB) createTables() error {
	schema := `
	-- Exports store every dispatched report together with its snapshot
	CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		exported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		format TEXT NOT NULL,
		filename TEXT NOT NULL,
		risk_label TEXT,
		risk_score REAL,
		snapshot_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exports_exported_at ON exports(exported_at);
	CREATE INDEX IF NOT EXISTS idx_exports_format ON exports(format);
	CREATE INDEX IF NOT EXISTS idx_exports_risk_label ON exports(risk_label);
	`

	_, err := edb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveExport records a dispatched report in the archive.
// The full snapshot is stored as JSON alongside the risk verdict so that
// history listings don't need to deserialize the whole document.
func (edb *ExportDB) SaveExport(ctx context.Context, snapshot *model.AnalysisSnapshot, format, filename string) (int64, error) {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	var riskLabel string
	var riskScore float64
	if snapshot.Report != nil {
		riskLabel = snapshot.Report.RiskLabel
		riskScore = snapshot.Report.RiskScore
	}

	query := `
	INSERT INTO exports (format, filename, risk_label, risk_score, snapshot_json)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := edb.db.ExecContext(ctx, query,
		format,
		filename,
		riskLabel,
		riskScore,
		string(snapshotJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save export: %w", err)
	}

	return result.LastInsertId()
}

// ExportMetadata contains summary information about an archived export.
// This is used for displaying export history without loading the snapshot.
type ExportMetadata struct {
	// ID is the unique identifier of the export in the database.
	ID int64

	// ExportedAt is when the report was dispatched.
	ExportedAt time.Time

	// Format is the export format (json, markdown, html).
	Format string

	// Filename is the name the document was dispatched under.
	Filename string

	// RiskLabel is the overall risk verdict of the archived snapshot.
	RiskLabel string

	// RiskScore is the overall risk score of the archived snapshot.
	RiskScore float64
}

// ListExports retrieves export metadata, most recent first.
// A limit of 0 or less returns all records.
func (edb *ExportDB) ListExports(ctx context.Context, limit int) ([]ExportMetadata, error) {
	query := `
	SELECT id, exported_at, format, filename, risk_label, risk_score
	FROM exports
	ORDER BY exported_at DESC, id DESC
	`
	args := make([]interface{}, 0)

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := edb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var results []ExportMetadata
	for rows.Next() {
		var meta ExportMetadata
		var timestamp string
		var riskLabel sql.NullString
		var riskScore sql.NullFloat64

		if err := rows.Scan(&meta.ID, &timestamp, &meta.Format, &meta.Filename, &riskLabel, &riskScore); err != nil {
			return nil, fmt.Errorf("failed to scan export metadata: %w", err)
		}

		meta.ExportedAt = parseTimestamp(timestamp)
		meta.RiskLabel = riskLabel.String
		meta.RiskScore = riskScore.Float64

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetSnapshotByID retrieves the archived snapshot of an export.
// Returns nil without error when no export with that ID exists.
func (edb *ExportDB) GetSnapshotByID(ctx context.Context, id int64) (*model.AnalysisSnapshot, error) {
	query := `
	SELECT snapshot_json FROM exports
	WHERE id = ?
	`

	var snapshotJSON string
	err := edb.db.QueryRowContext(ctx, query, id).Scan(&snapshotJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export: %w", err)
	}

	var snapshot model.AnalysisSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &snapshot, nil
}

// LatestSnapshot retrieves the most recently archived snapshot.
// Returns nil without error when the archive is empty.
func (edb *ExportDB) LatestSnapshot(ctx context.Context) (*model.AnalysisSnapshot, error) {
	query := `
	SELECT snapshot_json FROM exports
	ORDER BY exported_at DESC, id DESC
	LIMIT 1
	`

	var snapshotJSON string
	err := edb.db.QueryRowContext(ctx, query).Scan(&snapshotJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest export: %w", err)
	}

	var snapshot model.AnalysisSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return &snapshot, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
