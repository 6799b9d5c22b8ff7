package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultProduct is the product slug embedded in download filenames
	// ("truthcast-report-2026-08-29.md").
	DefaultProduct = "truthcast"

	// DefaultOutputDir is where exported documents are written when no
	// output directory is specified.
	DefaultOutputDir = "."

	// DefaultBatchSize of 4 concurrent exports balances throughput with
	// resource usage. Rendering is CPU-light, so a small pool is enough
	// even for large snapshot lists.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "truthcast"
)

// Export format names. These appear in CLI flags, archive records, and
// the per-format sections of the configuration file.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config holds all configuration options for the TruthCast exporter.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ExportConfig, ArchiveConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// InputFiles are the snapshot JSON files to export.
	// Must contain at least one path.
	InputFiles []string

	// JSONExport selects the lossless JSON mirror instead of the
	// human-readable markdown document. Mutually exclusive with HTMLExport.
	JSONExport bool

	// HTMLExport selects the standalone HTML page rendered from the
	// markdown document. Mutually exclusive with JSONExport.
	HTMLExport bool

	// OutputDir is the directory exported documents are written into.
	// Created automatically if it doesn't exist.
	OutputDir string

	// Product is the slug embedded in download filenames.
	Product string

	// BatchSize is the number of concurrent exports when processing
	// multiple snapshot files.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Archive indicates whether to record each export in the SQLite
	// archive. This is automatically set to true when DBDir is configured.
	Archive bool

	// DBDir is the directory path for the archive database.
	// Defaults to the XDG data directory (~/.local/share/truthcast on Linux).
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .truthcast in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// FileConfig holds settings loaded from the configuration file.
	// This is populated by LoadConfigFile.
	FileConfig *File
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (output directory,
// product slug, batch size). This also serves as documentation of what
// the defaults are.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Product:   DefaultProduct,
		BatchSize: DefaultBatchSize,
	}
}

// Format returns the selected export format name.
// Markdown is the default when neither --json nor --html is set.
func (c *Config) Format() string {
	switch {
	case c.JSONExport:
		return FormatJSON
	case c.HTMLExport:
		return FormatHTML
	default:
		return FormatMarkdown
	}
}

// XDGDataDir returns the XDG data directory for TruthCast.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/truthcast
// On macOS: ~/Library/Application Support/truthcast
// On Windows: %LOCALAPPDATA%\truthcast
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for TruthCast.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any export begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one snapshot to export
	if len(c.InputFiles) == 0 {
		return ErrNoInput
	}

	// JSONExport and HTMLExport are mutually exclusive
	if c.JSONExport && c.HTMLExport {
		return ErrConflictingFormats
	}

	// BatchSize must be positive; zero would mean no exporting
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// Product must be non-empty; it is embedded in every filename
	if c.Product == "" {
		return ErrEmptyProduct
	}

	return nil
}
