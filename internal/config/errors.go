package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoInput is returned when no snapshot file is specified.
	// This error occurs when no positional argument provides an input file.
	ErrNoInput = errors.New("no input specified: provide at least one snapshot JSON file")

	// ErrConflictingFormats is returned when both --json and --html
	// are specified. Only one output format can be used at a time.
	ErrConflictingFormats = errors.New("conflicting export formats: --json and --html cannot be used together")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent exports, effectively
	// stopping the export process.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrEmptyProduct is returned when the product slug is empty.
	// The slug is embedded in every download filename and cannot be blank.
	ErrEmptyProduct = errors.New("invalid product: must be non-empty")
)
