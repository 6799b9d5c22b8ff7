// Package config provides configuration structures and utilities for the
// TruthCast exporter. It defines the main options for export formats,
// output locations, batch sizes, and archive settings.
package config
