// Package main provides the entry point for the TruthCast CLI.
//
// TruthCast exports text-risk analysis snapshots as shareable reports.
// It renders a snapshot as a lossless JSON mirror, a human-readable
// markdown document, or a standalone HTML page.
//
// Usage:
//
//	truthcast export <snapshot.json>
//	truthcast export --json <snapshot.json>
//
// See --help for all available options.
package main

// main is the entry point for TruthCast.
func main() {
	Execute()
}
