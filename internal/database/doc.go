// Package database provides SQLite-based storage for the TruthCast
// export archive.
//
// This package implements the ExportDB, which stores:
//   - Every dispatched report with its format and filename
//   - The full analysis snapshot each report was rendered from
//   - The risk verdict, denormalized for cheap history listings
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
