// Package report assembles and serializes analysis snapshots.
//
// This package contains writers for different output formats:
//   - JSONWriter: Lossless structured interchange output
//   - MarkdownWriter: Human-readable formatted document
//   - HTMLWriter: Standalone HTML rendering of the document
//   - SimpleWriter: Compact text summary for terminal display
//
// Design decision: We separate report writing from the snapshot data
// structures (which are in the model package) to follow the single
// responsibility principle. This allows adding new output formats
// without modifying the core data structures.
//
// All writers are pure transformations: given the same snapshot and the
// same label translator, repeated calls produce byte-identical output.
// Nothing here reads the clock, the environment, or shared mutable
// state, so concurrent exports of different snapshots need no
// coordination.
package report
