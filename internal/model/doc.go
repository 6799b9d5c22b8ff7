// Package model defines the data structures exchanged between the
// text-risk-analysis pipeline and the export engine.
//
// The central type is AnalysisSnapshot: the full envelope of pipeline
// outputs (detection result, extracted claims, evidence, aggregated
// report, social-reaction simulation, and response-content drafts)
// assembled by the caller once per export request. The snapshot is
// read-only to the export engine and discarded after serialization.
//
// Design decision: Field names in JSON mirror the upstream pipeline's
// wire format exactly (snake_case inside sub-structures, the envelope's
// historical camelCase for inputText/exportedAt). This keeps the
// structured export a lossless syntactic mirror of what the pipeline
// produced: parsing the export reproduces the snapshot byte-for-byte.
package model
