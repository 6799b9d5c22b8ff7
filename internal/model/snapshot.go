package model

// AnalysisSnapshot is the full envelope of pipeline state being exported.
// It is constructed once per export request from pipeline state held
// elsewhere, is immutable during assembly, and owned exclusively by the
// caller for the duration of one export.
//
// Every pointer field is optional: a nil Detection, Report, Simulation,
// or Content simply omits the corresponding document section. Empty
// Claims/Evidences slices behave the same way.
type AnalysisSnapshot struct {
	// InputText is the original text the pipeline analyzed.
	InputText string `json:"inputText"`

	// Detection is the first-stage risk detection result, if any.
	Detection *DetectionResult `json:"detection,omitempty"`

	// Claims are the discrete checkable assertions extracted from InputText.
	// No omitempty: the structured mirror must keep an explicit empty
	// list distinguishable and parse back deep-equal.
	Claims []Claim `json:"claims"`

	// Evidences are the raw search evidences collected before alignment.
	// They are grouped post hoc by ClaimID; ownership is not exclusive.
	Evidences []Evidence `json:"evidences"`

	// Report is the aggregated multi-claim risk report, if the pipeline
	// reached the aggregation stage.
	Report *Report `json:"report,omitempty"`

	// Simulation is the social-reaction simulation, if performed.
	Simulation *Simulation `json:"simulation,omitempty"`

	// Content holds generated response-content drafts, if any.
	Content *ContentDraft `json:"content,omitempty"`

	// ExportedAt is the wall-clock timestamp of the export request,
	// supplied by the caller. The engine never reads the clock itself,
	// which keeps both serializations pure functions of the snapshot.
	ExportedAt string `json:"exportedAt"`
}

// DetectionResult is the first-stage screening verdict for the input text.
type DetectionResult struct {
	// Label is the risk label code (e.g. "high_risk", "credible").
	Label string `json:"label"`

	// Score is the numeric risk score assigned by the detector.
	Score float64 `json:"score"`

	// Confidence is the detector's confidence in Label, in [0,1].
	Confidence float64 `json:"confidence"`

	// Reasons lists free-text rationale strings for the verdict.
	Reasons []string `json:"reasons"`
}
