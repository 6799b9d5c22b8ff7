package model

// Claim is a discrete, checkable assertion extracted from the input text.
// ClaimID is unique within one AnalysisSnapshot.
type Claim struct {
	// ClaimID uniquely identifies the claim within the snapshot.
	ClaimID string `json:"claim_id"`

	// ClaimText is the assertion in natural language.
	ClaimText string `json:"claim_text"`

	// Entity, Time, Location, and Value are optional structured slots
	// the extractor may have filled from the claim sentence.
	Entity   string `json:"entity,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	Value    string `json:"value,omitempty"`
}

// ClaimReport pairs a claim with its final stance and the evidence the
// aggregation stage aligned to it.
//
// Unlike raw Evidence in AnalysisSnapshot.Evidences, which is grouped
// post hoc by ClaimID, the Evidences here are owned exclusively by this
// ClaimReport and are considered aligned to this claim only.
type ClaimReport struct {
	// Claim is the claim this report concludes on.
	Claim Claim `json:"claim"`

	// FinalStance is the aggregate stance code toward the claim
	// (e.g. "support", "refute", "insufficient_evidence").
	FinalStance string `json:"final_stance"`

	// Evidences are the aligned evidences, in aggregation order.
	Evidences []Evidence `json:"evidences"`

	// Notes are free-text analyst notes attached to the conclusion.
	Notes []string `json:"notes"`
}

// Report is the aggregated risk report across all claims.
type Report struct {
	// RiskLabel is the overall risk label code.
	RiskLabel string `json:"risk_label"`

	// RiskLevel is the coarse level code ("low", "medium", "high", "critical").
	RiskLevel string `json:"risk_level"`

	// RiskScore is the overall numeric risk score.
	RiskScore float64 `json:"risk_score"`

	// DetectedScenario is the scenario code the classifier assigned
	// (e.g. "health", "education", "governance").
	DetectedScenario string `json:"detected_scenario"`

	// EvidenceDomains lists the domain codes the evidence covered.
	EvidenceDomains []string `json:"evidence_domains"`

	// Summary is the report's prose summary.
	Summary string `json:"summary"`

	// SuspiciousPoints lists concrete suspicious observations.
	SuspiciousPoints []string `json:"suspicious_points"`

	// ClaimReports holds the per-claim conclusions, in pipeline order.
	ClaimReports []ClaimReport `json:"claim_reports"`
}
