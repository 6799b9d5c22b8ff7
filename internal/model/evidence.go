package model

// SourceTypeWebSummary marks aggregated evidence: a single item that
// summarizes multiple underlying web sources. All other source types
// ("web_live", "local_kb", ...) describe raw evidence with one concrete
// source.
const SourceTypeWebSummary = "web_summary"

// Evidence is one piece of evidence supporting or refuting a claim.
//
// The type is a two-shape variant discriminated by SourceType:
//
//   - raw evidence (the default): one concrete source with Title and URL
//   - aggregated evidence (SourceType == SourceTypeWebSummary): carries
//     SourceURLs instead of a single URL, and its Summary doubles as the
//     display title
//
// Design decision: We keep one struct with a discriminator rather than
// two types behind an interface because the snapshot must round-trip
// through JSON unchanged, and the upstream pipeline emits both shapes
// in the same array. IsAggregated and DisplayTitle centralize the
// shape-specific behavior so call sites never guard optional fields
// ad hoc.
type Evidence struct {
	// EvidenceID identifies the evidence within the snapshot.
	EvidenceID string `json:"evidence_id,omitempty"`

	// ClaimID links raw evidence to a claim. Empty means the evidence
	// was never associated with a specific claim; the document groups
	// it under the "unknown" bucket.
	ClaimID string `json:"claim_id,omitempty"`

	// Title is the raw evidence's display title. Unused for aggregated
	// evidence, which titles itself with Summary.
	Title string `json:"title,omitempty"`

	// Source is the human-readable source name (publisher, agency).
	Source string `json:"source,omitempty"`

	// SourceType is the source type code and the shape discriminator.
	SourceType string `json:"source_type,omitempty"`

	// URL is the raw evidence's single link.
	URL string `json:"url,omitempty"`

	// SourceURLs are the aggregated evidence's underlying links.
	SourceURLs []string `json:"source_urls"`

	// PublishedAt is the source's publication date, if known.
	PublishedAt string `json:"published_at,omitempty"`

	// Summary is the evidence summary. For aggregated evidence it is
	// also the display title.
	Summary string `json:"summary,omitempty"`

	// Stance is the stance code of the evidence toward its claim.
	Stance string `json:"stance,omitempty"`

	// SourceWeight is the source credibility weight in [0,1].
	SourceWeight float64 `json:"source_weight"`

	// Domain is the optional domain code of the source.
	Domain string `json:"domain,omitempty"`

	// Authoritative marks evidence from an authoritative source.
	Authoritative bool `json:"authoritative,omitempty"`

	// AlignmentConfidence is the aligner's confidence that this
	// evidence belongs to its claim. Nil when the evidence was never
	// aligned (raw fallback rendering omits the row).
	AlignmentConfidence *float64 `json:"alignment_confidence,omitempty"`

	// AlignmentRationale explains why the aligner linked this evidence
	// to its claim.
	AlignmentRationale string `json:"alignment_rationale,omitempty"`
}

// IsAggregated reports whether the evidence is the aggregated shape.
func (e *Evidence) IsAggregated() bool {
	return e.SourceType == SourceTypeWebSummary
}

// DisplayTitle returns the title to render for the evidence: Summary
// for aggregated evidence, Title otherwise. Returns "-" when the
// relevant field is empty so the document never renders a blank heading.
func (e *Evidence) DisplayTitle() string {
	title := e.Title
	if e.IsAggregated() {
		title = e.Summary
	}
	if title == "" {
		return "-"
	}
	return title
}
