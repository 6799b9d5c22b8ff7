package report

import "github.com/truthcast/truthcast/internal/model"

// unknownClaimID is the sentinel bucket for raw evidence that carries
// no claim_id.
const unknownClaimID = "unknown"

// unknownClaimText is the heading placeholder for evidence buckets
// whose claim_id resolves to no known claim.
const unknownClaimText = "未关联到具体主张"

// evidenceGroup is one subsection of the evidence chain: a claim
// heading plus the evidences rendered under it.
type evidenceGroup struct {
	// claimID and claimText form the subsection heading.
	claimID   string
	claimText string

	// finalStance is the aggregate stance, set only for aligned groups.
	finalStance string

	// evidences render in the order given here. May be empty for an
	// aligned group, which renders an explicit placeholder instead of
	// omitting the claim's subsection.
	evidences []model.Evidence
}

// buildEvidenceGroups selects the evidence rendering strategy and
// returns the resulting subsections.
//
// The two strategies are mutually exclusive, evaluated in order:
//
//  1. Aligned: whenever the report exists and has claim reports, each
//     ClaimReport becomes one group in the report's order. Raw
//     evidence never appears in this case, even if present.
//  2. Raw fallback: only when the aligned precondition fails and raw
//     evidence exists. Evidence is bucketed by claim_id in first-seen
//     order, with id-less evidence under the "unknown" sentinel, and
//     headings resolved against the extracted claims.
//
// When neither precondition holds the result is empty and the whole
// evidence section is omitted.
//
// The boolean result reports whether the aligned strategy was chosen;
// raw fallback groups render a reduced attribute table because their
// evidence was never aligned.
func buildEvidenceGroups(rep *model.Report, evidences []model.Evidence, claims []model.Claim) ([]evidenceGroup, bool) {
	if rep != nil && len(rep.ClaimReports) > 0 {
		groups := make([]evidenceGroup, 0, len(rep.ClaimReports))
		for _, cr := range rep.ClaimReports {
			groups = append(groups, evidenceGroup{
				claimID:     cr.Claim.ClaimID,
				claimText:   cr.Claim.ClaimText,
				finalStance: cr.FinalStance,
				evidences:   cr.Evidences,
			})
		}
		return groups, true
	}

	if len(evidences) == 0 {
		return nil, false
	}

	texts := claimTextByID(claims)
	var order []string
	buckets := make(map[string][]model.Evidence)
	for _, e := range evidences {
		id := e.ClaimID
		if id == "" {
			id = unknownClaimID
		}
		if _, seen := buckets[id]; !seen {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], e)
	}

	groups := make([]evidenceGroup, 0, len(order))
	for _, id := range order {
		text, ok := texts[id]
		if !ok {
			text = unknownClaimText
		}
		groups = append(groups, evidenceGroup{
			claimID:   id,
			claimText: text,
			evidences: buckets[id],
		})
	}
	return groups, false
}
