package report

import (
	"sort"
	"strconv"

	"github.com/truthcast/truthcast/internal/model"
)

// Numeric formatting contracts for the document form. These are fixed:
// evidence weights and alignment confidences render with 2 decimals,
// distribution fractions as percentages with 1 decimal, narrative
// probabilities as whole percentages.

// formatWeight renders a weight or confidence value with 2 decimals
// (0.8567 -> "0.86").
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatFraction renders a [0,1] fraction as a percentage with 1
// decimal (0.1234 -> "12.3%").
func formatFraction(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

// formatProbability renders a [0,1] probability as a whole percentage
// (0.42 -> "42%").
func formatProbability(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 0, 64) + "%"
}

// formatNumber renders a score exactly as the pipeline produced it:
// integral values without a decimal point, others with their shortest
// round-trip representation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// distributionEntry is one row of a rendered distribution table.
type distributionEntry struct {
	code     string
	fraction float64
}

// sortDistribution flattens a distribution map into a deterministic
// row order: fraction descending, ties broken by code ascending.
// Go's randomized map iteration must never leak into the document;
// two exports of the same snapshot have to be byte-identical.
func sortDistribution(dist map[string]float64) []distributionEntry {
	entries := make([]distributionEntry, 0, len(dist))
	for code, fraction := range dist {
		entries = append(entries, distributionEntry{code: code, fraction: fraction})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].fraction != entries[j].fraction {
			return entries[i].fraction > entries[j].fraction
		}
		return entries[i].code < entries[j].code
	})
	return entries
}

// orDash substitutes "-" for an empty string so attribute tables never
// contain blank cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// claimTextByID builds a claim_id -> claim_text lookup for the raw
// evidence fallback.
func claimTextByID(claims []model.Claim) map[string]string {
	texts := make(map[string]string, len(claims))
	for _, c := range claims {
		texts[c.ClaimID] = c.ClaimText
	}
	return texts
}
