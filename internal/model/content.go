package model

import "sort"

// ContentDraft holds generated response-content drafts: clarification
// variants, FAQ entries, and per-platform scripts.
type ContentDraft struct {
	// Clarifications are the generated clarification variants.
	Clarifications []ClarificationVariant `json:"clarifications"`

	// PrimaryClarificationID optionally selects the primary variant.
	// A stale ID (no matching variant) is not an error; selection
	// falls back to the latest variant.
	PrimaryClarificationID string `json:"primary_clarification_id,omitempty"`

	// FAQ are generated question/answer pairs.
	FAQ []FAQItem `json:"faq"`

	// PlatformScripts are ready-to-publish texts per distribution channel.
	PlatformScripts []PlatformScript `json:"platform_scripts"`
}

// ClarificationVariant is one generated clarification draft at three
// lengths, tagged with a style and a generation timestamp.
type ClarificationVariant struct {
	// ID uniquely identifies the variant within the draft.
	ID string `json:"id"`

	// Style is the writing style code ("formal", "friendly", "neutral").
	Style string `json:"style,omitempty"`

	// GeneratedAt is the generation timestamp. It must be a fixed,
	// zero-padded sortable textual format (ISO-8601): variant selection
	// compares these strings lexicographically.
	GeneratedAt string `json:"generated_at,omitempty"`

	// Content holds the draft at its three lengths.
	Content ClarificationContent `json:"content"`
}

// ClarificationContent is a clarification draft at three lengths.
type ClarificationContent struct {
	Short  string `json:"short,omitempty"`
	Medium string `json:"medium,omitempty"`
	Long   string `json:"long,omitempty"`
}

// FAQItem is one generated question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PlatformScript is ready-to-publish text tailored to one channel.
type PlatformScript struct {
	// Platform is the distribution channel identifier (e.g. "weibo").
	// It renders verbatim as the subsection heading.
	Platform string `json:"platform"`

	// Content is the raw script text, rendered verbatim.
	Content string `json:"content"`
}

// PrimaryClarification resolves the primary clarification variant.
//
// Resolution order:
//  1. nil receiver: nil.
//  2. PrimaryClarificationID set and matching a variant: that variant.
//  3. Otherwise (including a stale ID): the variant with the
//     lexicographically greatest GeneratedAt. Ties resolve to whichever
//     the stable sort leaves last, so identical input always yields the
//     same variant.
//  4. Empty variant list: nil.
func (c *ContentDraft) PrimaryClarification() *ClarificationVariant {
	if c == nil || len(c.Clarifications) == 0 {
		return nil
	}

	if c.PrimaryClarificationID != "" {
		for i := range c.Clarifications {
			if c.Clarifications[i].ID == c.PrimaryClarificationID {
				return &c.Clarifications[i]
			}
		}
		// Stale ID: fall through to the latest-variant rule rather
		// than failing the whole section.
	}

	latest := 0
	for i := 1; i < len(c.Clarifications); i++ {
		if c.Clarifications[i].GeneratedAt >= c.Clarifications[latest].GeneratedAt {
			latest = i
		}
	}
	return &c.Clarifications[latest]
}

// SecondaryClarifications returns every variant except the primary,
// sorted by GeneratedAt descending. The sort is stable so identical
// input yields an identical order.
func (c *ContentDraft) SecondaryClarifications() []ClarificationVariant {
	primary := c.PrimaryClarification()
	if primary == nil {
		return nil
	}

	others := make([]ClarificationVariant, 0, len(c.Clarifications))
	for _, v := range c.Clarifications {
		if v.ID != primary.ID {
			others = append(others, v)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].GeneratedAt > others[j].GeneratedAt
	})
	return others
}
