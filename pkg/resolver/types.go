// Package resolver maps free-text statute citations, as emitted by an
// upstream language-model analysis, to authoritative fetchable URLs.
//
// Resolution is a pure, total function: every input string produces exactly
// one ResolvedCitation. When a citation cannot be mapped to a direct statute
// page the resolver degrades to a search or homepage URL rather than
// failing, so a rendering layer can emit a clickable link unconditionally.
package resolver

// Well-known jurisdiction labels for non-state citations.
const (
	JurisdictionFederal = "federal"
	JurisdictionUnknown = "unknown"
)

// ResolvedCitation is the output of resolving one citation string.
type ResolvedCitation struct {
	// Title is the display text for the link. It preserves the original
	// citation text verbatim unless a display title was supplied.
	Title string `json:"title"`

	// URL is always a well-formed absolute HTTP(S) URL.
	URL string `json:"url"`

	// Jurisdiction is the governing source the citation was matched to:
	// a state name (e.g. "California"), "federal", or "unknown".
	Jurisdiction string `json:"jurisdiction"`

	// LawCode is the canonical citation extracted during matching
	// (e.g. "18 U.S.C. § 1001"), useful as a display badge independent of
	// the link text. Empty for fallback results.
	LawCode string `json:"law_code,omitempty"`

	// MatchedPattern identifies the rule that produced this result.
	MatchedPattern string `json:"matched_pattern"`

	// IsFallback is true when URL points to a search page or statute
	// homepage rather than a direct statute page.
	IsFallback bool `json:"is_fallback"`
}

// jurisdictionRule describes one recognized citation family. The rule table
// is an ordered list: rules are not mutually exclusive, so more specific
// patterns appear before generic ones and the first match wins.
type jurisdictionRule struct {
	// id names the rule and is reported as MatchedPattern.
	id string

	// jurisdiction is the label attached to results from this rule.
	jurisdiction string

	// match reports whether the rule applies to the normalized citation.
	match func(norm string) bool

	// build constructs a direct statute URL and canonical law code from the
	// citation. ok=false demotes the match to the rule's fallback URL.
	// Nil for homepage-only rules.
	build func(raw, norm string) (resolvedURL, lawCode string, ok bool)

	// fallbackURL constructs the URL used when build fails or is absent.
	fallbackURL func(raw string) string
}
