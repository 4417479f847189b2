package resolver

import (
	"regexp"
	"strings"
)

var (
	// sectionWordPattern matches "Section", "Sec." and "Sec" so they can be
	// unified with the § symbol before pattern matching.
	sectionWordPattern = regexp.MustCompile(`(?i)\bsec(?:tion)?\b\.?\s*`)

	// multiSpacePattern collapses runs of whitespace.
	multiSpacePattern = regexp.MustCompile(`\s+`)

	// sectionCharsPattern is the allowed character set for section numbers
	// embedded directly in a URL path or query. Anything outside this set
	// demotes the match to a fallback rather than risking a malformed URL.
	sectionCharsPattern = regexp.MustCompile(`^[0-9A-Za-z./-]+$`)

	// sectionTokenPattern extracts a section number from normalized text:
	// a digit followed by digits, letters, dots, dashes, or slashes.
	sectionTokenPattern = regexp.MustCompile(`[0-9][0-9a-z./-]*`)
)

// normalizeCitation prepares a raw citation for keyword and pattern
// matching: trimmed, lowercased, single-spaced, with all section-symbol
// variants ("§", "§§", "Sec.", "Section") unified to "§". The original
// casing is never used for matching but is preserved in result titles.
func normalizeCitation(raw string) string {
	norm := strings.TrimSpace(raw)
	norm = strings.ReplaceAll(norm, "§§", "§")
	norm = sectionWordPattern.ReplaceAllString(norm, "§ ")
	norm = multiSpacePattern.ReplaceAllString(norm, " ")
	return strings.ToLower(strings.TrimSpace(norm))
}

// validSection reports whether a section number is safe to embed in a URL.
func validSection(section string) bool {
	return section != "" && sectionCharsPattern.MatchString(section)
}

// trimSectionPunct strips sentence punctuation that the token pattern may
// have captured from the tail of a section number ("1001." at end of text).
func trimSectionPunct(section string) string {
	return strings.TrimRight(section, "./-")
}

// firstSectionAfter returns the first section-number token found at or
// after the given offset in the normalized citation, or "" if none exists.
func firstSectionAfter(norm string, offset int) string {
	if offset < 0 || offset >= len(norm) {
		return ""
	}
	token := sectionTokenPattern.FindString(norm[offset:])
	return trimSectionPunct(token)
}

// sectionAfterAny tries each keyword phrase in list order and extracts the
// first section number following the first phrase that is both present and
// followed by one. Phrase lists put the most specific phrase first, so list
// order is the tie-break, not string position.
func sectionAfterAny(norm string, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		idx := strings.Index(norm, phrase)
		if idx == -1 {
			continue
		}
		if section := firstSectionAfter(norm, idx+len(phrase)); section != "" {
			return section, true
		}
	}
	return "", false
}

// containsAny reports whether the normalized citation contains any of the
// given keyword phrases.
func containsAny(norm string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(norm, phrase) {
			return true
		}
	}
	return false
}
