package resolver

import (
	"net/url"
	"regexp"
	"strings"
)

// Cornell Legal Information Institute hosts free, stable deep links for the
// U.S. Code and the Code of Federal Regulations.
const (
	cornellUSCBaseURL = "https://www.law.cornell.edu/uscode/text/"
	cornellCFRBaseURL = "https://www.law.cornell.edu/cfr/text/"
)

var (
	// uscPattern matches "18 U.S.C. § 1001", "Title 18 USC 1001",
	// "18 United States Code 1001" and spacing/punctuation variants.
	uscPattern = regexp.MustCompile(`(?:\btitle\s+)?(\d+)\s*(?:u\.?\s?s\.?\s?c\b\.?|united states code)\s*§?\s*([0-9][0-9a-z./-]*)`)

	// cfrPattern matches "29 CFR 1910.134", "45 C.F.R. Part 164" and
	// "45 C.F.R. § 164.502".
	cfrPattern = regexp.MustCompile(`(\d+)\s*c\.?\s?f\.?\s?r\b\.?\s*(?:part\s+)?§?\s*([0-9][0-9a-z./-]*)`)

	// uscKeywordPattern detects federal U.S. Code language even when the
	// full citation pattern fails to parse.
	uscKeywordPattern = regexp.MustCompile(`\busc\b|u\.?\s?s\.?\s?c\b|united states code`)

	// cfrKeywordPattern detects CFR language.
	cfrKeywordPattern = regexp.MustCompile(`\bcfr\b|c\.?\s?f\.?\s?r\b`)

	// federalKeywordPattern marks citations as federal-looking for the
	// Cornell search fallback.
	federalKeywordPattern = regexp.MustCompile(`\busc\b|u\.?\s?s\.?\s?c\b|united states code|\bcfr\b|c\.?\s?f\.?\s?r\b|\bfederal\b`)
)

func matchUSC(norm string) bool {
	return uscKeywordPattern.MatchString(norm)
}

func matchCFR(norm string) bool {
	return cfrKeywordPattern.MatchString(norm)
}

func matchFederalKeyword(norm string) bool {
	return federalKeywordPattern.MatchString(norm)
}

// buildUSC constructs a Cornell LII deep link for a U.S. Code citation:
// https://www.law.cornell.edu/uscode/text/{title}/{section}
func buildUSC(_, norm string) (string, string, bool) {
	m := uscPattern.FindStringSubmatch(norm)
	if m == nil {
		return "", "", false
	}
	title := m[1]
	section := trimSectionPunct(m[2])
	if !validSection(section) {
		return "", "", false
	}
	resolvedURL := cornellUSCBaseURL + title + "/" + url.PathEscape(section)
	lawCode := title + " U.S.C. § " + section
	return resolvedURL, lawCode, true
}

// buildCFR constructs a Cornell LII deep link for a CFR citation:
// https://www.law.cornell.edu/cfr/text/{title}/{part}.{section} for full
// part.section references, or .../{title}/part-{part} for part-only ones.
func buildCFR(_, norm string) (string, string, bool) {
	m := cfrPattern.FindStringSubmatch(norm)
	if m == nil {
		return "", "", false
	}
	title := m[1]
	partSection := trimSectionPunct(m[2])
	if !validSection(partSection) {
		return "", "", false
	}
	var resolvedURL string
	if strings.Contains(partSection, ".") {
		resolvedURL = cornellCFRBaseURL + title + "/" + url.PathEscape(partSection)
	} else {
		resolvedURL = cornellCFRBaseURL + title + "/part-" + url.PathEscape(partSection)
	}
	lawCode := title + " C.F.R. § " + partSection
	return resolvedURL, lawCode, true
}
