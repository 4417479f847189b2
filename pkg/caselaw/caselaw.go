// Package caselaw builds links for court-opinion citations. Precedent
// cases have no single official online reporter across jurisdictions, so
// links target the Google Scholar case-law index, which covers federal and
// state opinions uniformly. Like statute resolution, link building is total:
// any citation string yields a usable search URL.
package caselaw

import (
	"net/url"
	"regexp"
	"strings"
)

// scholarBaseURL is the Google Scholar search endpoint. The as_sdt=6
// parameter restricts results to case law.
const scholarBaseURL = "https://scholar.google.com/scholar"

// casePattern matches reporter citations of the form
// "Rowland v. Christian, 69 Cal. 2d 108 (1968)" capturing the parties,
// volume, reporter, page, and year.
var casePattern = regexp.MustCompile(`([A-Z][a-zA-Z.'\-]+(?:\s+[a-zA-Z.'\-]+)*)\s+v\.?\s+([A-Z][a-zA-Z.'\-]+(?:\s+[a-zA-Z.'\-]+)*),?\s+(\d+)\s+([A-Za-z.\s\d]+?)\s+(\d+)\s+\((\d{4})\)`)

// CaseCitation holds the parsed components of a reporter citation.
type CaseCitation struct {
	Plaintiff string `json:"plaintiff"`
	Defendant string `json:"defendant"`
	Volume    string `json:"volume"`
	Reporter  string `json:"reporter"`
	Page      string `json:"page"`
	Year      string `json:"year"`
}

// Name returns the case name in "Plaintiff v. Defendant" form.
func (caseCitation *CaseCitation) Name() string {
	return caseCitation.Plaintiff + " v. " + caseCitation.Defendant
}

// String returns the canonical citation form.
func (caseCitation *CaseCitation) String() string {
	return caseCitation.Name() + ", " + caseCitation.Volume + " " +
		caseCitation.Reporter + " " + caseCitation.Page + " (" + caseCitation.Year + ")"
}

// Parse extracts reporter components from a case citation. ok=false means
// the citation does not follow reporter form; CaseURL still works on it.
func Parse(citation string) (*CaseCitation, bool) {
	m := casePattern.FindStringSubmatch(strings.TrimSpace(citation))
	if m == nil {
		return nil, false
	}
	return &CaseCitation{
		Plaintiff: m[1],
		Defendant: m[2],
		Volume:    m[3],
		Reporter:  strings.Join(strings.Fields(m[4]), " "),
		Page:      m[5],
		Year:      m[6],
	}, true
}

// CaseURL maps a case citation to a Google Scholar case-law search URL.
// The citation text is carried as a percent-encoded query parameter, so the
// result is always a well-formed absolute URL regardless of input.
func CaseURL(citation string) string {
	query := url.QueryEscape(strings.TrimSpace(citation))
	return scholarBaseURL + "?q=" + query + "&hl=en&as_sdt=6"
}

// ResolvedCase is the display record for one precedent citation.
type ResolvedCase struct {
	// Name is the case name when the citation parses, otherwise the
	// original text.
	Name string `json:"name"`

	// Citation is the original citation text, preserved verbatim.
	Citation string `json:"citation"`

	// URL is the case-law search link.
	URL string `json:"url"`

	// Year is the decision year when the citation parses.
	Year string `json:"year,omitempty"`
}

// Resolve maps one precedent citation to a ResolvedCase. Never fails.
func Resolve(citation string) ResolvedCase {
	resolved := ResolvedCase{
		Name:     citation,
		Citation: citation,
		URL:      CaseURL(citation),
	}
	if parsed, ok := Parse(citation); ok {
		resolved.Name = parsed.Name()
		resolved.Year = parsed.Year
	}
	return resolved
}
