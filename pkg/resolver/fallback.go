package resolver

import (
	"net/url"
	"strings"
)

// cornellSearchBaseURL is the Cornell LII full-text search endpoint used
// for federal-looking citations that fail section extraction, and as the
// ultimate fallback for citations with no recognized keywords.
const cornellSearchBaseURL = "https://www.law.cornell.edu/search/site"

// searchFallbackURL builds a Cornell LII search URL carrying the citation
// text as a percent-encoded path segment. Reserved characters (spaces, §)
// never appear literally in the result.
func searchFallbackURL(raw string) string {
	query := strings.TrimSpace(raw)
	if query == "" {
		return cornellSearchBaseURL
	}
	return cornellSearchBaseURL + "/" + url.PathEscape(query)
}
