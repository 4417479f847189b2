package resolver

import (
	"net/url"
	"regexp"
	"strings"
)

// State statute sources. URL templates follow each legislature's official
// (or, for Georgia, the most stable public) statute site.
const (
	californiaSectionBaseURL = "https://leginfo.legislature.ca.gov/faces/codes_displaySection.xhtml"
	newYorkLawsBaseURL       = "https://www.nysenate.gov/legislation/laws/"
	texasStatutesBaseURL     = "https://statutes.capitol.texas.gov/Docs/"
	floridaStatutesBaseURL   = "http://www.leg.state.fl.us/Statutes/index.cfm?App_mode=Display_Statute&Search_String=&URL="
	illinoisILCSBaseURL      = "https://www.ilga.gov/legislation/ilcs/fulltext.asp?DocName="
)

var (
	// chapterSectionPattern matches Texas/Florida style "{chapter}.{section}"
	// numbers such as "31.03" or "768.28".
	chapterSectionPattern = regexp.MustCompile(`(\d+)\.([0-9][0-9a-z.-]*)`)

	// ilcsPattern matches the three-part Illinois Compiled Statutes grammar
	// "{chapter} ILCS {act}/{section}", e.g. "720 ILCS 5/12-3".
	ilcsPattern = regexp.MustCompile(`(\d+)\s+ilcs\s+([0-9][0-9a-z.-]*)\s*/\s*([0-9][0-9a-z.-]*)`)

	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// stateHomepage is one entry in the recognized-state scan used when a
// citation names a state but no specific code family matches. Scan order is
// fixed so overlapping state keywords resolve deterministically.
type stateHomepage struct {
	name    string
	keyword string
	url     string
}

var stateHomepages = []stateHomepage{
	{"California", "california", "https://leginfo.legislature.ca.gov/faces/codes.xhtml"},
	{"New York", "new york", "https://www.nysenate.gov/legislation/laws"},
	{"Texas", "texas", "https://statutes.capitol.texas.gov/"},
	{"Florida", "florida", "http://www.leg.state.fl.us/statutes/"},
	{"Illinois", "illinois", "https://www.ilga.gov/legislation/ilcs/ilcs.asp"},
	{"Pennsylvania", "pennsylvania", "https://www.legis.state.pa.us/cfdocs/legis/LI/consCheck.cfm?txtType=HTM&ttl=00"},
	{"Ohio", "ohio", "https://codes.ohio.gov/ohio-revised-code"},
	{"Michigan", "michigan", "https://www.legislature.mi.gov/documents/publications/manual.pdf"},
	{"Georgia", "georgia", "https://law.justia.com/codes/georgia/"},
	{"North Carolina", "north carolina", "https://www.ncleg.gov/Laws/GeneralStatuteSections"},
}

// buildCaliforniaCode returns a builder for one California code family.
// Deep links use the leginfo section viewer, e.g.
// https://leginfo.legislature.ca.gov/faces/codes_displaySection.xhtml?lawCode=PEN&sectionNum=187
func buildCaliforniaCode(lawCodeParam, codeAbbrev string, phrases []string) func(string, string) (string, string, bool) {
	return func(_, norm string) (string, string, bool) {
		section, ok := sectionAfterAny(norm, phrases)
		if !ok || !validSection(section) {
			return "", "", false
		}
		resolvedURL := californiaSectionBaseURL + "?lawCode=" + lawCodeParam + "&sectionNum=" + url.QueryEscape(section)
		return resolvedURL, "Cal. " + codeAbbrev + " § " + section, true
	}
}

// buildNewYorkLaw returns a builder for one New York consolidated law.
// Deep links use the Senate site, e.g.
// https://www.nysenate.gov/legislation/laws/PEN/120.00
func buildNewYorkLaw(lawSlug, lawAbbrev string, phrases []string) func(string, string) (string, string, bool) {
	return func(_, norm string) (string, string, bool) {
		section, ok := sectionAfterAny(norm, phrases)
		if !ok || !validSection(section) {
			return "", "", false
		}
		resolvedURL := newYorkLawsBaseURL + lawSlug + "/" + url.PathEscape(section)
		return resolvedURL, "N.Y. " + lawAbbrev + " § " + section, true
	}
}

// buildTexasCode returns a builder for one Texas code. The capitol site
// serves whole chapters, so only the chapter number feeds the URL:
// https://statutes.capitol.texas.gov/Docs/PE/htm/PE.31.htm
func buildTexasCode(codeSlug, codeAbbrev string) func(string, string) (string, string, bool) {
	return func(_, norm string) (string, string, bool) {
		m := chapterSectionPattern.FindStringSubmatch(norm)
		if m == nil {
			return "", "", false
		}
		chapter := m[1]
		section := trimSectionPunct(m[1] + "." + m[2])
		if !validSection(section) {
			return "", "", false
		}
		resolvedURL := texasStatutesBaseURL + codeSlug + "/htm/" + codeSlug + "." + chapter + ".htm"
		return resolvedURL, "Tex. " + codeAbbrev + " § " + section, true
	}
}

// buildFloridaStatute constructs a deep link into the Florida Statutes
// section pages, which key on a zero-padded chapter directory plus the
// concatenated chapter and section number.
func buildFloridaStatute(_, norm string) (string, string, bool) {
	m := chapterSectionPattern.FindStringSubmatch(norm)
	if m == nil {
		return "", "", false
	}
	chapter := m[1]
	section := trimSectionPunct(m[2])
	if section == "" || !validSection(section) || len(chapter) > 4 {
		return "", "", false
	}
	resolvedURL := floridaStatutesBaseURL + padChapter(chapter) + "/" + chapter + section + ".html"
	return resolvedURL, "Fla. Stat. § " + chapter + "." + section, true
}

// buildIllinoisILCS parses the compound "{chapter} ILCS {act}/{section}"
// grammar into the ILGA full-text document name: the zero-padded chapter
// and act concatenated, then a "0K" section marker:
// 720 ILCS 5/12-3 → DocName=072000050K12-3
// All three slots must validate or the citation demotes to the Illinois
// statute homepage; a URL with a missing slot is never emitted.
func buildIllinoisILCS(_, norm string) (string, string, bool) {
	m := ilcsPattern.FindStringSubmatch(norm)
	if m == nil {
		return "", "", false
	}
	chapter := m[1]
	act := trimSectionPunct(m[2])
	section := trimSectionPunct(m[3])
	if !digitsPattern.MatchString(chapter) || len(chapter) > 4 {
		return "", "", false
	}
	if !digitsPattern.MatchString(act) || len(act) > 4 {
		return "", "", false
	}
	if !validSection(section) {
		return "", "", false
	}
	docName := padChapter(chapter) + padChapter(act) + "0K" + strings.ToUpper(section)
	resolvedURL := illinoisILCSBaseURL + url.QueryEscape(docName)
	return resolvedURL, chapter + " ILCS " + act + "/" + section, true
}

// padChapter left-pads a chapter or act number with zeros to four digits.
func padChapter(number string) string {
	for len(number) < 4 {
		number = "0" + number
	}
	return number
}

// stateHomepageRules expands the recognized-state table into one
// homepage-fallback rule per state, preserving scan order.
func stateHomepageRules() []jurisdictionRule {
	rules := make([]jurisdictionRule, 0, len(stateHomepages))
	for _, state := range stateHomepages {
		homepageURL := state.url
		keyword := state.keyword
		rules = append(rules, jurisdictionRule{
			id:           "state-homepage-" + strings.ReplaceAll(keyword, " ", "-"),
			jurisdiction: state.name,
			match: func(norm string) bool {
				return strings.Contains(norm, keyword)
			},
			fallbackURL: func(string) string {
				return homepageURL
			},
		})
	}
	return rules
}
