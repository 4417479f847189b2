package resolver

// ruleTable is the ordered, process-wide rule list. It is built once at
// package initialization and never mutated: federal code patterns first,
// then specific state code families, then recognized-state homepages, then
// the federal and generic search fallbacks. When several rules could match
// one citation, the earliest rule in this table wins.
var ruleTable = buildRuleTable()

func buildRuleTable() []jurisdictionRule {
	rules := []jurisdictionRule{
		{
			id:           "usc",
			jurisdiction: JurisdictionFederal,
			match:        matchUSC,
			build:        buildUSC,
			fallbackURL:  searchFallbackURL,
		},
		{
			id:           "cfr",
			jurisdiction: JurisdictionFederal,
			match:        matchCFR,
			build:        buildCFR,
			fallbackURL:  searchFallbackURL,
		},
		{
			id:           "california-penal",
			jurisdiction: "California",
			match: func(norm string) bool {
				return containsAny(norm, californiaPenalPhrases)
			},
			build:       buildCaliforniaCode("PEN", "Penal Code", californiaPenalPhrases),
			fallbackURL: stateFallback("California"),
		},
		{
			id:           "california-civil",
			jurisdiction: "California",
			match: func(norm string) bool {
				return containsAny(norm, californiaCivilPhrases)
			},
			build:       buildCaliforniaCode("CIV", "Civ. Code", californiaCivilPhrases),
			fallbackURL: stateFallback("California"),
		},
		{
			id:           "california-vehicle",
			jurisdiction: "California",
			match: func(norm string) bool {
				return containsAny(norm, californiaVehiclePhrases)
			},
			build:       buildCaliforniaCode("VEH", "Veh. Code", californiaVehiclePhrases),
			fallbackURL: stateFallback("California"),
		},
		{
			id:           "newyork-penal",
			jurisdiction: "New York",
			match: func(norm string) bool {
				return containsAny(norm, newYorkPhrases) && containsAny(norm, []string{"penal"})
			},
			build:       buildNewYorkLaw("PEN", "Penal Law", []string{"penal law", "penal code", "penal"}),
			fallbackURL: stateFallback("New York"),
		},
		{
			id:           "newyork-civil",
			jurisdiction: "New York",
			match: func(norm string) bool {
				return containsAny(norm, newYorkPhrases) && containsAny(norm, []string{"civil"})
			},
			build:       buildNewYorkLaw("CVP", "C.P.L.R.", []string{"civil practice law", "civil practice", "civil"}),
			fallbackURL: stateFallback("New York"),
		},
		{
			id:           "texas-penal",
			jurisdiction: "Texas",
			match: func(norm string) bool {
				return containsAny(norm, texasPhrases) && containsAny(norm, []string{"penal"})
			},
			build:       buildTexasCode("PE", "Penal Code"),
			fallbackURL: stateFallback("Texas"),
		},
		{
			id:           "texas-civil",
			jurisdiction: "Texas",
			match: func(norm string) bool {
				return containsAny(norm, texasPhrases) && containsAny(norm, []string{"civil"})
			},
			build:       buildTexasCode("CP", "Civ. Prac. & Rem. Code"),
			fallbackURL: stateFallback("Texas"),
		},
		{
			id:           "florida-statutes",
			jurisdiction: "Florida",
			match: func(norm string) bool {
				return containsAny(norm, floridaPhrases)
			},
			build:       buildFloridaStatute,
			fallbackURL: stateFallback("Florida"),
		},
		{
			id:           "illinois-ilcs",
			jurisdiction: "Illinois",
			match: func(norm string) bool {
				return containsAny(norm, []string{"ilcs", "illinois compiled statutes"})
			},
			build:       buildIllinoisILCS,
			fallbackURL: stateFallback("Illinois"),
		},
	}

	rules = append(rules, stateHomepageRules()...)

	rules = append(rules,
		jurisdictionRule{
			id:           "federal-search",
			jurisdiction: JurisdictionFederal,
			match:        matchFederalKeyword,
			fallbackURL:  searchFallbackURL,
		},
		jurisdictionRule{
			id:           "unknown-search",
			jurisdiction: JurisdictionUnknown,
			match:        func(string) bool { return true },
			fallbackURL:  searchFallbackURL,
		},
	)

	return rules
}

// Keyword phrase sets for state code families. Matching is done against the
// normalized (lowercased) citation, so phrases are lowercase.
var (
	californiaPenalPhrases   = []string{"california penal code", "ca penal code", "cal. pen. code"}
	californiaCivilPhrases   = []string{"california civil code", "ca civil code", "cal. civ. code"}
	californiaVehiclePhrases = []string{"california vehicle code", "ca vehicle code", "cal. veh. code"}
	newYorkPhrases           = []string{"new york", "n.y.", "nys"}
	texasPhrases             = []string{"texas", "tex."}
	floridaPhrases           = []string{"florida", "fla. stat", "f.s."}
)

// stateFallback returns a fallback builder pointing at the named state's
// statute homepage.
func stateFallback(stateName string) func(string) string {
	for _, state := range stateHomepages {
		if state.name == stateName {
			homepageURL := state.url
			return func(string) string { return homepageURL }
		}
	}
	return searchFallbackURL
}

// Resolve maps one citation string to a ResolvedCitation. It never fails:
// unparseable, empty, or unrecognized input degrades to a search or
// homepage fallback. The call is pure and safe for concurrent use.
func Resolve(citation string) ResolvedCitation {
	return ResolveWithTitle(citation, "")
}

// ResolveWithTitle is Resolve with an explicit display title. When
// displayTitle is empty the original citation text is preserved verbatim as
// the title.
func ResolveWithTitle(citation, displayTitle string) ResolvedCitation {
	title := displayTitle
	if title == "" {
		title = citation
	}

	norm := normalizeCitation(citation)
	if norm == "" {
		return ResolvedCitation{
			Title:          title,
			URL:            cornellSearchBaseURL,
			Jurisdiction:   JurisdictionUnknown,
			MatchedPattern: "empty",
			IsFallback:     true,
		}
	}

	for i := range ruleTable {
		rule := &ruleTable[i]
		if !rule.match(norm) {
			continue
		}
		if rule.build != nil {
			if resolvedURL, lawCode, ok := rule.build(citation, norm); ok {
				return ResolvedCitation{
					Title:          title,
					URL:            resolvedURL,
					Jurisdiction:   rule.jurisdiction,
					LawCode:        lawCode,
					MatchedPattern: rule.id,
				}
			}
		}
		return ResolvedCitation{
			Title:          title,
			URL:            rule.fallbackURL(citation),
			Jurisdiction:   rule.jurisdiction,
			MatchedPattern: rule.id,
			IsFallback:     true,
		}
	}

	// Unreachable: the final table rule matches every citation.
	return ResolvedCitation{
		Title:          title,
		URL:            searchFallbackURL(citation),
		Jurisdiction:   JurisdictionUnknown,
		MatchedPattern: "unknown-search",
		IsFallback:     true,
	}
}

// RuleIDs returns the identifiers of the rule table in dispatch order,
// primarily for CLI display and tests of scan-order determinism.
func RuleIDs() []string {
	ids := make([]string, len(ruleTable))
	for i := range ruleTable {
		ids[i] = ruleTable[i].id
	}
	return ids
}

// RuleJurisdictions returns the jurisdiction label for each rule in
// dispatch order, aligned with RuleIDs.
func RuleJurisdictions() []string {
	jurisdictions := make([]string, len(ruleTable))
	for i := range ruleTable {
		jurisdictions[i] = ruleTable[i].jurisdiction
	}
	return jurisdictions
}
