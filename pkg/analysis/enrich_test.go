package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"winProbability": "65%",
	"winMessage": "Strong case based on clear liability",
	"legalArea": "Personal Injury",
	"jurisdiction": "California",
	"relevantLaws": [
		{"citation": "California Civil Code § 1708", "description": "Duty of Care"},
		{"citation": "California Vehicle Code § 21703", "description": "Following Too Closely"},
		{"citation": "18 U.S.C. § 1001", "description": "False Statements"}
	],
	"precedentCases": [
		{"citation": "Rowland v. Christian, 69 Cal. 2d 108 (1968)", "summary": "Established duty of care"},
		{"citation": "Brown v. Kendall, 60 Mass. 292 (1850)", "summary": "Established negligence standard"}
	],
	"keyFactors": ["Rear-end collision", "Police report filed"]
}`

func TestParseResponse(t *testing.T) {
	raw, err := ParseResponse(sampleResponse)
	require.NoError(t, err)

	assert.Equal(t, "65%", raw.WinProbability)
	assert.Equal(t, "Personal Injury", raw.LegalArea)
	assert.Len(t, raw.RelevantLaws, 3)
	assert.Len(t, raw.PrecedentCases, 2)
	assert.Equal(t, "California Civil Code § 1708", raw.RelevantLaws[0].Citation)
}

func TestParseResponseStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + sampleResponse + "\n```"
	raw, err := ParseResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, "65%", raw.WinProbability)

	bareFence := "```\n" + sampleResponse + "\n```"
	raw, err = ParseResponse(bareFence)
	require.NoError(t, err)
	assert.Len(t, raw.RelevantLaws, 3)
}

func TestParseResponseErrors(t *testing.T) {
	_, err := ParseResponse("")
	assert.Error(t, err)

	_, err = ParseResponse("I'm sorry, I cannot provide an analysis.")
	assert.Error(t, err)

	_, err = ParseResponse("{\"winProbability\": ")
	assert.Error(t, err)
}

func TestEnrich(t *testing.T) {
	raw, err := ParseResponse(sampleResponse)
	require.NoError(t, err)

	enriched := Enrich(raw)

	require.NotEmpty(t, enriched.ID)
	assert.Equal(t, "65%", enriched.WinProbability)
	require.Len(t, enriched.Laws, 3)
	require.Len(t, enriched.Precedents, 2)

	// Laws keep model output order and gain resolved links.
	first := enriched.Laws[0]
	assert.Equal(t, "Duty of Care (California Civil Code § 1708)", first.Title)
	assert.Equal(t, "https://leginfo.legislature.ca.gov/faces/codes_displaySection.xhtml?lawCode=CIV&sectionNum=1708", first.URL)
	assert.Equal(t, "Cal. Civ. Code § 1708", first.LawCode)
	assert.Equal(t, "California", first.Jurisdiction)
	assert.False(t, first.IsFallback)
	assert.NotEmpty(t, first.ID)

	federal := enriched.Laws[2]
	assert.Equal(t, "https://www.law.cornell.edu/uscode/text/18/1001", federal.URL)
	assert.Equal(t, "federal", federal.Jurisdiction)

	// Precedents are ranked by position.
	assert.Equal(t, "High", enriched.Precedents[0].Relevance)
	assert.Equal(t, "Medium", enriched.Precedents[1].Relevance)
	assert.Equal(t, "Established duty of care (Rowland v. Christian)", enriched.Precedents[0].Name)
	assert.Equal(t, "1968", enriched.Precedents[0].Year)
	assert.Contains(t, enriched.Precedents[0].URL, "scholar.google.com")
}

func TestEnrichCapsRecordCounts(t *testing.T) {
	raw := &RawAnalysis{WinProbability: "50%"}
	for i := 0; i < 10; i++ {
		raw.RelevantLaws = append(raw.RelevantLaws, RawLaw{Citation: "18 U.S.C. § 1001"})
		raw.PrecedentCases = append(raw.PrecedentCases, RawPrecedent{Citation: "Brown v. Kendall, 60 Mass. 292 (1850)"})
	}

	enriched := Enrich(raw)

	assert.Len(t, enriched.Laws, 4)
	assert.Len(t, enriched.Precedents, 3)
	assert.Equal(t, "Moderate", enriched.Precedents[2].Relevance)
}

func TestEnrichUnresolvableCitationsFallBack(t *testing.T) {
	raw := &RawAnalysis{
		RelevantLaws: []RawLaw{
			{Citation: "Martian Traffic Code § 5", Description: "Hovercraft Rules"},
			{Citation: ""},
		},
		PrecedentCases: []RawPrecedent{
			{Citation: "that one case"},
		},
	}

	enriched := Enrich(raw)

	require.Len(t, enriched.Laws, 2)
	assert.True(t, enriched.Laws[0].IsFallback)
	assert.Equal(t, "unknown", enriched.Laws[0].Jurisdiction)
	assert.NotEmpty(t, enriched.Laws[0].URL)
	assert.NotEmpty(t, enriched.Laws[1].URL, "empty citation must still produce a link")

	require.Len(t, enriched.Precedents, 1)
	assert.NotEmpty(t, enriched.Precedents[0].URL)
	assert.False(t, strings.ContainsAny(enriched.Precedents[0].URL, " §"))
}

func TestParseAndEnrich(t *testing.T) {
	enriched, err := ParseAndEnrich("```json\n" + sampleResponse + "\n```")
	require.NoError(t, err)
	assert.Len(t, enriched.Laws, 3)

	_, err = ParseAndEnrich("not json")
	assert.Error(t, err)
}
