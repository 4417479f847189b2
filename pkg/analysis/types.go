// Package analysis turns the structured case-assessment payload produced by
// an upstream language model into display-ready records: every statute
// citation gains an authoritative link, every precedent a case-law link.
// The upstream LLM call itself is out of scope; this package only consumes
// its JSON output.
package analysis

// Limits on how many records one analysis carries, matching what the
// assessment prompt asks the model for.
const (
	maxLaws       = 4
	maxPrecedents = 3
)

// RawLaw is one relevant-law entry as emitted by the model.
type RawLaw struct {
	Citation    string `json:"citation"`
	Description string `json:"description"`
}

// RawPrecedent is one precedent-case entry as emitted by the model.
type RawPrecedent struct {
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
}

// RawAnalysis is the structured assessment payload emitted by the model.
// Field names mirror the JSON contract of the analysis prompt.
type RawAnalysis struct {
	WinProbability string         `json:"winProbability"`
	WinMessage     string         `json:"winMessage"`
	LegalArea      string         `json:"legalArea"`
	Jurisdiction   string         `json:"jurisdiction"`
	RelevantLaws   []RawLaw       `json:"relevantLaws"`
	PrecedentCases []RawPrecedent `json:"precedentCases"`
	KeyFactors     []string       `json:"keyFactors"`
}

// LawLink is the display record for one resolved statute citation. It maps
// onto the persisted row shape {law_title, law_url, law_code, description}.
type LawLink struct {
	ID          string `json:"id"`
	Title       string `json:"law_title"`
	URL         string `json:"law_url"`
	LawCode     string `json:"law_code,omitempty"`
	Description string `json:"description,omitempty"`

	Jurisdiction string `json:"jurisdiction"`
	IsFallback   bool   `json:"is_fallback"`
}

// PrecedentLink is the display record for one resolved precedent case.
type PrecedentLink struct {
	ID        string `json:"id"`
	Name      string `json:"case_name"`
	Citation  string `json:"case_citation"`
	Summary   string `json:"summary,omitempty"`
	URL       string `json:"case_url"`
	Year      string `json:"year,omitempty"`
	Relevance string `json:"relevance"`
}

// CaseAnalysis is the enriched, display-ready assessment.
type CaseAnalysis struct {
	ID             string          `json:"id"`
	WinProbability string          `json:"win_probability"`
	WinMessage     string          `json:"win_message"`
	LegalArea      string          `json:"legal_area,omitempty"`
	Jurisdiction   string          `json:"jurisdiction,omitempty"`
	Laws           []LawLink       `json:"laws"`
	Precedents     []PrecedentLink `json:"precedents"`
	KeyFactors     []string        `json:"key_factors,omitempty"`
}
