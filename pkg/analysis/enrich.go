package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coolbeans/lexlink/pkg/caselaw"
	"github.com/coolbeans/lexlink/pkg/resolver"
)

// relevanceLabels rank precedents by their position in the model output:
// the model lists its strongest precedent first.
var relevanceLabels = []string{"High", "Medium", "Moderate"}

// ParseResponse decodes a raw model response into a RawAnalysis. Models
// sometimes wrap JSON in markdown code fences despite instructions, so
// fences are stripped before decoding. Malformed JSON is the only error
// path; citation content is never validated here.
func ParseResponse(response string) (*RawAnalysis, error) {
	cleaned := stripCodeFence(response)
	if cleaned == "" {
		return nil, fmt.Errorf("analysis response is empty")
	}

	var raw RawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return &raw, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or
// without a language tag, from a model response.
func stripCodeFence(response string) string {
	cleaned := strings.TrimSpace(response)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	lines := strings.Split(cleaned, "\n")
	if len(lines) < 2 {
		return cleaned
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Enrich resolves every citation in a raw analysis into display records.
// Laws are capped at four and precedents at three, in model output order;
// the relative ordering is preserved so the strongest items render first.
// Enrichment itself never fails: unresolvable citations carry fallback
// links by the resolver's totality contract.
func Enrich(raw *RawAnalysis) *CaseAnalysis {
	enriched := &CaseAnalysis{
		ID:             uuid.NewString(),
		WinProbability: raw.WinProbability,
		WinMessage:     raw.WinMessage,
		LegalArea:      raw.LegalArea,
		Jurisdiction:   raw.Jurisdiction,
		Laws:           make([]LawLink, 0, maxLaws),
		Precedents:     make([]PrecedentLink, 0, maxPrecedents),
		KeyFactors:     raw.KeyFactors,
	}

	for _, law := range capLaws(raw.RelevantLaws) {
		enriched.Laws = append(enriched.Laws, enrichLaw(law))
	}
	for i, precedent := range capPrecedents(raw.PrecedentCases) {
		enriched.Precedents = append(enriched.Precedents, enrichPrecedent(precedent, i))
	}

	return enriched
}

// ParseAndEnrich is the convenience composition of ParseResponse and Enrich.
func ParseAndEnrich(response string) (*CaseAnalysis, error) {
	raw, err := ParseResponse(response)
	if err != nil {
		return nil, err
	}
	return Enrich(raw), nil
}

// enrichLaw resolves one statute citation. The display title is
// "Description (Citation)" when the model supplied a description.
func enrichLaw(law RawLaw) LawLink {
	title := law.Citation
	if law.Description != "" {
		title = law.Description + " (" + law.Citation + ")"
	}

	resolved := resolver.ResolveWithTitle(law.Citation, title)

	return LawLink{
		ID:           uuid.NewString(),
		Title:        resolved.Title,
		URL:          resolved.URL,
		LawCode:      resolved.LawCode,
		Description:  law.Description,
		Jurisdiction: resolved.Jurisdiction,
		IsFallback:   resolved.IsFallback,
	}
}

// enrichPrecedent resolves one precedent citation, labelling relevance by
// position in the model output.
func enrichPrecedent(precedent RawPrecedent, position int) PrecedentLink {
	resolved := caselaw.Resolve(precedent.Citation)

	name := resolved.Name
	if precedent.Summary != "" {
		name = precedent.Summary + " (" + resolved.Name + ")"
	}

	relevance := relevanceLabels[len(relevanceLabels)-1]
	if position < len(relevanceLabels) {
		relevance = relevanceLabels[position]
	}

	return PrecedentLink{
		ID:        uuid.NewString(),
		Name:      name,
		Citation:  precedent.Citation,
		Summary:   precedent.Summary,
		URL:       resolved.URL,
		Year:      resolved.Year,
		Relevance: relevance,
	}
}

func capLaws(laws []RawLaw) []RawLaw {
	if len(laws) > maxLaws {
		return laws[:maxLaws]
	}
	return laws
}

func capPrecedents(precedents []RawPrecedent) []RawPrecedent {
	if len(precedents) > maxPrecedents {
		return precedents[:maxPrecedents]
	}
	return precedents
}
