package resolver

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// JurisdictionStats holds per-jurisdiction counts for a resolution batch.
type JurisdictionStats struct {
	Jurisdiction string `json:"jurisdiction"`
	Total        int    `json:"total"`
	Direct       int    `json:"direct"`
	Fallback     int    `json:"fallback"`
}

// ResolutionReport aggregates the outcome of resolving a batch of
// citations. Result order matches input order, since the display list must
// follow the order citations appeared in the upstream analysis.
type ResolutionReport struct {
	Total    int `json:"total"`
	Direct   int `json:"direct"`
	Fallback int `json:"fallback"`

	JurisdictionStats map[string]*JurisdictionStats `json:"jurisdiction_stats"`

	Results []ResolvedCitation `json:"results"`
}

// NewResolutionReport creates an empty resolution report.
func NewResolutionReport() *ResolutionReport {
	return &ResolutionReport{
		JurisdictionStats: make(map[string]*JurisdictionStats),
		Results:           make([]ResolvedCitation, 0),
	}
}

// Add appends a resolved citation to the report and updates statistics.
func (report *ResolutionReport) Add(resolved ResolvedCitation) {
	report.Results = append(report.Results, resolved)
	report.Total++
	if resolved.IsFallback {
		report.Fallback++
	} else {
		report.Direct++
	}

	stats, exists := report.JurisdictionStats[resolved.Jurisdiction]
	if !exists {
		stats = &JurisdictionStats{Jurisdiction: resolved.Jurisdiction}
		report.JurisdictionStats[resolved.Jurisdiction] = stats
	}
	stats.Total++
	if resolved.IsFallback {
		stats.Fallback++
	} else {
		stats.Direct++
	}
}

// DirectRate returns the percentage of citations resolved to a direct
// statute page rather than a fallback.
func (report *ResolutionReport) DirectRate() float64 {
	if report.Total == 0 {
		return 100.0
	}
	return float64(report.Direct) / float64(report.Total) * 100.0
}

// ToJSON serializes the report to indented JSON.
func (report *ResolutionReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// ToMarkdown generates a Markdown formatted report.
func (report *ResolutionReport) ToMarkdown() string {
	var markdownBuilder strings.Builder

	markdownBuilder.WriteString("# Citation Resolution Report\n\n")
	markdownBuilder.WriteString("## Summary\n\n")
	markdownBuilder.WriteString(fmt.Sprintf("- **Total Citations**: %d\n", report.Total))
	markdownBuilder.WriteString(fmt.Sprintf("- **Direct Links**: %d\n", report.Direct))
	markdownBuilder.WriteString(fmt.Sprintf("- **Fallback Links**: %d\n", report.Fallback))
	markdownBuilder.WriteString(fmt.Sprintf("- **Direct Rate**: %.1f%%\n\n", report.DirectRate()))

	if len(report.JurisdictionStats) > 0 {
		markdownBuilder.WriteString("## Jurisdiction Breakdown\n\n")
		markdownBuilder.WriteString("| Jurisdiction | Total | Direct | Fallback |\n")
		markdownBuilder.WriteString("|--------------|-------|--------|----------|\n")

		jurisdictions := make([]string, 0, len(report.JurisdictionStats))
		for jurisdiction := range report.JurisdictionStats {
			jurisdictions = append(jurisdictions, jurisdiction)
		}
		sort.Strings(jurisdictions)

		for _, jurisdiction := range jurisdictions {
			stats := report.JurisdictionStats[jurisdiction]
			markdownBuilder.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n",
				jurisdiction, stats.Total, stats.Direct, stats.Fallback))
		}
		markdownBuilder.WriteString("\n")
	}

	if len(report.Results) > 0 {
		markdownBuilder.WriteString("## Results\n\n")
		markdownBuilder.WriteString("| Citation | Jurisdiction | URL | Fallback |\n")
		markdownBuilder.WriteString("|----------|--------------|-----|----------|\n")
		for _, resolved := range report.Results {
			fallbackMark := ""
			if resolved.IsFallback {
				fallbackMark = "yes"
			}
			markdownBuilder.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				resolved.Title, resolved.Jurisdiction, resolved.URL, fallbackMark))
		}
		markdownBuilder.WriteString("\n")
	}

	return markdownBuilder.String()
}

// String returns a human-readable summary of the report.
func (report *ResolutionReport) String() string {
	var summaryBuilder strings.Builder

	summaryBuilder.WriteString("Citation Resolution Report\n")
	summaryBuilder.WriteString("==========================\n\n")
	summaryBuilder.WriteString(fmt.Sprintf("Total citations: %d\n", report.Total))
	summaryBuilder.WriteString(fmt.Sprintf("Direct links:    %d\n", report.Direct))
	summaryBuilder.WriteString(fmt.Sprintf("Fallback links:  %d\n", report.Fallback))
	summaryBuilder.WriteString(fmt.Sprintf("Direct rate:     %.1f%%\n", report.DirectRate()))

	if report.Fallback > 0 {
		summaryBuilder.WriteString(fmt.Sprintf("\nFallbacks (%d):\n", report.Fallback))
		for _, resolved := range report.Results {
			if resolved.IsFallback {
				summaryBuilder.WriteString(fmt.Sprintf("  - %s → %s\n", resolved.Title, resolved.URL))
			}
		}
	}

	return summaryBuilder.String()
}

// ResolveAll resolves a batch of citations in input order and returns the
// aggregated report.
func ResolveAll(citations []string) *ResolutionReport {
	report := NewResolutionReport()
	for _, citation := range citations {
		report.Add(Resolve(citation))
	}
	return report
}
