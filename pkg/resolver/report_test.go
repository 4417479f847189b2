package resolver

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResolveAll(t *testing.T) {
	citations := []string{
		"18 U.S.C. § 1001",
		"California Penal Code § 187",
		"Martian Traffic Code § 5",
	}

	report := ResolveAll(citations)

	if report.Total != 3 {
		t.Errorf("Total: got %d, want 3", report.Total)
	}
	if report.Direct != 2 {
		t.Errorf("Direct: got %d, want 2", report.Direct)
	}
	if report.Fallback != 1 {
		t.Errorf("Fallback: got %d, want 1", report.Fallback)
	}

	// Result order must match input order.
	for i, citation := range citations {
		if report.Results[i].Title != citation {
			t.Errorf("Result %d: got %q, want %q (input order must be preserved)",
				i, report.Results[i].Title, citation)
		}
	}

	federalStats := report.JurisdictionStats["federal"]
	if federalStats == nil || federalStats.Direct != 1 {
		t.Errorf("Expected one direct federal resolution, got %+v", federalStats)
	}
	unknownStats := report.JurisdictionStats["unknown"]
	if unknownStats == nil || unknownStats.Fallback != 1 {
		t.Errorf("Expected one unknown fallback, got %+v", unknownStats)
	}
}

func TestResolutionReportDirectRate(t *testing.T) {
	report := NewResolutionReport()
	if report.DirectRate() != 100.0 {
		t.Errorf("Empty report DirectRate: got %f, want 100.0", report.DirectRate())
	}

	report.Add(Resolve("18 U.S.C. § 1001"))
	report.Add(Resolve("gibberish citation"))

	if report.DirectRate() != 50.0 {
		t.Errorf("DirectRate: got %f, want 50.0", report.DirectRate())
	}
}

func TestResolutionReportRenderings(t *testing.T) {
	report := ResolveAll([]string{
		"18 U.S.C. § 1001",
		"Martian Traffic Code § 5",
	})

	jsonBytes, err := report.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded ResolutionReport
	if err := json.Unmarshal(jsonBytes, &decoded); err != nil {
		t.Fatalf("ToJSON produced invalid JSON: %v", err)
	}
	if decoded.Total != 2 {
		t.Errorf("Round-tripped Total: got %d, want 2", decoded.Total)
	}

	markdown := report.ToMarkdown()
	if !strings.Contains(markdown, "# Citation Resolution Report") {
		t.Error("Markdown output missing header")
	}
	if !strings.Contains(markdown, "| federal |") {
		t.Error("Markdown output missing jurisdiction breakdown row")
	}

	summary := report.String()
	if !strings.Contains(summary, "Total citations: 2") {
		t.Errorf("Summary missing totals:\n%s", summary)
	}
	if !strings.Contains(summary, "Fallbacks (1):") {
		t.Errorf("Summary missing fallback list:\n%s", summary)
	}
}
