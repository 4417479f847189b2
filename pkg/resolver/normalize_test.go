package resolver

import "testing"

func TestNormalizeCitation(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trims and collapses whitespace",
			input: "  18   U.S.C.    §  1001  ",
			want:  "18 u.s.c. § 1001",
		},
		{
			name:  "unifies Section keyword",
			input: "California Penal Code Section 187",
			want:  "california penal code § 187",
		},
		{
			name:  "unifies Sec. abbreviation",
			input: "15 U.S.C. Sec. 1681",
			want:  "15 u.s.c. § 1681",
		},
		{
			name:  "unifies double section symbol",
			input: "42 U.S.C. §§ 1983",
			want:  "42 u.s.c. § 1983",
		},
		{
			name:  "lowercases for keyword matching",
			input: "FLORIDA STATUTE 768.28",
			want:  "florida statute 768.28",
		},
		{
			name:  "does not mangle words containing sec",
			input: "consecutive second offenses",
			want:  "consecutive second offenses",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeCitation(tc.input)
			if got != tc.want {
				t.Errorf("normalizeCitation(%q): got %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidSection(t *testing.T) {
	testCases := []struct {
		section string
		want    bool
	}{
		{"1001", true},
		{"1910.134", true},
		{"12-3", true},
		{"2000e-2", true},
		{"5/12-3", true},
		{"", false},
		{"18 §", false},
		{"1001 note", false},
		{"§187", false},
	}

	for _, tc := range testCases {
		if got := validSection(tc.section); got != tc.want {
			t.Errorf("validSection(%q): got %v, want %v", tc.section, got, tc.want)
		}
	}
}

func TestFirstSectionAfter(t *testing.T) {
	norm := "california penal code § 187(a)"

	if got := firstSectionAfter(norm, 0); got != "187" {
		t.Errorf("firstSectionAfter: got %q, want 187", got)
	}
	if got := firstSectionAfter(norm, len(norm)); got != "" {
		t.Errorf("firstSectionAfter past end: got %q, want empty", got)
	}
	if got := firstSectionAfter("no numbers here", 0); got != "" {
		t.Errorf("firstSectionAfter without digits: got %q, want empty", got)
	}
}

func TestSectionAfterAny(t *testing.T) {
	norm := "california civil code § 1708"

	section, ok := sectionAfterAny(norm, []string{"california civil code"})
	if !ok || section != "1708" {
		t.Errorf("sectionAfterAny: got %q/%v, want 1708/true", section, ok)
	}

	if _, ok := sectionAfterAny(norm, []string{"texas penal code"}); ok {
		t.Error("sectionAfterAny matched an absent phrase")
	}

	if _, ok := sectionAfterAny("california civil code only", []string{"california civil code"}); ok {
		t.Error("sectionAfterAny reported ok without a section number")
	}
}
