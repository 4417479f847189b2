// Package directory provides lookup of curated attorney listings by state
// and practice area. Listings come from public state bar records; no
// endorsement or verification of qualifications is implied, and callers
// must surface the per-listing disclaimer to users.
package directory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed attorneys.yaml
var defaultDataset []byte

// listingSource and listingDisclaimer annotate every listing returned by
// Lookup.
const (
	listingSource     = "State Bar Directory"
	listingDisclaimer = "Verify credentials independently"
)

// maxListings caps how many attorneys a single lookup returns.
const maxListings = 5

// Attorney is one curated directory entry.
type Attorney struct {
	Name            string `yaml:"name" json:"name"`
	Location        string `yaml:"location" json:"location"`
	BarNumber       string `yaml:"bar" json:"bar_number"`
	YearsExperience int    `yaml:"years" json:"years_experience"`
}

// Listing is a display record for one attorney matched to a lookup.
type Listing struct {
	Attorney
	Specialty  string `json:"specialty"`
	Source     string `json:"source"`
	Disclaimer string `json:"disclaimer"`
}

// dataset is the on-disk directory shape: state → practice area → entries.
type dataset struct {
	DefaultState string                           `yaml:"defaultState"`
	States       map[string]map[string][]Attorney `yaml:"states"`
}

// Directory is an immutable, loaded attorney directory.
type Directory struct {
	data dataset
}

// Load reads a YAML directory dataset.
func Load(r io.Reader) (*Directory, error) {
	var data dataset
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode attorney directory: %w", err)
	}
	if len(data.States) == 0 {
		return nil, fmt.Errorf("attorney directory contains no states")
	}
	return &Directory{data: data}, nil
}

// Default loads the embedded curated dataset.
func Default() (*Directory, error) {
	return Load(bytes.NewReader(defaultDataset))
}

// States returns the covered state names in sorted order. Names are the
// lowercase dataset keys ("california"), suitable as Lookup and
// PracticeAreas arguments; callers format them for display.
func (directory *Directory) States() []string {
	states := make([]string, 0, len(directory.data.States))
	for state := range directory.data.States {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// PracticeAreas returns the practice areas covered for a state, sorted.
func (directory *Directory) PracticeAreas(state string) []string {
	areas := directory.data.States[normalizeState(state)]
	names := make([]string, 0, len(areas))
	for area := range areas {
		names = append(names, area)
	}
	sort.Strings(names)
	return names
}

// Lookup returns attorney listings for a state and practice area. Matching
// is case-insensitive; a jurisdiction like "Los Angeles, CA" or
// "Los Angeles, California" matches on its trailing state component. When
// the exact practice area is not covered the state's first area (in sorted
// order) is used; when the state is not covered the dataset's default
// state serves as reference. The result is never nil and holds at most
// five listings.
func (directory *Directory) Lookup(state, practiceArea string) []Listing {
	stateKey := normalizeState(state)
	areaKey := normalizeArea(practiceArea)

	areas, ok := directory.data.States[stateKey]
	if !ok {
		areas = directory.data.States[directory.data.DefaultState]
	}

	attorneys := areas[areaKey]
	if len(attorneys) == 0 {
		if names := sortedKeys(areas); len(names) > 0 {
			attorneys = areas[names[0]]
		}
	}

	listings := make([]Listing, 0, maxListings)
	for _, attorney := range attorneys {
		if len(listings) == maxListings {
			break
		}
		listings = append(listings, Listing{
			Attorney:   attorney,
			Specialty:  practiceArea,
			Source:     listingSource,
			Disclaimer: listingDisclaimer,
		})
	}
	return listings
}

// normalizeState lowercases a state or jurisdiction string and keeps only
// the trailing component of "City, State" forms.
func normalizeState(state string) string {
	if idx := strings.LastIndex(state, ","); idx != -1 {
		state = state[idx+1:]
	}
	normalized := strings.ToLower(strings.TrimSpace(state))
	return expandStateAbbrev(normalized)
}

// normalizeArea lowercases a practice area and strips a trailing " law"
// suffix, so "Auto Accident Law" matches the "auto accident" key.
func normalizeArea(practiceArea string) string {
	area := strings.ToLower(strings.TrimSpace(practiceArea))
	area = strings.TrimSuffix(area, " law")
	return strings.TrimSpace(area)
}

// stateAbbrevs maps postal abbreviations for the covered states.
var stateAbbrevs = map[string]string{
	"ca": "california",
	"ny": "new york",
	"tx": "texas",
	"fl": "florida",
}

func expandStateAbbrev(state string) string {
	if full, ok := stateAbbrevs[state]; ok {
		return full
	}
	return state
}

func sortedKeys(areas map[string][]Attorney) []string {
	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
