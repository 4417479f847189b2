package directory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)

	states := dir.States()
	assert.Contains(t, states, "california")
	assert.Contains(t, states, "new york")
	assert.Contains(t, states, "texas")
	assert.Contains(t, states, "florida")

	areas := dir.PracticeAreas("california")
	assert.Contains(t, areas, "personal injury")
	assert.Contains(t, areas, "auto accident")
}

func TestLookupExactMatch(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)

	listings := dir.Lookup("California", "Personal Injury")
	require.NotEmpty(t, listings)
	assert.LessOrEqual(t, len(listings), 5)

	first := listings[0]
	assert.Equal(t, "Thomas V. Girardi", first.Name)
	assert.Equal(t, "Personal Injury", first.Specialty)
	assert.Equal(t, "State Bar Directory", first.Source)
	assert.NotEmpty(t, first.Disclaimer)
}

func TestLookupNormalization(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)

	// "City, State" jurisdictions match on the trailing component, postal
	// abbreviations expand, and a trailing " Law" suffix is ignored.
	byCity := dir.Lookup("Los Angeles, CA", "Auto Accident Law")
	require.NotEmpty(t, byCity)
	assert.Equal(t, "Thomas V. Girardi", byCity[0].Name)

	byFull := dir.Lookup("california", "auto accident")
	assert.Equal(t, byCity[0].Name, byFull[0].Name)
}

func TestLookupFallbacks(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)

	// Unknown practice area falls back to the state's first covered area.
	listings := dir.Lookup("Texas", "Maritime Law")
	require.NotEmpty(t, listings)
	assert.Equal(t, "Mikal C. Watts", listings[0].Name)

	// Unknown state falls back to the default state's listings.
	listings = dir.Lookup("Wyoming", "Personal Injury")
	require.NotEmpty(t, listings)
	assert.Contains(t, listings[0].Location, "CA")

	// Deterministic across calls.
	again := dir.Lookup("Wyoming", "Personal Injury")
	assert.Equal(t, listings, again)
}

func TestLookupNeverNil(t *testing.T) {
	dir, err := Load(strings.NewReader("states:\n  oregon:\n    tax: []\n"))
	require.NoError(t, err)

	listings := dir.Lookup("Oregon", "Tax")
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("states: {}\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}
