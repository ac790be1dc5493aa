package collection

import (
	"context"
	"strings"
	"testing"

	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strp(s string) *string { return &s }

func runAppendCSV(t *testing.T, store *fakeStore, lookup *fakeLookup, csv string) *RunReport {
	t.Helper()

	reader, err := NewReader(strings.NewReader(csv))
	require.NoError(t, err)

	mapping, err := ResolveColumns(reader.Header(), Overrides{})
	require.NoError(t, err)

	appender := NewAppender(store, lookup, models.LocationBinder, zap.NewNop())
	report, err := appender.Run(context.Background(), reader, mapping)
	require.NoError(t, err)
	return report
}

func TestAppender_QuantityExpansion(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("NEO", "201", ""): {
			Name:          "Ambitious Assault",
			ColorIdentity: []string{"R", "W"},
			Prices:        scryfall.Prices{USD: strp("1.00"), USDFoil: strp("2.50")},
		},
	}}

	report := runAppendCSV(t, store, lookup,
		"set_code,collector_number,foil,quantity\nNEO,201,foil,3\n")

	s := report.Summary()
	assert.Equal(t, 1, s.Appended)
	assert.Equal(t, 3, s.CopiesApplied)
	assert.Equal(t, 1, lookup.calls, "exactly one lookup per row")

	cards, _ := store.List(context.Background())
	require.Len(t, cards, 3)
	var prevID uint
	for _, c := range cards {
		assert.Greater(t, c.ID, prevID, "ids must be strictly increasing")
		prevID = c.ID
		assert.Equal(t, "Ambitious Assault", c.Name)
		assert.Equal(t, "NEO", c.SetCode)
		assert.Equal(t, "R,W", c.ColorIdentity, "color identity keeps API order")
		assert.Equal(t, models.LocationBinder, c.Location)
		if assert.NotNil(t, c.PriceUSD) {
			assert.Equal(t, 2.50, *c.PriceUSD, "foil row takes the foil price")
		}
	}
}

func TestAppender_NotIdempotent(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("neo", "201", ""): {Name: "Copy"},
	}}

	csv := "set_code,collector_number,quantity\nneo,201,2\n"
	runAppendCSV(t, store, lookup, csv)
	runAppendCSV(t, store, lookup, csv)

	cards, _ := store.List(context.Background())
	assert.Len(t, cards, 4, "re-running the same csv duplicates copies")
}

func TestAppender_RepeatedRowsRefetch(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("neo", "201", ""): {Name: "Twice"},
	}}

	runAppendCSV(t, store, lookup,
		"set_code,collector_number\nneo,201\nneo,201\n")

	assert.Equal(t, 2, lookup.calls, "no cross-row caching")
}

func TestAppender_PriceFallback(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("neo", "201", ""): {
			Name:   "No Etched Printing",
			Prices: scryfall.Prices{USD: strp("1.00")},
		},
	}}

	runAppendCSV(t, store, lookup,
		"set_code,collector_number,foil\nneo,201,etched\n")

	cards, _ := store.List(context.Background())
	require.Len(t, cards, 1)
	if assert.NotNil(t, cards[0].PriceUSD) {
		assert.Equal(t, 1.00, *cards[0].PriceUSD, "missing variant falls back to normal price")
	}
}

func TestAppender_RowLevelFailures(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("neo", "201", ""): {Name: "Good"},
	}}

	report := runAppendCSV(t, store, lookup, strings.Join([]string{
		"set_code,collector_number,quantity",
		"neo,201,1",   // ok
		",201,1",      // missing set code: failed
		"neo,999,1",   // lookup not found: failed
		"neo,201,0",   // non-positive quantity: silent skip
		"neo,201,2",   // ok, run continues past failures
	}, "\n"))

	s := report.Summary()
	assert.Equal(t, 2, s.Appended)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 3, s.CopiesApplied)

	issues := report.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, RowFailed, issues[0].Status)
	assert.Contains(t, issues[1].Reason, "lookup failed")
}

func TestAppender_LanguagePassedToLookup(t *testing.T) {
	store := newFakeStore()
	lookup := &fakeLookup{cards: map[string]*scryfall.Card{
		lookupKey("neo", "201", "ja"): {Name: "Japanese Printing"},
	}}

	report := runAppendCSV(t, store, lookup,
		"set_code,collector_number,language\nneo,201,ja\n")

	assert.Equal(t, 1, report.Summary().Appended)
	cards, _ := store.List(context.Background())
	require.Len(t, cards, 1)
	assert.Equal(t, "ja", cards[0].Lang)
}
