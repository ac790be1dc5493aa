package collection

import (
	"context"
	"testing"
	"time"

	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedPriced(store *fakeStore, setCode, number string, price *float64) uint {
	id, _ := store.Insert(context.Background(), &models.Card{
		SetCode:         setCode,
		CollectorNumber: number,
		Name:            "seeded",
		PriceUSD:        price,
	})
	return id
}

func TestRefresher_Run(t *testing.T) {
	oldPrice := 1.0

	t.Run("Updates Changed Prices", func(t *testing.T) {
		store := newFakeStore()
		seedPriced(store, "neo", "201", &oldPrice)
		lookup := &fakeLookup{cards: map[string]*scryfall.Card{
			lookupKey("neo", "201", ""): {Prices: scryfall.Prices{USD: strp("4.00")}},
		}}

		refresher := NewRefresher(store, lookup, scryfall.NewRateLimiter(time.Millisecond), scryfall.VariantUSD, false, zap.NewNop())
		report, err := refresher.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Updated)
		assert.Equal(t, 0, report.Unchanged)

		cards, _ := store.List(context.Background())
		require.NotNil(t, cards[0].PriceUSD)
		assert.Equal(t, 4.00, *cards[0].PriceUSD)
	})

	t.Run("Leaves Unchanged Prices Alone", func(t *testing.T) {
		store := newFakeStore()
		seedPriced(store, "neo", "201", &oldPrice)
		lookup := &fakeLookup{cards: map[string]*scryfall.Card{
			lookupKey("neo", "201", ""): {Prices: scryfall.Prices{USD: strp("1.00")}},
		}}

		refresher := NewRefresher(store, lookup, scryfall.NewRateLimiter(time.Millisecond), scryfall.VariantUSD, false, zap.NewNop())
		report, err := refresher.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Unchanged)
		assert.Equal(t, 0, report.Updated)
	})

	t.Run("Clears Missing Prices", func(t *testing.T) {
		store := newFakeStore()
		seedPriced(store, "neo", "201", &oldPrice)
		lookup := &fakeLookup{cards: map[string]*scryfall.Card{
			lookupKey("neo", "201", ""): {Prices: scryfall.Prices{}},
		}}

		refresher := NewRefresher(store, lookup, scryfall.NewRateLimiter(time.Millisecond), scryfall.VariantUSD, false, zap.NewNop())
		report, err := refresher.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Cleared)
		cards, _ := store.List(context.Background())
		assert.Nil(t, cards[0].PriceUSD)
	})

	t.Run("Lookup Failures Skip The Copy", func(t *testing.T) {
		store := newFakeStore()
		seedPriced(store, "neo", "201", &oldPrice)
		lookup := &fakeLookup{cards: map[string]*scryfall.Card{}}

		refresher := NewRefresher(store, lookup, scryfall.NewRateLimiter(time.Millisecond), scryfall.VariantUSD, false, zap.NewNop())
		report, err := refresher.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Failed)
		cards, _ := store.List(context.Background())
		require.NotNil(t, cards[0].PriceUSD)
		assert.Equal(t, oldPrice, *cards[0].PriceUSD, "failed lookups leave the price untouched")
	})

	t.Run("Dry Run Writes Nothing", func(t *testing.T) {
		store := newFakeStore()
		seedPriced(store, "neo", "201", &oldPrice)
		lookup := &fakeLookup{cards: map[string]*scryfall.Card{
			lookupKey("neo", "201", ""): {Prices: scryfall.Prices{USD: strp("9.99")}},
		}}

		refresher := NewRefresher(store, lookup, scryfall.NewRateLimiter(time.Millisecond), scryfall.VariantUSD, true, zap.NewNop())
		report, err := refresher.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Updated, "dry run still reports what would change")
		cards, _ := store.List(context.Background())
		assert.Equal(t, oldPrice, *cards[0].PriceUSD)
	})
}
