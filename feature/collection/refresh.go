package collection

import (
	"context"

	"go.uber.org/zap"

	"mtg-collector/core/scryfall"
)

// RefreshReport aggregates the outcome of a price refresh.
type RefreshReport struct {
	// Total is the number of copies considered.
	Total int `json:"total"`
	// Updated counts copies whose price changed.
	Updated int `json:"updated"`
	// Cleared counts copies whose price went from a value to none.
	Cleared int `json:"cleared"`
	// Unchanged counts copies whose price matched the current one.
	Unchanged int `json:"unchanged"`
	// Failed counts copies whose lookup failed; their prices are untouched.
	Failed int `json:"failed"`
}

// Refresher re-fetches prices for every stored copy, gated by a rate limiter
// so bulk runs stay inside the API's request guidance.
type Refresher struct {
	store   CardStore
	lookup  Lookup
	limiter *scryfall.RateLimiter
	logger  *zap.Logger

	// Variant is the price variant to refresh (usd, usd_foil, usd_etched).
	Variant string
	// DryRun performs lookups and reports what would change without writing.
	DryRun bool
}

// NewRefresher creates a price refresher for the given variant.
func NewRefresher(store CardStore, lookup Lookup, limiter *scryfall.RateLimiter, variant string, dryRun bool, logger *zap.Logger) *Refresher {
	if variant == "" {
		variant = scryfall.VariantUSD
	}
	return &Refresher{
		store:   store,
		lookup:  lookup,
		limiter: limiter,
		logger:  logger,
		Variant: variant,
		DryRun:  dryRun,
	}
}

// Run walks the collection in id order and refreshes each copy's price.
// Lookup failures skip just that copy.
func (f *Refresher) Run(ctx context.Context) (*RefreshReport, error) {
	cards, err := f.store.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &RefreshReport{Total: len(cards)}

	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		f.limiter.Wait()
		doc, err := f.lookup.Card(ctx, card.SetCode, card.CollectorNumber, card.Lang)
		if err != nil {
			f.logger.Warn("Price lookup failed",
				zap.Uint("id", card.ID),
				zap.String("set_code", card.SetCode),
				zap.String("collector_number", card.CollectorNumber),
				zap.Error(err),
			)
			report.Failed++
			continue
		}

		newPrice := doc.Prices.ByVariant(f.Variant)
		if samePrice(card.PriceUSD, newPrice) {
			report.Unchanged++
			continue
		}

		if !f.DryRun {
			if err := f.store.UpdatePrice(ctx, card.ID, newPrice); err != nil {
				f.logger.Warn("Price update failed", zap.Uint("id", card.ID), zap.Error(err))
				report.Failed++
				continue
			}
		}

		if newPrice == nil {
			report.Cleared++
		} else {
			report.Updated++
		}
	}

	return report, nil
}

func samePrice(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
