package collection

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection/models"
)

// Lookup fetches one card document per normalized row. *scryfall.Client is
// the real implementation.
type Lookup interface {
	Card(ctx context.Context, setCode, collectorNumber, lang string) (*scryfall.Card, error)
}

// Appender turns CSV rows into stored copies. Every valid row triggers
// exactly one lookup, then quantity inserts. Appending is intentionally
// non-idempotent: quantity counts distinct physical cards, so re-running the
// same CSV adds more copies.
type Appender struct {
	store    CardStore
	lookup   Lookup
	location models.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewAppender creates an append processor writing copies tagged with the
// given location.
func NewAppender(store CardStore, lookup Lookup, location models.Location, logger *zap.Logger) *Appender {
	return &Appender{
		store:    store,
		lookup:   lookup,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Run processes rows in file order. Row-level problems are collected into the
// report and never abort the run; only a broken row stream is returned as an
// error, alongside the report of everything processed up to that point.
func (a *Appender) Run(ctx context.Context, r *Reader, m Mapping) (*RunReport, error) {
	report := &RunReport{}

	for {
		row, err := r.Next()
		if err == io.EOF {
			return report, nil
		}
		if err != nil {
			return report, fmt.Errorf("failed to read csv row: %w", err)
		}

		report.Add(a.processRow(ctx, row, m, r.Line()))
	}
}

func (a *Appender) processRow(ctx context.Context, row Row, m Mapping, line int) RowResult {
	req, err := Normalize(row, m)
	if err != nil {
		a.logger.Warn("Skipping malformed row", zap.Int("line", line), zap.Error(err))
		return RowResult{Line: line, Status: RowFailed, Reason: err.Error()}
	}
	if req == nil {
		// Non-positive quantity: documented fallback, not a failure.
		a.logger.Debug("Skipping row with non-positive quantity", zap.Int("line", line))
		return RowResult{Line: line, Status: RowSkipped}
	}

	res := RowResult{
		Line:            line,
		SetCode:         req.SetCode,
		CollectorNumber: req.CollectorNumber,
		Lang:            req.Lang,
		Requested:       req.Quantity,
	}

	// One lookup per row, even for repeated printings: prices move, and each
	// row records the price at its own fetch time.
	card, err := a.lookup.Card(ctx, req.SetCode, req.CollectorNumber, req.Lang)
	if err != nil {
		a.logger.Warn("Lookup failed",
			zap.Int("line", line),
			zap.String("set_code", req.SetCode),
			zap.String("collector_number", req.CollectorNumber),
			zap.String("lang", req.Lang),
			zap.Error(err),
		)
		res.Status = RowFailed
		res.Reason = fmt.Sprintf("lookup failed: %v", err)
		return res
	}

	price, fellBack := card.PriceFor(req.Finish.String())
	if fellBack {
		a.logger.Warn("Price variant unavailable, using normal price",
			zap.Int("line", line),
			zap.String("name", card.Name),
			zap.String("finish", req.Finish.String()),
		)
	}

	template := models.Card{
		SetCode:         req.SetCode,
		CollectorNumber: req.CollectorNumber,
		Lang:            req.Lang,
		Name:            card.Name,
		ColorIdentity:   strings.Join(card.ColorIdentity, ","),
		PriceUSD:        price,
		Location:        a.location,
		FetchedAt:       a.now().UTC(),
	}

	// One insert per physical copy, issued sequentially so the store assigns
	// increasing ids in issuance order.
	for i := 0; i < req.Quantity; i++ {
		unit := template
		id, err := a.store.Insert(ctx, &unit)
		if err != nil {
			res.Reason = fmt.Sprintf("insert failed after %d of %d copies: %v", res.Applied, req.Quantity, err)
			res.Status = RowFailed
			return res
		}
		res.Applied++
		a.logger.Debug("Inserted copy",
			zap.Uint("id", id),
			zap.String("name", card.Name),
			zap.String("set_code", req.SetCode),
			zap.String("collector_number", req.CollectorNumber),
		)
	}

	res.Status = RowAppended
	return res
}
