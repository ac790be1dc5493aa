package collection

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Remover deletes stored copies described by CSV rows. For each row it
// deletes the oldest-inserted (lowest id) matches first, up to the requested
// quantity.
type Remover struct {
	store  CardStore
	logger *zap.Logger
}

// NewRemover creates a remove processor.
func NewRemover(store CardStore, logger *zap.Logger) *Remover {
	return &Remover{store: store, logger: logger}
}

// Run processes rows in file order. Each row's query and deletes run against
// the store state current at that row; rows are never batched. Row-level
// problems (including shortfalls) are collected into the report and never
// abort the run.
func (r *Remover) Run(ctx context.Context, reader *Reader, m Mapping) (*RunReport, error) {
	report := &RunReport{}

	for {
		row, err := reader.Next()
		if err == io.EOF {
			return report, nil
		}
		if err != nil {
			return report, fmt.Errorf("failed to read csv row: %w", err)
		}

		report.Add(r.processRow(ctx, row, m, reader.Line()))
	}
}

func (r *Remover) processRow(ctx context.Context, row Row, m Mapping, line int) RowResult {
	req, err := Normalize(row, m)
	if err != nil {
		r.logger.Warn("Skipping malformed row", zap.Int("line", line), zap.Error(err))
		return RowResult{Line: line, Status: RowFailed, Reason: err.Error()}
	}
	if req == nil {
		r.logger.Debug("Skipping row with non-positive quantity", zap.Int("line", line))
		return RowResult{Line: line, Status: RowSkipped}
	}

	res := RowResult{
		Line:            line,
		SetCode:         req.SetCode,
		CollectorNumber: req.CollectorNumber,
		Lang:            req.Lang,
		Requested:       req.Quantity,
	}

	ids, err := r.store.FindIDs(ctx, req.SetCode, req.CollectorNumber, req.Lang)
	if err != nil {
		res.Status = RowFailed
		res.Reason = fmt.Sprintf("match query failed: %v", err)
		return res
	}

	if len(ids) == 0 {
		// Reported no-op, not an error.
		r.logger.Info("No matching copies to remove",
			zap.Int("line", line),
			zap.String("set_code", req.SetCode),
			zap.String("collector_number", req.CollectorNumber),
			zap.String("lang", req.Lang),
		)
		res.Status = RowSkipped
		res.Reason = "no matching copies"
		return res
	}

	// Oldest-inserted first: ids come back ascending and id order is
	// insertion order.
	n := req.Quantity
	if len(ids) < n {
		n = len(ids)
	}

	for _, id := range ids[:n] {
		if err := r.store.Delete(ctx, id); err != nil {
			res.Status = RowFailed
			res.Reason = fmt.Sprintf("delete failed after %d of %d copies: %v", res.Applied, n, err)
			return res
		}
		res.Applied++
		r.logger.Debug("Removed copy", zap.Uint("id", id))
	}

	if res.Applied < req.Quantity {
		res.Status = RowPartial
		res.Reason = fmt.Sprintf("requested %d, removed %d (shortfall %d)", req.Quantity, res.Applied, req.Quantity-res.Applied)
		return res
	}

	res.Status = RowRemoved
	return res
}
