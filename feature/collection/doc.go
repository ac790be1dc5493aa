// Package collection implements the reconciliation engine between inventory
// CSVs, the Scryfall card-data API, and the local collection store.
//
// # Pipeline
//
// A CSV flows through the package in stages: ResolveColumns maps the header
// row to logical fields (case-insensitive, caller overrides before defaults),
// Reader streams raw rows, Normalize turns each row into a typed request, and
// an Appender or Remover applies it to the store.
//
// # Append semantics
//
// Each valid row triggers exactly one card lookup. On success, one store row
// is inserted per unit of quantity, so the table holds one row per physical
// copy. This is deliberately non-idempotent: appending the same CSV twice
// records twice the copies.
//
// # Remove semantics
//
// Each row deletes up to quantity matching copies, oldest-inserted first
// (lowest store-assigned id). Fewer matches than requested is a reported
// shortfall, zero matches a reported no-op; neither fails the run.
//
// # Error policy
//
// Row-level problems (malformed fields, lookup failures, shortfalls) are
// collected as RowResults into a RunReport and never abort a run. Only
// run-level failures (unreadable source, unresolved mandatory columns, store
// connection loss) surface as errors.
package collection
