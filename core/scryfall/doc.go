// Package scryfall provides a client for the Scryfall card-data API.
//
// Cards are fetched by set code and collector number, with an optional
// language segment: /cards/{set}/{number} or /cards/{set}/{number}/{lang}.
// Responses carry USD prices per finish variant (usd, usd_foil, usd_etched) as
// nullable strings; Card.PriceFor selects the variant for a finish and falls
// back to the normal price when the variant is missing.
//
// 429 and 5xx responses are retried with linear backoff. A 404 surfaces as
// ErrNotFound so callers can distinguish "no such printing" from transport
// failures.
package scryfall
