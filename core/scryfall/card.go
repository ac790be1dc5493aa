package scryfall

import "strconv"

// Price variant names as Scryfall exposes them.
const (
	VariantUSD       = "usd"
	VariantUSDFoil   = "usd_foil"
	VariantUSDEtched = "usd_etched"
)

// Prices holds the USD price variants of a printing. Scryfall returns prices
// as nullable strings, so each field is a *string that may be nil.
type Prices struct {
	USD       *string `json:"usd"`
	USDFoil   *string `json:"usd_foil"`
	USDEtched *string `json:"usd_etched"`
}

// ByVariant returns the parsed price for a variant name (usd, usd_foil,
// usd_etched), or nil when the variant is absent or unparsable.
func (p Prices) ByVariant(variant string) *float64 {
	switch variant {
	case VariantUSDFoil:
		return parsePrice(p.USDFoil)
	case VariantUSDEtched:
		return parsePrice(p.USDEtched)
	default:
		return parsePrice(p.USD)
	}
}

// Card is the subset of a Scryfall card document the collection needs.
type Card struct {
	Name            string   `json:"name"`
	Set             string   `json:"set"`
	CollectorNumber string   `json:"collector_number"`
	Lang            string   `json:"lang"`
	ColorIdentity   []string `json:"color_identity"`
	Prices          Prices   `json:"prices"`
}

// PriceFor selects the price for a finish (normal, foil, etched). When the
// requested variant has no price, it falls back to the normal (usd) price and
// reports the fallback via the second return value; the fallback itself may
// still be nil when the card has no usd price at all.
func (c *Card) PriceFor(finish string) (price *float64, fellBack bool) {
	var variant string
	switch finish {
	case "foil":
		variant = VariantUSDFoil
	case "etched":
		variant = VariantUSDEtched
	default:
		return c.Prices.ByVariant(VariantUSD), false
	}

	if p := c.Prices.ByVariant(variant); p != nil {
		return p, false
	}
	return c.Prices.ByVariant(VariantUSD), true
}

func parsePrice(v *string) *float64 {
	if v == nil || *v == "" || *v == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil
	}
	return &f
}
