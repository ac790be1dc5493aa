package collection

import (
	"fmt"
	"strings"
)

// Default header names per logical field. Matching is always
// case-insensitive, so "SET_CODE" in a CSV resolves "set_code".
const (
	DefaultSetCodeColumn         = "set_code"
	DefaultCollectorNumberColumn = "collector_number"
	DefaultLanguageColumn        = "language"
	DefaultFoilColumn            = "foil"
	DefaultQuantityColumn        = "quantity"
)

// Overrides carries caller-supplied header names. An empty field means "use
// the default name for this field".
type Overrides struct {
	SetCode         string
	CollectorNumber string
	Language        string
	Foil            string
	Quantity        string
}

// Mapping is the resolved header per logical field. An empty field means the
// CSV has no column for it; set code and collector number are never empty
// because their absence fails resolution.
type Mapping struct {
	SetCode         string
	CollectorNumber string
	Language        string
	Foil            string
	Quantity        string
}

// ResolveColumns maps the CSV header row to logical fields. Per field, an
// override is matched case-insensitively against the headers when supplied,
// otherwise the default name is. Set code and collector number are mandatory;
// the other fields fall back per-row when their header is missing.
func ResolveColumns(header []string, o Overrides) (Mapping, error) {
	m := Mapping{
		SetCode:         resolveField(header, o.SetCode, DefaultSetCodeColumn),
		CollectorNumber: resolveField(header, o.CollectorNumber, DefaultCollectorNumberColumn),
		Language:        resolveField(header, o.Language, DefaultLanguageColumn),
		Foil:            resolveField(header, o.Foil, DefaultFoilColumn),
		Quantity:        resolveField(header, o.Quantity, DefaultQuantityColumn),
	}

	if m.SetCode == "" {
		return Mapping{}, fmt.Errorf("no header matches set code column %q", nameOrDefault(o.SetCode, DefaultSetCodeColumn))
	}
	if m.CollectorNumber == "" {
		return Mapping{}, fmt.Errorf("no header matches collector number column %q", nameOrDefault(o.CollectorNumber, DefaultCollectorNumberColumn))
	}

	return m, nil
}

// resolveField returns the actual header matching the override (when
// supplied) or the default name, or "" when neither matches.
func resolveField(header []string, override, def string) string {
	name := nameOrDefault(override, def)
	for _, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return h
		}
	}
	return ""
}

func nameOrDefault(override, def string) string {
	if override != "" {
		return override
	}
	return def
}
