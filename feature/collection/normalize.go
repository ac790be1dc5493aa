package collection

import (
	"fmt"
	"strconv"
	"strings"

	"mtg-collector/feature/collection/models"
)

// Normalize converts one raw CSV row into a Request using the resolved
// mapping. It is pure: no I/O, no store access.
//
// Three outcomes:
//   - (req, nil): the row should be processed.
//   - (nil, nil): silent skip, the quantity is non-positive.
//   - (nil, err): the row is malformed (blank set code or collector number)
//     and should be reported, without failing the run.
//
// Fallbacks: a missing or blank language is treated as absent, an
// unrecognized finish is normal, and a blank or unparsable quantity is 1.
func Normalize(row Row, m Mapping) (*models.Request, error) {
	setCode := strings.TrimSpace(row[m.SetCode])
	if setCode == "" {
		return nil, fmt.Errorf("missing set code")
	}

	number := strings.TrimSpace(row[m.CollectorNumber])
	if number == "" {
		return nil, fmt.Errorf("missing collector number")
	}

	var lang string
	if m.Language != "" {
		lang = strings.TrimSpace(row[m.Language])
	}

	finish := models.FinishNormal
	if m.Foil != "" {
		finish = models.ParseFinish(row[m.Foil])
	}

	quantity := 1
	if m.Quantity != "" {
		if raw := strings.TrimSpace(row[m.Quantity]); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				quantity = n
			}
		}
	}
	if quantity <= 0 {
		return nil, nil
	}

	return &models.Request{
		SetCode:         setCode,
		CollectorNumber: number,
		Lang:            lang,
		Finish:          finish,
		Quantity:        quantity,
	}, nil
}
