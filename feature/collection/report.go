package collection

// RowStatus classifies the outcome of a single CSV row.
type RowStatus string

const (
	// RowAppended means every requested copy was inserted.
	RowAppended RowStatus = "appended"
	// RowRemoved means every requested copy was deleted.
	RowRemoved RowStatus = "removed"
	// RowPartial means fewer copies were removed than requested (shortfall).
	RowPartial RowStatus = "partial"
	// RowSkipped means the row produced no store mutation and no failure
	// (non-positive quantity, or a remove with zero matches).
	RowSkipped RowStatus = "skipped"
	// RowFailed means the row was abandoned after an error (malformed fields,
	// lookup failure).
	RowFailed RowStatus = "failed"
)

// RowResult records what happened to one CSV row.
type RowResult struct {
	// Line is the CSV line number of the row.
	Line int `json:"line"`

	// Status classifies the outcome.
	Status RowStatus `json:"status"`

	// SetCode, CollectorNumber and Lang identify the printing, when the row
	// was well-formed enough to carry them.
	SetCode         string `json:"set_code,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
	Lang            string `json:"lang,omitempty"`

	// Requested is the quantity the row asked for.
	Requested int `json:"requested"`

	// Applied is the number of copies actually inserted or deleted.
	Applied int `json:"applied"`

	// Reason explains skips, partials and failures.
	Reason string `json:"reason,omitempty"`
}

// RunReport aggregates per-row outcomes for a whole append or remove run.
// Row-level problems never abort the run; they end up here.
type RunReport struct {
	// Results holds one entry per processed CSV row, in file order.
	Results []RowResult `json:"results"`
}

// Add appends a row outcome.
func (r *RunReport) Add(res RowResult) {
	r.Results = append(r.Results, res)
}

// Summary holds aggregate counts for a run.
type Summary struct {
	Rows     int `json:"rows"`
	Appended int `json:"appended"`
	Removed  int `json:"removed"`
	Partial  int `json:"partial"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`

	// CopiesApplied totals the store mutations across all rows.
	CopiesApplied int `json:"copies_applied"`
}

// Summary computes aggregate counts over the collected results.
func (r *RunReport) Summary() Summary {
	s := Summary{Rows: len(r.Results)}
	for _, res := range r.Results {
		s.CopiesApplied += res.Applied
		switch res.Status {
		case RowAppended:
			s.Appended++
		case RowRemoved:
			s.Removed++
		case RowPartial:
			s.Partial++
		case RowSkipped:
			s.Skipped++
		case RowFailed:
			s.Failed++
		}
	}
	return s
}

// Issues returns only the rows worth surfacing at the end of a run: failures,
// partial removals, and reported no-ops.
func (r *RunReport) Issues() []RowResult {
	var out []RowResult
	for _, res := range r.Results {
		if res.Status == RowFailed || res.Status == RowPartial || (res.Status == RowSkipped && res.Reason != "") {
			out = append(out, res)
		}
	}
	return out
}
