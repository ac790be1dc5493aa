package collection

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one raw CSV record keyed by header name.
type Row map[string]string

// Reader streams rows from an inventory CSV. The header is consumed at
// construction time so column resolution can happen before any row work.
type Reader struct {
	csv    *csv.Reader
	header []string
	line   int
}

// NewReader wraps r as a CSV row stream. A UTF-8 BOM is stripped when present
// (spreadsheet exports commonly carry one).
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csv has no header row")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	return &Reader{csv: cr, header: header, line: 1}, nil
}

// Header returns the header row in file order.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next row, or io.EOF when the file is exhausted. Records
// shorter than the header leave the missing cells empty; extra cells are
// dropped.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	r.line++

	row := make(Row, len(r.header))
	for i, name := range r.header {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

// Line returns the 1-based line number of the row most recently returned by
// Next (the header is line 1).
func (r *Reader) Line() int {
	return r.line
}
