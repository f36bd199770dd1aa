package paypal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// record is one data row of an export, keyed by the header.
type record struct {
	header []string
	values []string
	line   int
}

// Get returns the value of column, false if the row has no such column.
func (r record) Get(column string) (string, bool) {
	for i, h := range r.header {
		if h == column {
			if i >= len(r.values) {
				return "", false
			}
			return r.values[i], true
		}
	}
	return "", false
}

// Map returns the row as column -> value. Short rows leave trailing columns out.
func (r record) Map() map[string]string {
	m := make(map[string]string, len(r.header))
	for i, h := range r.header {
		if i < len(r.values) {
			m[h] = r.values[i]
		}
	}
	return m
}

// rowReader streams records from a CSV export with a header row.
type rowReader struct {
	f      *os.File
	cr     *csv.Reader
	header []string
}

// openRows opens path and reads its header. UTF-8 with or without a byte
// order mark is accepted.
func openRows(path string) (*rowReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(f, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("reading header of %s: empty file", path)
		}
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	return &rowReader{f: f, cr: cr, header: header}, nil
}

// Header returns the column names.
func (r *rowReader) Header() []string { return r.header }

// Next returns the next record, or io.EOF after the last one.
func (r *rowReader) Next() (record, error) {
	values, err := r.cr.Read()
	if err != nil {
		return record{}, err
	}
	line, _ := r.cr.FieldPos(0)
	return record{header: r.header, values: values, line: line}, nil
}

func (r *rowReader) Close() error { return r.f.Close() }
