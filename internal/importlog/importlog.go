// Package importlog keeps a CSV record of archived export files at the root
// of the documents tree.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// FileName is the log file kept at the archive root.
const FileName = "import-log.csv"

// Record is one archived export.
type Record struct {
	ArchivedAt time.Time
	Account    string
	Source     string
	Archived   string // relative to the archive root
	Entries    int
	LastDate   civil.Date
}

var columns = []string{"archived_at", "account", "source", "archived", "entries", "last_date"}

func (r Record) row() []string {
	return []string{
		r.ArchivedAt.UTC().Format(time.RFC3339),
		r.Account,
		r.Source,
		filepath.ToSlash(r.Archived),
		strconv.Itoa(r.Entries),
		r.LastDate.String(),
	}
}

// Append adds records to the log under root, creating root and the file
// as needed. A new or empty file gets the header first.
func Append(root string, records []Record) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating archive root: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(root, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		_ = cw.Write(columns)
	}
	for _, r := range records {
		_ = cw.Write(r.row())
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing import log: %w", err)
	}
	return nil
}

// Read returns the records logged under root. A missing log has none.
func Read(root string) ([]Record, error) {
	f, err := os.Open(filepath.Join(root, FileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return records, nil
}

// decode locates columns by header name, so reordered or extra columns
// still read.
func decode(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	for _, name := range columns {
		if _, ok := pos[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		get := func(name string) string {
			if i := pos[name]; i < len(row) {
				return row[i]
			}
			return ""
		}

		rec := Record{
			Account:  get("account"),
			Source:   get("source"),
			Archived: filepath.FromSlash(get("archived")),
		}
		if rec.ArchivedAt, err = time.Parse(time.RFC3339, get("archived_at")); err != nil {
			return nil, fmt.Errorf("line %d: archived_at %q: %w", line, get("archived_at"), err)
		}
		if rec.Entries, err = strconv.Atoi(get("entries")); err != nil {
			return nil, fmt.Errorf("line %d: entries %q: %w", line, get("entries"), err)
		}
		if rec.LastDate, err = civil.ParseDate(get("last_date")); err != nil {
			return nil, fmt.Errorf("line %d: last_date %q: %w", line, get("last_date"), err)
		}
		records = append(records, rec)
	}
}
