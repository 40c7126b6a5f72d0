// Package csvfile reads CSV exports into header + row-map form.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table holds a parsed CSV file: the header row plus every data row keyed by
// column name, in file order.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// HasColumn reports whether the header set contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Parse reads the CSV file at path. Rows whose fields are all empty are
// skipped. Short rows are allowed; missing cells come back as empty strings.
func Parse(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV data from r. The first record is the header row.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &Table{Headers: headers}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		empty := true
		for _, cell := range rec {
			if cell != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
