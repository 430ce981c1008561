// Package dataset reads batches of mixes from CSV files.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one data row keyed by header, with its 1-based line in the file.
type Row struct {
	Line   int
	Values map[string]string
}

// Table is a parsed CSV file.
type Table struct {
	Headers []string
	Rows    []Row
}

// LoadCSV reads a CSV file whose first row holds the column names. Both ','
// and ';' separated files are accepted.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses CSV from r. See LoadCSV.
func ReadCSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	t := &Table{Headers: headers, Rows: make([]Row, 0, len(records)-1)}
	for i, record := range records[1:] {
		row := Row{Line: i + 2, Values: make(map[string]string, len(headers))}
		for j, h := range headers {
			row.Values[h] = strings.TrimSpace(record[j])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// sniffDelimiter picks ';' when the header line has more semicolons than
// commas.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096) //nolint:errcheck
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		peek = peek[:i]
	}
	if bytes.Count(peek, []byte{';'}) > bytes.Count(peek, []byte{','}) {
		return ';'
	}
	return ','
}

// Range returns data rows [start, end] (1-based, inclusive). Row 1 is the
// first data row after the headers. end is clamped to the available rows.
func (t *Table) Range(start, end int) ([]Row, error) {
	if start < 1 {
		return nil, fmt.Errorf("csv: range start must be >= 1, got %d", start)
	}
	if end < start {
		return nil, fmt.Errorf("csv: range end (%d) must be >= start (%d)", end, start)
	}
	if start > len(t.Rows) {
		return []Row{}, nil
	}
	end = min(end, len(t.Rows))
	return t.Rows[start-1 : end], nil
}
