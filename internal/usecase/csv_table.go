package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// csvTable is a parsed import file: trimmed headers and the raw data rows.
type csvTable struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// readCSV parses at most limit data rows (all rows when limit < 0). Every row
// must have as many fields as the header. Blank lines are ignored.
func readCSV(content []byte, limit int) (csvTable, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return csvTable{}, &ImportParseError{Err: errors.New("file has no header row")}
	}
	if err != nil {
		return csvTable{}, toParseError(err)
	}

	t := csvTable{headers: make([]string, len(header)), index: make(map[string]int, len(header))}
	for i, h := range header {
		h = strings.TrimSpace(h)
		t.headers[i] = h
		if _, dup := t.index[h]; !dup && h != "" {
			t.index[h] = i
		}
	}

	for limit < 0 || len(t.rows) < limit {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvTable{}, toParseError(err)
		}
		if blankRow(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func toParseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ImportParseError{Line: pe.Line, Err: pe.Err}
	}
	return &ImportParseError{Err: err}
}

func blankRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (t csvTable) hasHeader(h string) bool {
	_, ok := t.index[h]
	return ok
}

// cell returns the trimmed value of the mapped column, "" when unmapped.
func (t csvTable) cell(row []string, header string) string {
	if header == "" {
		return ""
	}
	i, ok := t.index[header]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// rowMap renders one row keyed by header, for previews.
func (t csvTable) rowMap(row []string) map[string]string {
	out := make(map[string]string, len(t.headers))
	for h, i := range t.index {
		if i < len(row) {
			out[h] = row[i]
		}
	}
	return out
}
