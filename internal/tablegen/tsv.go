package tablegen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// row is one data line of a TSV file with surrounding whitespace removed
// from every field.
type row struct {
	line   int
	fields []string
}

// readTSV reads a tab separated file whose first line must match header
// exactly. Every following line must have len(header) fields.
func readTSV(r io.Reader, name string, header []string) ([]row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = len(header)
	cr.ReuseRecord = false

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for i, col := range header {
		if strings.TrimSpace(first[i]) != col {
			return nil, fmt.Errorf("%s:1: column %d is %q, want %q", name, i+1, first[i], col)
		}
	}

	var rows []row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row{line: line, fields: rec})
	}
	return rows, nil
}
