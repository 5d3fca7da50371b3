package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HeaderLabel marks a header row when it is the first column's value (compared
// case-insensitively).
const HeaderLabel = "sample"

// ReadTable loads a tab-delimited profile table: one row per sample, the sample
// name in the first column and one "<countA>,<countB>" cell per site after it.
// Rows whose first column is "sample" are headers and are skipped. Any
// malformed row fails the whole load.
func ReadTable(r io.Reader) (*Table, error) {
	rdr := csv.NewReader(r)
	rdr.Comma = '\t'
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true

	table := NewTable()
	width := -1

	for {
		row, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, err
		}
		line, _ := rdr.FieldPos(0)

		if strings.EqualFold(row[0], HeaderLabel) {
			continue
		}

		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("sample %s has %d sites, expected %d", row[0], len(row)-1, width-1)}
		}

		sites := make([]AlleleCount, 0, len(row)-1)
		for col, cell := range row[1:] {
			ac, err := ParseAlleleCount(cell)
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("site %d: %w", col+1, err)}
			}
			sites = append(sites, ac)
		}

		if err := table.Add(row[0], sites); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}

	return table, nil
}
