// Package csvlog tokenizes datalogger CSV exports into rows and frames.
//
// A datalogger export typically starts with free-form session metadata
// (title, logger firmware, lap notes) before the column-name row, and the
// column-name row is not necessarily the first row of the file. The
// package keeps those leading rows verbatim so they can be re-emitted as
// comments in the converted document.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Row is one tokenized input row.
type Row struct {
	// Line is the 1-based line number the row started on.
	Line int
	// Fields holds the whitespace-trimmed field values.
	Fields []string
}

// Width returns the number of fields in the row.
func (r Row) Width() int {
	return len(r.Fields)
}

// MalformedRowError reports a row that failed to tokenize, such as an
// unterminated quote.
type MalformedRowError struct {
	Line int
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// RowWidthMismatchError reports a data row whose field count differs from
// the header row. The file is inconsistent; rows are never padded or
// truncated to fit.
type RowWidthMismatchError struct {
	Line int
	Got  int
	Want int
}

func (e *RowWidthMismatchError) Error() string {
	return fmt.Sprintf("row at line %d has %d fields, header has %d", e.Line, e.Got, e.Want)
}

// Tokenize splits the input into rows of trimmed field values. Field
// counts are not required to agree between rows; later stages deal with
// the heterogeneity. Blank lines are dropped.
func Tokenize(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedRowError{Line: pe.Line, Err: pe.Err}
			}
			return nil, &MalformedRowError{Err: err}
		}

		line, _ := cr.FieldPos(0)
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		rows = append(rows, Row{Line: line, Fields: record})
	}
	return rows, nil
}

// Frame is a tokenized export split at its header row.
type Frame struct {
	// Header is the column-name row.
	Header Row
	// Info holds the rows before the header, verbatim.
	Info []Row
	// Data holds the data rows, each as wide as the header.
	Data []Row
}

// NewFrame splits rows at the header row with index head. Rows before the
// header become Info rows; rows after it become Data rows. A data row
// whose fields are identical to the header's is dropped, which absorbs
// the duplicate header rows produced by concatenating exports. A data row
// with a different field count than the header is a RowWidthMismatchError.
func NewFrame(rows []Row, head int) (*Frame, error) {
	frame := &Frame{
		Header: rows[head],
		Info:   rows[:head],
	}
	for _, row := range rows[head+1:] {
		if slices.Equal(row.Fields, frame.Header.Fields) {
			continue
		}
		if row.Width() != frame.Header.Width() {
			return nil, &RowWidthMismatchError{Line: row.Line, Got: row.Width(), Want: frame.Header.Width()}
		}
		frame.Data = append(frame.Data, row)
	}
	return frame, nil
}
