// Package dataset holds the in-memory table read from a spreadsheet: an
// ordered header and ordered rows keyed by column name.
package dataset

import (
	"strconv"
	"strings"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// Kind classifies a cell.
type Kind int

const (
	Null Kind = iota
	String
	Number
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return "null"
	}
}

// Value is a single cell. The zero Value is null.
type Value struct {
	kind Kind
	text string
}

func NullValue() Value { return Value{} }
func StringValue(s string) Value { return Value{kind: String, text: s} }

// NumberValue returns a number cell. The text is kept as written so that
// rendering never reformats it.
func NumberValue(s string) Value { return Value{kind: Number, text: s} }

// Parse classifies raw cell text: empty is null, a canonical decimal number is
// a number, anything else is a string. "007" and "1.50" stay strings because
// they would not survive a round trip through float64.
func Parse(s string) Value {
	if s == "" {
		return NullValue()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(f, 'f', -1, 64) == s {
		return NumberValue(s)
	}
	return StringValue(s)
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

// String returns the cell text; null cells yield "".
func (v Value) String() string { return v.text }

// Interface returns the value as a driver-friendly Go value: nil, string or float64.
func (v Value) Interface() any {
	switch v.kind {
	case Number:
		f, _ := strconv.ParseFloat(v.text, 64)
		return f
	case String:
		return v.text
	default:
		return nil
	}
}

// Row maps column name to cell. A missing key reads as null.
type Row map[string]Value

// Dataset is read-only once built.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// FromRecords builds a Dataset from a header and raw text records, the shape
// both the xlsx and csv readers produce. Records shorter than the header are
// padded with nulls and blank records are skipped. A record with a non-empty
// cell beyond the header is rejected because that cell has no column name.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, apperrors.Newf(apperrors.Input, "header cell %d is empty", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, apperrors.Newf(apperrors.Input, "duplicate column %q in header", name)
		}
		columns[i] = name
		index[name] = i
	}

	rows := make([]Row, 0, len(records))
	for n, rec := range records {
		if blank(rec) {
			continue
		}
		for i := len(columns); i < len(rec); i++ {
			if rec[i] != "" {
				return nil, apperrors.Newf(apperrors.Input,
					"record %d has a value in column %d but the header has only %d columns", n+2, i+1, len(columns))
			}
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = Parse(rec[i])
			} else {
				row[col] = NullValue()
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if cell != "" {
			return false
		}
	}
	return true
}

// Columns returns a copy of the header in sheet order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Rows returns the rows in sheet order. Callers must not modify them.
func (d *Dataset) Rows() []Row { return d.rows }

func (d *Dataset) Len() int { return len(d.rows) }
