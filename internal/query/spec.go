package query

import (
	"strings"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// DefaultMaxRowsPerBatch bounds the rows covered by one UPDATE statement.
const DefaultMaxRowsPerBatch = 1000

// Mode selects how cell values reach the SQL text.
type Mode string

const (
	// ModeLiteral wraps every value in single quotes with no escaping.
	ModeLiteral Mode = "literal"
	// ModeEscaped renders proper string literals and NULL for empty cells.
	ModeEscaped Mode = "escaped"
	// ModeParams emits placeholders and returns the values as bind arguments.
	ModeParams Mode = "params"
)

// Dialect selects literal escaping, identifier quoting and placeholder style.
type Dialect string

const (
	// Postgres escapes with E'' literals and uses $n placeholders.
	Postgres Dialect = "postgresql"
	// MySQL quotes identifiers with backticks and uses ? placeholders.
	MySQL Dialect = "mysql"
	// SQLite quotes identifiers with double quotes and uses ? placeholders.
	SQLite Dialect = "sqlite"
)

// ParseMode accepts a mode name case-insensitively; empty means ModeLiteral.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeLiteral, nil
	case ModeLiteral, ModeEscaped, ModeParams:
		return m, nil
	default:
		return "", apperrors.Newf(apperrors.InvalidArgument,
			"unknown mode %q (want literal, escaped or params)", s)
	}
}

// ParseDialect accepts a dialect name or alias (postgres, sqlite3); empty means Postgres.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "postgresql", "postgres":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", apperrors.Newf(apperrors.InvalidArgument,
			"unknown dialect %q (want postgresql, mysql or sqlite)", s)
	}
}

// BatchSpec is everything Generate needs besides the rows themselves.
// ReferenceColumn may also appear in UpdateColumns; the statement stays valid.
type BatchSpec struct {
	UpdateColumns   []string
	ReferenceColumn string
	TableName       string
	MaxRowsPerBatch int

	Mode             Mode
	Dialect          Dialect
	QuoteIdentifiers bool
}

// Validate rejects specs that cannot produce a statement.
func (s BatchSpec) Validate() error {
	if s.MaxRowsPerBatch <= 0 {
		return apperrors.Newf(apperrors.InvalidArgument,
			"max rows per batch must be positive, got %d", s.MaxRowsPerBatch)
	}
	if len(s.UpdateColumns) == 0 {
		return apperrors.New(apperrors.InvalidArgument, "at least one update column is required")
	}
	for _, col := range s.UpdateColumns {
		if col == "" {
			return apperrors.New(apperrors.InvalidArgument, "update column name is empty")
		}
	}
	if s.ReferenceColumn == "" {
		return apperrors.New(apperrors.InvalidArgument, "reference column is required")
	}
	if strings.TrimSpace(s.TableName) == "" {
		return apperrors.New(apperrors.InvalidArgument, "table name is required")
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if _, err := ParseDialect(string(s.Dialect)); err != nil {
		return err
	}
	return nil
}

func (s BatchSpec) normalized() BatchSpec {
	s.Mode, _ = ParseMode(string(s.Mode))
	s.Dialect, _ = ParseDialect(string(s.Dialect))
	return s
}

// CheckColumns reports the first spec column that the dataset lacks.
func CheckColumns(ds *dataset.Dataset, s BatchSpec) error {
	for _, col := range s.UpdateColumns {
		if !ds.HasColumn(col) {
			return apperrors.Newf(apperrors.InvalidArgument, "update column %q not found in dataset", col)
		}
	}
	if !ds.HasColumn(s.ReferenceColumn) {
		return apperrors.Newf(apperrors.InvalidArgument, "reference column %q not found in dataset", s.ReferenceColumn)
	}
	return nil
}
