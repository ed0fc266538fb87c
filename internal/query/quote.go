package query

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
)

type quoter interface {
	table(name string) string
	column(name string) string
	literal(v dataset.Value) string
}

func newQuoter(spec BatchSpec) quoter {
	if spec.Mode == ModeEscaped {
		return escapedQuoter{dialect: spec.Dialect, quoteIdents: spec.QuoteIdentifiers}
	}
	return literalQuoter{}
}

// literalQuoter reproduces plain interpolation: names verbatim, every value
// in single quotes, embedded quotes left alone.
type literalQuoter struct{}

func (literalQuoter) table(name string) string  { return name }
func (literalQuoter) column(name string) string { return name }

func (literalQuoter) literal(v dataset.Value) string {
	return "'" + v.String() + "'"
}

type escapedQuoter struct {
	dialect     Dialect
	quoteIdents bool
}

func (q escapedQuoter) literal(v dataset.Value) string {
	if v.IsNull() {
		return "NULL"
	}
	return quoteLiteral(q.dialect, v.String())
}

// table treats dots as schema separators.
func (q escapedQuoter) table(name string) string {
	if !q.quoteIdents {
		return name
	}
	return quoteIdentifier(q.dialect, strings.Split(name, ".")...)
}

func (q escapedQuoter) column(name string) string {
	if !q.quoteIdents {
		return name
	}
	return quoteIdentifier(q.dialect, name)
}

func quoteLiteral(d Dialect, s string) string {
	if d == Postgres {
		// QuoteLiteral prefixes E'...' literals with a space.
		return strings.TrimSpace(pq.QuoteLiteral(s))
	}
	// mysql and sqlite: single quote -> two single quotes
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdentifier(d Dialect, parts ...string) string {
	switch d {
	case Postgres:
		return pgx.Identifier(parts).Sanitize()
	case MySQL:
		return joinQuoted(parts, "`")
	default:
		return joinQuoted(parts, `"`)
	}
}

func joinQuoted(parts []string, mark string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = mark + strings.ReplaceAll(p, mark, mark+mark) + mark
	}
	return strings.Join(quoted, ".")
}
