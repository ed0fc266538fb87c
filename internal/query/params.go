package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func placeholderFormat(d Dialect) sq.PlaceholderFormat {
	if d == Postgres {
		return sq.Dollar
	}
	return sq.Question
}

// renderParams builds the same statement as renderText with the query builder,
// leaving every cell value as a bind argument. Names are still subject to
// QuoteIdentifiers.
func renderParams(batch Batch, spec BatchSpec) (Statement, error) {
	q := escapedQuoter{dialect: spec.Dialect, quoteIdents: spec.QuoteIdentifiers}
	ref := q.column(spec.ReferenceColumn)

	ub := sq.StatementBuilder.
		PlaceholderFormat(placeholderFormat(spec.Dialect)).
		Update(q.table(spec.TableName))

	for _, name := range spec.UpdateColumns {
		col := q.column(name)
		cb := sq.Case(ref)
		for _, row := range batch {
			cb = cb.When(sq.Expr("?", row[spec.ReferenceColumn].Interface()), sq.Expr("?", row[name].Interface()))
		}
		ub = ub.Set(col, cb.Else(col))
	}

	keys := make([]any, len(batch))
	for i, row := range batch {
		keys[i] = row[spec.ReferenceColumn].Interface()
	}
	ub = ub.Where(sq.Eq{ref: keys})

	text, args, err := ub.ToSql()
	if err != nil {
		return Statement{}, fmt.Errorf("build update: %w", err)
	}
	return Statement{SQL: text + ";", Args: args}, nil
}
