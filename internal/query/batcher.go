// Package query turns dataset rows into batched CASE-based UPDATE statements.
//
// A statement covers at most MaxRowsPerBatch rows. For every update column it
// carries one CASE over the reference column with a WHEN per row, and the
// WHERE clause lists the reference values of the batch:
//
//	UPDATE T
//	SET val = CASE id WHEN 'A' THEN '1' WHEN 'B' THEN '2' ELSE val END
//	WHERE id IN ('A', 'B');
package query

import (
	"fmt"
	"strings"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// Batch is a contiguous run of dataset rows in their original order.
type Batch []dataset.Row

// Statement is one generated UPDATE. Args is empty unless the statement was
// rendered in ModeParams.
type Statement struct {
	SQL  string
	Args []any
}

func (s Statement) String() string { return s.SQL }

// Partition splits rows into ceil(len(rows)/maxRows) batches of maxRows rows;
// the last batch holds the remainder. No rows means no batches.
func Partition(rows []dataset.Row, maxRows int) ([]Batch, error) {
	if maxRows <= 0 {
		return nil, apperrors.Newf(apperrors.InvalidArgument,
			"max rows per batch must be positive, got %d", maxRows)
	}

	total := len(rows) / maxRows
	if len(rows)%maxRows != 0 {
		total++
	}
	batches := make([]Batch, 0, total)
	for i := 0; i < total; i++ {
		start := i * maxRows
		// maxRows may be close to MaxInt, so never add it to start unchecked.
		end := len(rows)
		if maxRows < len(rows)-start {
			end = start + maxRows
		}
		batches = append(batches, Batch(rows[start:end:end]))
	}
	return batches, nil
}

// Render builds the statement for one non-empty batch. Only ModeParams can
// fail, and only if the query builder rejects its input.
func Render(batch Batch, spec BatchSpec) (Statement, error) {
	spec = spec.normalized()
	if spec.Mode == ModeParams {
		return renderParams(batch, spec)
	}
	return Statement{SQL: renderText(batch, spec, newQuoter(spec))}, nil
}

// Generate validates spec, partitions the dataset and renders every batch in
// order. Identical inputs always give identical output.
func Generate(ds *dataset.Dataset, spec BatchSpec) ([]Statement, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	batches, err := Partition(ds.Rows(), spec.MaxRowsPerBatch)
	if err != nil {
		return nil, err
	}

	statements := make([]Statement, 0, len(batches))
	for i, batch := range batches {
		stmt, err := Render(batch, spec)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.InvalidArgument, "render batch", withBatch(err, i))
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func renderText(batch Batch, spec BatchSpec, q quoter) string {
	ref := q.column(spec.ReferenceColumn)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(q.table(spec.TableName))
	b.WriteString("\nSET ")
	for i, name := range spec.UpdateColumns {
		if i > 0 {
			b.WriteString(", ")
		}
		col := q.column(name)
		b.WriteString(col)
		b.WriteString(" = CASE ")
		b.WriteString(ref)
		for _, row := range batch {
			b.WriteString(" WHEN ")
			b.WriteString(q.literal(row[spec.ReferenceColumn]))
			b.WriteString(" THEN ")
			b.WriteString(q.literal(row[name]))
		}
		b.WriteString(" ELSE ")
		b.WriteString(col)
		b.WriteString(" END")
	}
	b.WriteString("\nWHERE ")
	b.WriteString(ref)
	b.WriteString(" IN (")
	for i, row := range batch {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(q.literal(row[spec.ReferenceColumn]))
	}
	b.WriteString(");")
	return b.String()
}

func withBatch(err error, index int) error {
	return fmt.Errorf("batch %d: %w", index+1, err)
}
