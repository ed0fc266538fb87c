package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ParamsMode(t *testing.T) {
	ds := newDataset(t, []string{"id", "val"},
		[]string{"A", "1"}, []string{"B", ""}, []string{"C", "it's"})
	spec := BatchSpec{
		UpdateColumns: []string{"val"}, ReferenceColumn: "id", TableName: "T",
		MaxRowsPerBatch: 2, Mode: ModeParams,
	}

	t.Run("Postgres", func(t *testing.T) {
		stmts, err := Generate(ds, spec)
		require.NoError(t, err)
		require.Len(t, stmts, 2)

		assert.Contains(t, stmts[0].SQL, "UPDATE T SET val = CASE id WHEN $1 THEN $2 WHEN $3 THEN $4 ELSE val END")
		assert.Contains(t, stmts[0].SQL, "WHERE id IN ($5,$6)")
		assert.Equal(t, []any{"A", 1.0, "B", nil, "A", "B"}, stmts[0].Args)

		assert.Equal(t, []any{"C", "it's", "C"}, stmts[1].Args)
		assert.NotContains(t, stmts[1].SQL, "it's")
	})

	t.Run("SQLite", func(t *testing.T) {
		spec := spec
		spec.Dialect = SQLite
		stmts, err := Generate(ds, spec)
		require.NoError(t, err)
		assert.Contains(t, stmts[0].SQL, "CASE id WHEN ? THEN ? WHEN ? THEN ? ELSE val END")
		assert.Contains(t, stmts[0].SQL, "WHERE id IN (?,?)")
	})

	t.Run("MultipleColumnsKeepOrder", func(t *testing.T) {
		ds := newDataset(t, []string{"id", "a", "b"}, []string{"K", "x", "y"})
		stmts, err := Generate(ds, BatchSpec{
			UpdateColumns: []string{"b", "a"}, ReferenceColumn: "id", TableName: "T",
			MaxRowsPerBatch: 5, Mode: ModeParams,
		})
		require.NoError(t, err)
		assert.Contains(t, stmts[0].SQL, "SET b = CASE id WHEN $1 THEN $2 ELSE b END, a = CASE id WHEN $3 THEN $4 ELSE a END")
		assert.Equal(t, []any{"K", "y", "K", "x", "K"}, stmts[0].Args)
	})
}
