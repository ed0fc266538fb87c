package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"", Null},
		{"abc", String},
		{"42", Number},
		{"-3.25", Number},
		{"007", String},
		{"1.50", String},
		{" 1", String},
		{"1e3", String},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := Parse(tt.in)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.in, v.String())
		})
	}
}

func TestValue_Interface(t *testing.T) {
	assert.Nil(t, NullValue().Interface())
	assert.Equal(t, "x", StringValue("x").Interface())
	assert.Equal(t, 2.5, NumberValue("2.5").Interface())
	assert.True(t, Value{}.IsNull())
}

func TestFromRecords(t *testing.T) {
	ds, err := FromRecords(
		[]string{" id ", "val", "note"},
		[][]string{
			{"A", "1", "x"},
			{"B", "2"},
			{},
			{"", "", ""},
			{"C", "", "z", ""},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "val", "note"}, ds.Columns())
	require.Equal(t, 3, ds.Len())
	rows := ds.Rows()
	assert.Equal(t, "A", rows[0]["id"].String())
	assert.Equal(t, Number, rows[0]["val"].Kind())
	assert.True(t, rows[1]["note"].IsNull())
	assert.True(t, rows[2]["val"].IsNull())
	assert.Equal(t, "z", rows[2]["note"].String())
	assert.True(t, ds.HasColumn("id"))
	assert.False(t, ds.HasColumn(" id "))
}

func TestFromRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{"empty header cell", []string{"id", " "}, nil},
		{"duplicate header", []string{"id", "id"}, nil},
		{"value outside header", []string{"id"}, [][]string{{"A", "stray"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.header, tt.records)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.Input))
		})
	}
}

func TestColumns_ReturnsCopy(t *testing.T) {
	ds, err := FromRecords([]string{"a", "b"}, nil)
	require.NoError(t, err)
	cols := ds.Columns()
	cols[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
	assert.Equal(t, 0, ds.Len())
}
