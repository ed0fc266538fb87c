package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// LoadCSV reads a comma-separated file whose first record is the header.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "open csv", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV over an already open stream.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "read csv", err)
	}
	if len(records) == 0 {
		return nil, apperrors.New(apperrors.Input, "csv has no header")
	}
	if len(records[0]) > 0 {
		// Excel writes a UTF-8 byte order mark at the start of exported CSV.
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}

	return FromRecords(records[0], records[1:])
}
