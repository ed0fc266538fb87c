package dataset

import (
	"path/filepath"
	"strings"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// Load reads the spreadsheet at path, choosing the reader by extension. sheet
// is only meaningful for workbooks; empty means the first sheet.
func Load(path, sheet string) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return LoadXLSX(path, sheet)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, apperrors.Newf(apperrors.Input, "unsupported spreadsheet format %q (want .xlsx or .csv)", ext)
	}
}

// Columns returns only the header of the spreadsheet at path.
func Columns(path, sheet string) ([]string, error) {
	ds, err := Load(path, sheet)
	if err != nil {
		return nil, err
	}
	return ds.Columns(), nil
}
