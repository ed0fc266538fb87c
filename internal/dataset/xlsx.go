package dataset

import (
	"io"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

// LoadXLSX reads one sheet of a workbook. The first row is the header.
func LoadXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "open excel", err)
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

// ReadXLSX is LoadXLSX over an already open stream.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "open excel", err)
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

// Sheets lists the sheet names of the workbook at path in tab order.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "open excel", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func readWorkbook(f *excelize.File, sheet string) (*Dataset, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.New(apperrors.Input, "no sheets in workbook")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Input, "get rows", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.Newf(apperrors.Input, "sheet %q is empty", sheet)
	}

	return FromRecords(rows[0], rows[1:])
}
