package xlsx

import (
	"fmt"

	"derdiedas/internal/domain"

	"github.com/xuri/excelize/v2"
)

// TableReader loads a whole sheet in one call
type TableReader struct {
	sheet string
}

// NewTableReader creates a table reader. An empty sheet name selects the active sheet.
func NewTableReader(sheet string) *TableReader {
	return &TableReader{sheet: sheet}
}

// ReadGrid reads every row of the sheet, blank rows included
func (r *TableReader) ReadGrid(path string) (domain.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, r.sheet)
	if err != nil {
		return domain.Grid{}, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return domain.NewGrid(rows), nil
}
