package xlsx

import (
	"fmt"

	"derdiedas/internal/domain"

	"github.com/xuri/excelize/v2"
)

// maxEmptyRows is how many consecutive blank rows end the data
const maxEmptyRows = 10

// StreamReader walks a sheet row by row and stops at a run of blank rows.
// Blank rows are dropped, so data after a gap of maxEmptyRows or more is never read.
type StreamReader struct {
	sheet string
}

// NewStreamReader creates a row-streaming reader. An empty sheet name selects the active sheet.
func NewStreamReader(sheet string) *StreamReader {
	return &StreamReader{sheet: sheet}
}

// ReadGrid implements repository.GridReader
func (r *StreamReader) ReadGrid(path string) (domain.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, r.sheet)
	if err != nil {
		return domain.Grid{}, err
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to iterate sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	collected, err := collectRows(sheetRows{rows: rows}, maxEmptyRows)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return domain.NewGrid(collected), nil
}

// rowSource is the part of the excelize row iterator collectRows needs
type rowSource interface {
	Next() bool
	Columns() ([]string, error)
	Error() error
}

type sheetRows struct {
	rows *excelize.Rows
}

func (s sheetRows) Next() bool                 { return s.rows.Next() }
func (s sheetRows) Columns() ([]string, error) { return s.rows.Columns() }
func (s sheetRows) Error() error               { return s.rows.Error() }

// collectRows accumulates non-blank rows until maxEmpty consecutive blank rows are seen
func collectRows(src rowSource, maxEmpty int) ([][]string, error) {
	var rows [][]string
	emptyStreak := 0

	for emptyStreak < maxEmpty && src.Next() {
		cols, err := src.Columns()
		if err != nil {
			return nil, err
		}

		if isBlank(cols) {
			emptyStreak++
			continue
		}

		emptyStreak = 0
		rows = append(rows, cols)
	}

	if err := src.Error(); err != nil {
		return nil, err
	}
	return rows, nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}
