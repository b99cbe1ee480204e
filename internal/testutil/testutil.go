package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"derdiedas/internal/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPairs builds pairs from word/article strings given alternately
func NewTestPairs(wordsAndArticles ...string) []domain.WordArticlePair {
	pairs := make([]domain.WordArticlePair, 0, len(wordsAndArticles)/2)
	for i := 0; i+1 < len(wordsAndArticles); i += 2 {
		pairs = append(pairs, domain.WordArticlePair{
			Word:    wordsAndArticles[i],
			Article: domain.Article(wordsAndArticles[i+1]),
		})
	}
	return pairs
}

// WriteFile writes content to name inside a fresh temp dir and returns the path
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// WriteWorkbook saves rows to the first sheet of a new workbook and returns its path.
// Empty strings leave the cell unset.
func WriteWorkbook(t testing.TB, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
