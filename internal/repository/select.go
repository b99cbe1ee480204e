package repository

import (
	"path/filepath"
	"strings"

	"derdiedas/internal/repository/delimited"
	"derdiedas/internal/repository/xlsx"

	"go.uber.org/zap"
)

// NewGridReader picks the reader for a file once, from its extension.
// CSV files are parsed directly; workbooks go through the table reader
// with the row-streaming reader as fallback.
func NewGridReader(path, sheet string, logger *zap.Logger) GridReader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		logger.Debug("Using delimited text reader", zap.String("path", path))
		return delimited.NewReader()
	}

	logger.Debug("Using workbook reader chain",
		zap.String("path", path),
		zap.String("sheet", sheet),
	)
	return NewFallbackReader(logger,
		Strategy{Name: "table", Reader: xlsx.NewTableReader(sheet)},
		Strategy{Name: "stream", Reader: xlsx.NewStreamReader(sheet)},
	)
}
