package delimited

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"derdiedas/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader parses comma- or semicolon-separated text files
type Reader struct{}

// NewReader creates a delimited text reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadGrid implements repository.GridReader
func (r *Reader) ReadGrid(path string) (domain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to read file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to parse delimited file: %w", err)
	}

	return domain.NewGrid(rows), nil
}

// detectDelimiter looks at the first line. Spreadsheet exports in German
// locales use semicolons.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
