package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"derdiedas/internal/domain"
	"derdiedas/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrFileNotFound is returned when the spreadsheet does not exist
	ErrFileNotFound = errors.New("spreadsheet file not found")
	// ErrNoValidPairs is returned when the chosen layout yields no pairs
	ErrNoValidPairs = errors.New("no valid (word, article) pairs found")
)

const layoutHelp = "expected one of:\n" +
	"- vertical: column A = words, column B = der/die/das\n" +
	"- horizontal: row 1 = words, row 2 = der/die/das"

// LoaderService turns a spreadsheet into word/article pairs
type LoaderService struct {
	reader repository.GridReader
	logger *zap.Logger
}

// NewLoaderService creates a new loader service
func NewLoaderService(reader repository.GridReader, logger *zap.Logger) *LoaderService {
	return &LoaderService{
		reader: reader,
		logger: logger,
	}
}

// LoadPairs reads the spreadsheet at path and extracts pairs in the given orientation
func (s *LoaderService) LoadPairs(path string, orientation domain.Orientation) ([]domain.WordArticlePair, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}

	grid, err := s.reader.ReadGrid(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	vertical := VerticalPairs(grid)
	horizontal := HorizontalPairs(grid)
	pairs, chosen := SelectPairs(vertical, horizontal, orientation)

	s.logger.Info("Spreadsheet layout resolved",
		zap.String("path", path),
		zap.String("requested", string(orientation)),
		zap.String("chosen", string(chosen)),
		zap.Int("vertical_pairs", len(vertical)),
		zap.Int("horizontal_pairs", len(horizontal)),
		zap.Int("rows", grid.Rows()),
		zap.Int("cols", grid.Cols()),
	)

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w (%s layout)\n%s", ErrNoValidPairs, chosen, layoutHelp)
	}

	return pairs, nil
}
