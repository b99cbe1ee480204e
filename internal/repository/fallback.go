package repository

import (
	"errors"
	"fmt"

	"derdiedas/internal/domain"

	"go.uber.org/zap"
)

// Strategy is a named GridReader taking part in a fallback chain
type Strategy struct {
	Name   string
	Reader GridReader
}

// FallbackReader tries each strategy in order and returns the first grid read successfully
type FallbackReader struct {
	strategies []Strategy
	logger     *zap.Logger
}

// NewFallbackReader creates a reader chain from the given strategies
func NewFallbackReader(logger *zap.Logger, strategies ...Strategy) *FallbackReader {
	return &FallbackReader{
		strategies: strategies,
		logger:     logger,
	}
}

// ReadGrid implements GridReader
func (r *FallbackReader) ReadGrid(path string) (domain.Grid, error) {
	if len(r.strategies) == 0 {
		return domain.Grid{}, fmt.Errorf("no spreadsheet readers configured")
	}

	var errs []error
	for i, s := range r.strategies {
		grid, err := s.Reader.ReadGrid(path)
		if err == nil {
			if i > 0 {
				r.logger.Info("Spreadsheet read with fallback strategy",
					zap.String("strategy", s.Name),
					zap.String("path", path),
				)
			}
			return grid, nil
		}

		r.logger.Warn("Spreadsheet strategy failed",
			zap.String("strategy", s.Name),
			zap.String("path", path),
			zap.Error(err),
		)
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
	}

	return domain.Grid{}, fmt.Errorf("failed to read spreadsheet with any strategy: %w", errors.Join(errs...))
}
