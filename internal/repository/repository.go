package repository

import (
	"derdiedas/internal/domain"
)

// GridReader reads one sheet of a spreadsheet file into a grid of raw cell values
type GridReader interface {
	ReadGrid(path string) (domain.Grid, error)
}
