package service

import (
	"derdiedas/internal/domain"
)

// VerticalPairs reads column A as words and column B as articles, one pair per row
func VerticalPairs(grid domain.Grid) []domain.WordArticlePair {
	if grid.Cols() < 2 {
		return nil
	}
	return zipPairs(grid.Column(0), grid.Column(1))
}

// HorizontalPairs reads row 1 as words and row 2 as articles, one pair per column
func HorizontalPairs(grid domain.Grid) []domain.WordArticlePair {
	if grid.Rows() < 2 {
		return nil
	}
	return zipPairs(grid.Row(0), grid.Row(1))
}

// SelectPairs resolves the orientation. Auto takes the layout with strictly
// more pairs and prefers vertical on a tie.
func SelectPairs(vertical, horizontal []domain.WordArticlePair, orientation domain.Orientation) ([]domain.WordArticlePair, domain.Orientation) {
	switch orientation {
	case domain.OrientationVertical:
		return vertical, domain.OrientationVertical
	case domain.OrientationHorizontal:
		return horizontal, domain.OrientationHorizontal
	}

	if len(horizontal) > len(vertical) {
		return horizontal, domain.OrientationHorizontal
	}
	return vertical, domain.OrientationVertical
}

// zipPairs keeps only the candidates that normalize to a valid pair
func zipPairs(words, articles []string) []domain.WordArticlePair {
	var pairs []domain.WordArticlePair
	for i := 0; i < len(words) && i < len(articles); i++ {
		if pair, ok := domain.NewWordArticlePair(words[i], articles[i]); ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}
