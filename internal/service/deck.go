package service

import (
	"math/rand"

	"derdiedas/internal/domain"
)

// Deck cycles through a pair set in random order, reshuffling after each lap
type Deck struct {
	pairs []domain.WordArticlePair
	cards []domain.WordArticlePair
	pos   int
	rng   *rand.Rand
}

// NewDeck creates a deck over a copy of pairs. It is empty until Shuffle is called.
func NewDeck(pairs []domain.WordArticlePair, rng *rand.Rand) *Deck {
	return &Deck{
		pairs: append([]domain.WordArticlePair(nil), pairs...),
		rng:   rng,
	}
}

// Len returns the number of pairs in one lap
func (d *Deck) Len() int {
	return len(d.pairs)
}

// Shuffle starts a fresh lap
func (d *Deck) Shuffle() {
	d.cards = append(d.cards[:0], d.pairs...)
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.pos = 0
}

// Draw returns the next pair. reshuffled is true when the previous lap was
// exhausted and a new one started. ok is false only for an empty pair set.
func (d *Deck) Draw() (pair domain.WordArticlePair, reshuffled bool, ok bool) {
	if len(d.pairs) == 0 {
		return domain.WordArticlePair{}, false, false
	}

	if d.pos >= len(d.cards) {
		d.Shuffle()
		reshuffled = true
	}

	pair = d.cards[d.pos]
	d.pos++
	return pair, reshuffled, true
}
