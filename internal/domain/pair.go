package domain

import "strings"

// WordArticlePair is a noun together with its article
type WordArticlePair struct {
	Word    string
	Article Article
}

// NewWordArticlePair normalizes raw cell values into a pair.
// The second return value is false when the word is blank or the article is not der/die/das.
func NewWordArticlePair(word, article string) (WordArticlePair, bool) {
	w := strings.TrimSpace(word)
	if w == "" {
		return WordArticlePair{}, false
	}

	a, ok := ParseArticle(article)
	if !ok {
		return WordArticlePair{}, false
	}

	return WordArticlePair{Word: w, Article: a}, true
}
