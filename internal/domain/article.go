package domain

import "strings"

// Article is a German grammatical gender marker
type Article string

const (
	ArticleDer Article = "der"
	ArticleDie Article = "die"
	ArticleDas Article = "das"
)

// Articles returns the valid articles in display order
func Articles() []Article {
	return []Article{ArticleDer, ArticleDie, ArticleDas}
}

// ParseArticle trims and lowercases s and reports whether it is a valid article
func ParseArticle(s string) (Article, bool) {
	switch a := Article(strings.ToLower(strings.TrimSpace(s))); a {
	case ArticleDer, ArticleDie, ArticleDas:
		return a, true
	default:
		return "", false
	}
}

// String returns the article text
func (a Article) String() string {
	return string(a)
}
