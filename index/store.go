// Package index loads a blog's published article index and holds it as an
// immutable in-memory store for the lifetime of a page session.
package index

import (
	"slices"

	"github.com/eringen/pubindex/article"
)

// Store is a read-only snapshot of the article index. The zero value is an
// empty store.
type Store struct {
	articles []article.Article
}

// NewStore copies articles into a new Store. Later changes to the argument
// do not affect the store.
func NewStore(articles []article.Article) *Store {
	return &Store{articles: slices.Clone(articles)}
}

// Articles returns a copy of the stored articles in index order.
func (s *Store) Articles() []article.Article {
	if s == nil {
		return nil
	}
	return slices.Clone(s.articles)
}

// Len returns the number of stored articles.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.articles)
}

// Empty reports whether the store holds no articles.
func (s *Store) Empty() bool {
	return s.Len() == 0
}
