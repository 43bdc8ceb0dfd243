// search.go runs searches over the stored library.

package library

import (
	"context"

	"github.com/jpl-au/booksearch/internal/book"
)

// Search loads the corpus and scans it with book.SearchContext. The term is
// checked first so that a bad term is reported even when the library is
// empty or an ISBN is unknown.
func (s *Service) Search(ctx context.Context, term string, caseSensitive bool, isbns []string) (*book.SearchResponse, error) {
	if term == "" {
		return nil, book.ErrInvalidSearchTerm
	}
	corpus, err := s.store.Corpus(ctx, isbns...)
	if err != nil {
		return nil, err
	}
	return book.SearchContext(ctx, term, corpus, caseSensitive)
}
