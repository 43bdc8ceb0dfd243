// books.go implements reads and writes of whole books.

package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/store"
)

// Import writes every book in corpus. Nothing is written unless every book
// is valid and carries an ISBN. A later book with the same ISBN as an
// earlier one replaces it.
func (s *Service) Import(ctx context.Context, corpus []book.Book) ([]store.PutResult, error) {
	if err := book.Validate(corpus); err != nil {
		return nil, err
	}
	for i := range corpus {
		if corpus[i].ISBN == "" {
			return nil, fmt.Errorf("book %d (%q): %w", i, corpus[i].Title, store.ErrMissingISBN)
		}
	}

	results := make([]store.PutResult, 0, len(corpus))
	for i := range corpus {
		res, err := s.store.Put(ctx, corpus[i])
		if err != nil {
			return results, fmt.Errorf("import %s: %w", corpus[i].ISBN, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Book returns one stored book.
func (s *Service) Book(ctx context.Context, isbn string) (*book.Book, error) {
	return s.store.Get(ctx, isbn)
}

// Exists reports whether isbn is stored.
func (s *Service) Exists(ctx context.Context, isbn string) (bool, error) {
	return s.store.Exists(ctx, isbn)
}

// List returns metadata for every stored book.
func (s *Service) List(ctx context.Context) ([]store.BookMeta, error) {
	return s.store.List(ctx)
}

// Corpus returns the named books, or the whole library.
func (s *Service) Corpus(ctx context.Context, isbns []string) ([]book.Book, error) {
	return s.store.Corpus(ctx, isbns...)
}

// Remove deletes a book.
func (s *Service) Remove(ctx context.Context, isbn string) error {
	err := s.store.Delete(ctx, isbn)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, isbn)
	}
	return err
}

// Stats counts stored books and lines.
func (s *Service) Stats(ctx context.Context) (store.Stats, error) {
	return s.store.Stats(ctx)
}
