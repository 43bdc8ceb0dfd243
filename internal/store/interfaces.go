// interfaces.go defines the storage abstraction for the book library.
//
// Split into Reader and Writer so that consumers which only load corpora
// (search, MCP read tools) do not depend on mutation methods.

package store

import (
	"context"

	"github.com/jpl-au/booksearch/internal/book"
)

// Reader loads books from the library.
type Reader interface {
	// Get returns one book with all its lines. Returns ErrNotFound if the
	// ISBN is not in the library.
	Get(ctx context.Context, isbn string) (*book.Book, error)

	// Corpus returns books in library order. With no ISBNs the whole library
	// is returned; otherwise exactly the named books, in library order.
	Corpus(ctx context.Context, isbns ...string) ([]book.Book, error)

	// Exists reports whether a book is stored without loading its lines.
	Exists(ctx context.Context, isbn string) (bool, error)

	// List returns metadata for every book in library order.
	List(ctx context.Context) ([]BookMeta, error)

	// Stats counts books and lines.
	Stats(ctx context.Context) (Stats, error)
}

// Writer modifies the library.
type Writer interface {
	// Put inserts a book or replaces an existing book with the same ISBN.
	// A replaced book keeps its position in library order.
	Put(ctx context.Context, b book.Book) (PutResult, error)

	// Delete removes a book and its lines. Returns ErrNotFound if absent.
	Delete(ctx context.Context, isbn string) error
}

// Store is the full library abstraction.
type Store interface {
	Reader
	Writer
	Init() error
	Close() error
}
