// Package service defines the library operations that commands, the importer
// and the MCP server depend on. library.New returns the implementation.
package service

import (
	"context"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/store"
)

// Service defines all library operations.
//
// Always call Close when done:
//
//	svc, err := library.New("")
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	resp, err := svc.Search(ctx, "and", true, nil)
type Service interface {
	// Close checkpoints the WAL and releases the database.
	Close() error

	// Import writes every book in corpus to the library, replacing books
	// whose ISBN is already present. The whole corpus is validated before
	// anything is written. Results are returned in corpus order.
	Import(ctx context.Context, corpus []book.Book) ([]store.PutResult, error)

	// Book returns one stored book. Returns store.ErrNotFound if absent.
	Book(ctx context.Context, isbn string) (*book.Book, error)

	// Exists reports whether a book is stored without loading its lines.
	Exists(ctx context.Context, isbn string) (bool, error)

	// List returns metadata for every stored book in library order.
	List(ctx context.Context) ([]store.BookMeta, error)

	// Corpus returns the named books, or the whole library when isbns is
	// empty, in library order.
	Corpus(ctx context.Context, isbns []string) ([]book.Book, error)

	// Remove deletes a book. Returns store.ErrNotFound if absent.
	Remove(ctx context.Context, isbn string) error

	// Stats counts stored books and lines.
	Stats(ctx context.Context) (store.Stats, error)

	// Search runs book.SearchContext over Corpus(isbns). An empty term is
	// rejected before the library is read.
	Search(ctx context.Context, term string, caseSensitive bool, isbns []string) (*book.SearchResponse, error)

	// CaseSensitive is the configured search default.
	CaseSensitive() bool

	// MaxCorpusSize is the configured corpus file size limit in bytes.
	MaxCorpusSize() int64

	// FilesDir returns the path to the .booksearch directory.
	FilesDir() string
}
