// read.go implements library reads.
//
// Library order is insertion order (books.id) and line order is the order the
// lines were imported in (lines.seq). Both are what book.Search needs to
// report results in corpus-then-line order.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jpl-au/booksearch/internal/book"
)

// Get returns one book.
func (s *SQLiteStore) Get(ctx context.Context, isbn string) (*book.Book, error) {
	books, err := s.Corpus(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return &books[0], nil
}

// Corpus loads books with their lines.
func (s *SQLiteStore) Corpus(ctx context.Context, isbns ...string) ([]book.Book, error) {
	var b strings.Builder
	b.WriteString(`SELECT b.id, b.isbn, b.title, l.page, l.line, l.text
		FROM books b
		LEFT JOIN lines l ON l.book_id = b.id`)

	args := make([]any, 0, len(isbns))
	if len(isbns) > 0 {
		b.WriteString(` WHERE b.isbn IN (?` + strings.Repeat(`, ?`, len(isbns)-1) + `)`)
		for _, isbn := range isbns {
			args = append(args, isbn)
		}
	}
	b.WriteString(` ORDER BY b.id, l.seq`)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query corpus: %w", err)
	}
	defer rows.Close()

	corpus := []book.Book{}
	lastID := int64(-1)
	for rows.Next() {
		var (
			id          int64
			isbn, title string
			page, line  sql.NullInt64
			text        sql.NullString
		)
		if err := rows.Scan(&id, &isbn, &title, &page, &line, &text); err != nil {
			return nil, fmt.Errorf("scan corpus: %w", err)
		}
		if id != lastID {
			corpus = append(corpus, book.Book{ISBN: isbn, Title: title, Content: []book.ContentLine{}})
			lastID = id
		}
		// A book with no lines yields one row of NULLs from the LEFT JOIN.
		if !text.Valid {
			continue
		}
		cur := &corpus[len(corpus)-1]
		cur.Content = append(cur.Content, book.ContentLine{
			Page: int(page.Int64),
			Line: int(line.Int64),
			Text: text.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := checkFound(corpus, isbns); err != nil {
		return nil, err
	}
	return corpus, nil
}

// checkFound reports the first requested ISBN missing from corpus.
func checkFound(corpus []book.Book, isbns []string) error {
	if len(isbns) == 0 {
		return nil
	}
	found := make(map[string]bool, len(corpus))
	for _, b := range corpus {
		found[b.ISBN] = true
	}
	for _, isbn := range isbns {
		if !found[isbn] {
			return fmt.Errorf("%w: %s", ErrNotFound, isbn)
		}
	}
	return nil
}

// List returns metadata for every book without loading line text.
func (s *SQLiteStore) List(ctx context.Context) ([]BookMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.isbn, b.title, b.created_at, b.updated_at,
		       COUNT(l.seq), COUNT(DISTINCT l.page)
		FROM books b
		LEFT JOIN lines l ON l.book_id = b.id
		GROUP BY b.id
		ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var metas []BookMeta
	for rows.Next() {
		var m BookMeta
		if err := rows.Scan(&m.ISBN, &m.Title, &m.CreatedAt, &m.UpdatedAt, &m.Lines, &m.Pages); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Stats counts books and lines.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM books), (SELECT COUNT(*) FROM lines)`).
		Scan(&st.Books, &st.Lines)
	if err != nil {
		return st, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

// Exists reports whether a book is stored.
func (s *SQLiteStore) Exists(ctx context.Context, isbn string) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = ?)`, isbn).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check book: %w", err)
	}
	return ok, nil
}
