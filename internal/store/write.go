// write.go implements library mutations.
//
// A book is always written whole: its row and every line are replaced in one
// transaction so a reader never sees half an import.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/booksearch/internal/book"
)

// ErrMissingISBN is returned when a book without an ISBN is written. The
// library needs the ISBN as its key even though search treats it as opaque.
var ErrMissingISBN = errors.New("book has no ISBN")

// Put inserts b, or replaces the stored book with the same ISBN.
func (s *SQLiteStore) Put(ctx context.Context, b book.Book) (PutResult, error) {
	var res PutResult
	if b.ISBN == "" {
		return res, ErrMissingISBN
	}
	if err := book.Validate([]book.Book{b}); err != nil {
		return res, err
	}

	now := time.Now().Unix()
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM books WHERE isbn = ?`, b.ISBN).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			r, err := tx.ExecContext(ctx,
				`INSERT INTO books (isbn, title, created_at, updated_at) VALUES (?, ?, ?, ?)`,
				b.ISBN, b.Title, now, now)
			if err != nil {
				return fmt.Errorf("insert book: %w", err)
			}
			if id, err = r.LastInsertId(); err != nil {
				return fmt.Errorf("insert book: %w", err)
			}
			res.Created = true
		case err != nil:
			return fmt.Errorf("lookup book: %w", err)
		default:
			if _, err := tx.ExecContext(ctx,
				`UPDATE books SET title = ?, updated_at = ? WHERE id = ?`, b.Title, now, id); err != nil {
				return fmt.Errorf("update book: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM lines WHERE book_id = ?`, id); err != nil {
				return fmt.Errorf("clear lines: %w", err)
			}
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO lines (book_id, seq, page, line, text) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare lines: %w", err)
		}
		defer stmt.Close()

		for i, c := range b.Content {
			if _, err := stmt.ExecContext(ctx, id, i, c.Page, c.Line, c.Text); err != nil {
				return fmt.Errorf("insert line %d: %w", i, err)
			}
		}
		return nil
	})
	return res, err
}

// Delete removes a book and its lines.
func (s *SQLiteStore) Delete(ctx context.Context, isbn string) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM lines WHERE book_id IN (SELECT id FROM books WHERE isbn = ?)`, isbn); err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
		r, err := tx.ExecContext(ctx, `DELETE FROM books WHERE isbn = ?`, isbn)
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
