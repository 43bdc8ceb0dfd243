// Package store persists books for the library so a corpus does not have to
// be passed on every search. The store only hands books back in their
// original order; matching is always done by book.Search over the loaded
// corpus, never by a query against the database.
package store

import (
	"encoding/json"
	"time"
)

// BookMeta describes a stored book without loading its lines.
type BookMeta struct {
	ISBN      string // Opaque identifier, unique within the library
	Title     string // Informational title
	Lines     int    // Number of stored lines
	Pages     int    // Number of distinct page identifiers
	CreatedAt int64  // Unix timestamp of first import
	UpdatedAt int64  // Unix timestamp of latest import
}

// BookMetaJSON is the API-friendly representation of BookMeta.
type BookMetaJSON struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Lines     int    `json:"lines"`
	Pages     int    `json:"pages"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToJSON converts metadata to its API representation with RFC3339 timestamps.
func (m *BookMeta) ToJSON() BookMetaJSON {
	return BookMetaJSON{
		ISBN:      m.ISBN,
		Title:     m.Title,
		Lines:     m.Lines,
		Pages:     m.Pages,
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC().Format(time.RFC3339),
		UpdatedAt: time.Unix(m.UpdatedAt, 0).UTC().Format(time.RFC3339),
	}
}

// Stats summarises the library.
type Stats struct {
	Books int `json:"books"`
	Lines int `json:"lines"`
}

// PutResult reports what Put did.
type PutResult struct {
	Created bool // false when an existing book was replaced
}

// MarshalJSON encodes a value with indentation for human-readable output.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
