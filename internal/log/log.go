// Package log records an audit trail of booksearch operations.
// Entries are stored in ~/.booksearch/log/booksearch-log.db and cover every
// CLI command and MCP tool invocation across libraries.
//
// # Fluent API
//
//	log.Event("search:search", "search").
//		Author(cmd.Author()).
//		Term(term).
//		Results(len(resp.Results)).
//		Write(err)
//
//	log.Event("library:rm", "delete").
//		Author(cmd.Author()).
//		ISBN(isbn).
//		Write(err)
//
// The source is "{extension}:{command}" for CLI commands or "mcp:{tool}" for
// MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g. "search:search", "mcp:booksearch_search"
	Author string
	Action string // verb: search, import, read, delete, list
	ISBN   string // book the operation targeted, if any
	Term   string // search term, if any

	// Results is the number of hits or books produced. Nil when the
	// operation has no natural count.
	Results *int

	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry. Create with [Event], chain setters, then
// call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts a log entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation. MCP tools use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// ISBN sets the book this operation affects.
func (b *Builder) ISBN(isbn string) *Builder {
	b.entry.ISBN = isbn
	return b
}

// Term sets the search term.
func (b *Builder) Term(term string) *Builder {
	b.entry.Term = term
	return b
}

// Results sets the number of hits (search) or books (import, list).
func (b *Builder) Results(n int) *Builder {
	b.entry.Results = &n
	return b
}

// Detail adds a key-value pair for data that has no dedicated field.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry; err decides success or failure.
//
//	resp, err := svc.Search(ctx, term, true, nil)
//	log.Event("search:search", "search").Term(term).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the .booksearch directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. No-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
