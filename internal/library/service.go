// Package library provides the book library backed by a SQLite store. It
// exposes a Service which wraps store.SQLiteStore with configuration and
// audit logging.
package library

import (
	"context"
	"path/filepath"

	"github.com/jpl-au/booksearch/internal/config"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/jpl-au/booksearch/internal/repo"
	"github.com/jpl-au/booksearch/internal/service"
	"github.com/jpl-au/booksearch/internal/store"
)

// Service implements service.Service.
type Service struct {
	store         *store.SQLiteStore
	dbPath        string
	filesDir      string
	caseSensitive bool
	maxCorpusSize int64
}

var _ service.Service = (*Service)(nil)

// New opens the library, discovering the database by walking up the
// directory tree. The db parameter selects a named database (empty for the
// default). Returns repo.ErrNotInitialised if no database is found.
func New(db string) (*Service, error) {
	return NewIn(db, "")
}

// NewIn opens the library under dir, falling back to discovery when dir is
// empty.
func NewIn(db, dir string) (*Service, error) {
	dbPath, err := repo.Locate(db, dir)
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open opens the library database at dbPath.
func Open(dbPath string) (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	// Tolerates databases created by an older build missing a table.
	if err := s.Init(); err != nil {
		s.Close()
		return nil, err
	}

	svc := &Service{
		store:    s,
		dbPath:   dbPath,
		filesDir: filepath.Dir(dbPath),
	}
	svc.apply(cfg)
	return svc, nil
}

// Init creates a new library. See repo.Init.
func Init(force bool, db, dir string) error {
	return repo.Init(force, db, dir)
}

// Close checkpoints the WAL and closes the database connection.
func (s *Service) Close() error {
	if err := s.store.Checkpoint(context.Background()); err != nil {
		log.Event("library:close", "checkpoint").Write(err)
	}
	return s.store.Close()
}

// ReloadConfig rereads configuration after it has been changed on disk.
func (s *Service) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.apply(cfg)
	return nil
}

func (s *Service) apply(cfg *config.Config) {
	s.caseSensitive = cfg.CaseSensitive()
	s.maxCorpusSize = cfg.MaxCorpusSize()
}

// CaseSensitive is the configured search default.
func (s *Service) CaseSensitive() bool {
	return s.caseSensitive
}

// MaxCorpusSize is the configured corpus file size limit.
func (s *Service) MaxCorpusSize() int64 {
	return s.maxCorpusSize
}

// DBPath returns the path to the database file.
func (s *Service) DBPath() string {
	return s.dbPath
}

// FilesDir returns the path to the .booksearch directory.
func (s *Service) FilesDir() string {
	return s.filesDir
}
