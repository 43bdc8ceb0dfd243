// Package repo locates and creates booksearch libraries.
//
// A library is a .booksearch directory holding one or more SQLite databases.
// Discovery walks up from the working directory until a .booksearch directory
// containing the requested database is found, or the filesystem root is
// reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/booksearch/internal/store"
)

const (
	// Dir is the directory name for a booksearch library.
	Dir = ".booksearch"
	// DBFile is the default database filename.
	DBFile = "booksearch.db"
)

// DBFileName returns the database filename for a given name.
// "" gives booksearch.db, "classics" gives booksearch-classics.db and a name
// already ending in ".db" is returned as-is.
func DBFileName(name string) string {
	if name == "" {
		return DBFile
	}
	if strings.HasSuffix(name, ".db") {
		return name
	}
	return "booksearch-" + name + ".db"
}

// ErrNotInitialised is returned when no library is found.
var ErrNotInitialised = errors.New("library not initialised (run 'booksearch init')")

const gitignore = `# booksearch - the databases are the library, config and WAL files are local
config.yaml
*.db-wal
*.db-shm
`

// Init creates a library database under dir (the working directory when
// empty). An existing database is only replaced when force is set.
func Init(force bool, db, dir string) error {
	if dir == "" {
		dir = "."
	}
	root := filepath.Join(dir, Dir)
	dbPath := filepath.Join(root, DBFileName(db))

	if _, err := os.Stat(dbPath); err == nil {
		if !force {
			return fmt.Errorf("database %s already exists (use --force to reinitialise)", DBFileName(db))
		}
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
		}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	// Written once so that user edits survive a second init.
	ignore := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(ignore); os.IsNotExist(err) {
		if err := os.WriteFile(ignore, []byte(gitignore), 0644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}
	return nil
}

// Discover walks up the directory tree looking for a library database.
// Returns the full path to the database.
func Discover(db string) (string, error) {
	dbFile := DBFileName(db)
	return walkUp(func(dir string) (string, bool) {
		p := filepath.Join(dir, Dir, dbFile)
		_, err := os.Stat(p)
		return p, err == nil
	})
}

// Locate returns the database path inside dir, or discovers it when dir is
// empty.
func Locate(db, dir string) (string, error) {
	if dir == "" {
		return Discover(db)
	}
	p := filepath.Join(dir, Dir, DBFileName(db))
	if _, err := os.Stat(p); err != nil {
		return "", ErrNotInitialised
	}
	return p, nil
}

// DiscoverDir finds the nearest .booksearch directory.
func DiscoverDir() (string, error) {
	return walkUp(func(dir string) (string, bool) {
		p := filepath.Join(dir, Dir)
		info, err := os.Stat(p)
		return p, err == nil && info.IsDir()
	})
}

func walkUp(match func(dir string) (string, bool)) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		if p, ok := match(dir); ok {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DBInfo describes one library database.
type DBInfo struct {
	Name string // Short name, empty for the default database
	File string // booksearch.db, booksearch-classics.db
	Path string
}

// ListDBs returns the databases in dir, or in the discovered .booksearch
// directory when dir is empty.
func ListDBs(dir string) ([]DBInfo, error) {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", Dir, err)
	}

	var dbs []DBInfo
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".db") {
			continue
		}
		short := ""
		if name != DBFile {
			var ok bool
			short, ok = strings.CutPrefix(strings.TrimSuffix(name, ".db"), "booksearch-")
			if !ok {
				continue
			}
		}
		dbs = append(dbs, DBInfo{Name: short, File: name, Path: filepath.Join(dir, name)})
	}
	return dbs, nil
}
