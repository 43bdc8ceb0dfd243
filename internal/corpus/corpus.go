// Package corpus parses corpus files into books.
//
// A corpus file is a JSON or YAML array of books. Before anything is decoded
// into Go types the raw document is checked against an embedded JSON Schema,
// so structural problems (a book without Content, Content that is not a list,
// a line whose Text is missing or not a string) are reported with the path of
// the offending value rather than as a generic unmarshal error. Every shape
// failure wraps book.ErrInvalidCorpus.
package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a corpus document.
type Format int

const (
	// JSON is the native corpus format.
	JSON Format = iota
	// YAML uses the same keys as JSON.
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("unsupported corpus file %s (want .json, .yaml or .yml)", path)
	}
}

// ParseFormat returns the format named by s (json, yaml or yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("unsupported corpus format %q (want json or yaml)", s)
	}
}

// IsCorpusFile reports whether path has a recognised corpus extension.
func IsCorpusFile(path string) bool {
	_, err := FormatOf(path)
	return err == nil
}

//go:embed schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// Decode parses a corpus document.
func Decode(data []byte, f Format) ([]book.Book, error) {
	if f == YAML {
		var err error
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", book.ErrInvalidCorpus)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The loader could not parse the document at all.
		return nil, fmt.Errorf("%w: %v", book.ErrInvalidCorpus, err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("%w: %s", book.ErrInvalidCorpus, describe(res.Errors()))
	}

	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrInvalidCorpus, err)
	}
	if err := book.Validate(books); err != nil {
		return nil, err
	}
	return books, nil
}

// Read decodes a corpus from r.
func Read(r io.Reader, f Format) ([]book.Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Decode(data, f)
}

// Load reads and decodes a single corpus file. Files larger than maxSize
// bytes are rejected before they are read; maxSize <= 0 disables the check.
func Load(path string, maxSize int64) ([]book.Book, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%s: %w (%d bytes, limit %d)", path, ErrTooLarge, info.Size(), maxSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	books, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return books, nil
}

// LoadAll loads several paths into one corpus, preserving argument order. A
// directory contributes its corpus files (not subdirectories) in lexical order.
func LoadAll(paths []string, maxSize int64) ([]book.Book, error) {
	files, err := Expand(paths)
	if err != nil {
		return nil, err
	}
	corpus := []book.Book{}
	for _, p := range files {
		books, err := Load(p, maxSize)
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, books...)
	}
	return corpus, nil
}

// Expand resolves directories in paths to the corpus files they contain.
// Plain file arguments are returned unchanged so an unsupported extension is
// reported by Load rather than silently skipped.
func Expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !IsCorpusFile(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
	}
	return files, nil
}

// Encode writes books as an indented JSON corpus.
func Encode(w io.Writer, books []book.Book) error {
	if books == nil {
		books = []book.Book{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(books)
}

// EncodeAs writes books in format f.
func EncodeAs(w io.Writer, books []book.Book, f Format) error {
	if f == JSON {
		return Encode(w, books)
	}
	if books == nil {
		books = []book.Book{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return err
	}
	return enc.Close()
}

// yamlToJSON re-encodes a YAML document as JSON so both formats go through
// the same schema check.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrInvalidCorpus, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrInvalidCorpus, err)
	}
	return out, nil
}

// describe joins schema errors into one message, capped so that a corpus with
// thousands of bad lines does not produce a thousand-line error.
func describe(errs []gojsonschema.ResultError) string {
	const maxShown = 5
	msgs := make([]string, 0, maxShown)
	for i, e := range errs {
		if i == maxShown {
			msgs = append(msgs, fmt.Sprintf("and %d more", len(errs)-maxShown))
			break
		}
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
