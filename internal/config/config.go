// Package config reads and writes booksearch configuration.
// Supports both global (~/.booksearch/config.yaml) and local
// (.booksearch/config.yaml). Reading uses local if it exists, otherwise
// global. Writing defaults to global; use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.booksearch/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is library-specific config in .booksearch/config.yaml
	ScopeLocal
)

// Author is recorded against every audit log entry.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Search holds search defaults.
type Search struct {
	CaseSensitive *bool `yaml:"case_sensitive,omitempty"`
}

// Output holds presentation options.
type Output struct {
	Render *bool `yaml:"render,omitempty"`
}

// Limits holds size limits.
type Limits struct {
	MaxCorpusSize *int64 `yaml:"max_corpus_size,omitempty"`
}

// DefaultMaxCorpusSize applies when limits.max_corpus_size is not configured.
const DefaultMaxCorpusSize = 100 * 1024 * 1024 // 100 MB

// Validation bounds for configuration values.
const (
	MinMaxCorpusSize = 1
	MaxMaxCorpusSize = 10 * 1024 * 1024 * 1024 // 10 GB
)

// Config contains configuration for booksearch.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Search Search `yaml:"search,omitempty"`
	Output Output `yaml:"output,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Unset values are valid; their defaults apply.
func (c *Config) Validate() error {
	if c.Limits.MaxCorpusSize != nil {
		v := *c.Limits.MaxCorpusSize
		if v < MinMaxCorpusSize || v > MaxMaxCorpusSize {
			return fmt.Errorf("%w: max_corpus_size must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxCorpusSize, MaxMaxCorpusSize, v)
		}
	}
	return nil
}

// CaseSensitive reports whether searches match case exactly (defaults to true).
func (c *Config) CaseSensitive() bool {
	if c.Search.CaseSensitive == nil {
		return true
	}
	return *c.Search.CaseSensitive
}

// Render reports whether terminal output is rendered with glamour
// (defaults to true).
func (c *Config) Render() bool {
	if c.Output.Render == nil {
		return true
	}
	return *c.Output.Render
}

// MaxCorpusSize returns the largest corpus file accepted, in bytes
// (defaults to 100 MB).
func (c *Config) MaxCorpusSize() int64 {
	if c.Limits.MaxCorpusSize == nil {
		return DefaultMaxCorpusSize
	}
	return *c.Limits.MaxCorpusSize
}

// LocalPath returns the path to the local (library) config file.
func LocalPath() string {
	return filepath.Join(".booksearch", "config.yaml")
}

// GlobalPath returns the path to the global config file:
// ~/.booksearch/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".booksearch", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
