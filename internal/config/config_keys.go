// config_keys.go gives string-keyed access to settings for the config
// command and MCP. Unset optional values are nil so defaults apply only when
// the user has not chosen a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"search.case_sensitive",
		"output.render",
		"limits.max_corpus_size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "search.case_sensitive":
		return strconv.FormatBool(c.CaseSensitive()), nil
	case "output.render":
		return strconv.FormatBool(c.Render()), nil
	case "limits.max_corpus_size":
		return strconv.FormatInt(c.MaxCorpusSize(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "search.case_sensitive":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Search.CaseSensitive = &b
	case "output.render":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Output.Render = &b
	case "limits.max_corpus_size":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxCorpusSize || n > MaxMaxCorpusSize {
			return fmt.Errorf("%w: limits.max_corpus_size must be between %d and %d",
				ErrInvalidValue, MinMaxCorpusSize, MaxMaxCorpusSize)
		}
		c.Limits.MaxCorpusSize = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		m[k], _ = c.Get(k)
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "search.case_sensitive":
		return c.Search.CaseSensitive != nil
	case "output.render":
		return c.Output.Render != nil
	case "limits.max_corpus_size":
		return c.Limits.MaxCorpusSize != nil
	default:
		return false
	}
}
