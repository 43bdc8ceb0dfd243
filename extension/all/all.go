// Package all imports all core booksearch extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/booksearch/extension/core"
	_ "github.com/jpl-au/booksearch/extension/library"
	_ "github.com/jpl-au/booksearch/extension/search"
)
