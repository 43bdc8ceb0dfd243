/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// render.go prints markdown for humans. A terminal gets glamour rendering
// unless output.render is off; pipes and redirects get the raw markdown.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/booksearch/internal/config"
	"golang.org/x/term"
)

// isTerminal reports whether stdout is a terminal. Tests capture output
// through SetOut, which is never a terminal.
func isTerminal() bool {
	return out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTerminal reports whether command output goes to a terminal.
func IsTerminal() bool { return isTerminal() }

// Render reports whether markdown output should go through glamour: raw
// is false, stdout is a terminal and output.render allows it.
func Render(raw bool) bool {
	return !raw && isTerminal() && renderEnabled()
}

// PrintMarkdown writes content, rendered when Render(raw) holds.
func PrintMarkdown(content string, raw bool) {
	if Render(raw) {
		if rendered, err := glamour.Render(content, "dark"); err == nil {
			fmt.Fprint(out, rendered)
			return
		}
	}
	fmt.Fprint(out, content)
}

func renderEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.Render()
}
