// Package progress shows a progress counter for long imports. Output goes to
// stderr to keep stdout clean for piping, and is suppressed when stderr is
// not a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before progress is shown.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter on stderr.
func New(label string, total int) *Progress {
	return NewTo(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), label, total)
}

// NewTo creates a progress reporter on w. Nothing is written unless isTTY.
func NewTo(w io.Writer, isTTY bool, label string, total int) *Progress {
	return &Progress{w: w, label: label, total: total, isTTY: isTTY}
}

// Increment advances the counter and redraws the line.
func (p *Progress) Increment() {
	p.current++
	p.print()
}

func (p *Progress) print() {
	if !p.isTTY || p.total < minItems {
		return
	}
	pct := (p.current * 100) / p.total
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.isTTY || p.total < minItems {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", 40))
}
