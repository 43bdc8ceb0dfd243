package diff

import (
	"strings"
	"testing"

	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/stretchr/testify/assert"
)

func TestBooks_Unchanged(t *testing.T) {
	b := booktest.TwentyLeagues()[0]
	r := Books(&b, &b, "stored", "incoming")

	assert.False(t, r.Changed())
	assert.NotContains(t, r.Diff, "- ")
	assert.NotContains(t, r.Diff, "+ ")
}

func TestBooks_ChangedLine(t *testing.T) {
	old := booktest.TwentyLeagues()[0]
	updated := booktest.TwentyLeagues()[0]
	updated.Content[1].Text = "ness was then profound"

	r := Books(&old, &updated, "stored", "incoming")
	assert.True(t, r.Changed())
	assert.Contains(t, r.Diff, "- 31:9: ness was then profound; and however good the Canadian's\n")
	assert.Contains(t, r.Diff, "+ 31:9: ness was then profound\n")
	assert.Contains(t, r.Diff, "  31:8: ")
}

func TestBooks_Title(t *testing.T) {
	old := booktest.TwentyLeagues()[0]
	updated := booktest.TwentyLeagues()[0]
	updated.Title = "20,000 Leagues"

	r := Books(&old, &updated, "a", "b")
	assert.Contains(t, r.Diff, "+ title: 20,000 Leagues\n")
}

func TestFormat_CollapsesContext(t *testing.T) {
	var lines []string
	for i := range 10 {
		lines = append(lines, strings.Repeat("x", i+1))
	}
	old := strings.Join(lines, "\n") + "\n"
	r := Compute(old, old+"new\n", "a", "b")

	assert.Contains(t, r.Diff, "  ...\n")
	assert.Contains(t, r.Diff, "+ new\n")
}

func TestResult_Format(t *testing.T) {
	r := Result{Old: "a", New: "b", Diff: "- x\n+ y\n"}
	assert.Equal(t, "--- a\n+++ b\n- x\n+ y\n", r.Format(false))
	assert.Contains(t, r.Format(true), "\033[31m- x")
}
