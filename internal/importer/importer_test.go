package importer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/importer"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/jpl-au/booksearch/internal/service"
	"github.com/jpl-au/booksearch/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (service.Service, string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, library.Init(false, "", ""))
	svc, err := library.New("")
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc, dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestRun(t *testing.T) {
	svc, dir := setup(t)
	ctx := context.Background()
	p := writeFile(t, dir, "leagues.json", booktest.FixtureJSON)

	var out bytes.Buffer
	res, err := importer.Run(ctx, &out, svc, []string{p}, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, []string{booktest.ISBN}, res.ISBNs)
	assert.Contains(t, out.String(), "Imported: "+booktest.ISBN)

	got, err := svc.Search(ctx, "and", true, nil)
	require.NoError(t, err)
	assert.Equal(t, booktest.Results("and", 9, 10), got)

	out.Reset()
	res, err = importer.Run(ctx, &out, svc, []string{p}, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Replaced)
	assert.Contains(t, out.String(), "Replaced: ")
}

func TestRun_InvalidFileWritesNothing(t *testing.T) {
	svc, dir := setup(t)
	ctx := context.Background()
	good := writeFile(t, dir, "a.json", booktest.FixtureJSON)
	bad := writeFile(t, dir, "b.json", `[{"ISBN": "x"}]`)

	_, err := importer.Run(ctx, &bytes.Buffer{}, svc, []string{good, bad}, importer.Options{})
	require.ErrorIs(t, err, book.ErrInvalidCorpus)
	assert.Contains(t, err.Error(), "b.json")

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Books)
}

func TestRun_MissingISBNWritesNothing(t *testing.T) {
	svc, dir := setup(t)
	ctx := context.Background()
	good := writeFile(t, dir, "a.json", booktest.FixtureJSON)
	bad := writeFile(t, dir, "b.json", `[{"Title": "no isbn", "Content": [{"Page": 1, "Line": 1, "Text": "and"}]}]`)

	for _, dry := range []bool{false, true} {
		_, err := importer.Run(ctx, &bytes.Buffer{}, svc, []string{good, bad}, importer.Options{DryRun: dry})
		require.ErrorIs(t, err, store.ErrMissingISBN)
		assert.Contains(t, err.Error(), "b.json")
	}

	ok, err := svc.Exists(ctx, booktest.ISBN)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_DryRun(t *testing.T) {
	svc, dir := setup(t)
	ctx := context.Background()
	p := writeFile(t, dir, "leagues.json", booktest.FixtureJSON)

	var out bytes.Buffer
	res, err := importer.Run(ctx, &out, svc, []string{p}, importer.Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, 1, res.Created)
	assert.Contains(t, out.String(), "Would import: "+booktest.ISBN)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Books, "dry run must not write")

	_, err = svc.Import(ctx, booktest.TwentyLeagues())
	require.NoError(t, err)

	out.Reset()
	res, err = importer.Run(ctx, &out, svc, []string{p}, importer.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Unchanged)

	changed := booktest.TwentyLeagues()
	changed[0].Content[2].Text = "eyes were sharp"
	var buf bytes.Buffer
	require.NoError(t, corpus.Encode(&buf, changed))
	p2 := writeFile(t, dir, "changed.json", buf.String())

	out.Reset()
	res, err = importer.Run(ctx, &out, svc, []string{p2}, importer.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Replaced)
	assert.Contains(t, out.String(), "Would replace: ")
	assert.Contains(t, out.String(), "+ 31:10: eyes were sharp")

	b, err := svc.Book(ctx, booktest.ISBN)
	require.NoError(t, err)
	assert.Equal(t, booktest.TwentyLeagues()[0], *b)
}

func TestRun_Directory(t *testing.T) {
	svc, dir := setup(t)
	src := filepath.Join(dir, "corpora")
	require.NoError(t, os.Mkdir(src, 0755))
	writeFile(t, src, "a.json", booktest.FixtureJSON)
	writeFile(t, src, "b.yaml", "- ISBN: '2'\n  Content:\n    - {Page: 1, Line: 1, Text: and}\n")
	writeFile(t, src, "notes.txt", "ignored")

	res, err := importer.Run(context.Background(), &bytes.Buffer{}, svc, []string{src}, importer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files)
	assert.Equal(t, []string{booktest.ISBN, "2"}, res.ISBNs)
}
