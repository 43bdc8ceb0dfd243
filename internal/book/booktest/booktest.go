// Package booktest provides fixture corpora and expected-result builders for
// tests that exercise book.Search.
package booktest

import "github.com/jpl-au/booksearch/internal/book"

// Fixture identifiers used by TwentyLeagues and Results.
const (
	ISBN  = "9780000528531"
	Page  = 31
	Title = "Twenty Thousand Leagues Under the Sea"
)

// TwentyLeagues returns a fresh copy of the one-book fixture corpus: page 31,
// lines 8 to 10 of "Twenty Thousand Leagues Under the Sea". Callers may
// modify the returned slice.
func TwentyLeagues() []book.Book {
	return []book.Book{
		{
			Title: Title,
			ISBN:  ISBN,
			Content: []book.ContentLine{
				{Page: Page, Line: 8, Text: "now simply went on by her own momentum.  The dark-"},
				{Page: Page, Line: 9, Text: "ness was then profound; and however good the Canadian's"},
				{Page: Page, Line: 10, Text: "eyes were, I asked myself how he had managed to see, and"},
			},
		},
	}
}

// Results builds the response a search for term over TwentyLeagues should
// produce when it matches the given lines, in the order given.
func Results(term string, lines ...int) *book.SearchResponse {
	resp := book.NewResponse(term)
	for _, l := range lines {
		resp.Results = append(resp.Results, book.SearchResult{ISBN: ISBN, Page: Page, Line: l})
	}
	return resp
}

// NoResults builds an empty response for term.
func NoResults(term string) *book.SearchResponse {
	return book.NewResponse(term)
}

// FixtureJSON is TwentyLeagues in the on-disk corpus format.
const FixtureJSON = `[
  {
    "Title": "Twenty Thousand Leagues Under the Sea",
    "ISBN": "9780000528531",
    "Content": [
      {"Page": 31, "Line": 8, "Text": "now simply went on by her own momentum.  The dark-"},
      {"Page": 31, "Line": 9, "Text": "ness was then profound; and however good the Canadian's"},
      {"Page": 31, "Line": 10, "Text": "eyes were, I asked myself how he had managed to see, and"}
    ]
  }
]
`

// FixtureYAML is TwentyLeagues as a YAML corpus.
const FixtureYAML = `- Title: Twenty Thousand Leagues Under the Sea
  ISBN: "9780000528531"
  Content:
    - Page: 31
      Line: 8
      Text: "now simply went on by her own momentum.  The dark-"
    - Page: 31
      Line: 9
      Text: "ness was then profound; and however good the Canadian's"
    - Page: 31
      Line: 10
      Text: "eyes were, I asked myself how he had managed to see, and"
`
