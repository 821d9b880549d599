package query

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyQuery is returned when no usable terms remain after normalization.
// Callers must not issue an API request in that case.
var ErrEmptyQuery = errors.New("no watch terms after normalization")

const (
	MinResults = 10
	MaxResults = 100
)

// SearchQuery is an API-shaped recent-search query. Built fresh per cycle,
// never mutated.
type SearchQuery struct {
	Text       string
	MaxResults int
}

// Normalize splits raw free-text input into watch terms. Commas, whitespace
// and full-width spaces all act as separators. Insertion order is preserved
// and duplicates are kept; they collapse naturally when re-joined.
func Normalize(raw string) []string {
	if raw == "" {
		return nil
	}
	s := strings.ReplaceAll(raw, ",", " ")
	s = strings.ReplaceAll(s, "　", " ")

	var terms []string
	for _, w := range strings.Fields(s) {
		w = strings.TrimSpace(w)
		if w != "" {
			terms = append(terms, w)
		}
	}
	return terms
}

// Build assembles an OR-joined, retweet-excluded search query from terms.
// maxResults is clamped into [10,100].
func Build(terms []string, maxResults int) (SearchQuery, error) {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		quoted = append(quoted, quoteIfSpace(t))
	}
	if len(quoted) == 0 {
		return SearchQuery{}, ErrEmptyQuery
	}

	return SearchQuery{
		Text:       strings.Join(quoted, " OR ") + " -is:retweet",
		MaxResults: ClampMaxResults(maxResults),
	}, nil
}

// ClampMaxResults bounds a requested result count to the API's [10,100] range.
func ClampMaxResults(n int) int {
	if n < MinResults {
		return MinResults
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

// quoteIfSpace wraps multi-word terms in quotes so the API treats them as
// phrases.
func quoteIfSpace(w string) string {
	for _, r := range w {
		if unicode.IsSpace(r) {
			return `"` + w + `"`
		}
	}
	return w
}
