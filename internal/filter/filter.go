// Package filter derives the visible subset of a collection from a free-text
// query and a categorical tab selector. Filtering is pure and stable: the
// result is always a subsequence of the input in original order.
package filter

import "strings"

// TabAll is the tab selector value that disables category narrowing.
const TabAll = "all"

// Engine configures filtering for one entity type. Text lists the fields
// searched by the free-text query; Category extracts the field matched
// exactly against a non-"all" tab selector.
type Engine[T any] struct {
	Text     []func(T) string
	Category func(T) string
}

// Apply returns the records matching both predicates, preserving original
// relative order. An empty query matches everything; tab TabAll (or empty)
// disables the category predicate.
func (e Engine[T]) Apply(records []T, query, tab string) []T {
	query = strings.ToLower(query)

	var out []T
	for _, rec := range records {
		if !e.matchesText(rec, query) {
			continue
		}
		if !e.matchesTab(rec, tab) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesText reports whether any configured text field contains the
// lower-cased query as a substring.
func (e Engine[T]) matchesText(rec T, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range e.Text {
		if strings.Contains(strings.ToLower(field(rec)), query) {
			return true
		}
	}
	return false
}

func (e Engine[T]) matchesTab(rec T, tab string) bool {
	if tab == "" || tab == TabAll || e.Category == nil {
		return true
	}
	return e.Category(rec) == tab
}
