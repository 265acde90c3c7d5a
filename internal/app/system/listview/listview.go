// internal/app/system/listview/listview.go

// Package listview implements the shared listing view-model: an exact
// category match with "All" as the no-filter sentinel, plus a
// case-insensitive substring search over an item's searchable fields.
package listview

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// AllCategories is the sentinel meaning "do not filter by category".
const AllCategories = "All"

// Item is a listing entry that can be filtered.
type Item interface {
	// FilterCategory returns the value compared against the selected
	// category.
	FilterCategory() string
	// SearchFields returns the strings the search term is matched
	// against.
	SearchFields() []string
}

// Filter returns the items matching the selected category and search
// term. Category matching is exact (case-sensitive, matching what the
// listing pages render as filter chips); the search term is a
// case-insensitive substring test across all search fields. Empty
// search matches everything.
func Filter[T Item](items []T, category, search string) []T {
	out := make([]T, 0, len(items))
	needle := text.Fold(search)

	for _, it := range items {
		if category != "" && category != AllCategories && it.FilterCategory() != category {
			continue
		}
		if needle != "" && !matches(it, needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(it Item, needle string) bool {
	for _, f := range it.SearchFields() {
		if strings.Contains(text.Fold(f), needle) {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories present in items, with
// AllCategories prepended, preserving first-seen order.
func Categories[T Item](items []T) []string {
	seen := map[string]struct{}{}
	out := []string{AllCategories}
	for _, it := range items {
		c := it.FilterCategory()
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
