// Package catalog derives categories from a fetched emoji list and filters it.
package catalog

import "github.com/qyinm/emojitui/types"

// Categories returns the distinct category values of records in first-seen order.
func Categories(records []types.Emoji) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, e := range records {
		if _, ok := seen[e.Category()]; ok {
			continue
		}
		seen[e.Category()] = struct{}{}
		categories = append(categories, e.Category())
	}
	return categories
}

// Filter returns the records whose category equals category, preserving order.
// An empty category returns records unchanged.
func Filter(records []types.Emoji, category string) []types.Emoji {
	if category == "" {
		return records
	}
	filtered := make([]types.Emoji, 0)
	for _, e := range records {
		if e.Category() == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Count returns len(Filter(records, category)) without allocating.
func Count(records []types.Emoji, category string) int {
	if category == "" {
		return len(records)
	}
	n := 0
	for _, e := range records {
		if e.Category() == category {
			n++
		}
	}
	return n
}
