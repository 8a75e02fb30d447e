package search

import "strings"

// FilterAll is the sentinel choice that disables a category/status filter.
const FilterAll = "all"

// MatchesTerm reports whether any field contains the term, case-insensitive.
// An empty or whitespace-only term matches everything.
func MatchesTerm(term string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// MatchesChoice reports whether the value passes an exact-match filter.
// The FilterAll sentinel (or an empty selection) passes unconditionally.
func MatchesChoice(selected, value string) bool {
	if selected == "" || selected == FilterAll {
		return true
	}
	return selected == value
}
