// Package match implements the approximate text matching used by the worker
// ranking pipeline. It is a containment/overlap heuristic, not true edit
// distance: deliberately permissive so partial words and minor misspellings
// still hit, at the cost of some anagram-like false positives.
package match

import "strings"

// threshold is the minimum character-overlap ratio for a word to count as a
// fuzzy hit.
const threshold = 0.7

// Matches reports whether query approximately matches target. Checks run
// cheapest first: equality, prefix, substring, per-word prefix, then the
// per-word overlap score. Empty inputs never match.
func Matches(query, target string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return false
	}
	if q == t {
		return true
	}
	if strings.HasPrefix(t, q) {
		return true
	}
	if strings.Contains(t, q) {
		return true
	}
	for _, word := range strings.Fields(t) {
		if strings.HasPrefix(word, q) {
			return true
		}
		if Score(q, word) >= threshold {
			return true
		}
	}
	return false
}

// Score returns the fraction of the shorter string's characters that occur
// anywhere in the longer string, over the longer string's length. The
// comparison is order-insensitive; callers are expected to pass
// already-lowercased input.
func Score(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(longer) == 0 {
		return 0
	}
	hits := 0
	for _, r := range shorter {
		if strings.ContainsRune(string(longer), r) {
			hits++
		}
	}
	return float64(hits) / float64(len(longer))
}
