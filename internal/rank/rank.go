// Package rank filters and orders the worker pool for display. Rank is a
// pure function of its inputs: it never mutates the given slice and is
// re-invoked on every change to the pool or the search state.
package rank

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/kaamsetu/kaamsetu-client/internal/match"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// Rank applies the category filter, location filter, and free-text fuzzy
// search in that fixed order, then stable-sorts by state.Sort. The returned
// slice is freshly allocated.
func Rank(workers []types.WorkerRecord, state types.SearchState) []types.WorkerRecord {
	out := make([]types.WorkerRecord, 0, len(workers))
	for _, w := range workers {
		if keep(w, state) {
			out = append(out, w)
		}
	}
	sortWorkers(out, state.Sort)
	return out
}

func keep(w types.WorkerRecord, state types.SearchState) bool {
	if wt := strings.TrimSpace(state.WorkType); wt != "" && !strings.EqualFold(wt, types.WorkTypeAll) {
		if !strings.EqualFold(w.WorkType, wt) {
			return false
		}
	}
	if loc := strings.TrimSpace(state.Location); loc != "" {
		if !strings.Contains(strings.ToLower(w.Location), strings.ToLower(loc)) {
			return false
		}
	}
	if q := strings.TrimSpace(state.Query); q != "" {
		return matchesQuery(w, q)
	}
	return true
}

// matchesQuery accepts a worker when the whole query fuzzy-matches any
// display field, or when any single word of a multi-word query does
// (supports queries like "plumber delhi").
func matchesQuery(w types.WorkerRecord, query string) bool {
	fields := [...]string{w.Name, w.WorkType, w.Location, w.Skills}
	for _, f := range fields {
		if match.Matches(query, f) {
			return true
		}
	}
	for _, word := range strings.Fields(query) {
		for _, f := range fields {
			if match.Matches(word, f) {
				return true
			}
		}
	}
	return false
}

func sortWorkers(ws []types.WorkerRecord, key types.SortKey) {
	switch key {
	case types.SortDistance:
		// Ascending; workers without a distance sort after those with one.
		// Two unknown distances keep their original relative order.
		sort.SliceStable(ws, func(i, j int) bool {
			a, b := ws[i].DistanceKm, ws[j].DistanceKm
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return *a < *b
			}
		})
	case types.SortPosts:
		sort.SliceStable(ws, func(i, j int) bool {
			return postCount(ws[i]) > postCount(ws[j])
		})
	case types.SortExperience:
		sort.SliceStable(ws, func(i, j int) bool {
			return experienceYears(ws[i].Experience) > experienceYears(ws[j].Experience)
		})
	default: // newest
		sort.SliceStable(ws, func(i, j int) bool {
			return ws[i].CreatedAt.After(ws[j].CreatedAt)
		})
	}
}

func postCount(w types.WorkerRecord) int {
	if w.PostCount == nil {
		return 0
	}
	return *w.PostCount
}

// experienceYears parses the leading integer out of free-form experience
// text like "5 years" or "12+ yrs"; non-numeric or missing values count as 0.
func experienceYears(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
