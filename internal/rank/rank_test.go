package rank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func testPool() []types.WorkerRecord {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []types.WorkerRecord{
		{ID: "w1", Name: "Ramesh Kumar", WorkType: "Plumber", Location: "Delhi", Skills: "pipe fitting", Experience: "5 years", DistanceKm: fptr(5), PostCount: iptr(3), CreatedAt: base.Add(1 * time.Hour)},
		{ID: "w2", Name: "Suresh Singh", WorkType: "Electrician", Location: "Mumbai", Skills: "wiring", Experience: "12 years", DistanceKm: fptr(2), PostCount: iptr(7), CreatedAt: base.Add(3 * time.Hour)},
		{ID: "w3", Name: "Anita Devi", WorkType: "Plumber", Location: "New Delhi", Skills: "bathroom repair", Experience: "ten years", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestRank_CategoryFilterIsExact(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{WorkType: "plumber"})
	require.Len(t, got, 2)
	assert.Equal(t, "w1", got[0].ID)
	assert.Equal(t, "w3", got[1].ID)

	// "all" disables the filter.
	got = Rank(testPool(), types.SearchState{WorkType: "all"})
	assert.Len(t, got, 3)

	// Exact match only, not fuzzy: a typo filters everything out.
	got = Rank(testPool(), types.SearchState{WorkType: "plumbr"})
	assert.Empty(t, got)
}

func TestRank_LocationFilterIsSubstring(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{Location: "delhi"})
	require.Len(t, got, 2)
	assert.Equal(t, "w1", got[0].ID)
	assert.Equal(t, "w3", got[1].ID)
}

func TestRank_FreeTextQuery(t *testing.T) {
	t.Parallel()
	// Whole-query fuzzy match against any field.
	got := Rank(testPool(), types.SearchState{Query: "wiring"})
	require.Len(t, got, 1)
	assert.Equal(t, "w2", got[0].ID)
}

func TestRank_MultiWordQueryMembers(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{Query: "plumber delhi"})
	ids := make(map[string]bool, len(got))
	for _, w := range got {
		ids[w.ID] = true
	}
	assert.True(t, ids["w1"])
	assert.True(t, ids["w3"])
	assert.False(t, ids["w2"])
}

func TestRank_SortByDistanceMissingLast(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{Sort: types.SortDistance})
	require.Len(t, got, 3)
	assert.Equal(t, "w2", got[0].ID) // 2km
	assert.Equal(t, "w1", got[1].ID) // 5km
	assert.Equal(t, "w3", got[2].ID) // missing, pushed to the end
}

func TestRank_SortByPostsDescending(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{Sort: types.SortPosts})
	require.Len(t, got, 3)
	assert.Equal(t, "w2", got[0].ID)
	assert.Equal(t, "w1", got[1].ID)
	assert.Equal(t, "w3", got[2].ID) // missing treated as 0
}

func TestRank_SortByExperienceParsesYears(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{Sort: types.SortExperience})
	require.Len(t, got, 3)
	assert.Equal(t, "w2", got[0].ID) // 12
	assert.Equal(t, "w1", got[1].ID) // 5
	assert.Equal(t, "w3", got[2].ID) // "ten years" parses as 0
}

func TestRank_DefaultSortNewest(t *testing.T) {
	t.Parallel()
	got := Rank(testPool(), types.SearchState{})
	require.Len(t, got, 3)
	assert.Equal(t, "w2", got[0].ID)
	assert.Equal(t, "w3", got[1].ID)
	assert.Equal(t, "w1", got[2].ID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	pool := testPool()
	Rank(pool, types.SearchState{Sort: types.SortDistance, WorkType: "plumber"})
	assert.Equal(t, "w1", pool[0].ID)
	assert.Equal(t, "w2", pool[1].ID)
	assert.Equal(t, "w3", pool[2].ID)
}

func TestExperienceYears(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"5 years": 5,
		"12+ yrs": 12,
		"ten":     0,
		"":        0,
		" 7":      7,
	}
	for in, want := range cases {
		assert.Equal(t, want, experienceYears(in), "input %q", in)
	}
}
