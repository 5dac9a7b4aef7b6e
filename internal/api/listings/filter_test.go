package listings

import (
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBusinesses() []types.Business {
	return []types.Business{
		{ID: "1", Name: "Ace Plumbing", Address: "12 High St, London", Rating: 4.9, ReviewCount: 120, Website: "https://ace.example", IsOpen24Hours: true},
		{ID: "2", Name: "Budget Boilers", Address: "3 Mill Lane, London", Rating: 4.2, ReviewCount: 300},
		{ID: "3", Name: "City Drains", Address: "9 Canal Walk, London", Rating: 4.2, ReviewCount: 45, Website: "https://drains.example"},
		{ID: "4", Name: "Drain Doctors", Address: "1 River Rd, London", Rating: 3.8, ReviewCount: 500, IsOpen24Hours: true},
	}
}

func TestApplyFilter(t *testing.T) {
	t.Run("empty filter returns all, rating sorted", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{})
		require.Len(t, result, 4)
		assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(result))
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SearchQuery: "ace"})
		require.Len(t, result, 1)
		assert.Equal(t, "Ace Plumbing", result[0].Name)
	})

	t.Run("search matches address substring", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SearchQuery: "mill lane"})
		require.Len(t, result, 1)
		assert.Equal(t, "Budget Boilers", result[0].Name)
	})

	t.Run("whitespace-only search is a no-op", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SearchQuery: "   "})
		assert.Len(t, result, 4)
	})

	t.Run("min rating zero keeps everything", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{MinRating: 0})
		assert.Len(t, result, 4)
	})

	t.Run("min rating filters strictly below", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{MinRating: 4.2})
		assert.Equal(t, []string{"1", "2", "3"}, idsOf(result))
	})

	t.Run("min rating five keeps only perfect scores", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{MinRating: 5})
		assert.Empty(t, result)
	})

	t.Run("24 hour filter", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{Is24Hours: true})
		assert.Equal(t, []string{"1", "4"}, idsOf(result))
	})

	t.Run("availability now aliases the 24 hour filter", func(t *testing.T) {
		now := ApplyFilter(sampleBusinesses(), types.BusinessFilter{Availability: types.AvailabilityNow})
		h24 := ApplyFilter(sampleBusinesses(), types.BusinessFilter{Is24Hours: true})
		assert.Equal(t, idsOf(h24), idsOf(now))
	})

	t.Run("has website filter", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{HasWebsite: true})
		assert.Equal(t, []string{"1", "3"}, idsOf(result))
	})

	t.Run("predicates compose by AND", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{
			HasWebsite: true,
			Is24Hours:  true,
		})
		assert.Equal(t, []string{"1"}, idsOf(result))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		input := sampleBusinesses()
		ApplyFilter(input, types.BusinessFilter{SortBy: types.SortByName})
		assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(input))
	})
}

func TestSortBusinesses(t *testing.T) {
	t.Run("rating descending, ties keep input order", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SortBy: types.SortByRating})
		// 2 and 3 share a 4.2 rating; stable sort keeps 2 first.
		assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(result))
	})

	t.Run("reviews descending", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SortBy: types.SortByReviews})
		assert.Equal(t, []string{"4", "2", "1", "3"}, idsOf(result))
	})

	t.Run("name ascending", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SortBy: types.SortByName})
		assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(result))
	})

	t.Run("distance is accepted but a no-op", func(t *testing.T) {
		result := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SortBy: types.SortByDistance})
		assert.Equal(t, []string{"1", "2", "3", "4"}, idsOf(result))
	})

	t.Run("rating sort is idempotent", func(t *testing.T) {
		once := ApplyFilter(sampleBusinesses(), types.BusinessFilter{SortBy: types.SortByRating})
		twice := ApplyFilter(once, types.BusinessFilter{SortBy: types.SortByRating})
		assert.Equal(t, idsOf(once), idsOf(twice))
	})
}

func idsOf(businesses []types.Business) []string {
	ids := make([]string, len(businesses))
	for i, b := range businesses {
		ids[i] = b.ID
	}
	return ids
}
