package listings

import (
	"sort"
	"strings"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameCollator gives locale-aware ordering for the name sort. Collators
// are not safe for concurrent use, so each sort takes its own.
func nameCollator() *collate.Collator {
	return collate.New(language.BritishEnglish)
}

// ApplyFilter filters and sorts a materialized business list. All filter
// predicates compose by logical AND; the sort runs once over the filtered
// result and is stable, so insertion order breaks ties. The input slice
// is never mutated.
func ApplyFilter(businesses []types.Business, f types.BusinessFilter) []types.Business {
	filtered := make([]types.Business, 0, len(businesses))

	query := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	for _, b := range businesses {
		if query != "" {
			name := strings.ToLower(b.Name)
			address := strings.ToLower(b.Address)
			if !strings.Contains(name, query) && !strings.Contains(address, query) {
				continue
			}
		}
		if f.MinRating > 0 && b.Rating < f.MinRating {
			continue
		}
		if f.Is24Hours && !b.IsOpen24Hours {
			continue
		}
		if f.HasWebsite && b.Website == "" {
			continue
		}
		// "Available now" currently aliases the 24-hour filter. The live
		// availability flag exists on the record but is deliberately not
		// consulted here; changing that is a product decision.
		if f.Availability == types.AvailabilityNow && !b.IsOpen24Hours {
			continue
		}
		filtered = append(filtered, b)
	}

	sortBusinesses(filtered, f.SortBy)
	return filtered
}

func sortBusinesses(businesses []types.Business, sortBy string) {
	switch sortBy {
	case types.SortByReviews:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].ReviewCount > businesses[j].ReviewCount
		})
	case types.SortByName:
		c := nameCollator()
		sort.SliceStable(businesses, func(i, j int) bool {
			return c.CompareString(businesses[i].Name, businesses[j].Name) < 0
		})
	case types.SortByDistance:
		// Accepted but a no-op: businesses carry no coordinates.
	case types.SortByRating, "":
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Rating > businesses[j].Rating
		})
	}
}
