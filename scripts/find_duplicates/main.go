// Command find_duplicates scans the static directory for businesses that
// share an id, or a (name, city) pair, across buckets. Either usually means
// a copy-paste slip while adding listings.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
)

func main() {
	store := listings.NewFallbackStore()

	byID := make(map[string][]string)
	byNameCity := make(map[string][]string)
	store.All(func(citySlug, tradeSlug string, b types.Business) {
		where := fmt.Sprintf("%s/%s", citySlug, tradeSlug)
		byID[b.ID] = append(byID[b.ID], where)
		key := fmt.Sprintf("%s|%s", b.Name, b.City)
		byNameCity[key] = append(byNameCity[key], where)
	})

	dupIDs := collectDuplicates(byID)
	dupNames := collectDuplicates(byNameCity)

	if len(dupIDs) == 0 && len(dupNames) == 0 {
		fmt.Println("No duplicates found.")
		return
	}

	if len(dupIDs) > 0 {
		fmt.Println("Duplicate ids:")
		for _, key := range dupIDs {
			fmt.Printf("  %s appears in %v\n", key, byID[key])
		}
	}
	if len(dupNames) > 0 {
		fmt.Println("Duplicate (name, city) pairs:")
		for _, key := range dupNames {
			fmt.Printf("  %s appears in %v\n", key, byNameCity[key])
		}
	}
	os.Exit(1)
}

func collectDuplicates(index map[string][]string) []string {
	var keys []string
	for key, locations := range index {
		if len(locations) > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
