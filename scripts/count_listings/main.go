// Command count_listings prints how many businesses the static directory
// holds per city and trade, smallest buckets first, so thin areas of the
// catalogue are easy to spot.
package main

import (
	"fmt"
	"sort"

	"github.com/emergencytradesmen/tradesmen-api/internal/api/listings"
)

type bucketCount struct {
	citySlug  string
	tradeSlug string
	count     int
}

func main() {
	store := listings.NewFallbackStore()

	var buckets []bucketCount
	cityTotals := make(map[string]int)
	for _, citySlug := range store.CitySlugs() {
		for _, tradeSlug := range store.TradeSlugs(citySlug) {
			n := store.BucketLen(citySlug, tradeSlug)
			buckets = append(buckets, bucketCount{citySlug, tradeSlug, n})
			cityTotals[citySlug] += n
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count < buckets[j].count
		}
		if buckets[i].citySlug != buckets[j].citySlug {
			return buckets[i].citySlug < buckets[j].citySlug
		}
		return buckets[i].tradeSlug < buckets[j].tradeSlug
	})

	fmt.Println("Listings per city/trade (ascending):")
	for _, b := range buckets {
		fmt.Printf("  %-28s %-20s %d\n", b.citySlug, b.tradeSlug, b.count)
	}

	cities := make([]string, 0, len(cityTotals))
	for city := range cityTotals {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool {
		if cityTotals[cities[i]] != cityTotals[cities[j]] {
			return cityTotals[cities[i]] < cityTotals[cities[j]]
		}
		return cities[i] < cities[j]
	})

	fmt.Println("\nTotals per city (ascending):")
	for _, city := range cities {
		fmt.Printf("  %-28s %d\n", city, cityTotals[city])
	}
	fmt.Printf("\nTotal businesses: %d\n", store.Len())
}
