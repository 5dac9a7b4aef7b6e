package listings

import (
	"sort"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
)

// Store is the static fallback dataset: an in-memory two-level mapping
// of city-slug -> trade-slug -> ordered business list. It is built once
// at startup and read-only afterwards. Insertion order within a bucket
// is kept as the stable default sort tie-break; no other ordering
// invariant holds.
type Store struct {
	buckets map[string]map[string][]types.Business
	total   int
}

// NewStore builds a store from a flat list of businesses, bucketing each
// record by the slugs of its City and Trade fields.
func NewStore(businesses []types.Business) *Store {
	s := &Store{buckets: make(map[string]map[string][]types.Business)}
	for _, b := range businesses {
		citySlug := Slugify(b.City)
		tradeSlug := Slugify(b.Trade)
		trades, ok := s.buckets[citySlug]
		if !ok {
			trades = make(map[string][]types.Business)
			s.buckets[citySlug] = trades
		}
		trades[tradeSlug] = append(trades[tradeSlug], b)
		s.total++
	}
	return s
}

// Lookup returns the bucket for the given city and trade slugs. An
// unknown city or trade is normal, not exceptional: the result is simply
// empty. The returned slice must be treated as read-only.
func (s *Store) Lookup(citySlug, tradeSlug string) []types.Business {
	trades, ok := s.buckets[citySlug]
	if !ok {
		return nil
	}
	return trades[tradeSlug]
}

// HasBucket reports whether the (city, trade) bucket exists and is
// non-empty.
func (s *Store) HasBucket(citySlug, tradeSlug string) bool {
	return len(s.Lookup(citySlug, tradeSlug)) > 0
}

// FindByID scans every city's every trade bucket and returns the first
// record with a matching id, or nil if none matches. Linear by design:
// the fallback dataset is small and this path only runs when the
// database point-query came up empty.
func (s *Store) FindByID(id string) *types.Business {
	for _, citySlug := range s.CitySlugs() {
		trades := s.buckets[citySlug]
		for _, tradeSlug := range sortedKeys(trades) {
			for i := range trades[tradeSlug] {
				if trades[tradeSlug][i].ID == id {
					b := trades[tradeSlug][i]
					return &b
				}
			}
		}
	}
	return nil
}

// Len returns the total number of records across all buckets.
func (s *Store) Len() int {
	return s.total
}

// BucketLen returns the number of records in one bucket.
func (s *Store) BucketLen(citySlug, tradeSlug string) int {
	return len(s.Lookup(citySlug, tradeSlug))
}

// CitySlugs returns the store's city keys in sorted order, so that scans
// and maintenance output are deterministic.
func (s *Store) CitySlugs() []string {
	return sortedKeys(s.buckets)
}

// TradeSlugs returns the trade keys present for a city, sorted.
func (s *Store) TradeSlugs(citySlug string) []string {
	return sortedKeys(s.buckets[citySlug])
}

// All walks every record in deterministic bucket order.
func (s *Store) All(fn func(citySlug, tradeSlug string, b types.Business)) {
	for _, citySlug := range s.CitySlugs() {
		for _, tradeSlug := range s.TradeSlugs(citySlug) {
			for _, b := range s.buckets[citySlug][tradeSlug] {
				fn(citySlug, tradeSlug, b)
			}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
