// Package airportsearch answers airport autocomplete queries over a static
// directory and memoizes each normalized query's result.
package airportsearch

import (
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/metric"
)

// Cache entries never expire because the directory never changes; Clear drops
// them all. Concurrent first lookups of one query are computed once.
type Cache struct {
	directory []entity.Airport

	mu      sync.RWMutex
	entries map[string][]entity.Airport
	gen     uint64
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

func New(directory []entity.Airport) *Cache {
	dir := make([]entity.Airport, len(directory))
	copy(dir, directory)
	return &Cache{directory: dir, entries: make(map[string][]entity.Airport)}
}

// Normalize case-folds and trims a query. It is also the cache key.
func Normalize(query string) string {
	return cases.Fold().String(strings.TrimSpace(query))
}

// Search returns airports whose code starts with the query or whose city
// contains it, in directory order. The returned slice is shared with the cache
// and must not be modified.
func (c *Cache) Search(query string) []entity.Airport {
	key := Normalize(query)
	if key == "" {
		return []entity.Airport{}
	}

	c.mu.RLock()
	result, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		metric.AirportCacheHits.Inc()
		return result
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[key]
		gen := c.gen
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		c.misses.Add(1)
		metric.AirportCacheMisses.Inc()
		computed := c.match(key)
		c.store(key, gen, computed)
		return computed, nil
	})
	return v.([]entity.Airport)
}

func (c *Cache) match(key string) []entity.Airport {
	fold := cases.Fold()
	out := make([]entity.Airport, 0)
	for _, a := range c.directory {
		if strings.HasPrefix(fold.String(a.Code), key) || strings.Contains(fold.String(a.City), key) {
			out = append(out, a)
		}
	}
	return out
}

// store keeps a computed result unless Clear ran since gen was read.
func (c *Cache) store(key string, gen uint64, result []entity.Airport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.entries[key] = result
}

// Clear drops every cached query, including ones still being computed.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]entity.Airport)
	c.gen++
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats reports how many searches were served from the cache and how many were computed.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Groups splits results for display; each group keeps the input order.
type Groups struct {
	Domestic      []entity.Airport
	International []entity.Airport
}

func Partition(airports []entity.Airport, homeCountry string) Groups {
	g := Groups{Domestic: []entity.Airport{}, International: []entity.Airport{}}
	for _, a := range airports {
		if a.RegionFor(homeCountry) == entity.RegionDomestic {
			g.Domestic = append(g.Domestic, a)
		} else {
			g.International = append(g.International, a)
		}
	}
	return g
}
