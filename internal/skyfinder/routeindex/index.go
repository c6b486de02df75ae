// Package routeindex maps origin-destination pairs to the catalog flights
// flying them. The index is immutable once built and safe for concurrent reads.
package routeindex

import (
	"sort"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

type Index struct {
	routes map[string][]entity.Flight
	size   int
}

// New indexes flights under RouteKey(origin, destination), keeping catalog
// order and dropping records identical to one already indexed.
func New(flights []entity.Flight) *Index {
	idx := &Index{routes: make(map[string][]entity.Flight)}
	for _, f := range flights {
		key := entity.RouteKey(f.Origin, f.Destination)
		if containsFlight(idx.routes[key], f) {
			continue
		}
		idx.routes[key] = append(idx.routes[key], f)
		idx.size++
	}
	return idx
}

func containsFlight(list []entity.Flight, f entity.Flight) bool {
	for _, existing := range list {
		if existing == f {
			return true
		}
	}
	return false
}

// Lookup returns a copy of the flights for the pair; empty when none exist.
func (i *Index) Lookup(origin, destination string) []entity.Flight {
	list := i.routes[entity.RouteKey(origin, destination)]
	out := make([]entity.Flight, len(list))
	copy(out, list)
	return out
}

func (i *Index) Has(origin, destination string) bool {
	return len(i.routes[entity.RouteKey(origin, destination)]) > 0
}

// Len is the number of indexed flights.
func (i *Index) Len() int {
	return i.size
}

// Keys lists every route key in lexical order.
func (i *Index) Keys() []string {
	keys := make([]string, 0, len(i.routes))
	for k := range i.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LookupKey is Lookup for a prebuilt route key.
func (i *Index) LookupKey(key string) []entity.Flight {
	list := i.routes[key]
	out := make([]entity.Flight, len(list))
	copy(out, list)
	return out
}
