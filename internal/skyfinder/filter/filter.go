// Package filter applies a request's price, airline and direct-only
// constraints to a candidate list without reordering it.
package filter

import (
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

// Apply keeps the flights passing every active test, in input order.
func Apply(flights []entity.Flight, f entity.Filter) []entity.Flight {
	airlines := airlineSet(f.Airlines)
	out := make([]entity.Flight, 0, len(flights))
	for _, flight := range flights {
		if Match(flight, f, airlines) {
			out = append(out, flight)
		}
	}
	return out
}

// Match reports whether one flight passes the filter. airlines may be nil.
func Match(flight entity.Flight, f entity.Filter, airlines map[string]struct{}) bool {
	if !matchPrice(flight, f) {
		return false
	}
	if !matchAirline(flight, airlines) {
		return false
	}
	return matchDirect(flight, f)
}

func matchPrice(flight entity.Flight, f entity.Filter) bool {
	amount, ok := entity.PriceAmount(flight.Price)
	if !ok {
		return false
	}
	return amount >= f.MinPrice && amount <= f.MaxPrice
}

func matchAirline(flight entity.Flight, airlines map[string]struct{}) bool {
	if len(airlines) == 0 {
		return true
	}
	_, ok := airlines[flight.Airline]
	return ok
}

func matchDirect(flight entity.Flight, f entity.Filter) bool {
	return !f.DirectOnly || flight.IsDirect()
}

func airlineSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Airlines lists the distinct airlines among flights in first-seen order, for
// building the airline choices of a filter.
func Airlines(flights []entity.Flight) []string {
	seen := make(map[string]struct{}, len(flights))
	out := make([]string, 0)
	for _, f := range flights {
		if _, ok := seen[f.Airline]; ok {
			continue
		}
		seen[f.Airline] = struct{}{}
		out = append(out, f.Airline)
	}
	return out
}
