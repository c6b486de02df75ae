// Package ranking orders candidate flights, by departure time alone or by a
// profile-weighted score.
package ranking

import (
	"sort"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

const (
	businessWindowStart = 9 * 60
	businessWindowEnd   = 18 * 60

	bonusBusinessHours    = 20
	bonusPreferredAirline = 30
	bonusDirect           = 50

	// unparsable times sort after every real time of day
	clockUnknown = 24 * 60
)

type candidate struct {
	flight    entity.Flight
	promoted  bool
	score     float64
	departure int
}

// Rank returns a new ordering of candidates. Without a profile the input order
// is kept apart from a stable sort by departure time. With one, flights in the
// preferred cabin come first, then score descending, then departure ascending.
// Flights with an unreadable departure go last in either mode, within their
// cabin group when a profile is given.
func Rank(candidates []entity.Flight, profile *entity.Profile) []entity.Flight {
	items := make([]candidate, len(candidates))
	for i, f := range candidates {
		items[i] = candidate{flight: f, departure: departureMinutes(f)}
		if profile != nil {
			items[i].promoted = profile.PreferredClass != "" && f.CabinClass == profile.PreferredClass
			items[i].score = Score(f, *profile)
		}
	}

	if profile == nil {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].departure < items[j].departure
		})
	} else {
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if a.promoted != b.promoted {
				return a.promoted
			}
			if known := a.departure != clockUnknown; known != (b.departure != clockUnknown) {
				return known
			}
			if a.score != b.score {
				return a.score > b.score
			}
			return a.departure < b.departure
		})
	}

	out := make([]entity.Flight, len(items))
	for i := range items {
		out[i] = items[i].flight
	}
	return out
}

// Score is 100 - price/100 plus bonuses for a business-hours departure, the
// preferred airline and a direct flight. An unreadable price adds nothing.
func Score(f entity.Flight, profile entity.Profile) float64 {
	score := 0.0
	if amount, ok := entity.PriceAmount(f.Price); ok {
		score = 100 - amount/100
	}
	if dep, ok := entity.ParseClock(f.DepartureTime); ok && dep >= businessWindowStart && dep < businessWindowEnd {
		score += bonusBusinessHours
	}
	if profile.PreferredAirline != "" && f.Airline == profile.PreferredAirline {
		score += bonusPreferredAirline
	}
	if f.IsDirect() {
		score += bonusDirect
	}
	return score
}

func departureMinutes(f entity.Flight) int {
	if m, ok := entity.ParseClock(f.DepartureTime); ok {
		return m
	}
	return clockUnknown
}
