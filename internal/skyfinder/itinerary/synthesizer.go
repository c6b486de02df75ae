// Package itinerary builds connecting itineraries for pairs the route index
// cannot serve directly.
package itinerary

import (
	"strings"

	"github.com/king-open/SkyFinder/internal/skyfinder/catalog"
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

const viaPrefix = "via "

type lookup interface {
	Lookup(origin, destination string) []entity.Flight
}

type Synthesizer struct {
	index        lookup
	hubs         []string
	alternatives map[string][]catalog.Route
}

func New(index lookup, hubs []string, alternatives map[string][]catalog.Route) *Synthesizer {
	normalized := make([]string, 0, len(hubs))
	for _, h := range hubs {
		normalized = append(normalized, strings.ToUpper(strings.TrimSpace(h)))
	}
	return &Synthesizer{index: index, hubs: normalized, alternatives: alternatives}
}

// Source tells how a candidate set was produced.
type Source string

const (
	SourceDirect      Source = "direct"
	SourceHub         Source = "hub"
	SourceAlternative Source = "alternative"
	SourceNone        Source = "none"
)

// Candidates returns the indexed flights for the pair, or synthesized ones
// when there are none.
func (s *Synthesizer) Candidates(origin, destination string) ([]entity.Flight, Source) {
	if direct := s.index.Lookup(origin, destination); len(direct) > 0 {
		return direct, SourceDirect
	}
	return s.Synthesize(origin, destination)
}

// Synthesize produces one itinerary per hub that has both legs, in hub order.
// Without any viable hub it falls back to the alternative-route table.
func (s *Synthesizer) Synthesize(origin, destination string) ([]entity.Flight, Source) {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	out := make([]entity.Flight, 0)
	for _, hub := range s.hubs {
		if hub == origin || hub == destination {
			continue
		}
		first := s.index.Lookup(origin, hub)
		second := s.index.Lookup(hub, destination)
		if len(first) == 0 || len(second) == 0 {
			continue
		}
		out = append(out, Connect(first[0], second[0]))
	}
	if len(out) > 0 {
		return out, SourceHub
	}

	for _, alt := range s.alternatives[entity.RouteKey(origin, destination)] {
		out = append(out, s.index.Lookup(alt.Origin, alt.Destination)...)
	}
	if len(out) > 0 {
		return out, SourceAlternative
	}
	return out, SourceNone
}

// Connect joins two legs through the first leg's arrival airport. Duration is
// the two texts concatenated, not a computed time. The price is left empty when
// either leg's price cannot be read.
func Connect(first, second entity.Flight) entity.Flight {
	price := ""
	firstPrice, okFirst := entity.ParsePrice(first.Price)
	secondPrice, okSecond := entity.ParsePrice(second.Price)
	if okFirst && okSecond {
		price = entity.FormatPrice(secondPrice.Symbol, firstPrice.Amount+secondPrice.Amount)
	}

	return entity.Flight{
		ID:              first.ID + "+" + second.ID,
		Origin:          first.Origin,
		Destination:     second.Destination,
		OriginCity:      first.OriginCity,
		DestinationCity: second.DestinationCity,
		DepartureTime:   first.DepartureTime,
		ArrivalTime:     second.ArrivalTime,
		Duration:        first.Duration + " + " + second.Duration,
		Transfers:       viaPrefix + first.DestinationCity,
		Price:           price,
		Airline:         first.Airline,
		International:   first.International || second.International,
		CabinClass:      first.CabinClass,
	}
}

// SplitID returns the leg ids of a synthesized itinerary id.
func SplitID(id string) (string, string, bool) {
	first, second, ok := strings.Cut(id, "+")
	if !ok || first == "" || second == "" {
		return "", "", false
	}
	return first, second, true
}
