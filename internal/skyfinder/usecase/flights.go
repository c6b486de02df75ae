package usecase

import (
	"context"
	"log/slog"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/filter"
	"github.com/king-open/SkyFinder/internal/skyfinder/itinerary"
	"github.com/king-open/SkyFinder/internal/skyfinder/metric"
	"github.com/king-open/SkyFinder/internal/skyfinder/ranking"
)

type FlightsInput struct {
	Request entity.SearchRequest
	Profile *entity.Profile
	Filter  *entity.Filter
}

type FlightsOutput struct {
	Request       entity.SearchRequest
	Source        itinerary.Source
	Flights       []entity.Flight
	ReturnFlights []entity.Flight
	Airlines      []string
}

// Search runs lookup, synthesis, ranking and filtering for the outbound leg,
// and for the return leg too when the request is a round trip.
func (u *Usecase) Search(ctx context.Context, in FlightsInput) *FlightsOutput {
	flights, source, airlines := u.pipeline(in.Request.Origin, in.Request.Destination, in.Profile, in.Filter)

	slog.DebugContext(ctx, "flight search",
		"origin", in.Request.Origin,
		"destination", in.Request.Destination,
		"source", source,
		"results", len(flights),
	)

	out := &FlightsOutput{
		Request:       in.Request,
		Source:        source,
		Flights:       flights,
		ReturnFlights: []entity.Flight{},
		Airlines:      airlines,
	}
	if in.Request.RoundTrip {
		out.ReturnFlights = u.SearchReturn(ctx, in).Flights
	}
	return out
}

// SearchReturn is Search with origin and destination swapped.
func (u *Usecase) SearchReturn(ctx context.Context, in FlightsInput) *FlightsOutput {
	req := in.Request.Swapped()
	flights, source, airlines := u.pipeline(req.Origin, req.Destination, in.Profile, in.Filter)

	slog.DebugContext(ctx, "return flight search",
		"origin", req.Origin,
		"destination", req.Destination,
		"source", source,
		"results", len(flights),
	)

	return &FlightsOutput{
		Request:       req,
		Source:        source,
		Flights:       flights,
		ReturnFlights: []entity.Flight{},
		Airlines:      airlines,
	}
}

func (u *Usecase) pipeline(origin, destination string, profile *entity.Profile, f *entity.Filter) ([]entity.Flight, itinerary.Source, []string) {
	candidates, source := u.synthesizer.Candidates(origin, destination)
	metric.Searches.WithLabelValues(string(source)).Inc()
	if source == itinerary.SourceHub {
		metric.SynthesizedItineraries.Add(float64(len(candidates)))
	}

	airlines := filter.Airlines(candidates)
	ranked := ranking.Rank(candidates, profile)
	if f == nil {
		return ranked, source, airlines
	}
	return filter.Apply(ranked, *f), source, airlines
}

// pagingBase is the set later pages are derived from: the indexed flights of
// the pair, or the synthesized ones when the pair has none.
func (u *Usecase) pagingBase(origin, destination string) []entity.Flight {
	candidates, _ := u.synthesizer.Candidates(origin, destination)
	return candidates
}
