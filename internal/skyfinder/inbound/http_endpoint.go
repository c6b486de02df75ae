package inbound

import (
	"context"
	"net/http"
	"strings"

	"github.com/king-open/SkyFinder/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}
	return mapFlightsOutput(h.uc.Search(ctx, input)), nil
}

func (h *HTTPEndpoint) ReturnFlights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}
	return mapFlightsOutput(h.uc.SearchReturn(ctx, input)), nil
}

func (h *HTTPEndpoint) Routes(ctx context.Context, _ *http.Request) (any, error) {
	routes := h.uc.FrequentRoutes(ctx)
	resp := make([]RouteResponse, 0, len(routes))
	for _, route := range routes {
		resp = append(resp, RouteResponse{
			Key:         route.Key,
			Origin:      route.Origin,
			Destination: route.Destination,
			Flights:     route.Flights,
			Cheapest:    route.Cheapest,
		})
	}
	return RoutesResponse{Routes: resp}, nil
}

func (h *HTTPEndpoint) Calendar(ctx context.Context, r *http.Request) (any, error) {
	from, days, err := parseCalendarInput(r)
	if err != nil {
		return nil, err
	}
	prices, err := h.uc.PriceCalendar(ctx, pkgrouter.Param(r, "id"), from, days)
	if err != nil {
		return nil, err
	}
	resp := CalendarResponse{FlightID: pkgrouter.Param(r, "id"), Days: make([]DayPriceResponse, 0, len(prices))}
	for _, p := range prices {
		resp.Days = append(resp.Days, DayPriceResponse{Date: p.Date, Price: p.Price})
	}
	return resp, nil
}

func (h *HTTPEndpoint) Cabins(ctx context.Context, r *http.Request) (any, error) {
	fares, err := h.uc.CabinFares(ctx, pkgrouter.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	resp := CabinsResponse{FlightID: pkgrouter.Param(r, "id"), Cabins: make([]CabinFareResponse, 0, len(fares))}
	for _, f := range fares {
		resp.Cabins = append(resp.Cabins, CabinFareResponse{Class: string(f.Class), Price: f.Price})
	}
	return resp, nil
}

func (h *HTTPEndpoint) Airports(ctx context.Context, r *http.Request) (any, error) {
	q := r.URL.Query()
	groups, err := h.uc.FilterAirports(ctx, strings.TrimSpace(q.Get("session")), q.Get("q"))
	if err != nil {
		return nil, err
	}
	return AirportsResponse{
		Domestic:      mapAirports(groups.Domestic),
		International: mapAirports(groups.International),
	}, nil
}

func (h *HTTPEndpoint) ClearAirports(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.ClearAirportCache(ctx, strings.TrimSpace(r.URL.Query().Get("session"))); err != nil {
		return nil, err
	}
	return StatusResponse{Status: "cleared"}, nil
}

func (h *HTTPEndpoint) OpenSession(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}
	return mapSessionOutput(h.uc.OpenSession(ctx, input)), nil
}

func (h *HTTPEndpoint) LoadMore(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.LoadMore(ctx, pkgrouter.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return mapSessionOutput(output), nil
}

func (h *HTTPEndpoint) Refresh(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.Refresh(ctx, pkgrouter.Param(r, "id"))
	if err != nil {
		return nil, err
	}
	return mapSessionOutput(output), nil
}

func (h *HTTPEndpoint) CloseSession(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.CloseSession(ctx, pkgrouter.Param(r, "id")); err != nil {
		return nil, err
	}
	return StatusResponse{Status: "closed"}, nil
}

func (h *HTTPEndpoint) TotalPrice(ctx context.Context, r *http.Request) (any, error) {
	input, err := parsePriceInput(r)
	if err != nil {
		return nil, err
	}
	output, err := h.uc.TotalPrice(ctx, input)
	if err != nil {
		return nil, err
	}

	resp := PriceResponse{
		Outbound: mapFlight(output.Outbound),
		Addons:   make([]AddonResponse, 0, len(output.Addons)),
		Total:    output.Total,
	}
	if output.Return != nil {
		ret := mapFlight(*output.Return)
		resp.Return = &ret
	}
	for _, a := range output.Addons {
		resp.Addons = append(resp.Addons, AddonResponse{Code: a.Code, Name: a.Name, Price: a.Price})
	}
	return resp, nil
}
