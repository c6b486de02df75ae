package inbound

import (
	"context"
	"time"

	"github.com/king-open/SkyFinder/internal/pkg/pkgrouter"
	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
	"github.com/king-open/SkyFinder/internal/skyfinder/usecase"
)

type uc interface {
	Search(ctx context.Context, in usecase.FlightsInput) *usecase.FlightsOutput
	SearchReturn(ctx context.Context, in usecase.FlightsInput) *usecase.FlightsOutput
	FrequentRoutes(ctx context.Context) []usecase.RouteSummary
	CabinFares(ctx context.Context, flightID string) ([]usecase.CabinFare, error)
	PriceCalendar(ctx context.Context, flightID string, from time.Time, days int) ([]usecase.DayPrice, error)
	TotalPrice(ctx context.Context, in usecase.PriceInput) (*usecase.PriceOutput, error)
	FilterAirports(ctx context.Context, sessionID, query string) (airportsearch.Groups, error)
	ClearAirportCache(ctx context.Context, sessionID string) error
	OpenSession(ctx context.Context, in usecase.FlightsInput) *usecase.SessionOutput
	LoadMore(ctx context.Context, id string) (*usecase.SessionOutput, error)
	Refresh(ctx context.Context, id string) (*usecase.SessionOutput, error)
	CloseSession(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/flights", end.Flights)
	r.GET("/flights/return", end.ReturnFlights)
	r.GET("/flights/routes", end.Routes)
	r.GET("/flights/{id}/calendar", end.Calendar)
	r.GET("/flights/{id}/cabins", end.Cabins)
	r.GET("/airports", end.Airports)
	r.DELETE("/airports/cache", end.ClearAirports)
	r.POST("/sessions", end.OpenSession)
	r.POST("/sessions/{id}/more", end.LoadMore)
	r.POST("/sessions/{id}/refresh", end.Refresh)
	r.DELETE("/sessions/{id}", end.CloseSession)
	r.GET("/price/total", end.TotalPrice)
}
