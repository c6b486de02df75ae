package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/king-open/SkyFinder/internal/pkg/pkgerror"
	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
	"github.com/king-open/SkyFinder/internal/skyfinder/cache"
	"github.com/king-open/SkyFinder/internal/skyfinder/catalog"
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/itinerary"
	"github.com/king-open/SkyFinder/internal/skyfinder/metric"
	"github.com/king-open/SkyFinder/internal/skyfinder/routeindex"
)

func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()
	c := catalog.Default()
	idx := routeindex.New(c.Flights)
	return New(Dependency{
		Catalog:     c,
		Index:       idx,
		Synthesizer: itinerary.New(idx, c.Hubs, c.Alternatives),
		Airports:    airportsearch.New(c.Airports),
		Sessions:    cache.NewSliding[*Session](nil),
		SessionTTL:  time.Minute,
		UUID:        pkguid.NewUUID(),
	})
}

func ids(flights []entity.Flight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

func search(origin, destination string) FlightsInput {
	return FlightsInput{Request: entity.SearchRequest{Origin: origin, Destination: destination, Date: "2026-10-20"}}
}

func TestSearch_DirectRouteOrderedByDeparture(t *testing.T) {
	uc := newTestUsecase(t)
	out := uc.Search(context.Background(), search("PEK", "SHA"))

	got := ids(out.Flights)
	if len(got) != 2 || got[0] != "CA1501" || got[1] != "MU5102" {
		t.Errorf("Search(PEK,SHA) = %v, want [CA1501 MU5102]", got)
	}
	if out.Source != itinerary.SourceDirect {
		t.Errorf("source = %s", out.Source)
	}
	if len(out.ReturnFlights) != 0 {
		t.Errorf("one-way search returned %d return flights", len(out.ReturnFlights))
	}
}

func TestSearch_SynthesizedThroughHub(t *testing.T) {
	uc := newTestUsecase(t)
	out := uc.Search(context.Background(), search("CKG", "HKG"))

	if out.Source != itinerary.SourceHub || len(out.Flights) != 1 {
		t.Fatalf("Search(CKG,HKG) = %v from %s", ids(out.Flights), out.Source)
	}
	it := out.Flights[0]
	if it.Price != "¥3650" || it.Transfers != "via 北京首都" || !it.International {
		t.Errorf("itinerary = %+v", it)
	}
}

func TestSearch_AlternativeAndEmpty(t *testing.T) {
	uc := newTestUsecase(t)

	out := uc.Search(context.Background(), search("HGH", "HKG"))
	if out.Source != itinerary.SourceAlternative || len(out.Flights) != 1 || out.Flights[0].ID != "MU501" {
		t.Errorf("Search(HGH,HKG) = %v from %s", ids(out.Flights), out.Source)
	}

	out = uc.Search(context.Background(), search("KMG", "JFK"))
	if out.Source != itinerary.SourceNone || out.Flights == nil || len(out.Flights) != 0 {
		t.Errorf("Search(KMG,JFK) = %#v from %s", out.Flights, out.Source)
	}
}

func TestSearch_ProfileAndFilter(t *testing.T) {
	uc := newTestUsecase(t)
	in := search("PEK", "SHA")
	in.Profile = &entity.Profile{PreferredAirline: "东航"}

	out := uc.Search(context.Background(), in)
	if got := ids(out.Flights); got[0] != "MU5102" {
		t.Errorf("profile ranking = %v, want MU5102 first", got)
	}

	in.Filter = &entity.Filter{MinPrice: 0, MaxPrice: 1300}
	out = uc.Search(context.Background(), in)
	if got := ids(out.Flights); len(got) != 1 || got[0] != "CA1501" {
		t.Errorf("filtered = %v, want [CA1501]", got)
	}
	if len(out.Airlines) != 2 {
		t.Errorf("airlines = %v, want both candidate airlines", out.Airlines)
	}
}

func TestSearch_RoundTrip(t *testing.T) {
	uc := newTestUsecase(t)
	in := search("PEK", "SHA")
	in.Request.RoundTrip = true
	in.Request.ReturnDate = "2026-10-25"

	out := uc.Search(context.Background(), in)
	if got := ids(out.ReturnFlights); len(got) != 1 || got[0] != "FM9101" {
		t.Errorf("return flights = %v, want [FM9101]", got)
	}

	back := uc.SearchReturn(context.Background(), in)
	if back.Request.Origin != "SHA" || back.Request.Date != "2026-10-25" {
		t.Errorf("SearchReturn request = %+v", back.Request)
	}
}

func TestFilterAirports(t *testing.T) {
	uc := newTestUsecase(t)
	g, err := uc.FilterAirports(context.Background(), "", "sh")
	if err != nil {
		t.Fatalf("FilterAirports() error = %v", err)
	}
	if len(g.Domestic) != 2 || g.Domestic[0].Code != "SHA" || g.Domestic[1].Code != "SHE" {
		t.Errorf("domestic = %+v", g.Domestic)
	}

	g, _ = uc.FilterAirports(context.Background(), "", "成田")
	if len(g.International) != 1 || g.International[0].Code != "NRT" {
		t.Errorf("international = %+v", g.International)
	}

	g, _ = uc.FilterAirports(context.Background(), "", "")
	if len(g.Domestic)+len(g.International) != 0 {
		t.Errorf("empty query returned %+v", g)
	}

	if _, err := uc.FilterAirports(context.Background(), "missing", "sh"); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestSessions_LoadMoreAndRefresh(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()

	opened := uc.OpenSession(ctx, search("PEK", "SHA"))
	if opened.Page != 1 || len(opened.Flights) != 2 {
		t.Fatalf("OpenSession = %+v", opened)
	}

	more, err := uc.LoadMore(ctx, opened.ID)
	if err != nil {
		t.Fatalf("LoadMore() error = %v", err)
	}
	if !more.Accepted || more.Page != 2 || len(more.Flights) != 4 {
		t.Fatalf("LoadMore = page %d, %d flights", more.Page, len(more.Flights))
	}
	derived := map[string]entity.Flight{}
	for _, f := range more.Flights[2:] {
		derived[f.ID] = f
	}
	if f := derived["CA1501#p2"]; f.DepartureTime != "09:00 AM" || f.Price != "¥1380" {
		t.Errorf("derived CA1501 = %+v", f)
	}
	if f := derived["MU5102#p2"]; f.DepartureTime != "12:00 PM" || f.Price != "¥1480" {
		t.Errorf("derived MU5102 = %+v", f)
	}

	refreshed, err := uc.Refresh(ctx, opened.ID)
	if err != nil || refreshed.Page != 1 || len(refreshed.Flights) != 2 {
		t.Errorf("Refresh = %+v, %v", refreshed, err)
	}

	if err := uc.CloseSession(ctx, opened.ID); err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	_, err = uc.LoadMore(ctx, opened.ID)
	if be, ok := pkgerror.As(err); !ok || be.Code() != pkgerror.CodeNotFound {
		t.Errorf("LoadMore on closed session error = %v", err)
	}
}

func TestSessions_LoadMoreKeepsFilter(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	in := search("PEK", "SHA")
	in.Filter = &entity.Filter{MinPrice: 0, MaxPrice: 1300}

	opened := uc.OpenSession(ctx, in)
	if got := ids(opened.Flights); len(got) != 1 || got[0] != "CA1501" {
		t.Fatalf("page 1 = %v, want [CA1501]", got)
	}

	more, err := uc.LoadMore(ctx, opened.ID)
	if err != nil {
		t.Fatalf("LoadMore() error = %v", err)
	}
	if !more.Accepted || more.Page != 2 {
		t.Fatalf("LoadMore = %+v", more)
	}
	for _, f := range more.Flights {
		if amount, _ := entity.PriceAmount(f.Price); amount > 1300 {
			t.Errorf("%s at %s exceeds the session filter", f.ID, f.Price)
		}
	}
	if got := ids(more.Flights); len(got) != 1 {
		t.Errorf("flights after LoadMore = %v, want only CA1501 (page 2 prices exceed 1300)", got)
	}
}

func TestSessions_ExpiredLeaveGauge(t *testing.T) {
	uc := newTestUsecase(t)
	uc.sessionTTL = time.Millisecond
	ctx := context.Background()

	opened := uc.OpenSession(ctx, search("PEK", "SHA"))
	if got := testutil.ToFloat64(metric.ActiveSessions); got != 1 {
		t.Fatalf("active sessions = %v, want 1", got)
	}

	time.Sleep(10 * time.Millisecond)
	_, err := uc.LoadMore(ctx, opened.ID)
	if be, ok := pkgerror.As(err); !ok || be.Code() != pkgerror.CodeNotFound {
		t.Errorf("LoadMore on expired session error = %v", err)
	}
	if got := testutil.ToFloat64(metric.ActiveSessions); got != 0 {
		t.Errorf("active sessions = %v, want 0 after expiry", got)
	}
	if uc.sessions.Len() != 0 {
		t.Errorf("expired session still stored")
	}
}

func TestSessions_OwnAirportCache(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	opened := uc.OpenSession(ctx, search("PEK", "SHA"))

	if _, err := uc.FilterAirports(ctx, opened.ID, "pe"); err != nil {
		t.Fatalf("FilterAirports() error = %v", err)
	}
	if uc.airports.Len() != 0 {
		t.Error("session query leaked into the shared cache")
	}
	if err := uc.ClearAirportCache(ctx, opened.ID); err != nil {
		t.Errorf("ClearAirportCache() error = %v", err)
	}
}

func TestTotalPrice(t *testing.T) {
	out := catalogFlight(t, "FM9101")
	if got := TotalPrice(out, nil); got != "¥1180" {
		t.Errorf("one-way total = %q", got)
	}
	ret := entity.Flight{Price: "¥1280"}
	if got := TotalPrice(out, &ret, Addons[1]); got != "¥2759" {
		t.Errorf("round-trip total = %q, want ¥2759", got)
	}
	bad := entity.Flight{Price: "n/a"}
	if got := TotalPrice(bad, &ret); got != "¥1280" {
		t.Errorf("unreadable outbound total = %q", got)
	}
}

func catalogFlight(t *testing.T, id string) entity.Flight {
	t.Helper()
	f, ok := catalog.Default().FlightByID(id)
	if !ok {
		t.Fatalf("catalog flight %s missing", id)
	}
	return f
}

func TestUsecase_TotalPrice(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()

	out, err := uc.TotalPrice(ctx, PriceInput{OutboundID: "CA1501", ReturnID: "FM9101", Addons: []string{"lounge"}})
	if err != nil {
		t.Fatalf("TotalPrice() error = %v", err)
	}
	if out.Total != "¥2759" {
		t.Errorf("total = %q, want ¥2759", out.Total)
	}

	out, err = uc.TotalPrice(ctx, PriceInput{OutboundID: "CA4201+CA111#p2"})
	if err != nil || out.Total != "¥3750" {
		t.Errorf("derived synthetic total = %+v, %v", out, err)
	}

	tests := []struct {
		name string
		in   PriceInput
		code pkgerror.Code
	}{
		{"unknown outbound", PriceInput{OutboundID: "XX1"}, pkgerror.CodeNotFound},
		{"unknown return", PriceInput{OutboundID: "CA1501", ReturnID: "XX1"}, pkgerror.CodeNotFound},
		{"unknown addon", PriceInput{OutboundID: "CA1501", Addons: []string{"spa"}}, pkgerror.CodeInvalidInput},
		{"bad page", PriceInput{OutboundID: "CA1501#p1"}, pkgerror.CodeNotFound},
		{"disconnected legs", PriceInput{OutboundID: "CA1501+CA111"}, pkgerror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.TotalPrice(ctx, tt.in)
			be, ok := pkgerror.As(err)
			if !ok || be.Code() != tt.code {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestPriceCalendarAndCabins(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	friday := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	days, err := uc.PriceCalendar(ctx, "CA1501", friday, 3)
	if err != nil {
		t.Fatalf("PriceCalendar() error = %v", err)
	}
	want := []string{"¥1280", "¥1580", "¥1580"}
	for i, d := range days {
		if d.Price != want[i] {
			t.Errorf("day %s price = %s, want %s", d.Date, d.Price, want[i])
		}
	}
	if days[0].Date != "2026-10-16" {
		t.Errorf("first date = %s", days[0].Date)
	}
	if _, err := uc.PriceCalendar(ctx, "CA1501", friday, 0); err == nil {
		t.Error("expected error for zero days")
	}

	fares, err := uc.CabinFares(ctx, "CA1501")
	if err != nil || len(fares) != 3 || fares[2].Price != "¥6880" {
		t.Errorf("CabinFares = %+v, %v", fares, err)
	}
	if _, err := uc.CabinFares(ctx, "nope"); err == nil {
		t.Error("expected error for unknown flight")
	}
}

func TestFrequentRoutes(t *testing.T) {
	uc := newTestUsecase(t)
	routes := uc.FrequentRoutes(context.Background())
	if len(routes) == 0 {
		t.Fatal("no routes")
	}
	for _, r := range routes {
		if r.Key == "PEK-SHA" {
			if r.Flights != 2 || r.Cheapest != "¥1280" {
				t.Errorf("PEK-SHA summary = %+v", r)
			}
			return
		}
	}
	t.Error("PEK-SHA missing from routes")
}
