package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/king-open/SkyFinder/internal/pkg/pkgerror"
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/itinerary"
	"github.com/king-open/SkyFinder/internal/skyfinder/paging"
)

type Addon struct {
	Code        string
	Name        string
	Description string
	Price       float64
}

// Addons are the optional services offered at checkout.
var Addons = []Addon{
	{Code: "transfer", Name: "接送机", Description: "专车接送服务", Price: 199},
	{Code: "lounge", Name: "贵宾休息室", Description: "享受舒适候机环境", Price: 299},
	{Code: "fast_track", Name: "快速安检", Description: "优先安检通道", Price: 99},
	{Code: "meal", Name: "餐食升级", Description: "享受精致餐食", Price: 159},
}

var cabinFares = []struct {
	class  entity.CabinClass
	amount float64
}{
	{entity.CabinEconomy, 1280},
	{entity.CabinBusiness, 3880},
	{entity.CabinFirst, 6880},
}

const (
	weekdayFare    = 1280
	weekendFare    = 1580
	maxCalendarDay = 60
)

// TotalPrice sums the outbound price, the return price when present and the
// add-ons, in the outbound flight's currency. Unreadable prices count as zero.
func TotalPrice(outbound entity.Flight, ret *entity.Flight, addons ...Addon) string {
	total, ok := entity.ParsePrice(outbound.Price)
	if !ok {
		total = entity.Money{}
	}
	if ret != nil {
		if m, ok := entity.ParsePrice(ret.Price); ok {
			if total.Symbol == "" {
				total.Symbol = m.Symbol
			}
			total = total.Add(m)
		}
	}
	for _, a := range addons {
		total.Amount += a.Price
	}
	return total.String()
}

type PriceInput struct {
	OutboundID string
	ReturnID   string
	Addons     []string
}

type PriceOutput struct {
	Outbound entity.Flight
	Return   *entity.Flight
	Addons   []Addon
	Total    string
}

func (u *Usecase) TotalPrice(ctx context.Context, in PriceInput) (*PriceOutput, error) {
	outbound, ok := u.resolveFlight(in.OutboundID)
	if !ok {
		return nil, pkgerror.NewBusiness("outbound flight not found", pkgerror.CodeNotFound)
	}

	var ret *entity.Flight
	if in.ReturnID != "" {
		f, ok := u.resolveFlight(in.ReturnID)
		if !ok {
			return nil, pkgerror.NewBusiness("return flight not found", pkgerror.CodeNotFound)
		}
		ret = &f
	}

	addons := make([]Addon, 0, len(in.Addons))
	for _, code := range in.Addons {
		a, ok := addonByCode(code)
		if !ok {
			return nil, pkgerror.NewBusiness("unknown add-on "+strconv.Quote(code), pkgerror.CodeInvalidInput)
		}
		addons = append(addons, a)
	}

	return &PriceOutput{
		Outbound: outbound,
		Return:   ret,
		Addons:   addons,
		Total:    TotalPrice(outbound, ret, addons...),
	}, nil
}

func addonByCode(code string) (Addon, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, a := range Addons {
		if a.Code == code {
			return a, true
		}
	}
	return Addon{}, false
}

type CabinFare struct {
	Class entity.CabinClass
	Price string
}

func (u *Usecase) CabinFares(ctx context.Context, flightID string) ([]CabinFare, error) {
	if _, ok := u.resolveFlight(flightID); !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}
	out := make([]CabinFare, 0, len(cabinFares))
	for _, c := range cabinFares {
		out = append(out, CabinFare{Class: c.class, Price: entity.FormatPrice(u.catalog.Currency, c.amount)})
	}
	return out, nil
}

type DayPrice struct {
	Date  string
	Price string
}

// PriceCalendar quotes the flight for days consecutive dates from from;
// Saturdays and Sundays cost more.
func (u *Usecase) PriceCalendar(ctx context.Context, flightID string, from time.Time, days int) ([]DayPrice, error) {
	if _, ok := u.resolveFlight(flightID); !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}
	if days <= 0 || days > maxCalendarDay {
		return nil, pkgerror.NewBusiness("days must be between 1 and 60", pkgerror.CodeInvalidInput)
	}

	out := make([]DayPrice, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		amount := float64(weekdayFare)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			amount = weekendFare
		}
		out = append(out, DayPrice{Date: day.Format("2006-01-02"), Price: entity.FormatPrice(u.catalog.Currency, amount)})
	}
	return out, nil
}

type RouteSummary struct {
	Key         string
	Origin      string
	Destination string
	Flights     int
	Cheapest    string
}

// FrequentRoutes summarizes every indexed route with its cheapest fare.
func (u *Usecase) FrequentRoutes(ctx context.Context) []RouteSummary {
	keys := u.index.Keys()
	out := make([]RouteSummary, 0, len(keys))
	for _, key := range keys {
		flights := u.index.LookupKey(key)
		if len(flights) == 0 {
			continue
		}
		summary := RouteSummary{
			Key:         key,
			Origin:      flights[0].Origin,
			Destination: flights[0].Destination,
			Flights:     len(flights),
		}
		var cheapest *entity.Money
		for _, f := range flights {
			m, ok := entity.ParsePrice(f.Price)
			if !ok {
				continue
			}
			if cheapest == nil || m.Amount < cheapest.Amount {
				cheapest = &m
			}
		}
		if cheapest != nil {
			summary.Cheapest = cheapest.String()
		}
		out = append(out, summary)
	}
	return out
}

// resolveFlight finds catalog flights, synthesized itineraries ("A+B") and
// derived page copies ("ID#pN").
func (u *Usecase) resolveFlight(id string) (entity.Flight, bool) {
	id = strings.TrimSpace(id)
	page := 1
	if base, suffix, ok := strings.Cut(id, "#p"); ok {
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 2 {
			return entity.Flight{}, false
		}
		id, page = base, n
	}

	var (
		f  entity.Flight
		ok bool
	)
	if first, second, isPair := itinerary.SplitID(id); isPair {
		a, okA := u.catalog.FlightByID(first)
		b, okB := u.catalog.FlightByID(second)
		if okA && okB && a.Destination == b.Origin {
			f, ok = itinerary.Connect(a, b), true
		}
	} else {
		f, ok = u.catalog.FlightByID(id)
	}
	if !ok {
		return entity.Flight{}, false
	}
	if page > 1 {
		f = paging.Derive([]entity.Flight{f}, page)[0]
	}
	return f, true
}
