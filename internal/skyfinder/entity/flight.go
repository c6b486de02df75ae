package entity

import "strings"

// TransferDirect marks a flight with no stops.
const TransferDirect = "direct"

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

func ParseCabinClass(value string) (CabinClass, bool) {
	switch c := CabinClass(strings.ToLower(strings.TrimSpace(value))); c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return c, true
	default:
		return "", false
	}
}

// Flight is an immutable catalog record. Times are "hh:mm AM/PM" and Price is
// a formatted amount such as "¥1280".
type Flight struct {
	ID              string
	Origin          string
	Destination     string
	OriginCity      string
	DestinationCity string
	DepartureTime   string
	ArrivalTime     string
	Duration        string
	Transfers       string
	Price           string
	Airline         string
	International   bool
	CabinClass      CabinClass
}

func (f Flight) IsDirect() bool {
	return f.Transfers == TransferDirect
}

// Profile carries per-request ranking preferences. PriceSensitivity is kept for
// callers and does not change the score.
type Profile struct {
	PreferredClass   CabinClass
	PreferredAirline string
	PriceSensitivity float64
}

// Filter is the request-scoped constraint set. An empty Airlines set means any airline.
type Filter struct {
	MinPrice   float64
	MaxPrice   float64
	Airlines   []string
	DirectOnly bool
}

// DefaultFilter is the unrestricted filter the booking screen starts from.
func DefaultFilter() Filter {
	return Filter{MinPrice: 0, MaxPrice: 10000}
}

type SearchRequest struct {
	Origin      string
	Destination string
	Date        string
	RoundTrip   bool
	ReturnDate  string
}

// Swapped returns the request for the return leg.
func (r SearchRequest) Swapped() SearchRequest {
	swapped := r
	swapped.Origin, swapped.Destination = r.Destination, r.Origin
	swapped.Date = r.ReturnDate
	swapped.ReturnDate = r.Date
	return swapped
}

// RouteKey builds the index key for an origin/destination pair.
func RouteKey(origin, destination string) string {
	return strings.ToUpper(strings.TrimSpace(origin)) + "-" + strings.ToUpper(strings.TrimSpace(destination))
}
