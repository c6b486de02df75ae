package inbound

type FlightsResponse struct {
	Search        SearchCriteriaResponse `json:"search_criteria"`
	Source        string                 `json:"source"`
	Airlines      []string               `json:"airlines"`
	Flights       []FlightResponse       `json:"flights"`
	ReturnFlights []FlightResponse       `json:"return_flights,omitempty"`
}

type SearchCriteriaResponse struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date,omitempty"`
	RoundTrip   bool   `json:"round_trip"`
	ReturnDate  string `json:"return_date,omitempty"`
}

type FlightResponse struct {
	ID              string      `json:"id"`
	Origin          string      `json:"origin"`
	Destination     string      `json:"destination"`
	OriginCity      string      `json:"origin_city"`
	DestinationCity string      `json:"destination_city"`
	DepartureTime   string      `json:"departure_time"`
	ArrivalTime     string      `json:"arrival_time"`
	Duration        string      `json:"duration"`
	Transfers       string      `json:"transfers"`
	Direct          bool        `json:"direct"`
	Price           PriceAmount `json:"price"`
	Airline         string      `json:"airline"`
	International   bool        `json:"international"`
	CabinClass      string      `json:"cabin_class,omitempty"`
}

type PriceAmount struct {
	Formatted string   `json:"formatted"`
	Amount    *float64 `json:"amount"`
	Currency  string   `json:"currency,omitempty"`
}

type RoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type RouteResponse struct {
	Key         string `json:"key"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Flights     int    `json:"flights"`
	Cheapest    string `json:"cheapest"`
}

type CalendarResponse struct {
	FlightID string             `json:"flight_id"`
	Days     []DayPriceResponse `json:"days"`
}

type DayPriceResponse struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

type CabinsResponse struct {
	FlightID string              `json:"flight_id"`
	Cabins   []CabinFareResponse `json:"cabins"`
}

type CabinFareResponse struct {
	Class string `json:"class"`
	Price string `json:"price"`
}

type AirportsResponse struct {
	Domestic      []AirportResponse `json:"domestic"`
	International []AirportResponse `json:"international"`
}

type AirportResponse struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type SessionResponse struct {
	ID       string           `json:"session_id"`
	Page     int              `json:"page"`
	Accepted bool             `json:"accepted"`
	Flights  []FlightResponse `json:"flights"`
}

type PriceResponse struct {
	Outbound FlightResponse  `json:"outbound"`
	Return   *FlightResponse `json:"return,omitempty"`
	Addons   []AddonResponse `json:"addons"`
	Total    string          `json:"total"`
}

type AddonResponse struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
