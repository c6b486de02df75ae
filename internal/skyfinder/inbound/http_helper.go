package inbound

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/king-open/SkyFinder/internal/pkg/pkgerror"
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/usecase"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("query"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

type flightsQuery struct {
	Origin           string   `query:"origin" validate:"required,len=3,alpha"`
	Destination      string   `query:"destination" validate:"required,len=3,alpha,nefield=Origin"`
	Date             string   `query:"date" validate:"omitempty,datetime=2006-01-02"`
	RoundTrip        bool     `query:"round_trip"`
	ReturnDate       string   `query:"return_date" validate:"omitempty,datetime=2006-01-02"`
	PreferredAirline string   `query:"preferred_airline" validate:"max=64"`
	PreferredClass   string   `query:"preferred_class" validate:"omitempty,oneof=economy business first"`
	MinPrice         *float64 `query:"min_price" validate:"omitempty,gte=0"`
	MaxPrice         *float64 `query:"max_price" validate:"omitempty,gte=0"`
	Airlines         []string `query:"airlines" validate:"dive,required"`
	DirectOnly       bool     `query:"direct_only"`
}

func parseFlightsInput(r *http.Request) (usecase.FlightsInput, error) {
	q := r.URL.Query()

	fq := flightsQuery{
		Origin:           strings.ToUpper(strings.TrimSpace(firstNotEmpty(q.Get("origin"), q.Get("from")))),
		Destination:      strings.ToUpper(strings.TrimSpace(firstNotEmpty(q.Get("destination"), q.Get("to")))),
		Date:             strings.TrimSpace(firstNotEmpty(q.Get("date"), q.Get("departure_date"))),
		ReturnDate:       strings.TrimSpace(firstNotEmpty(q.Get("return_date"), q.Get("returnDate"))),
		PreferredAirline: strings.TrimSpace(q.Get("preferred_airline")),
		PreferredClass:   strings.ToLower(strings.TrimSpace(q.Get("preferred_class"))),
		Airlines:         parseListFilter(q, "airlines", "airline"),
	}

	var err error
	if fq.RoundTrip, err = parseBool(q, "round_trip"); err != nil {
		return usecase.FlightsInput{}, err
	}
	if fq.DirectOnly, err = parseBool(q, "direct_only"); err != nil {
		return usecase.FlightsInput{}, err
	}
	if fq.MinPrice, err = parseFloat(q, "min_price"); err != nil {
		return usecase.FlightsInput{}, err
	}
	if fq.MaxPrice, err = parseFloat(q, "max_price"); err != nil {
		return usecase.FlightsInput{}, err
	}

	if err := validateStruct(fq); err != nil {
		return usecase.FlightsInput{}, err
	}
	if fq.RoundTrip && fq.ReturnDate == "" {
		return usecase.FlightsInput{}, pkgerror.NewBusiness("return_date is required for a round trip", pkgerror.CodeInvalidInput)
	}

	input := usecase.FlightsInput{
		Request: entity.SearchRequest{
			Origin:      fq.Origin,
			Destination: fq.Destination,
			Date:        fq.Date,
			RoundTrip:   fq.RoundTrip,
			ReturnDate:  fq.ReturnDate,
		},
	}

	if fq.PreferredAirline != "" || fq.PreferredClass != "" {
		cabin, _ := entity.ParseCabinClass(fq.PreferredClass)
		input.Profile = &entity.Profile{PreferredAirline: fq.PreferredAirline, PreferredClass: cabin}
	}

	if fq.MinPrice != nil || fq.MaxPrice != nil || len(fq.Airlines) > 0 || fq.DirectOnly {
		f := entity.DefaultFilter()
		if fq.MinPrice != nil {
			f.MinPrice = *fq.MinPrice
		}
		if fq.MaxPrice != nil {
			f.MaxPrice = *fq.MaxPrice
		}
		f.Airlines = fq.Airlines
		f.DirectOnly = fq.DirectOnly
		input.Filter = &f
	}

	return input, nil
}

func parseCalendarInput(r *http.Request) (time.Time, int, error) {
	q := r.URL.Query()

	from := time.Now()
	if value := strings.TrimSpace(q.Get("from")); value != "" {
		parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
		if err != nil {
			return time.Time{}, 0, pkgerror.NewBusiness("invalid from", pkgerror.CodeInvalidInput)
		}
		from = parsed
	}

	days := 7
	if value := strings.TrimSpace(q.Get("days")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return time.Time{}, 0, pkgerror.NewBusiness("invalid days", pkgerror.CodeInvalidInput)
		}
		days = parsed
	}
	return from, days, nil
}

func parsePriceInput(r *http.Request) (usecase.PriceInput, error) {
	q := r.URL.Query()
	in := usecase.PriceInput{
		OutboundID: strings.TrimSpace(q.Get("outbound")),
		ReturnID:   strings.TrimSpace(q.Get("return")),
		Addons:     parseListFilter(q, "addons", "addon"),
	}
	if in.OutboundID == "" {
		return in, pkgerror.NewBusiness("outbound is required", pkgerror.CodeInvalidInput)
	}
	return in, nil
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return pkgerror.NewBusiness("invalid "+fieldErrs[0].Field(), pkgerror.CodeInvalidInput)
	}
	return pkgerror.NewBusiness("invalid request", pkgerror.CodeInvalidInput)
}

func parseBool(q url.Values, key string) (bool, error) {
	value := strings.TrimSpace(q.Get(key))
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, pkgerror.NewBusiness("invalid "+key, pkgerror.CodeInvalidInput)
	}
	return parsed, nil
}

func parseFloat(q url.Values, key string) (*float64, error) {
	value := strings.TrimSpace(q.Get(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, pkgerror.NewBusiness("invalid "+key, pkgerror.CodeInvalidInput)
	}
	return &parsed, nil
}

func parseListFilter(q url.Values, key, altKey string) []string {
	value := strings.TrimSpace(firstNotEmpty(q.Get(key), q.Get(altKey)))
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func mapFlightsOutput(output *usecase.FlightsOutput) FlightsResponse {
	resp := FlightsResponse{
		Search: SearchCriteriaResponse{
			Origin:      output.Request.Origin,
			Destination: output.Request.Destination,
			Date:        output.Request.Date,
			RoundTrip:   output.Request.RoundTrip,
			ReturnDate:  output.Request.ReturnDate,
		},
		Source:   string(output.Source),
		Airlines: append([]string{}, output.Airlines...),
		Flights:  mapFlights(output.Flights),
	}
	if output.Request.RoundTrip {
		resp.ReturnFlights = mapFlights(output.ReturnFlights)
	}
	return resp
}

func mapSessionOutput(output *usecase.SessionOutput) SessionResponse {
	return SessionResponse{
		ID:       output.ID,
		Page:     output.Page,
		Accepted: output.Accepted,
		Flights:  mapFlights(output.Flights),
	}
}

func mapFlights(flights []entity.Flight) []FlightResponse {
	resp := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		resp = append(resp, mapFlight(f))
	}
	return resp
}

func mapFlight(f entity.Flight) FlightResponse {
	price := PriceAmount{Formatted: f.Price}
	if m, ok := entity.ParsePrice(f.Price); ok {
		amount := m.Amount
		price.Amount = &amount
		price.Currency = m.Symbol
	}
	return FlightResponse{
		ID:              f.ID,
		Origin:          f.Origin,
		Destination:     f.Destination,
		OriginCity:      f.OriginCity,
		DestinationCity: f.DestinationCity,
		DepartureTime:   f.DepartureTime,
		ArrivalTime:     f.ArrivalTime,
		Duration:        f.Duration,
		Transfers:       f.Transfers,
		Direct:          f.IsDirect(),
		Price:           price,
		Airline:         f.Airline,
		International:   f.International,
		CabinClass:      string(f.CabinClass),
	}
}

func mapAirports(airports []entity.Airport) []AirportResponse {
	resp := make([]AirportResponse, 0, len(airports))
	for _, a := range airports {
		resp = append(resp, AirportResponse{Code: a.Code, City: a.City, Country: a.Country})
	}
	return resp
}
