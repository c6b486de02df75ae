// Package catalog holds the static flight catalog, airport directory, hub list
// and alternative-route table the search engine is built from.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Catalog is loaded once at startup and treated as read-only afterwards.
type Catalog struct {
	Flights      []entity.Flight
	Airports     []entity.Airport
	Hubs         []string
	Alternatives map[string][]Route
	HomeCountry  string
	Currency     string
}

// FlightByID finds a catalog record.
func (c *Catalog) FlightByID(id string) (entity.Flight, bool) {
	for _, f := range c.Flights {
		if f.ID == id {
			return f, true
		}
	}
	return entity.Flight{}, false
}

// Validate rejects catalogs the index cannot serve.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Flights))
	for i, f := range c.Flights {
		if f.ID == "" {
			return fmt.Errorf("flight #%d: missing id", i)
		}
		if f.Origin == "" || f.Destination == "" {
			return fmt.Errorf("flight %s: missing origin or destination", f.ID)
		}
		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("flight %s: duplicate id", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	for i, a := range c.Airports {
		if a.Code == "" {
			return fmt.Errorf("airport #%d: missing code", i)
		}
	}
	return nil
}

type fileFlight struct {
	ID              string `json:"id"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Duration        string `json:"duration"`
	Transfers       string `json:"transfers"`
	Price           string `json:"price"`
	Airline         string `json:"airline"`
	International   bool   `json:"international"`
	CabinClass      string `json:"cabin_class"`
}

type fileAirport struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type fileCatalog struct {
	Flights      []fileFlight       `json:"flights"`
	Airports     []fileAirport      `json:"airports"`
	Hubs         []string           `json:"hubs"`
	Alternatives map[string][]Route `json:"alternatives"`
	HomeCountry  string             `json:"home_country"`
	Currency     string             `json:"currency"`
}

// LoadFile reads a catalog from JSON. Empty hub, home-country and currency
// fields fall back to the built-in values.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("catalog read file: %w", err)
	}

	var raw fileCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}

	def := Default()
	c := &Catalog{
		Flights:      make([]entity.Flight, 0, len(raw.Flights)),
		Airports:     make([]entity.Airport, 0, len(raw.Airports)),
		Hubs:         raw.Hubs,
		Alternatives: raw.Alternatives,
		HomeCountry:  raw.HomeCountry,
		Currency:     raw.Currency,
	}
	if len(c.Hubs) == 0 {
		c.Hubs = def.Hubs
	}
	if c.HomeCountry == "" {
		c.HomeCountry = def.HomeCountry
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}

	for _, f := range raw.Flights {
		cabin, _ := entity.ParseCabinClass(f.CabinClass)
		c.Flights = append(c.Flights, entity.Flight{
			ID:              f.ID,
			Origin:          f.Origin,
			Destination:     f.Destination,
			OriginCity:      f.OriginCity,
			DestinationCity: f.DestinationCity,
			DepartureTime:   f.DepartureTime,
			ArrivalTime:     f.ArrivalTime,
			Duration:        f.Duration,
			Transfers:       f.Transfers,
			Price:           f.Price,
			Airline:         f.Airline,
			International:   f.International,
			CabinClass:      cabin,
		})
	}
	for _, a := range raw.Airports {
		c.Airports = append(c.Airports, entity.Airport{Code: a.Code, City: a.City, Country: a.Country})
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
