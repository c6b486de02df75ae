package usecase

import (
	"context"

	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
)

// FilterAirports searches the directory through the session's cache when
// sessionID is set, otherwise through the shared one.
func (u *Usecase) FilterAirports(ctx context.Context, sessionID, query string) (airportsearch.Groups, error) {
	c, err := u.airportCache(sessionID)
	if err != nil {
		return airportsearch.Groups{}, err
	}
	return airportsearch.Partition(c.Search(query), u.catalog.HomeCountry), nil
}

func (u *Usecase) ClearAirportCache(ctx context.Context, sessionID string) error {
	c, err := u.airportCache(sessionID)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

func (u *Usecase) airportCache(sessionID string) (*airportsearch.Cache, error) {
	if sessionID == "" {
		return u.airports, nil
	}
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.airports, nil
}
