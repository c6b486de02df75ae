package usecase

import (
	"context"
	"log/slog"

	"github.com/king-open/SkyFinder/internal/pkg/pkgerror"
	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
	"github.com/king-open/SkyFinder/internal/skyfinder/filter"
	"github.com/king-open/SkyFinder/internal/skyfinder/metric"
	"github.com/king-open/SkyFinder/internal/skyfinder/paging"
)

// Session is the caller-held context of one search: its paged results and
// its own airport search cache.
type Session struct {
	ID       string
	Input    FlightsInput
	paging   *paging.Session
	airports *airportsearch.Cache
}

type SessionOutput struct {
	ID       string
	Page     int
	Accepted bool
	Flights  []entity.Flight
}

var errSessionNotFound = pkgerror.NewBusiness("session not found", pkgerror.CodeNotFound)

// OpenSession runs the search and keeps page one for later LoadMore calls.
func (u *Usecase) OpenSession(ctx context.Context, in FlightsInput) *SessionOutput {
	req := in.Request
	s := &Session{
		ID:    u.uuid.Generate(),
		Input: in,
		paging: paging.NewSession(
			func() []entity.Flight {
				flights, _, _ := u.pipeline(req.Origin, req.Destination, in.Profile, in.Filter)
				return flights
			},
			func() []entity.Flight { return u.pagingBase(req.Origin, req.Destination) },
		),
		airports: airportsearch.New(u.catalog.Airports),
	}
	if in.Filter != nil {
		f := *in.Filter
		s.paging.WithPageFilter(func(page []entity.Flight) []entity.Flight {
			return filter.Apply(page, f)
		})
	}
	u.sessions.Set(s.ID, s, u.sessionTTL)
	metric.ActiveSessions.Set(float64(u.sessions.Sweep()))

	slog.DebugContext(ctx, "session opened", "session_id", s.ID, "origin", req.Origin, "destination", req.Destination)

	return &SessionOutput{ID: s.ID, Page: 1, Accepted: true, Flights: s.paging.Results()}
}

// LoadMore appends the next derived page. A call made while another is in
// flight is answered with Accepted=false and the current results.
func (u *Usecase) LoadMore(ctx context.Context, id string) (*SessionOutput, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}

	flights, ok := s.paging.LoadMore()
	if !ok {
		metric.PagesRejected.Inc()
		slog.DebugContext(ctx, "load more rejected, page still loading", "session_id", id)
		return &SessionOutput{ID: id, Page: s.paging.State().Page, Accepted: false, Flights: s.paging.Results()}, nil
	}
	metric.PagesLoaded.Inc()
	return &SessionOutput{ID: id, Page: s.paging.State().Page, Accepted: true, Flights: flights}, nil
}

// Refresh drops appended pages and recomputes page one.
func (u *Usecase) Refresh(ctx context.Context, id string) (*SessionOutput, error) {
	s, err := u.session(id)
	if err != nil {
		return nil, err
	}

	flights, ok := s.paging.Refresh()
	if !ok {
		metric.PagesRejected.Inc()
		slog.DebugContext(ctx, "refresh rejected, page still loading", "session_id", id)
		return &SessionOutput{ID: id, Page: s.paging.State().Page, Accepted: false, Flights: s.paging.Results()}, nil
	}
	return &SessionOutput{ID: id, Page: 1, Accepted: true, Flights: flights}, nil
}

func (u *Usecase) CloseSession(ctx context.Context, id string) error {
	if _, err := u.session(id); err != nil {
		return err
	}
	u.sessions.Delete(id)
	metric.ActiveSessions.Set(float64(u.sessions.Len()))
	slog.DebugContext(ctx, "session closed", "session_id", id)
	return nil
}

// session looks up a live session and renews it. Expired sessions are swept
// first so the active-session gauge never counts them.
func (u *Usecase) session(id string) (*Session, error) {
	metric.ActiveSessions.Set(float64(u.sessions.Sweep()))
	s, ok := u.sessions.Touch(id, u.sessionTTL)
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}
