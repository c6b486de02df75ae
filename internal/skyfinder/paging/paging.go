// Package paging implements "load more" result pages. Pages after the first
// are copies of a base flight set moved later in the day and priced higher.
package paging

import (
	"strconv"
	"sync"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

const (
	hoursPerPage = 2
	pricePerPage = 100
)

type State struct {
	Page    int
	Loading bool
}

// Initial is the state right after the first page has been shown.
func Initial() State {
	return State{Page: 1}
}

// NextPage derives the next page from base. While a page is loading the call is
// a no-op that returns no flights and the state unchanged.
func NextPage(state State, base []entity.Flight) ([]entity.Flight, State) {
	if state.Loading {
		return nil, state
	}
	page := state.Page + 1
	return Derive(base, page), State{Page: page}
}

// Derive copies base for page n: departure and arrival move (n-1)*2 hours on a
// 24-hour dial and the whole-unit price rises by (n-1)*100.
func Derive(base []entity.Flight, page int) []entity.Flight {
	if page < 1 {
		page = 1
	}
	offset := page - 1
	out := make([]entity.Flight, 0, len(base))
	for _, f := range base {
		d := f
		if offset > 0 {
			d.ID = f.ID + "#p" + strconv.Itoa(page)
			d.DepartureTime = entity.ShiftClock(f.DepartureTime, offset*hoursPerPage)
			d.ArrivalTime = entity.ShiftClock(f.ArrivalTime, offset*hoursPerPage)
			if m, ok := entity.ParsePrice(f.Price); ok {
				d.Price = entity.FormatPrice(m.Symbol, float64(int64(m.Amount)+int64(offset*pricePerPage)))
			}
		}
		out = append(out, d)
	}
	return out
}

// Session serializes load-more and refresh for one user. FirstPage recomputes
// page one; Base supplies the flights later pages are derived from.
type Session struct {
	firstPage func() []entity.Flight
	base      func() []entity.Flight
	keep      func([]entity.Flight) []entity.Flight

	mu      sync.Mutex
	state   State
	results []entity.Flight
}

func NewSession(firstPage, base func() []entity.Flight) *Session {
	return &Session{
		firstPage: firstPage,
		base:      base,
		state:     Initial(),
		results:   firstPage(),
	}
}

// WithPageFilter sets the filter applied to each derived page before it is
// appended. Call it before the session is shared.
func (s *Session) WithPageFilter(keep func([]entity.Flight) []entity.Flight) *Session {
	s.keep = keep
	return s
}

// LoadMore appends the next page and returns the whole list. accepted is false
// when another load-more or refresh is still running.
func (s *Session) LoadMore() (results []entity.Flight, accepted bool) {
	s.mu.Lock()
	snapshot := s.state
	if snapshot.Loading {
		s.mu.Unlock()
		return nil, false
	}
	s.state.Loading = true
	s.mu.Unlock()

	flights, next := NextPage(snapshot, s.base())
	if s.keep != nil {
		flights = s.keep(flights)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, flights...)
	s.state = next
	return s.snapshotLocked(), true
}

// Refresh discards every appended page and recomputes page one.
func (s *Session) Refresh() (results []entity.Flight, accepted bool) {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return nil, false
	}
	s.state.Loading = true
	s.mu.Unlock()

	first := s.firstPage()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = first
	s.state = Initial()
	return s.snapshotLocked(), true
}

func (s *Session) Results() []entity.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) snapshotLocked() []entity.Flight {
	out := make([]entity.Flight, len(s.results))
	copy(out, s.results)
	return out
}
