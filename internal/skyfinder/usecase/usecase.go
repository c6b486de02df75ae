package usecase

import (
	"time"

	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
	"github.com/king-open/SkyFinder/internal/skyfinder/cache"
	"github.com/king-open/SkyFinder/internal/skyfinder/catalog"
	"github.com/king-open/SkyFinder/internal/skyfinder/itinerary"
	"github.com/king-open/SkyFinder/internal/skyfinder/routeindex"
)

type Dependency struct {
	Catalog     *catalog.Catalog
	Index       *routeindex.Index
	Synthesizer *itinerary.Synthesizer
	Airports    *airportsearch.Cache
	Sessions    *cache.Cache[*Session]
	SessionTTL  time.Duration
	UUID        pkguid.StringID
}

type Usecase struct {
	catalog     *catalog.Catalog
	index       *routeindex.Index
	synthesizer *itinerary.Synthesizer
	airports    *airportsearch.Cache
	sessions    *cache.Cache[*Session]
	sessionTTL  time.Duration
	uuid        pkguid.StringID
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		catalog:     dep.Catalog,
		index:       dep.Index,
		synthesizer: dep.Synthesizer,
		airports:    dep.Airports,
		sessions:    dep.Sessions,
		sessionTTL:  dep.SessionTTL,
		uuid:        dep.UUID,
	}
}
