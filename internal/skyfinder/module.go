package skyfinder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/king-open/SkyFinder/internal/pkg/pkgconfig"
	"github.com/king-open/SkyFinder/internal/pkg/pkgrouter"
	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
	"github.com/king-open/SkyFinder/internal/skyfinder/airportsearch"
	"github.com/king-open/SkyFinder/internal/skyfinder/cache"
	"github.com/king-open/SkyFinder/internal/skyfinder/catalog"
	"github.com/king-open/SkyFinder/internal/skyfinder/inbound"
	"github.com/king-open/SkyFinder/internal/skyfinder/itinerary"
	"github.com/king-open/SkyFinder/internal/skyfinder/routeindex"
	"github.com/king-open/SkyFinder/internal/skyfinder/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	UUID   pkguid.StringID
}

func New(dep Dependency) error {
	c, err := loadCatalog(dep.Config)
	if err != nil {
		return err
	}

	sessionTTL := 30 * time.Minute
	if ttlSeconds := dep.Config.GetInt("modules.skyfinder.session.ttl_seconds"); ttlSeconds > 0 {
		sessionTTL = time.Duration(ttlSeconds) * time.Second
	}

	uuid := dep.UUID
	if uuid == nil {
		uuid = pkguid.NewUUID()
	}

	index := routeindex.New(c.Flights)

	uc := usecase.New(usecase.Dependency{
		Catalog:     c,
		Index:       index,
		Synthesizer: itinerary.New(index, c.Hubs, c.Alternatives),
		Airports:    airportsearch.New(c.Airports),
		Sessions:    cache.NewSliding[*usecase.Session](nil),
		SessionTTL:  sessionTTL,
		UUID:        uuid,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	slog.Info("module skyfinder ready",
		"flights", len(c.Flights),
		"routes", index.Len(),
		"airports", len(c.Airports),
		"session_ttl", sessionTTL.String(),
	)

	return nil
}

func loadCatalog(cfg pkgconfig.Config) (*catalog.Catalog, error) {
	c := catalog.Default()
	if path := cfg.GetString("modules.skyfinder.catalog.path"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	if currency := cfg.GetString("modules.skyfinder.currency"); currency != "" {
		c.Currency = currency
	}
	if home := cfg.GetString("modules.skyfinder.home_country"); home != "" {
		c.HomeCountry = home
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("skyfinder catalog: %w", err)
	}
	return c, nil
}
