package usecase

import (
	"time"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/cache"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/provider"
)

type Dependency struct {
	Provider provider.Provider
	// Cache holds raw upstream results keyed by search id.
	Cache    *cache.Cache[[]entity.Flight]
	CacheTTL time.Duration
	// SearchTimeout bounds a single upstream call. Zero leaves it to the
	// caller's context.
	SearchTimeout time.Duration
}

type Usecase struct {
	provider      provider.Provider
	cache         *cache.Cache[[]entity.Flight]
	cacheTTL      time.Duration
	searchTimeout time.Duration
}

func New(dep Dependency) *Usecase {
	c := dep.Cache
	if c == nil {
		c = cache.New(CloneFlights)
	}
	return &Usecase{
		provider:      dep.Provider,
		cache:         c,
		cacheTTL:      dep.CacheTTL,
		searchTimeout: dep.SearchTimeout,
	}
}
